// Package validation checks submissions for required-field completeness
// before anything is mutated. Inputs are normalized (trimmed) first; there
// is deliberately no semantic checking such as date ranges or phone formats.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrijs2005/volunteer/internal/client/models"
	"github.com/dmitrijs2005/volunteer/internal/common"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
}

// Rejection reasons shown to the user.
const (
	ReasonFields    = "please fill in all required fields"
	ReasonInterests = "please select at least one interest"
	ReasonRules     = "you must accept the community rules"
)

// MissingFieldsError lists the fields that failed validation. It matches
// common.ErrMissingFields with errors.Is.
type MissingFieldsError struct {
	Reason string
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, strings.Join(e.Fields, ", "))
}

func (e *MissingFieldsError) Unwrap() error {
	return common.ErrMissingFields
}

// ProfileInput is a raw registration submission.
type ProfileInput struct {
	FirstName     string            `json:"firstName" validate:"required"`
	LastName      string            `json:"lastName" validate:"required"`
	City          string            `json:"city" validate:"required"`
	Organization  string            `json:"organization" validate:"required"`
	WhatsApp      string            `json:"whatsapp" validate:"required"`
	Interests     []models.Interest `json:"interests" validate:"min=1,dive,oneof=animals ecology health culture"`
	Avatar        string            `json:"avatar"`
	RulesAccepted bool              `json:"rulesAccepted" validate:"required"`
}

// Normalize trims identity fields and tags and drops duplicate or blank tags.
func (in *ProfileInput) Normalize() {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.City = strings.TrimSpace(in.City)
	in.Organization = strings.TrimSpace(in.Organization)
	in.WhatsApp = strings.TrimSpace(in.WhatsApp)

	seen := make(map[models.Interest]struct{}, len(in.Interests))
	tags := make([]models.Interest, 0, len(in.Interests))
	for _, tag := range in.Interests {
		tag = models.Interest(strings.TrimSpace(string(tag)))
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	in.Interests = tags
}

// CanSubmit mirrors the registration submit gate: at least one interest is
// selected and the rules are accepted.
func (in *ProfileInput) CanSubmit() bool {
	return len(in.Interests) > 0 && in.RulesAccepted
}

// EventInput is a raw event submission.
type EventInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	DateTime    string `json:"dateTime" validate:"required"`
	Address     string `json:"address" validate:"required"`
	Photo       string `json:"photo"`
}

func (in *EventInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.DateTime = strings.TrimSpace(in.DateTime)
	in.Address = strings.TrimSpace(in.Address)
}

// ReportInput is a raw report submission. Participants is optional.
type ReportInput struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Participants string `json:"participants"`
	Photos       string `json:"photos"`
}

func (in *ReportInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Participants = strings.TrimSpace(in.Participants)
}

// ValidateProfile normalizes in and checks it. The reason names the first
// failing group: identity fields, then interests, then rules acceptance.
func ValidateProfile(in *ProfileInput) error {
	in.Normalize()
	fields := check(in)
	if len(fields) == 0 {
		return nil
	}

	reason := ReasonRules
	for _, f := range fields {
		switch {
		case f == "rulesAccepted":
		case strings.HasPrefix(f, "interests"):
			if reason == ReasonRules {
				reason = ReasonInterests
			}
		default:
			reason = ReasonFields
		}
	}
	return &MissingFieldsError{Reason: reason, Fields: fields}
}

// ValidateEvent normalizes in and checks title, description, date and address.
func ValidateEvent(in *EventInput) error {
	in.Normalize()
	if fields := check(in); len(fields) > 0 {
		return &MissingFieldsError{Reason: ReasonFields, Fields: fields}
	}
	return nil
}

// ValidateReport normalizes in and checks title and description.
func ValidateReport(in *ReportInput) error {
	in.Normalize()
	if fields := check(in); len(fields) > 0 {
		return &MissingFieldsError{Reason: ReasonFields, Fields: fields}
	}
	return nil
}

// check returns the json names of failing fields in declaration order.
func check(v any) []string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fields
}
