package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/volunteer/internal/client/models"
	"github.com/dmitrijs2005/volunteer/internal/client/render"
	"github.com/dmitrijs2005/volunteer/internal/client/validation"
	"github.com/dmitrijs2005/volunteer/internal/common"
)

// Texts of the registration activity message.
const (
	WelcomeTitle   = "New volunteer registered!"
	welcomeContent = "Welcome to the volunteer community, %s!"
)

// Register creates the device profile. A second registration is rejected
// with common.ErrAlreadyRegistered; Reset is required first.
func (a *App) Register(ctx context.Context, in validation.ProfileInput) (models.Profile, error) {
	a.mu.Lock()

	if _, ok := a.profile.Get(); ok {
		a.mu.Unlock()
		return models.Profile{}, common.ErrAlreadyRegistered
	}
	if err := validation.ValidateProfile(&in); err != nil {
		a.mu.Unlock()
		a.logger.Info(ctx, "registration rejected", "error", err)
		return models.Profile{}, err
	}

	p := models.Profile{
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		City:             in.City,
		Organization:     in.Organization,
		WhatsApp:         in.WhatsApp,
		Interests:        in.Interests,
		Avatar:           in.Avatar,
		RegistrationDate: a.timestamp(),
	}
	if err := a.profile.Set(ctx, p); err != nil {
		a.mu.Unlock()
		return models.Profile{}, err
	}
	err := a.appendMessageLocked(ctx, models.KindSystem, WelcomeTitle, fmt.Sprintf(welcomeContent, p.FirstName))
	s := a.stateLocked()
	a.mu.Unlock()

	a.logger.Info(ctx, "volunteer registered", "city", p.City, "interests", len(p.Interests))
	a.notify(s)
	return p, err
}

// CreateEvent validates and appends a new event, then posts it to the feed.
func (a *App) CreateEvent(ctx context.Context, in validation.EventInput) (models.Event, error) {
	if err := validation.ValidateEvent(&in); err != nil {
		a.logger.Info(ctx, "event rejected", "error", err)
		return models.Event{}, err
	}

	a.mu.Lock()
	organizer, city := a.authorLocked()
	e := models.Event{
		ID:          a.ids.Next(),
		Title:       in.Title,
		Description: in.Description,
		DateTime:    in.DateTime,
		Address:     in.Address,
		Photo:       in.Photo,
		Organizer:   organizer,
		City:        city,
		CreatedAt:   a.timestamp(),
	}
	if err := a.events.Append(ctx, e); err != nil {
		a.mu.Unlock()
		return models.Event{}, err
	}
	err := a.appendMessageLocked(ctx, models.KindEvent, e.Title, a.eventContent(e))
	s := a.stateLocked()
	a.mu.Unlock()

	a.logger.Info(ctx, "event created", "id", e.ID, "title", e.Title)
	a.notify(s)
	return e, err
}

// CreateReport validates and appends a new report, then posts it to the feed.
func (a *App) CreateReport(ctx context.Context, in validation.ReportInput) (models.Report, error) {
	if err := validation.ValidateReport(&in); err != nil {
		a.logger.Info(ctx, "report rejected", "error", err)
		return models.Report{}, err
	}

	a.mu.Lock()
	author, _ := a.authorLocked()
	r := models.Report{
		ID:           a.ids.Next(),
		Title:        in.Title,
		Description:  in.Description,
		Participants: in.Participants,
		Photos:       in.Photos,
		Author:       author,
		CreatedAt:    a.timestamp(),
	}
	if err := a.reports.Append(ctx, r); err != nil {
		a.mu.Unlock()
		return models.Report{}, err
	}
	err := a.appendMessageLocked(ctx, models.KindReport, r.Title, reportContent(r))
	s := a.stateLocked()
	a.mu.Unlock()

	a.logger.Info(ctx, "report created", "id", r.ID, "title", r.Title)
	a.notify(s)
	return r, err
}

func (a *App) eventContent(e models.Event) string {
	return fmt.Sprintf("New event %q: %s. Date: %s. Address: %s",
		e.Title, e.Description, render.FormatDateTime(e.DateTime, a.loc), e.Address)
}

func reportContent(r models.Report) string {
	s := fmt.Sprintf("Event report %q: %s", r.Title, r.Description)
	if r.Participants != "" {
		s += ". Participants: " + r.Participants
	}
	return s
}
