package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/volunteer/internal/client/media"
	"github.com/dmitrijs2005/volunteer/internal/client/models"
	"github.com/dmitrijs2005/volunteer/internal/client/validation"
	"github.com/dmitrijs2005/volunteer/internal/common"
)

var errSubmitDisabled = errors.New("select at least one interest and accept the community rules to submit")

// registrationForm collects a profile and registers it. On success the
// cabinet is shown.
func (a *App) registrationForm(ctx context.Context) error {
	if a.isRegistered() {
		return common.ErrAlreadyRegistered
	}
	fmt.Fprintln(a.prompts, "== Registration ==")

	var in validation.ProfileInput
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"First name", &in.FirstName},
		{"Last name", &in.LastName},
		{"City", &in.City},
		{"Organization", &in.Organization},
		{"WhatsApp", &in.WhatsApp},
	}
	for _, f := range fields {
		v, err := GetSimpleText(a.reader, f.prompt, a.prompts)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	for i, tag := range models.Interests {
		fmt.Fprintf(a.prompts, "  %d) %s\n", i+1, tag.DisplayName())
	}
	picked, err := GetList(a.reader, "Interests (numbers or names, comma separated)", a.prompts)
	if err != nil {
		return err
	}
	in.Interests = parseInterests(picked)

	avatar, err := GetSimpleText(a.reader, "Avatar image path (optional)", a.prompts)
	if err != nil {
		return err
	}
	if avatar != "" {
		if in.Avatar, err = media.Preview(avatar, media.AltAvatar); err != nil {
			return fmt.Errorf("avatar: %w", err)
		}
	}

	if in.RulesAccepted, err = GetConfirm(a.reader, "I accept the community rules", a.prompts); err != nil {
		return err
	}
	if !in.CanSubmit() {
		return errSubmitDisabled
	}

	opCtx, cancel := storageContext(ctx, a.storageTimeout())
	defer cancel()

	p, err := a.svc.Register(opCtx, in)
	if err != nil {
		a.logFailure(ctx, "register", err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s! Registration complete.\n", p.FirstName)
	return a.nav.Show(ctx, ScreenCabinet)
}

func (a *App) eventForm(ctx context.Context) error {
	fmt.Fprintln(a.prompts, "== New event ==")

	var in validation.EventInput
	var err error
	if in.Title, err = GetSimpleText(a.reader, "Title", a.prompts); err != nil {
		return err
	}
	if in.Description, err = GetMultiline(a.reader, "Description", a.prompts); err != nil {
		return err
	}
	if in.DateTime, err = GetSimpleText(a.reader, "Date and time (YYYY-MM-DDTHH:MM)", a.prompts); err != nil {
		return err
	}
	if in.Address, err = GetSimpleText(a.reader, "Address", a.prompts); err != nil {
		return err
	}

	photo, err := GetSimpleText(a.reader, "Photo path (optional)", a.prompts)
	if err != nil {
		return err
	}
	if photo != "" {
		if in.Photo, err = media.Preview(photo, media.AltEventPhoto); err != nil {
			return fmt.Errorf("photo: %w", err)
		}
	}

	opCtx, cancel := storageContext(ctx, a.storageTimeout())
	defer cancel()

	e, err := a.svc.CreateEvent(opCtx, in)
	if err != nil {
		a.logFailure(ctx, "create event", err)
		return err
	}

	fmt.Fprintf(a.out, "Event %q published\n", e.Title)
	return a.nav.Show(ctx, ScreenCabinet)
}

func (a *App) reportForm(ctx context.Context) error {
	fmt.Fprintln(a.prompts, "== New report ==")

	var in validation.ReportInput
	var err error
	if in.Title, err = GetSimpleText(a.reader, "Title", a.prompts); err != nil {
		return err
	}
	if in.Description, err = GetMultiline(a.reader, "Description", a.prompts); err != nil {
		return err
	}
	if in.Participants, err = GetSimpleText(a.reader, "Participants (optional)", a.prompts); err != nil {
		return err
	}

	photos, err := GetList(a.reader, fmt.Sprintf("Photo paths (optional, comma separated, up to %d)", models.MaxReportPhotos), a.prompts)
	if err != nil {
		return err
	}
	if len(photos) > models.MaxReportPhotos {
		fmt.Fprintf(a.out, "Only the first %d photos are attached\n", models.MaxReportPhotos)
	}
	if len(photos) > 0 {
		if in.Photos, err = media.Gallery(photos, media.AltReportPhoto); err != nil {
			return fmt.Errorf("photos: %w", err)
		}
	}

	opCtx, cancel := storageContext(ctx, a.storageTimeout())
	defer cancel()

	r, err := a.svc.CreateReport(opCtx, in)
	if err != nil {
		a.logFailure(ctx, "create report", err)
		return err
	}

	fmt.Fprintf(a.out, "Report %q published\n", r.Title)
	return a.nav.Show(ctx, ScreenCabinet)
}

// parseInterests accepts menu numbers or tag names. Anything else is kept
// verbatim so validation can reject it.
func parseInterests(items []string) []models.Interest {
	tags := make([]models.Interest, 0, len(items))
	for _, item := range items {
		if n, err := strconv.Atoi(item); err == nil && n >= 1 && n <= len(models.Interests) {
			tags = append(tags, models.Interests[n-1])
			continue
		}
		tags = append(tags, models.Interest(strings.ToLower(item)))
	}
	return tags
}
