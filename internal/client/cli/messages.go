package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/volunteer/internal/client/validation"
	"github.com/dmitrijs2005/volunteer/internal/common"
)

// userMessage turns a handler error into the line shown to the user.
func userMessage(err error) string {
	var mf *validation.MissingFieldsError
	switch {
	case errors.As(err, &mf):
		return capitalize(mf.Reason) + ": " + strings.Join(mf.Fields, ", ")
	case errors.Is(err, common.ErrAccessDenied):
		return "Access denied: complete registration first (type 'register')"
	case errors.Is(err, common.ErrAlreadyRegistered):
		return "You are already registered. Type 'reset' to start over."
	case errors.Is(err, common.ErrUnknownScreen):
		return "Unknown screen. Usage: screen <1-6>"
	case errors.Is(err, common.ErrNotAnImage):
		return "Only image files can be attached: " + err.Error()
	case errors.Is(err, errSubmitDisabled):
		return capitalize(err.Error())
	default:
		return "Error: " + err.Error()
	}
}

// userError reports whether err is something the user can fix by retrying
// with different input.
func userError(err error) bool {
	var mf *validation.MissingFieldsError
	return errors.As(err, &mf) ||
		errors.Is(err, common.ErrAccessDenied) ||
		errors.Is(err, common.ErrAlreadyRegistered) ||
		errors.Is(err, common.ErrNotAnImage)
}

func (a *App) logFailure(ctx context.Context, op string, err error) {
	if userError(err) {
		a.logger.Debug(ctx, op+" rejected", "error", err)
		return
	}
	a.logger.Error(ctx, op+" failed", "error", err)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
