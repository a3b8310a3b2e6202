package repositories

import (
	"context"

	"github.com/dmitrijs2005/volunteer/internal/client/models"
)

// Loader is implemented by every repository.
type Loader interface {
	Load(ctx context.Context) error
}

// List is an append-only, insertion-ordered collection.
type List[T any] interface {
	Loader

	// Append adds item at the end and persists the whole list.
	Append(ctx context.Context, item T) error

	// All returns a copy of the items in insertion order.
	All() []T

	// Len returns the number of items.
	Len() int
}

// ProfileRepository holds at most one Profile.
type ProfileRepository interface {
	Loader

	// Get returns the profile and whether one exists.
	Get() (models.Profile, bool)

	// Set stores p and persists it. Callers decide whether overwriting an
	// existing profile is allowed.
	Set(ctx context.Context, p models.Profile) error
}

type (
	EventRepository   = List[models.Event]
	ReportRepository  = List[models.Report]
	MessageRepository = List[models.Message]
)
