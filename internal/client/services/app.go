// Package services holds the application context of the volunteer client:
// one App owns the four repositories and exposes the command handlers that
// the view layer calls (Register, CreateEvent, CreateReport).
//
// Every handler validates its input completely before touching any
// repository, so a rejected submission never leaves partial state behind.
// After a successful mutation the App appends exactly one activity message
// and notifies subscribers with a fresh State snapshot.
package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/volunteer/internal/client/feed"
	"github.com/dmitrijs2005/volunteer/internal/client/models"
	"github.com/dmitrijs2005/volunteer/internal/client/repositories"
	"github.com/dmitrijs2005/volunteer/internal/client/store"
	"github.com/dmitrijs2005/volunteer/internal/client/validation"
	"github.com/dmitrijs2005/volunteer/internal/logging"
)

// Service is the surface the view layer depends on.
type Service interface {
	Register(ctx context.Context, in validation.ProfileInput) (models.Profile, error)
	CreateEvent(ctx context.Context, in validation.EventInput) (models.Event, error)
	CreateReport(ctx context.Context, in validation.ReportInput) (models.Report, error)
	Reset(ctx context.Context) error
	Registered() bool
	State() State
	Subscribe(fn func(State)) (unsubscribe func())
}

// State is an immutable snapshot handed to renderers.
type State struct {
	Profile    models.Profile
	Registered bool
	Events     []models.Event
	Reports    []models.Report
	Feed       []feed.Item
}

// App is the application context. Create it with NewApp and call Load once
// before serving commands.
type App struct {
	mu sync.Mutex

	st       store.Store
	profile  repositories.ProfileRepository
	events   repositories.EventRepository
	reports  repositories.ReportRepository
	messages repositories.MessageRepository

	ids    *IDGenerator
	now    func() time.Time
	loc    *time.Location
	logger logging.Logger

	subMu  sync.Mutex
	nextID int
	subs   map[int]func(State)
}

// Option customises an App.
type Option func(*App)

// WithClock replaces time.Now for timestamps and identifiers.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithLocation sets the zone used to format dates inside message text.
func WithLocation(loc *time.Location) Option {
	return func(a *App) { a.loc = loc }
}

func NewApp(st store.Store, logger logging.Logger, opts ...Option) *App {
	a := &App{
		st:       st,
		profile:  repositories.NewProfile(st),
		events:   repositories.NewEvents(st),
		reports:  repositories.NewReports(st),
		messages: repositories.NewMessages(st),
		now:      time.Now,
		loc:      time.Local,
		logger:   logger,
		subs:     make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = logging.Nop()
	}
	a.ids = NewIDGenerator(a.now)
	return a
}

// Load reads all four slots. It must run before any screen is shown.
func (a *App) Load(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.loadLocked(ctx)
}

func (a *App) loadLocked(ctx context.Context) error {
	for _, r := range []repositories.Loader{a.profile, a.events, a.reports, a.messages} {
		if err := r.Load(ctx); err != nil {
			return err
		}
	}
	for _, e := range a.events.All() {
		a.ids.Observe(e.ID)
	}
	for _, r := range a.reports.All() {
		a.ids.Observe(r.ID)
	}

	_, registered := a.profile.Get()
	a.logger.Info(ctx, "state loaded",
		"registered", registered,
		"events", a.events.Len(),
		"reports", a.reports.Len(),
		"messages", a.messages.Len())
	return nil
}

// Registered reports whether a profile exists. It gates restricted screens.
func (a *App) Registered() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, ok := a.profile.Get()
	return ok
}

// State returns a snapshot of everything the views render.
func (a *App) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.stateLocked()
}

func (a *App) stateLocked() State {
	p, ok := a.profile.Get()
	return State{
		Profile:    p,
		Registered: ok,
		Events:     a.events.All(),
		Reports:    a.reports.All(),
		Feed:       feed.Project(a.messages.All()),
	}
}

// Subscribe registers fn to receive a State after every change. The
// returned function removes the subscription.
func (a *App) Subscribe(fn func(State)) func() {
	a.subMu.Lock()
	defer a.subMu.Unlock()

	id := a.nextID
	a.nextID++
	a.subs[id] = fn

	return func() {
		a.subMu.Lock()
		defer a.subMu.Unlock()
		delete(a.subs, id)
	}
}

func (a *App) notify(s State) {
	a.subMu.Lock()
	fns := make([]func(State), 0, len(a.subs))
	for i := 0; i < a.nextID; i++ {
		if fn, ok := a.subs[i]; ok {
			fns = append(fns, fn)
		}
	}
	a.subMu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}

// Reset wipes the store and reloads empty state. It is the only way to
// remove a profile.
func (a *App) Reset(ctx context.Context) error {
	a.mu.Lock()
	if err := a.st.Clear(ctx); err != nil {
		a.mu.Unlock()
		return fmt.Errorf("reset failed: %w", err)
	}
	if err := a.loadLocked(ctx); err != nil {
		a.mu.Unlock()
		return fmt.Errorf("reset failed: %w", err)
	}
	s := a.stateLocked()
	a.mu.Unlock()

	a.logger.Warn(ctx, "local data cleared")
	a.notify(s)
	return nil
}

func (a *App) timestamp() string {
	return a.now().UTC().Format(isoLayout)
}

// isoLayout matches the millisecond ISO-8601 form used by the stored data.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

func (a *App) appendMessageLocked(ctx context.Context, kind models.MessageKind, title, content string) error {
	m := models.Message{Type: kind, Title: title, Content: content, Timestamp: a.timestamp()}
	if err := a.messages.Append(ctx, m); err != nil {
		return fmt.Errorf("failed to post activity message: %w", err)
	}
	return nil
}

// authorLocked returns the display name and city copied onto new records.
func (a *App) authorLocked() (string, string) {
	p, ok := a.profile.Get()
	if !ok {
		return models.AnonymousAuthor, ""
	}
	return p.FullName(), p.City
}
