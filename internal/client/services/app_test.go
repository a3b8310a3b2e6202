package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/volunteer/internal/client/feed"
	"github.com/dmitrijs2005/volunteer/internal/client/models"
	"github.com/dmitrijs2005/volunteer/internal/client/store"
	"github.com/dmitrijs2005/volunteer/internal/client/validation"
	"github.com/dmitrijs2005/volunteer/internal/common"
	"github.com/dmitrijs2005/volunteer/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClock struct {
	t time.Time
}

func (c *testClock) Now() time.Time {
	c.t = c.t.Add(time.Millisecond)
	return c.t
}

func newApp(t *testing.T, st store.Store) *App {
	t.Helper()
	clock := &testClock{t: time.Date(2024, 6, 1, 7, 0, 0, 0, time.UTC)}
	a := NewApp(st, logging.Nop(), WithClock(clock.Now), WithLocation(time.UTC))
	require.NoError(t, a.Load(context.Background()))
	return a
}

func annaInput() validation.ProfileInput {
	return validation.ProfileInput{
		FirstName:     "Anna",
		LastName:      "Ivanova",
		City:          "Moscow",
		Organization:  "GreenHelp",
		WhatsApp:      "+79990000000",
		Interests:     []models.Interest{"ecology"},
		RulesAccepted: true,
	}
}

func eventInput(title string) validation.EventInput {
	return validation.EventInput{
		Title:       title,
		Description: "Park cleanup",
		DateTime:    "2024-06-10T10:00",
		Address:     "Gorky park",
	}
}

func TestRegister_CreatesProfileAndSystemMessage(t *testing.T) {
	st := store.NewMemoryStore()
	a := newApp(t, st)
	ctx := context.Background()

	require.False(t, a.Registered())

	p, err := a.Register(ctx, annaInput())
	require.NoError(t, err)
	assert.Equal(t, "Anna", p.FirstName)
	assert.Equal(t, "2024-06-01T07:00:00.001Z", p.RegistrationDate)
	assert.True(t, a.Registered())

	s := a.State()
	require.Len(t, s.Feed, 1)
	assert.Equal(t, models.KindSystem, s.Feed[0].Type)
	assert.Equal(t, feed.IconSystem, s.Feed[0].Icon)
	assert.Equal(t, WelcomeTitle, s.Feed[0].Title)

	reloaded := newApp(t, st)
	got := reloaded.State()
	assert.True(t, got.Registered)
	assert.Equal(t, p, got.Profile)
}

func TestRegister_RejectsMissingFieldsWithoutPersisting(t *testing.T) {
	st := store.NewMemoryStore()
	a := newApp(t, st)
	ctx := context.Background()

	mutations := map[string]func(*validation.ProfileInput){
		"first name": func(p *validation.ProfileInput) { p.FirstName = " " },
		"last name":  func(p *validation.ProfileInput) { p.LastName = "" },
		"city":       func(p *validation.ProfileInput) { p.City = "" },
		"org":        func(p *validation.ProfileInput) { p.Organization = "" },
		"whatsapp":   func(p *validation.ProfileInput) { p.WhatsApp = "" },
		"interests":  func(p *validation.ProfileInput) { p.Interests = nil },
		"rules":      func(p *validation.ProfileInput) { p.RulesAccepted = false },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			in := annaInput()
			mutate(&in)

			_, err := a.Register(ctx, in)
			require.ErrorIs(t, err, common.ErrMissingFields)
			assert.False(t, a.Registered())

			raw, err := st.Get(ctx, store.SlotProfile)
			require.NoError(t, err)
			assert.Nil(t, raw)
			assert.Empty(t, a.State().Feed)
		})
	}
}

func TestRegister_SecondRegistrationRejected(t *testing.T) {
	a := newApp(t, store.NewMemoryStore())
	ctx := context.Background()

	first, err := a.Register(ctx, annaInput())
	require.NoError(t, err)

	other := annaInput()
	other.FirstName = "Olga"
	_, err = a.Register(ctx, other)
	require.ErrorIs(t, err, common.ErrAlreadyRegistered)

	s := a.State()
	assert.Equal(t, first, s.Profile)
	assert.Len(t, s.Feed, 1)
}

func TestCreateEvent_AppendsEventAndMessage(t *testing.T) {
	a := newApp(t, store.NewMemoryStore())
	ctx := context.Background()
	_, err := a.Register(ctx, annaInput())
	require.NoError(t, err)

	e, err := a.CreateEvent(ctx, eventInput("Cleanup"))
	require.NoError(t, err)
	assert.Equal(t, "Anna Ivanova", e.Organizer)
	assert.Equal(t, "Moscow", e.City)
	assert.NotZero(t, e.ID)

	s := a.State()
	require.Equal(t, []models.Event{e}, s.Events)
	require.Len(t, s.Feed, 2)

	last := s.Feed[1]
	assert.Equal(t, models.KindEvent, last.Type)
	assert.Equal(t, "Cleanup", last.Title)
	assert.Contains(t, last.Content, "Cleanup")
	assert.Contains(t, last.Content, "10 June 2024, 10:00")
	assert.Contains(t, last.Content, "Gorky park")
}

func TestCreateEvent_EmptyAddressRejected(t *testing.T) {
	st := store.NewMemoryStore()
	a := newApp(t, st)
	ctx := context.Background()

	in := eventInput("Cleanup")
	in.Address = ""
	_, err := a.CreateEvent(ctx, in)
	require.ErrorIs(t, err, common.ErrMissingFields)

	s := a.State()
	assert.Empty(t, s.Events)
	assert.Empty(t, s.Feed)

	raw, err := st.Get(ctx, store.SlotEvents)
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestCreateEvent_AnonymousWithoutProfile(t *testing.T) {
	a := newApp(t, store.NewMemoryStore())

	e, err := a.CreateEvent(context.Background(), eventInput("Cleanup"))
	require.NoError(t, err)
	assert.Equal(t, models.AnonymousAuthor, e.Organizer)
	assert.Empty(t, e.City)
}

func TestCreateEvent_RoundTripPreservesOrder(t *testing.T) {
	st := store.NewMemoryStore()
	a := newApp(t, st)
	ctx := context.Background()

	var want []models.Event
	for i := 0; i < 5; i++ {
		e, err := a.CreateEvent(ctx, eventInput(fmt.Sprintf("e%d", i)))
		require.NoError(t, err)
		want = append(want, e)
	}

	assert.Equal(t, want, newApp(t, st).State().Events)
}

func TestCreateReport_MessageEmbedsTitleAndParticipants(t *testing.T) {
	a := newApp(t, store.NewMemoryStore())
	ctx := context.Background()

	r, err := a.CreateReport(ctx, validation.ReportInput{
		Title: "Tree planting", Description: "Planted 40 trees", Participants: "12 volunteers",
	})
	require.NoError(t, err)
	assert.Equal(t, models.AnonymousAuthor, r.Author)

	s := a.State()
	require.Len(t, s.Feed, 1)
	msg := s.Feed[0]
	assert.Equal(t, models.KindReport, msg.Type)
	assert.Equal(t, feed.IconReport, msg.Icon)
	assert.Contains(t, msg.Content, "Tree planting")
	assert.True(t, strings.HasSuffix(msg.Content, ". Participants: 12 volunteers"))

	_, err = a.CreateReport(ctx, validation.ReportInput{Title: "No people", Description: "solo"})
	require.NoError(t, err)
	assert.NotContains(t, a.State().Feed[1].Content, "Participants")
}

func TestCreateReport_ElevenReportsFeedShowsLastTen(t *testing.T) {
	a := newApp(t, store.NewMemoryStore())
	ctx := context.Background()

	for i := 1; i <= 11; i++ {
		_, err := a.CreateReport(ctx, validation.ReportInput{Title: fmt.Sprintf("r%d", i), Description: "d"})
		require.NoError(t, err)
	}

	s := a.State()
	require.Len(t, s.Reports, 11)
	require.Len(t, s.Feed, feed.Size)
	for i, it := range s.Feed {
		assert.Equal(t, fmt.Sprintf("r%d", i+2), it.Title)
	}
}

func TestCreate_IDsStrictlyIncreaseAcrossKinds(t *testing.T) {
	a := newApp(t, store.NewMemoryStore())
	ctx := context.Background()

	e, err := a.CreateEvent(ctx, eventInput("x"))
	require.NoError(t, err)
	r, err := a.CreateReport(ctx, validation.ReportInput{Title: "y", Description: "z"})
	require.NoError(t, err)
	assert.Greater(t, r.ID, e.ID)
}

func TestLoad_IDsContinueAfterReload(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	future := time.Now().Add(24 * time.Hour)
	a := NewApp(st, logging.Nop(), WithClock(func() time.Time { return future }))
	require.NoError(t, a.Load(ctx))
	e, err := a.CreateEvent(ctx, eventInput("old"))
	require.NoError(t, err)

	b := NewApp(st, logging.Nop())
	require.NoError(t, b.Load(ctx))
	e2, err := b.CreateEvent(ctx, eventInput("new"))
	require.NoError(t, err)
	assert.Greater(t, e2.ID, e.ID)
}

func TestSubscribe_NotifiedOnChangesOnly(t *testing.T) {
	a := newApp(t, store.NewMemoryStore())
	ctx := context.Background()

	var got []State
	unsubscribe := a.Subscribe(func(s State) { got = append(got, s) })

	_, err := a.CreateEvent(ctx, validation.EventInput{})
	require.Error(t, err)
	assert.Empty(t, got, "rejected submissions do not notify")

	_, err = a.Register(ctx, annaInput())
	require.NoError(t, err)
	_, err = a.CreateEvent(ctx, eventInput("e"))
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.True(t, got[0].Registered)
	assert.Len(t, got[1].Events, 1)
	assert.Len(t, got[1].Feed, 2)

	unsubscribe()
	_, err = a.CreateReport(ctx, validation.ReportInput{Title: "r", Description: "d"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSubscribe_CallbackMayReadState(t *testing.T) {
	a := newApp(t, store.NewMemoryStore())

	var events int
	a.Subscribe(func(State) { events = len(a.State().Events) })

	_, err := a.CreateEvent(context.Background(), eventInput("e"))
	require.NoError(t, err)
	assert.Equal(t, 1, events)
}

func TestReset_ClearsEverything(t *testing.T) {
	st := store.NewMemoryStore()
	a := newApp(t, st)
	ctx := context.Background()

	_, err := a.Register(ctx, annaInput())
	require.NoError(t, err)
	_, err = a.CreateEvent(ctx, eventInput("e"))
	require.NoError(t, err)

	require.NoError(t, a.Reset(ctx))
	s := a.State()
	assert.False(t, s.Registered)
	assert.Empty(t, s.Events)
	assert.Empty(t, s.Feed)

	_, err = a.Register(ctx, annaInput())
	require.NoError(t, err, "registration is possible again after reset")
}

type brokenStore struct {
	*store.MemoryStore
	failSlot store.Slot
}

func (b *brokenStore) Set(ctx context.Context, slot store.Slot, v []byte) error {
	if slot == b.failSlot {
		return errors.New("write failed")
	}
	return b.MemoryStore.Set(ctx, slot, v)
}

func TestCreateEvent_StorageFailureLeavesStateUnchanged(t *testing.T) {
	st := &brokenStore{MemoryStore: store.NewMemoryStore(), failSlot: store.SlotEvents}
	a := newApp(t, st)

	_, err := a.CreateEvent(context.Background(), eventInput("e"))
	require.Error(t, err)
	assert.Empty(t, a.State().Events)
	assert.Empty(t, a.State().Feed)
}

func TestLoad_StoreErrorPropagates(t *testing.T) {
	mem := store.NewMemoryStore()
	require.NoError(t, mem.Set(context.Background(), store.SlotEvents, []byte(`{`)))

	a := NewApp(mem, nil)
	require.Error(t, a.Load(context.Background()))
}
