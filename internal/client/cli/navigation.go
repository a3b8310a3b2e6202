package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/volunteer/internal/common"
)

// Screen identifies one view of the client.
type Screen int

const (
	ScreenWelcome Screen = iota + 1
	ScreenAbout
	ScreenRegistration
	ScreenCabinet
	ScreenCreateEvent
	ScreenCreateReport
)

var screenNames = map[Screen]string{
	ScreenWelcome:      "welcome",
	ScreenAbout:        "about",
	ScreenRegistration: "registration",
	ScreenCabinet:      "cabinet",
	ScreenCreateEvent:  "create event",
	ScreenCreateReport: "create report",
}

func (s Screen) String() string {
	if name, ok := screenNames[s]; ok {
		return name
	}
	return fmt.Sprintf("screen(%d)", int(s))
}

func (s Screen) Valid() bool {
	_, ok := screenNames[s]
	return ok
}

// Restricted screens need a registered profile.
func (s Screen) Restricted() bool {
	return s > ScreenCabinet
}

// Navigator tracks the visible screen and the events modal. Exactly one
// screen is current at any time.
type Navigator struct {
	current    Screen
	eventsOpen bool
	registered func() bool
	onEnter    map[Screen]func(context.Context) error
}

// NewNavigator starts on the welcome screen. registered is consulted on
// every attempt to show a restricted screen.
func NewNavigator(registered func() bool) *Navigator {
	return &Navigator{
		current:    ScreenWelcome,
		registered: registered,
		onEnter:    make(map[Screen]func(context.Context) error),
	}
}

// OnEnter sets the hook run each time s becomes current.
func (n *Navigator) OnEnter(s Screen, fn func(context.Context) error) {
	n.onEnter[s] = fn
}

// Show switches to s and runs its hook. A restricted screen without a
// profile returns common.ErrAccessDenied and leaves the current screen as
// it was. Navigating closes the events modal.
func (n *Navigator) Show(ctx context.Context, s Screen) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %d", common.ErrUnknownScreen, int(s))
	}
	if s.Restricted() && !n.registered() {
		return common.ErrAccessDenied
	}

	n.current = s
	n.eventsOpen = false

	if fn, ok := n.onEnter[s]; ok {
		return fn(ctx)
	}
	return nil
}

func (n *Navigator) Current() Screen {
	return n.current
}

func (n *Navigator) OpenEvents() {
	n.eventsOpen = true
}

// CloseEvents hides the modal and reports whether it was open.
func (n *Navigator) CloseEvents() bool {
	was := n.eventsOpen
	n.eventsOpen = false
	return was
}

func (n *Navigator) EventsOpen() bool {
	return n.eventsOpen
}
