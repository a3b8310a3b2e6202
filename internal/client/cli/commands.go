package cli

import (
	"context"
	"fmt"
)

const welcomeText = `Welcome to the volunteer community!
Help animals, nature and people in your city together with others.
Type 'screen 2' to learn more or 'register' to join.`

const aboutText = `About the community
Volunteers organise events, invite others and share reports afterwards.
Registered members can publish events and reports from their cabinet.`

// Screen switches to s. Errors from the screen hook are returned as is.
func (a *App) Screen(ctx context.Context, s Screen) error {
	return a.nav.Show(ctx, s)
}

// Events opens the events modal with every published event.
func (a *App) Events(ctx context.Context) error {
	a.nav.OpenEvents()
	fmt.Fprintln(a.out, "== Events == (type 'close' to return)")
	a.view.Events(a.state().Events)
	return nil
}

// Close hides the events modal.
func (a *App) Close(ctx context.Context) error {
	if a.nav.CloseEvents() {
		fmt.Fprintln(a.out, "Events closed")
	} else {
		fmt.Fprintln(a.out, "Nothing to close")
	}
	return nil
}

// Feed prints the latest activity.
func (a *App) Feed(ctx context.Context) error {
	items := a.state().Feed
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No activity yet")
		return nil
	}
	a.view.Feed(items)
	return nil
}

// Profile prints the profile card.
func (a *App) Profile(ctx context.Context) error {
	s := a.state()
	if !s.Registered {
		fmt.Fprintln(a.out, "No profile yet, type 'register' to join")
		return nil
	}
	a.view.Profile(s.Profile, true)
	return nil
}

// Reset deletes every local record after confirmation and returns to the
// welcome screen.
func (a *App) Reset(ctx context.Context) error {
	ok, err := GetConfirm(a.reader, "Delete the profile, events, reports and activity?", a.prompts)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Reset cancelled")
		return nil
	}

	opCtx, cancel := storageContext(ctx, a.storageTimeout())
	defer cancel()

	if err := a.svc.Reset(opCtx); err != nil {
		a.logFailure(ctx, "reset", err)
		return err
	}
	fmt.Fprintln(a.out, "All local data deleted")
	return a.nav.Show(ctx, ScreenWelcome)
}

func (a *App) showWelcome(ctx context.Context) error {
	fmt.Fprintln(a.out, welcomeText)
	if a.isRegistered() {
		fmt.Fprintln(a.out, "You are registered, type 'cabinet' to open your cabinet.")
	}
	return nil
}

func (a *App) showAbout(ctx context.Context) error {
	fmt.Fprintln(a.out, aboutText)
	return nil
}

// showCabinet re-renders the profile card and the feed.
func (a *App) showCabinet(ctx context.Context) error {
	s := a.state()

	fmt.Fprintln(a.out, "== Cabinet ==")
	if s.Registered {
		a.view.Profile(s.Profile, true)
	} else {
		fmt.Fprintln(a.out, "Not registered yet")
	}

	fmt.Fprintln(a.out, "-- Latest activity --")
	if len(s.Feed) == 0 {
		fmt.Fprintln(a.out, "No activity yet")
		return nil
	}
	a.view.Feed(s.Feed)
	return nil
}
