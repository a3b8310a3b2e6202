package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/volunteer/internal/client/client"
	"github.com/dmitrijs2005/volunteer/internal/client/config"
	"github.com/dmitrijs2005/volunteer/internal/client/render"
	"github.com/dmitrijs2005/volunteer/internal/client/services"
	"github.com/dmitrijs2005/volunteer/internal/logging"
)

type App struct {
	config  *config.Config
	svc     services.Service
	nav     *Navigator
	view    *render.Renderer
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer
	prompts io.Writer

	closeFn     func() error
	unsubscribe func()

	mu   sync.Mutex
	last services.State
}

// NewApp opens local storage, loads the saved state and prepares the REPL
// on stdin/stdout.
func NewApp(c *config.Config) (*App, error) {
	logger := logging.New(os.Stderr, c.LogFormat, c.LogLevel)

	ctx, cancel := storageContext(context.Background(), c.StorageTimeout)
	defer cancel()

	storage, err := client.InitDatabase(ctx, c.DataPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DataPath, "error", err)
		return nil, err
	}

	svc := services.NewApp(storage.Slots, logger)
	if err := svc.Load(ctx); err != nil {
		_ = storage.Close()
		logger.Error(ctx, "error loading saved state", "error", err)
		return nil, err
	}

	a := newApp(c, svc, os.Stdin, os.Stdout, logger)
	a.closeFn = storage.Close
	if !isTerminal(int(os.Stdin.Fd())) {
		a.prompts = io.Discard
	}
	return a, nil
}

func newApp(c *config.Config, svc services.Service, in io.Reader, out io.Writer, logger logging.Logger) *App {
	if logger == nil {
		logger = logging.Nop()
	}
	a := &App{
		config:  c,
		svc:     svc,
		view:    render.New(out, time.Local),
		logger:  logger,
		reader:  bufio.NewReader(in),
		out:     out,
		prompts: out,
		last:    svc.State(),
	}

	a.nav = NewNavigator(a.isRegistered)
	a.nav.OnEnter(ScreenWelcome, a.showWelcome)
	a.nav.OnEnter(ScreenAbout, a.showAbout)
	a.nav.OnEnter(ScreenRegistration, a.registrationForm)
	a.nav.OnEnter(ScreenCabinet, a.showCabinet)
	a.nav.OnEnter(ScreenCreateEvent, a.eventForm)
	a.nav.OnEnter(ScreenCreateReport, a.reportForm)

	a.unsubscribe = svc.Subscribe(a.onStateChange)
	return a
}

// Run shows the welcome screen and serves commands until the user exits.
func (a *App) Run(ctx context.Context) error {
	defer a.shutdown(ctx)

	fmt.Fprintln(a.out, "Volunteer community (type 'help' for commands)")
	if err := a.nav.Show(ctx, ScreenWelcome); err != nil {
		return err
	}

	runREPL(ctx, a, a.status, a.reader)
	return nil
}

func (a *App) shutdown(ctx context.Context) {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	if a.closeFn != nil {
		if err := a.closeFn(); err != nil {
			a.logger.Error(ctx, "error closing storage", "error", err)
		}
	}
}

func (a *App) isRegistered() bool {
	return a.svc.Registered()
}

// onStateChange keeps the snapshot the views render from.
func (a *App) onStateChange(s services.State) {
	a.mu.Lock()
	a.last = s
	a.mu.Unlock()

	a.logger.Debug(context.Background(), "view state updated",
		"events", len(s.Events), "reports", len(s.Reports), "feed", len(s.Feed))
}

func (a *App) state() services.State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.last
}

func (a *App) status() string {
	s := a.nav.Current().String()
	if st := a.state(); st.Registered {
		s += " | " + st.Profile.FirstName
	}
	if a.nav.EventsOpen() {
		s += " | events"
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) storageTimeout() time.Duration {
	if a.config == nil {
		return 0
	}
	return a.config.StorageTimeout
}

func storageContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
