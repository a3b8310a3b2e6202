package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isRegistered() bool
	Screen(ctx context.Context, s Screen) error
	Events(ctx context.Context) error
	Close(ctx context.Context) error
	Feed(ctx context.Context) error
	Profile(ctx context.Context) error
	Reset(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the volunteer client.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF, when ctx is done, or
// when the user types "exit" or "quit".
//
// Commands
//
//	Always:
//	  - help            show available commands
//	  - screen <1..6>   switch screen
//	  - register        open the registration form (screen 3)
//	  - events          open the events modal
//	  - close | esc     close the events modal
//	  - exit | quit     leave the program
//
//	Registered:
//	  - addevent        create an event (screen 5)
//	  - addreport       create a report (screen 6)
//	  - cabinet         show the cabinet (screen 4)
//	  - feed            show the latest activity
//	  - profile         show the profile card
//	  - reset           delete all local data
//
// Errors returned by command handlers are reported to the user and the loop
// continues. Handlers log their own failures.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("volunteer %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isRegistered() {
				printlnFn("Available commands: screen <1-6>, cabinet, addevent, addreport, events, close, feed, profile, reset, exit")
			} else {
				printlnFn("Available commands: screen <1-4>, register, events, close, exit")
			}

		case "screen":
			if len(args) != 1 {
				printlnFn("Usage: screen <1-6>")
				continue
			}
			n, convErr := strconv.Atoi(args[0])
			if convErr != nil {
				printlnFn("Usage: screen <1-6>")
				continue
			}
			cmdErr = a.Screen(ctx, Screen(n))

		case "register":
			cmdErr = a.Screen(ctx, ScreenRegistration)

		case "cabinet":
			cmdErr = a.Screen(ctx, ScreenCabinet)

		case "addevent":
			cmdErr = a.Screen(ctx, ScreenCreateEvent)

		case "addreport":
			cmdErr = a.Screen(ctx, ScreenCreateReport)

		case "events":
			cmdErr = a.Events(ctx)

		case "close", "esc", "\x1b":
			cmdErr = a.Close(ctx)

		case "feed":
			cmdErr = a.Feed(ctx)

		case "profile":
			cmdErr = a.Profile(ctx)

		case "reset":
			cmdErr = a.Reset(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn(userMessage(cmdErr))
		}
		if err != nil {
			return
		}
	}
}
