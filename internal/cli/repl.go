package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Library(ctx context.Context) error
	Paths(ctx context.Context) error
	Stats(ctx context.Context) error
	Achievements(ctx context.Context) error
	Community(ctx context.Context) error
	Post(ctx context.Context) error
	Recommend(ctx context.Context) error
	Theme(ctx context.Context) error
	Settings(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the WiseBook CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("wb> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, library, paths, stats, achievements, community, post, recommend, theme, settings, logout, exit")
			} else {
				printlnFn("Available commands: register, login, library, paths, community, theme, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "library":
			_ = a.Library(ctx)

		case "paths":
			_ = a.Paths(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "achievements":
			_ = a.Achievements(ctx)

		case "community":
			_ = a.Community(ctx)

		case "post":
			_ = a.Post(ctx)

		case "recommend":
			_ = a.Recommend(ctx)

		case "theme":
			_ = a.Theme(ctx)

		case "settings":
			_ = a.Settings(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
