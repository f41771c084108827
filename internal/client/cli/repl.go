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
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Publish(ctx context.Context, args []string) error
	Upload(ctx context.Context, args []string) error
	Preview(ctx context.Context, args []string) error
	ClearPreview(ctx context.Context) error
	Render(ctx context.Context, args []string) error
	Watch(ctx context.Context) error
	Hash(ctx context.Context) error
}

// runREPL starts a read-eval-print loop for the editor console.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("lc %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: show [path], publish <file>, upload <file>, preview <file>, clear-preview, render <html> [out], watch, hash, exit")
			} else {
				printlnFn("Available commands: login, show [path], preview <file>, clear-preview, render <html> [out], watch, hash, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "show":
			_ = a.Show(ctx, args)

		case "publish":
			_ = a.Publish(ctx, args)

		case "upload":
			_ = a.Upload(ctx, args)

		case "preview":
			_ = a.Preview(ctx, args)

		case "clear-preview":
			_ = a.ClearPreview(ctx)

		case "render":
			_ = a.Render(ctx, args)

		case "watch":
			_ = a.Watch(ctx)

		case "hash":
			_ = a.Hash(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
