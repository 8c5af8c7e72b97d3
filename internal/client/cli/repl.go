package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL drives.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Verify(ctx context.Context) error
	EnableTwoFactor(ctx context.Context) error
	Profile(ctx context.Context) error
	Refresh(ctx context.Context) error
	Logout(ctx context.Context) error
	Forgot(ctx context.Context) error
	Reset(ctx context.Context) error
	Ping(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, verify, forgot, reset, ping, exit"
	helpLoggedIn  = "Available commands: profile, enable-2fa, refresh, logout, ping, exit"
)

// runREPL reads commands from reader until EOF, "exit" or "quit". Command
// errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	commands := map[string]func(context.Context) error{
		"register":   a.Register,
		"login":      a.Login,
		"verify":     a.Verify,
		"enable-2fa": a.EnableTwoFactor,
		"profile":    a.Profile,
		"refresh":    a.Refresh,
		"logout":     a.Logout,
		"forgot":     a.Forgot,
		"reset":      a.Reset,
		"ping":       a.Ping,
	}

	for {
		fmt.Fprintf(w, "gophauth %s> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpLoggedIn)
			} else {
				fmt.Fprintln(w, helpLoggedOut)
			}

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			run, ok := commands[cmd]
			if !ok {
				fmt.Fprintln(w, "Unknown command:", cmd)
				continue
			}
			if err := run(ctx); err != nil {
				fmt.Fprintln(w, "Error:", err)
			}
		}
	}
}
