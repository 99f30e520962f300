package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gyulist/gyulist/internal/client/client"
	"github.com/gyulist/gyulist/internal/common"
	"github.com/gyulist/gyulist/internal/web/session"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Cattle(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Status(ctx context.Context, args []string) error
	Events(ctx context.Context, args []string) error
	KPI(ctx context.Context, args []string) error
	Shipments(ctx context.Context) error
	Theme(ctx context.Context, args []string) error
}

// usageError is returned by commands called with the wrong arguments.
type usageError string

func (u usageError) Error() string { return "usage: " + string(u) }

// lineScanner is the part of bufio.Scanner the REPL uses.
type lineScanner interface {
	Scan() bool
	Text() string
}

// readerLines reads REPL lines from the same reader the prompts use, so
// piped input is consumed line by line.
type readerLines struct {
	r    *bufio.Reader
	line string
}

func (l *readerLines) Scan() bool {
	line, err := readLine(l.r)
	if err != nil {
		return false
	}
	l.line = line
	return true
}

func (l *readerLines) Text() string { return l.line }

// runREPL starts a simple read–eval–print loop for the gyulist CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command and the rest as its arguments, and dispatches to methods on 'a'.
// The loop exits on scanner EOF or when the user types "exit" or "quit".
//
//	Not logged in:
//	  help | register | login | exit
//
//	Logged in:
//	  help                          show available commands
//	  whoami                        show the current user
//	  cattle [search]               list the herd
//	  show <id>                     one animal with its status history
//	  status <id> <STATUS> [reason] change an animal's status
//	  events [from] [to]            schedule, dates as YYYY-MM-DD
//	  kpi [from] [to]               breeding KPIs
//	  shipments                     shipment plans and records
//	  theme <light|dark|system>     change the UI theme
//	  logout | exit
//
// A failing command prints one error line and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner lineScanner) {
	for {
		printlnFn(fmt.Sprintf("gyulist %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: whoami, cattle, show, status, events, kpi, shipments, theme, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "whoami":
			err = a.Whoami(ctx)

		case "cattle", "ls":
			err = a.Cattle(ctx, args)

		case "show":
			err = a.Show(ctx, args)

		case "status":
			err = a.Status(ctx, args)

		case "events":
			err = a.Events(ctx, args)

		case "kpi":
			err = a.KPI(ctx, args)

		case "shipments":
			err = a.Shipments(ctx)

		case "theme":
			err = a.Theme(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn(describe(err))
		}
	}
}

// describe turns a command error into the line shown to the user.
func describe(err error) string {
	var u usageError
	switch {
	case errors.As(err, &u):
		return "Usage: " + string(u)
	case errors.Is(err, client.ErrNoToken):
		return "Not logged in. Type 'login' first."
	case errors.Is(err, client.ErrUnauthorized), errors.Is(err, session.ErrSessionExpired):
		return "Session expired. Type 'login' to sign in again."
	case errors.Is(err, common.ErrorNotFound):
		return "Not found."
	}
	return "Error: " + err.Error()
}
