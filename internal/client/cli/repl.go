package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/adminclient/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	takeRoute() string
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Users(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	User(ctx context.Context, args []string) error
	AddUser(ctx context.Context) error
	EditUser(ctx context.Context, args []string) error
	DeleteUser(ctx context.Context, args []string) error
	Avatar(ctx context.Context, args []string) error
	Projects(ctx context.Context, args []string) error
	Project(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: register, login, help, exit"
	helpLoggedIn  = "Available commands: whoami, users [-s] [page], search [text], user <id>, adduser, edituser <id>, " +
		"deluser <id>, avatar <path>, projects [page], project <id>, logout, help, exit"
)

// runREPL starts a simple read–eval–print loop for the admin CLI.
//
// Before every prompt it checks for a pending navigation: a request to go to
// the login route (set at start-up without a session, or by the API client
// after a 401) runs the login flow first.
//
// It then reads a line from reader, parses the first token as the command and
// dispatches to methods on 'a'. Commands that need a session are refused
// while logged out. Errors returned by handlers are printed and the loop
// continues. The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - help             — show available commands
//	  - register         — create an account
//	  - login            — authenticate
//	  - exit | quit      — leave the program
//
//	Logged in:
//	  - whoami           — show the signed-in profile and token claims
//	  - users [-s] [page] — list users, ten per page (-s: paged by the server)
//	  - search [text]    — filter users by name or email; no text clears
//	  - user <id>        — show one user
//	  - adduser          — create a user (interactive)
//	  - edituser <id>    — edit a user (interactive)
//	  - deluser <id>     — delete a user
//	  - avatar <path>    — upload an avatar image
//	  - projects [page]  — list projects
//	  - project <id>     — show one project
//	  - logout           — log out
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if a.takeRoute() == common.LoginRoute {
			printlnFn("Please log in.")
			report(a.Login(ctx))
		}

		printlnFn(fmt.Sprintf("admin %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "register":
			report(a.Register(ctx))
			continue
		case "login":
			report(a.Login(ctx))
			continue
		}

		if !a.isLoggedIn() {
			if isKnown(cmd) {
				printlnFn("Please log in first.")
			} else {
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "logout":
			report(a.Logout(ctx))
		case "whoami":
			report(a.Whoami(ctx))
		case "users":
			report(a.Users(ctx, args))
		case "search":
			report(a.Search(ctx, args))
		case "user":
			report(a.User(ctx, args))
		case "adduser":
			report(a.AddUser(ctx))
		case "edituser":
			report(a.EditUser(ctx, args))
		case "deluser":
			report(a.DeleteUser(ctx, args))
		case "avatar":
			report(a.Avatar(ctx, args))
		case "projects":
			report(a.Projects(ctx, args))
		case "project":
			report(a.Project(ctx, args))
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

var sessionCommands = map[string]bool{
	"logout": true, "whoami": true, "users": true, "search": true, "user": true, "adduser": true,
	"edituser": true, "deluser": true, "avatar": true, "projects": true, "project": true,
}

func isKnown(cmd string) bool {
	return sessionCommands[cmd]
}

// report prints a handler error. Usage errors are shown as-is.
func report(err error) {
	if err == nil {
		return
	}
	var u usageError
	if errors.As(err, &u) {
		printlnFn(u.Error())
		return
	}
	printlnFn("Error:", err)
}

// usageError is returned by handlers called with bad arguments.
type usageError string

func (u usageError) Error() string { return "Usage: " + string(u) }
