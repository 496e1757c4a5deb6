package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/lawlink/internal/client/models"
)

var (
	guestCommands  = "register, login, lawyers, contact, cases, updates, help, exit"
	clientCommands = "lawyers, book <lawyerId>, upload, dashboard, chat [id], cases, updates, feedback, contact, whoami, logout, help, exit"
	lawyerCommands = "dashboard, profile, profile-edit, portal, chat [id], upload, cases, updates, feedback, contact, whoami, logout, help, exit"
)

// runREPL reads commands line by line and dispatches them until EOF, ctx
// cancellation or "exit". Command errors are reported to the user and never
// end the loop.
func runREPL(ctx context.Context, a *App, in *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(a.out, "lawlink %s> ", a.status(ctx))

		line, err := in.ReadString('\n')
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
			a.help(ctx)
		case "register":
			a.report(a.Register(ctx))
		case "login":
			a.report(a.Login(ctx))
		case "logout":
			a.report(a.Logout(ctx))
		case "whoami":
			a.WhoAmI(ctx)
		case "lawyers":
			a.report(a.Lawyers(ctx, args))
		case "book":
			a.report(a.Book(ctx, args))
		case "upload":
			a.report(a.Upload(ctx))
		case "contact":
			a.report(a.Contact(ctx))
		case "dashboard":
			a.Dashboard(ctx)
		case "profile":
			a.Profile(ctx)
		case "profile-edit":
			a.report(a.EditProfile(ctx))
		case "portal":
			a.Portal(ctx)
		case "chat":
			a.report(a.Chat(ctx, args))
		case "cases":
			a.Cases()
		case "updates":
			a.Updates(args)
		case "feedback":
			a.report(a.Feedback(ctx))
		case "exit", "quit":
			a.println("Bye!")
			return
		default:
			a.println("Unknown command:", cmd)
		}
	}
}

func (a *App) help(ctx context.Context) {
	s := a.currentSession(ctx)
	switch {
	case s == nil:
		a.println("Available commands:", guestCommands)
	case s.Role == models.RoleLawyer:
		a.println("Available commands:", lawyerCommands)
	default:
		a.println("Available commands:", clientCommands)
	}
}

func (a *App) report(err error) {
	if err != nil {
		a.println("Error:", err)
	}
}
