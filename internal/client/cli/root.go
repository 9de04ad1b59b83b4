package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	user := a.session.User()
	if user == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", user.Username)
}

// Run restores the stored session and starts the REPL. Restore failures are
// not fatal: the console simply starts logged out.
func (a *App) Run(ctx context.Context) {
	if err := a.session.Restore(ctx); err != nil {
		fmt.Fprintf(a.out, "Session restore interrupted: %s\n", err.Error())
	}

	a.Root(ctx)
}

func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Portfolio admin console (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "portfolio %s> ", a.getStatus())
		if !scanner.Scan() {
			break
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
				fmt.Fprintln(a.out, "Available commands: whoami, projects, addproject, rmproject <id>, inbox, upload <file>, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: login, projects, exit")
			}

		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "whoami":
			a.Whoami(ctx)
		case "projects":
			a.Projects(ctx)
		case "addproject":
			a.AddProject(ctx)
		case "rmproject":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: rmproject <id>")
				continue
			}
			a.DeleteProject(ctx, args[0])
		case "inbox":
			a.Inbox(ctx)
		case "upload":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: upload <file>")
				continue
			}
			a.UploadResume(ctx, args[0])
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
