package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/portfolio/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates against the backend. The
// session token is persisted so the next run starts logged in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.session.Login(ctx, email, string(password))
	if err != nil {
		fmt.Fprintf(a.out, "Login unsuccessful: %s\n", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", user.Username, user.Role)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	user := a.session.User()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s> role=%s\n", user.Username, user.Email, user.Role)
	return nil
}

func (a *App) Projects(ctx context.Context) error {
	projects, err := a.client.Projects(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}

	if len(projects) == 0 {
		fmt.Fprintln(a.out, "No projects yet")
		return nil
	}

	for _, p := range projects {
		featured := ""
		if p.Featured {
			featured = " [featured]"
		}
		fmt.Fprintf(a.out, "%s  %s%s  (%s)\n", p.ID, p.Title, featured, strings.Join(p.Technologies, ", "))
	}
	return nil
}

// AddProject prompts for the project fields and creates a text-only entry.
// Image uploads stay in the web admin.
func (a *App) AddProject(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	techLine, err := getSimpleText(a.reader, "Technologies (comma separated, optional)", a.out)
	if err != nil {
		return err
	}

	var technologies []string
	for _, t := range strings.Split(techLine, ",") {
		if t = strings.TrimSpace(t); t != "" {
			technologies = append(technologies, t)
		}
	}

	project, err := a.client.CreateProject(ctx, a.session.Token(), api.ProjectInput{
		Title:        title,
		Description:  description,
		Technologies: technologies,
	})
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Created project %s\n", project.ID)
	return nil
}

func (a *App) DeleteProject(ctx context.Context, id string) error {
	if err := a.client.DeleteProject(ctx, a.session.Token(), id); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Project deleted")
	return nil
}

// Inbox lists contact messages together with the unread counter.
func (a *App) Inbox(ctx context.Context) error {
	messages, err := a.client.Messages(ctx, a.session.Token())
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}

	unread, err := a.client.UnreadCount(ctx, a.session.Token())
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "%d message(s), %d unread\n", len(messages), unread)
	for _, m := range messages {
		marker := " "
		if !m.IsRead {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %s  %s <%s>: %s\n", marker, m.ID, m.Name, m.Email, m.Message)
	}
	return nil
}

func (a *App) UploadResume(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}
	defer f.Close()

	resume, err := a.client.UploadResume(ctx, a.session.Token(), filepath.Base(path), f)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Uploaded %s (active)\n", resume.Filename)
	return nil
}
