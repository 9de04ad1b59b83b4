// Package api implements the REST client the CLI talks to the backend with.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/portfolio/internal/common"
)

type User struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}

type Project struct {
	ID           string   `json:"_id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
	LiveLink     string   `json:"liveLink"`
	RepoLink     string   `json:"repoLink"`
	Technologies []string `json:"technologies"`
	Featured     bool     `json:"featured"`
	SortOrder    int      `json:"order"`
}

type Message struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

type Resume struct {
	ID       string `json:"_id"`
	Filename string `json:"filename"`
	Path     string `json:"path"`
	IsActive bool   `json:"isActive"`
}

// ProjectInput carries the fields for creating a project from the CLI.
// Image uploads stay in the web admin; the CLI creates text-only entries.
type ProjectInput struct {
	Title        string
	Description  string
	LiveLink     string
	RepoLink     string
	Technologies []string
	Featured     bool
}

// Client is the backend surface the CLI uses. Calls that hit admin endpoints
// take the session token explicitly so the client itself stays stateless.
type Client interface {
	Login(ctx context.Context, email, password string) (*User, string, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*User, error)
	Projects(ctx context.Context) ([]Project, error)
	CreateProject(ctx context.Context, token string, in ProjectInput) (*Project, error)
	DeleteProject(ctx context.Context, token, id string) error
	Messages(ctx context.Context, token string) ([]Message, error)
	UnreadCount(ctx context.Context, token string) (int64, error)
	UploadResume(ctx context.Context, token, filename string, r io.Reader) (*Resume, error)
}

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// statusError maps an API status code onto the shared sentinel errors so
// callers can branch with errors.Is regardless of transport.
func statusError(code int, message string) error {
	var sentinel error
	switch code {
	case http.StatusBadRequest:
		sentinel = common.ErrorValidation
	case http.StatusUnauthorized:
		sentinel = common.ErrorUnauthorized
	case http.StatusForbidden:
		sentinel = common.ErrorForbidden
	case http.StatusNotFound:
		sentinel = common.ErrorNotFound
	default:
		sentinel = common.ErrorInternal
	}
	if message == "" {
		message = http.StatusText(code)
	}
	return fmt.Errorf("%w: %s", sentinel, message)
}

// do sends the request and decodes the JSON envelope into out. Non-2xx
// responses become sentinel errors carrying the server's message.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		return statusError(resp.StatusCode, envelope.Message)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path, token string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, token, body, "application/json", out)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*User, string, error) {
	var out struct {
		Token string `json:"token"`
		User  *User  `json:"user"`
	}
	payload := map[string]string{"email": email, "password": password}
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", "", payload, &out); err != nil {
		return nil, "", err
	}
	return out.User, out.Token, nil
}

func (c *HTTPClient) Logout(ctx context.Context, token string) error {
	return c.doJSON(ctx, http.MethodPost, "/api/auth/logout", token, nil, nil)
}

func (c *HTTPClient) CurrentUser(ctx context.Context, token string) (*User, error) {
	var out struct {
		User *User `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/me", token, nil, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

func (c *HTTPClient) Projects(ctx context.Context) ([]Project, error) {
	var out struct {
		Projects []Project `json:"projects"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/projects", "", nil, &out); err != nil {
		return nil, err
	}
	return out.Projects, nil
}

func (c *HTTPClient) CreateProject(ctx context.Context, token string, in ProjectInput) (*Project, error) {
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	fields := map[string]string{
		"title":       in.Title,
		"description": in.Description,
		"liveLink":    in.LiveLink,
		"repoLink":    in.RepoLink,
	}
	if in.Featured {
		fields["featured"] = "true"
	}
	if in.Technologies != nil {
		tech, err := json.Marshal(in.Technologies)
		if err != nil {
			return nil, err
		}
		fields["technologies"] = string(tech)
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	var out struct {
		Project *Project `json:"project"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/projects", token, buf, mw.FormDataContentType(), &out); err != nil {
		return nil, err
	}
	return out.Project, nil
}

func (c *HTTPClient) DeleteProject(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/projects/"+id, token, nil, nil)
}

func (c *HTTPClient) Messages(ctx context.Context, token string) ([]Message, error) {
	var out struct {
		Contacts []Message `json:"contacts"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/contact", token, nil, &out); err != nil {
		return nil, err
	}
	return out.Contacts, nil
}

func (c *HTTPClient) UnreadCount(ctx context.Context, token string) (int64, error) {
	var out struct {
		Count int64 `json:"count"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/contact/unread-count", token, nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (c *HTTPClient) UploadResume(ctx context.Context, token, filename string, r io.Reader) (*Resume, error) {
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	part, err := mw.CreateFormFile("resume", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	var out struct {
		Resume *Resume `json:"resume"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/resume/upload", token, buf, mw.FormDataContentType(), &out); err != nil {
		return nil, err
	}
	return out.Resume, nil
}
