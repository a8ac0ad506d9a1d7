package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/adminclient/internal/client/models"
	"github.com/dmitrijs2005/adminclient/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

type HTTPClient struct {
	endpoints Endpoints
	http      *http.Client
	timeout   time.Duration

	session   Session
	navigator Navigator
	notifier  Notifier
	log       logging.Logger

	unauthorized singleflight.Group
	newID        func() string
}

var _ Client = (*HTTPClient)(nil)

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client; WithTimeout is then
// ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// WithTimeout bounds every request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.timeout = d }
}

func WithNavigator(n Navigator) Option {
	return func(c *HTTPClient) { c.navigator = n }
}

func WithNotifier(n Notifier) Option {
	return func(c *HTTPClient) { c.notifier = n }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// New returns a client for the API rooted at baseURL whose requests carry
// the token held by session.
func New(baseURL string, session Session, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: want http(s)://host[/path]", baseURL)
	}

	c := &HTTPClient{
		endpoints: NewEndpoints(baseURL),
		session:   session,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: c.timeout}
	}
	if c.log == nil {
		c.log = logging.Discard()
	}
	c.log = c.log.With("component", "http", "base_url", c.endpoints.Base())

	return c, nil
}

func (c *HTTPClient) Endpoints() Endpoints { return c.endpoints }

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// do sends one request through the interceptor and decodes a JSON response
// into out (skipped when out is nil).
func (c *HTTPClient) do(ctx context.Context, method, target string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	c.log.Debug(ctx, "request", "method", method, "url", req.URL.Redacted())

	resp, err := c.authInterceptor(req, c.http.Do)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyResponse
		}
		return fmt.Errorf("decode %s %s: %w", method, req.URL.Redacted(), err)
	}
	return nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, target string, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}
	return c.do(ctx, method, target, body, contentType, out)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	var res models.AuthResult
	creds := models.Credentials{Email: email, Password: password}
	if err := c.doJSON(ctx, http.MethodPost, c.endpoints.Login(), creds, &res); err != nil {
		return nil, err
	}
	if res.Token == "" {
		return nil, ErrEmptyResponse
	}
	return &res, nil
}

func (c *HTTPClient) Register(ctx context.Context, reg models.Registration) (*models.User, error) {
	var res struct {
		User *models.User `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodPost, c.endpoints.Register(), reg, &res); err != nil {
		return nil, err
	}
	if res.User == nil {
		return nil, ErrEmptyResponse
	}
	return res.User, nil
}

func (c *HTTPClient) ListAllUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.doJSON(ctx, http.MethodGet, c.endpoints.AllUsers(), nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context, page, pageSize int) ([]models.User, error) {
	var users []models.User
	if err := c.doJSON(ctx, http.MethodGet, c.endpoints.Users(page, pageSize), nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := c.doJSON(ctx, http.MethodGet, c.endpoints.User(id), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id string, user models.User) (*models.User, error) {
	var u models.User
	if err := c.doJSON(ctx, http.MethodPut, c.endpoints.User(id), user, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, c.endpoints.User(id), nil, nil)
}

func (c *HTTPClient) ListProjects(ctx context.Context, page, pageSize int) ([]models.Project, error) {
	var projects []models.Project
	if err := c.doJSON(ctx, http.MethodGet, c.endpoints.Projects(page, pageSize), nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *HTTPClient) GetProject(ctx context.Context, id string) (*models.Project, error) {
	var p models.Project
	if err := c.doJSON(ctx, http.MethodGet, c.endpoints.Project(id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UploadAvatar posts the image as multipart form field "avatar" together
// with a fresh UUID in field "id".
func (c *HTTPClient) UploadAvatar(ctx context.Context, filename string, r io.Reader) (*models.Avatar, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("avatar", filename)
	if err != nil {
		return nil, fmt.Errorf("build form: %w", err)
	}
	if _, err := io.Copy(fw, r); err != nil {
		return nil, fmt.Errorf("read avatar: %w", err)
	}
	if err := mw.WriteField("id", c.newID()); err != nil {
		return nil, fmt.Errorf("build form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("build form: %w", err)
	}

	var a models.Avatar
	if err := c.do(ctx, http.MethodPost, c.endpoints.Avatars(), &buf, mw.FormDataContentType(), &a); err != nil {
		return nil, err
	}
	return &a, nil
}
