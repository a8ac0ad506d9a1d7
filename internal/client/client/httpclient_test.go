package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/adminclient/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64p(v int64) *int64 { return &v }

// newServer starts an API stub mounted under /api and a client pointed at it.
func newServer(t *testing.T, sess Session, h http.HandlerFunc) (*HTTPClient, *fakeNavigator) {
	t.Helper()
	mux := http.NewServeMux()
	mux.Handle("/api/", h)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	nav := &fakeNavigator{}
	c, err := New(srv.URL+"/api/", sess, WithNavigator(nav), WithNotifier(&fakeNotifier{}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, nav
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNew_ValidatesBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		wantErr bool
	}{
		{"http", "http://localhost:5001/api", false},
		{"https with trailing slash", "https://admin.example.com/api/", false},
		{"missing scheme", "localhost:5001/api", true},
		{"unsupported scheme", "ftp://host/api", true},
		{"missing host", "http:///api", true},
		{"garbage", "://", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.base, &fakeSession{})
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, c)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, c)
		})
	}
}

func TestNew_AppliesTimeoutAndCustomClient(t *testing.T) {
	c, err := New("http://h/api", nil, WithTimeout(3*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, c.http.Timeout)

	hc := &http.Client{Timeout: time.Minute}
	c, err = New("http://h/api", nil, WithHTTPClient(hc), WithTimeout(time.Second))
	require.NoError(t, err)
	assert.Same(t, hc, c.http)
}

func TestHTTPClient_EndToEndUnauthorizedScenario(t *testing.T) {
	sess := &fakeSession{token: "abc123"}

	var auth string
	c, nav := newServer(t, sess, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.ListUsers(context.Background(), 1, 10)

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Bearer abc123", auth)
	assert.Equal(t, 1, sess.calls())
	assert.Empty(t, sess.Token())
	assert.Equal(t, []string{"/login"}, nav.routes)
}

func TestHTTPClient_Login(t *testing.T) {
	sess := &fakeSession{}
	c, _ := newServer(t, sess, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Empty(t, r.Header.Get("Authorization"))

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeJSON(t, w, http.StatusOK, map[string]any{
			"token": "tok-1",
			"user":  map[string]any{"id": 7, "name": "Jane", "email": creds.Email},
		})
	})

	res, err := c.Login(context.Background(), "jane@example.com", "secret")
	require.NoError(t, err)

	want := &models.AuthResult{
		Token: "tok-1",
		User:  &models.User{ID: int64p(7), Name: "Jane", Email: "jane@example.com"},
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Fatalf("Login mismatch (-want +got):\n%s", diff)
	}

	_, err = c.Login(context.Background(), "jane@example.com", "wrong")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestHTTPClient_LoginWithoutTokenIsEmptyResponse(t *testing.T) {
	c, _ := newServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"user": map[string]any{"name": "x"}})
	})

	_, err := c.Login(context.Background(), "a@b.c", "p")
	require.ErrorIs(t, err, ErrEmptyResponse)
}

func TestHTTPClient_Register(t *testing.T) {
	c, _ := newServer(t, &fakeSession{token: "admin"}, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/register", r.URL.Path)
		require.Equal(t, "Bearer admin", r.Header.Get("Authorization"))

		var reg models.Registration
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reg))
		writeJSON(t, w, http.StatusCreated, map[string]any{
			"user": map[string]any{"id": 42, "name": reg.Name, "role": reg.Role},
		})
	})

	u, err := c.Register(context.Background(), models.Registration{Name: "Bob", Role: "business"})
	require.NoError(t, err)
	assert.Equal(t, &models.User{ID: int64p(42), Name: "Bob", Role: "business"}, u)
}

func TestHTTPClient_RegisterMissingUser(t *testing.T) {
	for name, body := range map[string]string{
		"no user key": `{"message":"ok"}`,
		"empty body":  ``,
	} {
		t.Run(name, func(t *testing.T) {
			c, _ := newServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = io.WriteString(w, body)
			})

			_, err := c.Register(context.Background(), models.Registration{Name: "Bob"})
			require.ErrorIs(t, err, ErrEmptyResponse)
		})
	}
}

func TestHTTPClient_UsersCRUD(t *testing.T) {
	var deleted, updatedName string
	c, _ := newServer(t, &fakeSession{token: "t"}, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/users/" && r.URL.RawQuery != "":
			assert.Equal(t, "2", r.URL.Query().Get("page"))
			assert.Equal(t, "5", r.URL.Query().Get("pageSize"))
			writeJSON(t, w, http.StatusOK, []map[string]any{{"id": 1, "name": "A"}, {"id": 2, "name": "B"}})
		case r.Method == http.MethodGet && r.URL.Path == "/api/users":
			writeJSON(t, w, http.StatusOK, []map[string]any{{"id": 1}, {"id": 2}, {"id": 3}})
		case r.Method == http.MethodGet && r.URL.Path == "/api/users/1":
			writeJSON(t, w, http.StatusOK, map[string]any{"id": 1, "name": "A", "is2FAEnabled": true})
		case r.Method == http.MethodGet && r.URL.Path == "/api/users/404":
			w.WriteHeader(http.StatusNotFound)
		case r.Method == http.MethodPut && r.URL.Path == "/api/users/1":
			var u models.User
			require.NoError(t, json.NewDecoder(r.Body).Decode(&u))
			updatedName = u.Name
			writeJSON(t, w, http.StatusOK, u)
		case r.Method == http.MethodDelete && r.URL.Path == "/api/users/3":
			deleted = "3"
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL)
			w.WriteHeader(http.StatusTeapot)
		}
	})
	ctx := context.Background()

	users, err := c.ListUsers(ctx, 2, 5)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "B", users[1].Name)

	all, err := c.ListAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	u, err := c.GetUser(ctx, "1")
	require.NoError(t, err)
	assert.True(t, u.Is2FAEnabled)

	_, err = c.GetUser(ctx, "404")
	require.ErrorIs(t, err, ErrNotFound)

	u, err = c.UpdateUser(ctx, "1", models.User{ID: int64p(1), Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", u.Name)
	assert.Equal(t, "Renamed", updatedName)

	require.NoError(t, c.DeleteUser(ctx, "3"))
	assert.Equal(t, "3", deleted)
}

func TestHTTPClient_Projects(t *testing.T) {
	c, _ := newServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/projects/":
			writeJSON(t, w, http.StatusOK, []map[string]any{
				{"id": "p1", "project_name": "Apollo", "team": []string{"a", "b"}},
			})
		case "/api/projects/p1":
			writeJSON(t, w, http.StatusOK, map[string]any{"id": "p1", "project_name": "Apollo", "status": "active"})
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})
	ctx := context.Background()

	list, err := c.ListProjects(ctx, 1, 10)
	require.NoError(t, err)
	want := []models.Project{{ID: "p1", Name: "Apollo", Team: []string{"a", "b"}}}
	if diff := cmp.Diff(want, list); diff != "" {
		t.Fatalf("ListProjects mismatch (-want +got):\n%s", diff)
	}

	p, err := c.GetProject(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "active", p.Status)
}

func TestHTTPClient_UploadAvatar(t *testing.T) {
	c, _ := newServer(t, &fakeSession{token: "t"}, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/avatars", r.URL.Path)
		require.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		require.Equal(t, "Bearer t", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, hdr, err := r.FormFile("avatar")
		require.NoError(t, err)
		defer f.Close()
		data, _ := io.ReadAll(f)

		assert.Equal(t, "me.png", hdr.Filename)
		assert.Equal(t, "PNGDATA", string(data))
		assert.Equal(t, "fixed-id", r.FormValue("id"))

		writeJSON(t, w, http.StatusOK, models.Avatar{ID: r.FormValue("id"), URL: "https://cdn/me.png"})
	})
	c.newID = func() string { return "fixed-id" }

	a, err := c.UploadAvatar(context.Background(), "me.png", strings.NewReader("PNGDATA"))
	require.NoError(t, err)
	assert.Equal(t, &models.Avatar{ID: "fixed-id", URL: "https://cdn/me.png"}, a)
}

func TestHTTPClient_UploadAvatarUsesFreshIDs(t *testing.T) {
	var ids []string
	c, _ := newServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		ids = append(ids, r.FormValue("id"))
		writeJSON(t, w, http.StatusOK, models.Avatar{})
	})

	for i := 0; i < 2; i++ {
		_, err := c.UploadAvatar(context.Background(), "a.png", strings.NewReader("x"))
		require.NoError(t, err)
	}
	require.Len(t, ids, 2)
	assert.Len(t, ids[0], 36)
	assert.NotEqual(t, ids[0], ids[1])
}

func TestHTTPClient_ServerErrorKeepsSession(t *testing.T) {
	sess := &fakeSession{token: "abc123"}
	c, nav := newServer(t, sess, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "db down", http.StatusInternalServerError)
	})

	_, err := c.GetProject(context.Background(), "p1")

	var rerr *ResponseError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, http.StatusInternalServerError, rerr.StatusCode)
	assert.Contains(t, rerr.Body, "db down")
	assert.Equal(t, "abc123", sess.Token())
	assert.Zero(t, sess.calls())
	assert.Empty(t, nav.routes)
}

func TestHTTPClient_MalformedJSON(t *testing.T) {
	c, _ := newServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "{not json")
	})

	_, err := c.GetUser(context.Background(), "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
	var rerr *ResponseError
	assert.False(t, errors.As(err, &rerr))
}

func TestHTTPClient_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL + "/api"
	srv.Close()

	sess := &fakeSession{token: "abc123"}
	c, err := New(base, sess, WithTimeout(2*time.Second))
	require.NoError(t, err)

	_, err = c.ListUsers(context.Background(), 1, 10)

	require.ErrorIs(t, err, ErrUnavailable)
	assert.Zero(t, sess.calls())
	assert.Equal(t, "abc123", sess.Token())
}

func TestHTTPClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	c, _ := newServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.ListProjects(ctx, 1, 10)
	require.ErrorIs(t, err, ErrUnavailable)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
