package services

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/adminclient/internal/client/client"
	"github.com/dmitrijs2005/adminclient/internal/client/models"
)

// UserService keeps a local copy of the user list and pages through it.
// Every mutating call goes to the server first and touches the local list
// only on success. The most recent failure is also kept for display.
//
// The list is either the whole collection (Fetch), paged locally, or a single
// server page (FetchPage), shown as is. A search filter narrows either.
type UserService struct {
	client client.Client
	now    func() time.Time

	mu          sync.Mutex
	items       []models.User
	pagination  models.Pagination
	serverPaged bool
	search      string
	lastErr     error
}

func NewUserService(c client.Client) *UserService {
	return &UserService{client: c, now: time.Now, pagination: models.DefaultPagination()}
}

// Fetch loads all users and positions the view at p. Total is taken from the
// number of records received.
func (s *UserService) Fetch(ctx context.Context, p models.Pagination) error {
	users, err := s.client.ListAllUsers(ctx)
	if err != nil {
		return s.fail(fmt.Errorf("fetch users: %w", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = users
	s.serverPaged = false
	p.Total = len(users)
	s.pagination = p
	s.lastErr = nil
	return nil
}

// FetchPage asks the server for page p only. Total becomes the number of
// records known to exist up to and including this page.
func (s *UserService) FetchPage(ctx context.Context, p models.Pagination) error {
	users, err := s.client.ListUsers(ctx, p.Page, p.PerPage)
	if err != nil {
		return s.fail(fmt.Errorf("fetch users page %d: %w", p.Page, err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = users
	s.serverPaged = true
	p.Total = max(p.Page-1, 0)*p.PerPage + len(users)
	s.pagination = p
	s.lastErr = nil
	return nil
}

// Page returns a copy of the users visible on the current page, after the
// search filter.
func (s *UserService) Page() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	visible := s.filteredLocked()
	if s.serverPaged {
		return visible
	}
	start, end := s.pagination.Bounds(len(visible))
	return visible[start:end]
}

// Matches reports how many loaded users pass the search filter.
func (s *UserService) Matches() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.filteredLocked())
}

// SetSearch filters the list by a case-insensitive substring of name or
// email and moves the view back to the first page. An empty query clears
// the filter.
func (s *UserService) SetSearch(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = strings.ToLower(strings.TrimSpace(query))
	s.pagination.Page = 1
}

func (s *UserService) Search() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}

// filteredLocked returns a fresh slice of the users matching the search.
func (s *UserService) filteredLocked() []models.User {
	out := make([]models.User, 0, len(s.items))
	for _, u := range s.items {
		if s.search == "" ||
			strings.Contains(strings.ToLower(u.Name), s.search) ||
			strings.Contains(strings.ToLower(u.Email), s.search) {
			out = append(out, u)
		}
	}
	return out
}

func (s *UserService) Pagination() models.Pagination {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pagination
}

// SetPage moves the view to page without refetching.
func (s *UserService) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pagination.Page = page
}

// Add registers a new account and appends it to the local list.
func (s *UserService) Add(ctx context.Context, u models.NewUser) (*models.User, error) {
	created, err := s.client.Register(ctx, newRegistration(u, s.now()))
	if err != nil {
		return nil, s.fail(fmt.Errorf("add user: %w", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, *created.Clone())
	s.pagination.Total++
	return created, nil
}

// Update saves u on the server and replaces the local copy with the server's
// answer.
func (s *UserService) Update(ctx context.Context, u models.User) (*models.User, error) {
	if u.ID == nil {
		return nil, s.fail(ErrMissingID)
	}

	updated, err := s.client.UpdateUser(ctx, strconv.FormatInt(*u.ID, 10), u)
	if err != nil {
		return nil, s.fail(fmt.Errorf("update user %d: %w", *u.ID, err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexLocked(*u.ID); i >= 0 {
		s.items[i] = *updated.Clone()
	}
	return updated, nil
}

// Remove deletes the user on the server and drops it from the local list.
func (s *UserService) Remove(ctx context.Context, id int64) error {
	if err := s.client.DeleteUser(ctx, strconv.FormatInt(id, 10)); err != nil {
		return s.fail(fmt.Errorf("remove user %d: %w", id, err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexLocked(id); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
		if s.pagination.Total > 0 {
			s.pagination.Total--
		}
	}
	return nil
}

// Get loads one user from the server.
func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	u, err := s.client.GetUser(ctx, strconv.FormatInt(id, 10))
	if err != nil {
		return nil, s.fail(fmt.Errorf("get user %d: %w", id, err))
	}
	return u, nil
}

func (s *UserService) UploadAvatar(ctx context.Context, filename string, r io.Reader) (*models.Avatar, error) {
	a, err := s.client.UploadAvatar(ctx, filename, r)
	if err != nil {
		return nil, s.fail(fmt.Errorf("upload avatar: %w", err))
	}
	return a, nil
}

// LastError returns the most recent failure, or nil after a successful Fetch.
func (s *UserService) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *UserService) fail(err error) error {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
	return err
}

func (s *UserService) indexLocked(id int64) int {
	for i := range s.items {
		if s.items[i].ID != nil && *s.items[i].ID == id {
			return i
		}
	}
	return -1
}
