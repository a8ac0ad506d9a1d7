package services

import (
	"context"
	"io"
	"strconv"

	"github.com/dmitrijs2005/adminclient/internal/client/client"
	"github.com/dmitrijs2005/adminclient/internal/client/models"
)

// fakeClient implements client.Client for unit tests of the services.
// Methods not overridden here panic through the nil embedded interface.
type fakeClient struct {
	client.Client

	// presets
	CloseErr error

	LoginRet *models.AuthResult
	LoginErr error

	RegisterErr error
	nextID      int64

	Users    []models.User
	UsersErr error

	GetUserRet *models.User
	GetUserErr error

	UpdateErr error
	DeleteErr error

	Projects    []models.Project
	ProjectsErr error
	ProjectRet  *models.Project
	ProjectErr  error

	AvatarRet *models.Avatar
	AvatarErr error

	// for argument checks
	LastLoginEmail    string
	LastLoginPassword string
	LastRegistration  models.Registration
	LastUpdateID      string
	LastDeleteID      string
	LastGetUserID     string
	LastPage          int
	LastPageSize      int
	LastAvatarName    string
	LastAvatarData    string
	Closed            bool
}

func (f *fakeClient) Close() error {
	f.Closed = true
	return f.CloseErr
}

func (f *fakeClient) Login(_ context.Context, email, password string) (*models.AuthResult, error) {
	f.LastLoginEmail = email
	f.LastLoginPassword = password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(_ context.Context, reg models.Registration) (*models.User, error) {
	f.LastRegistration = reg
	if f.RegisterErr != nil {
		return nil, f.RegisterErr
	}
	f.nextID++
	id := 100 + f.nextID
	return &models.User{ID: &id, Name: reg.Name, Email: reg.Email, Role: reg.Role, JoiningDate: reg.JoiningDate}, nil
}

func (f *fakeClient) ListAllUsers(context.Context) ([]models.User, error) {
	if f.UsersErr != nil {
		return nil, f.UsersErr
	}
	out := make([]models.User, len(f.Users))
	copy(out, f.Users)
	return out, nil
}

func (f *fakeClient) ListUsers(_ context.Context, page, pageSize int) ([]models.User, error) {
	f.LastPage, f.LastPageSize = page, pageSize
	if f.UsersErr != nil {
		return nil, f.UsersErr
	}
	start := min((page-1)*pageSize, len(f.Users))
	end := min(page*pageSize, len(f.Users))
	out := make([]models.User, end-start)
	copy(out, f.Users[start:end])
	return out, nil
}

func (f *fakeClient) GetUser(_ context.Context, id string) (*models.User, error) {
	f.LastGetUserID = id
	return f.GetUserRet, f.GetUserErr
}

func (f *fakeClient) UpdateUser(_ context.Context, id string, u models.User) (*models.User, error) {
	f.LastUpdateID = id
	if f.UpdateErr != nil {
		return nil, f.UpdateErr
	}
	return u.Clone(), nil
}

func (f *fakeClient) DeleteUser(_ context.Context, id string) error {
	f.LastDeleteID = id
	return f.DeleteErr
}

func (f *fakeClient) ListProjects(_ context.Context, page, pageSize int) ([]models.Project, error) {
	f.LastPage, f.LastPageSize = page, pageSize
	return f.Projects, f.ProjectsErr
}

func (f *fakeClient) GetProject(_ context.Context, id string) (*models.Project, error) {
	return f.ProjectRet, f.ProjectErr
}

func (f *fakeClient) UploadAvatar(_ context.Context, filename string, r io.Reader) (*models.Avatar, error) {
	f.LastAvatarName = filename
	b, _ := io.ReadAll(r)
	f.LastAvatarData = string(b)
	return f.AvatarRet, f.AvatarErr
}

func usersWithIDs(n int) []models.User {
	out := make([]models.User, n)
	for i := range out {
		id := int64(i + 1)
		out[i] = models.User{ID: &id, Name: "user" + strconv.Itoa(i+1)}
	}
	return out
}
