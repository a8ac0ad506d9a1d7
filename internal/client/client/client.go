package client

import (
	"context"
	"io"

	"github.com/dmitrijs2005/adminclient/internal/client/models"
)

// Client is the admin API as seen by the services.
type Client interface {
	Close() error
	Login(ctx context.Context, email, password string) (*models.AuthResult, error)
	Register(ctx context.Context, reg models.Registration) (*models.User, error)
	ListAllUsers(ctx context.Context) ([]models.User, error)
	ListUsers(ctx context.Context, page, pageSize int) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, user models.User) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
	ListProjects(ctx context.Context, page, pageSize int) ([]models.Project, error)
	GetProject(ctx context.Context, id string) (*models.Project, error)
	UploadAvatar(ctx context.Context, filename string, r io.Reader) (*models.Avatar, error)
}

// Session is what the interceptor needs from the session store.
type Session interface {
	Token() string
	Logout(ctx context.Context) error
}

// Navigator moves the application to another view, e.g. the login prompt.
type Navigator interface {
	Navigate(ctx context.Context, route string)
}

// Notifier shows a short message to the user.
type Notifier interface {
	Notify(ctx context.Context, message string)
}
