package client

import (
	"fmt"
	"net/url"
	"strings"
)

// Endpoints builds request URLs below the API base URL.
type Endpoints struct {
	base string
}

func NewEndpoints(baseURL string) Endpoints {
	return Endpoints{base: strings.TrimRight(baseURL, "/")}
}

func (e Endpoints) Base() string { return e.base }

func (e Endpoints) AllUsers() string { return e.base + "/users" }

func (e Endpoints) User(id string) string { return e.base + "/users/" + url.PathEscape(id) }

func (e Endpoints) Users(page, pageSize int) string {
	return fmt.Sprintf("%s/users/?page=%d&pageSize=%d", e.base, page, pageSize)
}

func (e Endpoints) Project(id string) string { return e.base + "/projects/" + url.PathEscape(id) }

func (e Endpoints) Projects(page, pageSize int) string {
	return fmt.Sprintf("%s/projects/?page=%d&pageSize=%d", e.base, page, pageSize)
}

func (e Endpoints) Avatars() string { return e.base + "/avatars" }

func (e Endpoints) Register() string { return e.base + "/auth/register" }

func (e Endpoints) Login() string { return e.base + "/auth/login" }
