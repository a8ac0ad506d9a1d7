// Package models defines the client-side shapes of records exchanged with
// the admin API.
package models

// User is a user record as the server returns it. Every field is optional;
// consumers substitute their own defaults for what is missing.
type User struct {
	ID           *int64 `json:"id,omitempty"`
	CustomID     string `json:"custom_id,omitempty"`
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	Role         string `json:"role,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Category     string `json:"category,omitempty"`
	DateOfBirth  string `json:"date_of_birth,omitempty"`
	JoiningDate  string `json:"joining_date,omitempty"`
	UpdateDate   string `json:"update_date,omitempty"`
	Image        string `json:"image,omitempty"`
	Is2FAEnabled bool   `json:"is2FAEnabled,omitempty"`
}

// Clone returns a deep copy of u, or nil for a nil receiver.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.ID != nil {
		id := *u.ID
		c.ID = &id
	}
	return &c
}

// UserRole enumerates the roles the admin UI knows about.
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleBusiness   UserRole = "business"
	RoleFreelancer UserRole = "freelancer"
)

// NewUser is what an operator fills in to create an account.
type NewUser struct {
	FullName    string
	Email       string
	Password    string
	Role        UserRole
	Phone       string
	Category    string
	DateOfBirth string
}

// Registration is the body of POST /auth/register.
type Registration struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	Phone       string `json:"phone"`
	Category    string `json:"category"`
	DateOfBirth string `json:"date_of_birth"`
	JoiningDate string `json:"joining_date"`
	UpdateDate  string `json:"update_date"`
}

// Credentials is the body of POST /auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is what the server answers to a successful login.
type AuthResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Avatar describes an uploaded avatar image.
type Avatar struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
