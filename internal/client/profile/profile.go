// Package profile keeps the display-oriented view of the signed-in user.
package profile

import (
	"sync"
	"time"

	"github.com/dmitrijs2005/adminclient/internal/client/models"
	"github.com/dmitrijs2005/adminclient/internal/client/session"
	"github.com/dmitrijs2005/adminclient/internal/common"
)

// Profile is a fixed-shape rendering of a models.User.
type Profile struct {
	UserName     string
	Email        string
	MemberSince  string
	Pfp          string
	Is2FAEnabled bool
	ID           *int64
	Role         string
	Phone        string
	Category     string
	DateOfBirth  string
	JoiningDate  string
}

// joiningDateLayouts are tried in order when parsing joining_date.
var joiningDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// memberSinceLayout is the US short-date form, e.g. 5/14/2023.
const memberSinceLayout = "1/2/2006"

// FromUser normalizes u, substituting defaults for every missing field.
func FromUser(u models.User) Profile {
	p := Profile{
		UserName:     u.Name,
		Email:        u.Email,
		MemberSince:  formatMemberSince(u.JoiningDate),
		Pfp:          u.Image,
		Is2FAEnabled: u.Is2FAEnabled,
		Role:         u.Role,
		Phone:        u.Phone,
		Category:     u.Category,
		DateOfBirth:  u.DateOfBirth,
		JoiningDate:  u.JoiningDate,
	}
	if p.UserName == "" {
		p.UserName = common.UnknownUserName
	}
	if p.Pfp == "" {
		p.Pfp = common.DefaultAvatarURL
	}
	if u.ID != nil && *u.ID != 0 {
		id := *u.ID
		p.ID = &id
	}
	return p
}

// formatMemberSince renders a joining date as a short date. Empty or
// unparseable input gives "". The date is shown in the zone it was written in.
func formatMemberSince(joiningDate string) string {
	if joiningDate == "" {
		return ""
	}
	for _, layout := range joiningDateLayouts {
		if t, err := time.Parse(layout, joiningDate); err == nil {
			return t.Format(memberSinceLayout)
		}
	}
	return ""
}

// Store holds the current Profile. The zero value is ready to use.
type Store struct {
	mu      sync.Mutex
	profile Profile
}

func NewStore() *Store {
	return &Store{}
}

// SetUser replaces the profile with the normalized form of u. It never fails.
func (s *Store) SetUser(u models.User) {
	p := FromUser(u)
	s.mu.Lock()
	s.profile = p
	s.mu.Unlock()
}

// ClearUser resets every field to its zero value.
func (s *Store) ClearUser() {
	s.mu.Lock()
	s.profile = Profile{}
	s.mu.Unlock()
}

func (s *Store) Profile() Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.profile
	if p.ID != nil {
		id := *p.ID
		p.ID = &id
	}
	return p
}

// Bind makes the profile follow sess: a session with a user sets the
// profile from it, a session without one clears it.
func (s *Store) Bind(sess *session.Store) {
	sess.Subscribe(func(snap session.Snapshot) {
		if snap.User == nil {
			s.ClearUser()
			return
		}
		s.SetUser(*snap.User)
	})
}
