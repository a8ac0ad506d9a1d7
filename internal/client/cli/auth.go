package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/adminclient/internal/client/models"
	"github.com/dmitrijs2005/adminclient/internal/client/session"
	"github.com/dmitrijs2005/adminclient/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// nowFn is the clock used for token expiry display.
var nowFn = time.Now

// Register prompts for name, email and password and creates a new account
// with the freelancer role.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.auth.Register(ctx, models.NewUser{
		FullName: name,
		Email:    email,
		Password: string(password),
		Role:     models.RoleFreelancer,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Account created for %s. You can log in now.\n", displayName(u))
	return nil
}

// Login prompts the user for credentials and authenticates. On success the
// session and, through it, the profile are populated.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.auth.Login(ctx, email, string(password)); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", a.profileName())
	return nil
}

// Logout ends the session. A failure to remove the persisted token is
// reported; the session is gone from memory either way.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Whoami prints the signed-in profile followed by what the token itself says.
func (a *App) Whoami(ctx context.Context) error {
	p := a.profile.Profile()
	if p.UserName != "" {
		id := "-"
		if p.ID != nil {
			id = fmt.Sprint(*p.ID)
		}
		fmt.Fprintf(a.out, "Name:         %s\n", p.UserName)
		fmt.Fprintf(a.out, "Email:        %s\n", p.Email)
		fmt.Fprintf(a.out, "ID:           %s\n", id)
		fmt.Fprintf(a.out, "Role:         %s\n", p.Role)
		fmt.Fprintf(a.out, "Member since: %s\n", p.MemberSince)
		fmt.Fprintf(a.out, "Avatar:       %s\n", p.Pfp)
		fmt.Fprintf(a.out, "2FA enabled:  %t\n", p.Is2FAEnabled)
	} else {
		fmt.Fprintln(a.out, "Profile not loaded (session restored from disk).")
	}

	info, err := session.InspectToken(a.session.Token())
	if errors.Is(err, common.ErrInvalidToken) {
		fmt.Fprintln(a.out, "Token:        opaque")
		return nil
	}
	if err != nil {
		return err
	}
	if info.Subject != "" {
		fmt.Fprintf(a.out, "Token sub:    %s\n", info.Subject)
	}
	switch {
	case info.ExpiresAt.IsZero():
		fmt.Fprintln(a.out, "Token exp:    never")
	case info.Expired(nowFn()):
		fmt.Fprintf(a.out, "Token exp:    %s (expired)\n", info.ExpiresAt.Local().Format(time.DateTime))
	default:
		fmt.Fprintf(a.out, "Token exp:    %s\n", info.ExpiresAt.Local().Format(time.DateTime))
	}
	return nil
}

func (a *App) profileName() string {
	if name := a.profile.Profile().UserName; name != "" {
		return name
	}
	return common.UnknownUserName
}

func displayName(u *models.User) string {
	if u == nil || u.Name == "" {
		return common.UnknownUserName
	}
	return u.Name
}
