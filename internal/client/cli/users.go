package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/adminclient/internal/client/models"
	"github.com/dmitrijs2005/adminclient/internal/common"
)

// Users fetches the user list and prints one page of it. The optional
// argument selects the page (1-based). With -s the server does the paging;
// otherwise the whole list is loaded and paged locally.
func (a *App) Users(ctx context.Context, args []string) error {
	const usage = "users [-s] [page]"
	server := false
	if len(args) > 0 && (args[0] == "-s" || args[0] == "--server") {
		server, args = true, args[1:]
	}
	page, err := pageArg(args, usage)
	if err != nil {
		return err
	}

	p := models.DefaultPagination()
	p.Page = page
	if server {
		err = a.users.FetchPage(ctx, p)
	} else {
		err = a.users.Fetch(ctx, p)
		a.users.SetPage(page)
	}
	if err != nil {
		return err
	}
	return a.printUsers()
}

// Search sets the name/email filter and shows its first page. Without an
// argument the filter is cleared.
func (a *App) Search(ctx context.Context, args []string) error {
	a.users.SetSearch(strings.Join(args, " "))
	return a.printUsers()
}

func (a *App) printUsers() error {
	rows := a.users.Page()
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE\tJOINED")
	for _, u := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", idString(u.ID), u.Name, u.Email, u.Role, u.JoiningDate)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	cur := a.users.Pagination()
	if q := a.users.Search(); q != "" {
		fmt.Fprintf(a.out, "page %d of %d, %d of %d users match %q\n",
			cur.Page, pageCount(models.Pagination{PerPage: cur.PerPage, Total: a.users.Matches()}), a.users.Matches(), cur.Total, q)
		return nil
	}
	fmt.Fprintf(a.out, "page %d of %d, %d users\n", cur.Page, pageCount(cur), cur.Total)
	return nil
}

// User prints a single user record.
func (a *App) User(ctx context.Context, args []string) error {
	id, err := idArg(args, "user <id>")
	if err != nil {
		return err
	}
	u, err := a.users.Get(ctx, id)
	if err != nil {
		return err
	}
	printUser(a, u)
	return nil
}

// AddUser prompts for the new account's fields and creates it.
func (a *App) AddUser(ctx context.Context) error {
	var nu models.NewUser
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Full name", &nu.FullName},
		{"Email", &nu.Email},
		{"Phone", &nu.Phone},
		{"Category", &nu.Category},
		{"Date of birth (YYYY-MM-DD)", &nu.DateOfBirth},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	role, err := getSimpleText(a.reader, "Role (admin, business, freelancer)", a.out)
	if err != nil {
		return err
	}
	nu.Role, err = parseRole(role)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	nu.Password = string(password)

	u, err := a.users.Add(ctx, nu)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created user %s (%s).\n", idString(u.ID), displayName(u))
	return nil
}

// EditUser loads a user, prompts for new values (empty keeps the current
// one) and saves the result. Editing one's own record refreshes the profile.
func (a *App) EditUser(ctx context.Context, args []string) error {
	id, err := idArg(args, "edituser <id>")
	if err != nil {
		return err
	}
	u, err := a.users.Get(ctx, id)
	if err != nil {
		return err
	}

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Full name", &u.Name},
		{"Email", &u.Email},
		{"Role", &u.Role},
		{"Phone", &u.Phone},
		{"Category", &u.Category},
	}
	for _, f := range fields {
		v, err := getDefaultText(a.reader, f.prompt, *f.dst, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	if _, err := parseRole(u.Role); err != nil {
		return err
	}
	if u.ID == nil {
		u.ID = &id
	}

	updated, err := a.users.Update(ctx, *u)
	if err != nil {
		return err
	}

	if me := a.profile.Profile().ID; me != nil && *me == id {
		a.profile.SetUser(*updated)
	}
	fmt.Fprintf(a.out, "Saved user %d.\n", id)
	return nil
}

// DeleteUser removes a user on the server.
func (a *App) DeleteUser(ctx context.Context, args []string) error {
	id, err := idArg(args, "deluser <id>")
	if err != nil {
		return err
	}
	if err := a.users.Remove(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted user %d.\n", id)
	return nil
}

// Avatar uploads the image at the given path.
func (a *App) Avatar(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("avatar <path>")
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	av, err := a.users.UploadAvatar(ctx, filepath.Base(args[0]), f)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Uploaded avatar %s: %s\n", av.ID, av.URL)
	return nil
}

// getDefaultText is a test seam for GetDefaultText.
var getDefaultText = GetDefaultText

func printUser(a *App, u *models.User) {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", idString(u.ID))
	fmt.Fprintf(tw, "Name:\t%s\n", u.Name)
	fmt.Fprintf(tw, "Email:\t%s\n", u.Email)
	fmt.Fprintf(tw, "Role:\t%s\n", u.Role)
	fmt.Fprintf(tw, "Phone:\t%s\n", u.Phone)
	fmt.Fprintf(tw, "Category:\t%s\n", u.Category)
	fmt.Fprintf(tw, "Date of birth:\t%s\n", u.DateOfBirth)
	fmt.Fprintf(tw, "Joined:\t%s\n", u.JoiningDate)
	fmt.Fprintf(tw, "Updated:\t%s\n", u.UpdateDate)
	fmt.Fprintf(tw, "Image:\t%s\n", u.Image)
	fmt.Fprintf(tw, "2FA:\t%t\n", u.Is2FAEnabled)
	_ = tw.Flush()
}

func parseRole(s string) (models.UserRole, error) {
	switch r := models.UserRole(s); r {
	case models.RoleAdmin, models.RoleBusiness, models.RoleFreelancer:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func idString(id *int64) string {
	if id == nil {
		return "-"
	}
	return strconv.FormatInt(*id, 10)
}

func idArg(args []string, usage string) (int64, error) {
	if len(args) != 1 {
		return 0, usageError(usage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, usageError(usage)
	}
	return id, nil
}

func pageArg(args []string, usage string) (int, error) {
	switch len(args) {
	case 0:
		return 1, nil
	case 1:
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return 0, usageError(usage)
		}
		return n, nil
	}
	return 0, usageError(usage)
}

func pageCount(p models.Pagination) int {
	if p.PerPage <= 0 || p.Total == 0 {
		return 1
	}
	return (p.Total + p.PerPage - 1) / p.PerPage
}
