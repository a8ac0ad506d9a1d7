package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/adminclient/internal/client/models"
)

// Projects prints one server-side page of projects.
func (a *App) Projects(ctx context.Context, args []string) error {
	page, err := pageArg(args, "projects [page]")
	if err != nil {
		return err
	}
	p := models.DefaultPagination()
	p.Page = page

	list, err := a.projects.List(ctx, p)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No projects.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tOWNER\tSTATUS\tCREATED")
	for _, pr := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", pr.ID, pr.Name, pr.OwnerID, pr.Status, pr.CreatedAt)
	}
	return tw.Flush()
}

// Project prints a single project.
func (a *App) Project(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("project <id>")
	}
	pr, err := a.projects.Get(ctx, args[0])
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", pr.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", pr.Name)
	fmt.Fprintf(tw, "Owner:\t%s\n", pr.OwnerID)
	fmt.Fprintf(tw, "Team:\t%s\n", strings.Join(pr.Team, ", "))
	fmt.Fprintf(tw, "Status:\t%s\n", pr.Status)
	fmt.Fprintf(tw, "Created:\t%s\n", pr.CreatedAt)
	return tw.Flush()
}
