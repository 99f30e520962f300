package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/gyulist/gyulist/internal/api"
)

const listLimit = 100

func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	return id, err == nil && id > 0
}

// Cattle lists the herd, optionally filtered by a name or ear tag search.
func (a *App) Cattle(ctx context.Context, args []string) error {
	page, err := a.svc.ListCattle(ctx, api.CattleListQuery{Search: strings.Join(args, " "), Limit: listLimit})
	if err != nil {
		return a.checked(ctx, err)
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNUMBER\tEAR TAG\tNAME\tSTAGE\tSTATUS")
	for _, c := range page.Results {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\n",
			c.CattleID, c.IdentificationNumber, text(c.EarTagNumber), text(c.Name), text(c.GrowthStage), c.Status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%d of %d head\n", len(page.Results), page.Total)
	return nil
}

// Show prints one animal and its status history.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("show <id>")
	}
	id, ok := parseID(args[0])
	if !ok {
		return usageError("show <id>")
	}

	c, err := a.svc.GetCattle(ctx, id)
	if err != nil {
		return a.checked(ctx, err)
	}
	history, err := a.svc.CattleHistory(ctx, id)
	if err != nil {
		return a.checked(ctx, err)
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Number\t%d\n", c.IdentificationNumber)
	fmt.Fprintf(tw, "Ear tag\t%s\n", text(c.EarTagNumber))
	fmt.Fprintf(tw, "Name\t%s\n", text(c.Name))
	fmt.Fprintf(tw, "Gender\t%s\n", text(c.Gender))
	fmt.Fprintf(tw, "Stage\t%s\n", text(c.GrowthStage))
	fmt.Fprintf(tw, "Birthday\t%s\n", text(c.Birthday))
	fmt.Fprintf(tw, "Breed\t%s\n", text(c.Breed))
	fmt.Fprintf(tw, "Weight\t%s\n", text(c.Weight))
	fmt.Fprintf(tw, "Status\t%s\n", c.Status)
	fmt.Fprintf(tw, "Notes\t%s\n", text(c.Notes))
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(history) == 0 {
		return nil
	}
	fmt.Fprintln(a.out, "\nHistory:")
	tw = tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	for _, h := range history {
		fmt.Fprintf(tw, "%s\t%s -> %s\t%s\n", h.ChangedAt, text(h.OldStatus), h.NewStatus, text(h.Reason))
	}
	return tw.Flush()
}

// Status changes an animal's status. Everything after the status is the
// reason.
func (a *App) Status(ctx context.Context, args []string) error {
	const usage = "status <id> <STATUS> [reason...]"
	if len(args) < 2 {
		return usageError(usage)
	}
	id, ok := parseID(args[0])
	if !ok {
		return usageError(usage)
	}
	status := strings.ToUpper(args[1])
	reason := strings.Join(args[2:], " ")

	c, err := a.svc.UpdateCattleStatus(ctx, id, status, reason)
	if err != nil {
		return a.checked(ctx, err)
	}

	fmt.Fprintf(a.out, "Cattle #%d is now %s\n", c.CattleID, c.Status)
	return nil
}

// text renders an optional API field, "-" when it is unset.
func text(v any) string {
	switch v := v.(type) {
	case *string:
		if v != nil {
			return *v
		}
	case *int64:
		if v != nil {
			return strconv.FormatInt(*v, 10)
		}
	case *int:
		if v != nil {
			return strconv.Itoa(*v)
		}
	case *float64:
		if v != nil {
			return strconv.FormatFloat(*v, 'f', -1, 64)
		}
	}
	return "-"
}
