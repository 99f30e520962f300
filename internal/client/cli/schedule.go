package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/gyulist/gyulist/internal/api"
	"github.com/gyulist/gyulist/internal/timex"
)

const scheduleDays = 7

// dateRange reads optional [from] [to] arguments. Both must be YYYY-MM-DD.
func dateRange(args []string, usage string) (string, string, error) {
	if len(args) > 2 {
		return "", "", usageError(usage)
	}
	for _, v := range args {
		if _, err := timex.ParseDate(v); err != nil {
			return "", "", usageError(usage)
		}
	}
	var from, to string
	if len(args) > 0 {
		from = args[0]
	}
	if len(args) > 1 {
		to = args[1]
	}
	return from, to, nil
}

// Events lists the schedule, by default from today through the next week.
func (a *App) Events(ctx context.Context, args []string) error {
	from, to, err := dateRange(args, "events [from] [to]")
	if err != nil {
		return err
	}
	today := a.now()
	if from == "" {
		from = today.Format(timex.DateLayout)
	}
	if to == "" {
		to = today.AddDate(0, 0, scheduleDays).Format(timex.DateLayout)
	}

	events, err := a.svc.ListEvents(ctx, api.EventListQuery{From: from, To: to, Limit: listLimit})
	if err != nil {
		return a.checked(ctx, err)
	}

	if len(events) == 0 {
		fmt.Fprintf(a.out, "No events from %s to %s\n", from, to)
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tCATTLE\tEAR TAG\tEVENT\tNOTES")
	for _, e := range events {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			e.EventDatetime, text(e.CattleName), text(e.EarTagNumber), e.EventType, text(e.Notes))
	}
	return tw.Flush()
}

// KPI prints breeding metrics. Without dates the server picks the period.
func (a *App) KPI(ctx context.Context, args []string) error {
	from, to, err := dateRange(args, "kpi [from] [to]")
	if err != nil {
		return err
	}

	out, err := a.svc.BreedingKPI(ctx, from, to)
	if err != nil {
		return a.checked(ctx, err)
	}

	fmt.Fprintf(a.out, "Breeding KPI %s to %s\n", out.From, out.To)
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Conception rate (%%)\t%s\n", text(out.ConceptionRate))
	fmt.Fprintf(tw, "Avg days open\t%s\n", text(out.AvgDaysOpen))
	fmt.Fprintf(tw, "Avg calving interval\t%s\n", text(out.AvgCalvingInterval))
	fmt.Fprintf(tw, "AI per conception\t%s\n", text(out.AIPerConception))
	fmt.Fprintf(tw, "Inseminations\t%d\n", out.Counts.Inseminations)
	fmt.Fprintf(tw, "Conceptions\t%d\n", out.Counts.Conceptions)
	fmt.Fprintf(tw, "Calvings\t%d\n", out.Counts.Calvings)
	return tw.Flush()
}

// Shipments prints planned shipments followed by recorded ones.
func (a *App) Shipments(ctx context.Context) error {
	plans, err := a.svc.ListPlans(ctx)
	if err != nil {
		return a.checked(ctx, err)
	}
	page, err := a.svc.ListShipments(ctx, api.ShipmentListQuery{Limit: listLimit})
	if err != nil {
		return a.checked(ctx, err)
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PLANNED\tCATTLE")
	for _, p := range plans {
		fmt.Fprintf(tw, "%s\t%s (#%d)\n", p.PlannedShipmentMonth, text(p.CattleName), p.CattleID)
	}
	fmt.Fprintln(tw, "\nSHIPPED\tCATTLE\tPRICE\tBUYER")
	for _, s := range page.Results {
		fmt.Fprintf(tw, "%s\t%s (#%d)\t%d\t%s\n", s.ShipmentDate, text(s.CattleName), s.CattleID, s.Price, text(s.Buyer))
	}
	return tw.Flush()
}

func (a *App) now() time.Time {
	if a.clock != nil {
		return a.clock()
	}
	return time.Now()
}
