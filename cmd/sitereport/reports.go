package main

import (
	"fmt"

	"github.com/fwojciec/sitereport"
)

// reportTimeLayout formats archive timestamps in listings.
const reportTimeLayout = "2006-01-02 15:04"

// Run executes the reports command.
func (c *ReportsCmd) Run(deps *Dependencies) error {
	filter := sitereport.ReportFilter{Limit: c.Limit}
	if c.Seed != "" {
		filter.SeedURL = &c.Seed
	}
	if c.Format != "" {
		format, err := sitereport.ParseFormat(c.Format)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitereport.ErrorMessage(err))
			return err
		}
		filter.Format = &format
	}

	reports, err := deps.Reports.FindReports(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitereport.ErrorMessage(err))
		return err
	}

	if len(reports) == 0 {
		fmt.Fprintln(deps.Stdout, "No reports found. Use 'sitereport crawl --archive' to store one.")
		return nil
	}

	for _, r := range reports {
		fmt.Fprintf(deps.Stdout, "%s  %s  %-8s  %3d pages  %s\n",
			r.ID, r.CreatedAt.Local().Format(reportTimeLayout), r.Format, r.PageCount, r.SeedURL)
	}

	return nil
}

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	r, err := deps.Reports.FindReportByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitereport.ErrorMessage(err))
		return err
	}

	if _, err := deps.Stdout.Write(r.Payload); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Reports.DeleteReport(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitereport.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted report %s\n", c.ID)
	return nil
}
