package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fwojciec/sitereport"
	"github.com/fwojciec/sitereport/crawl"
	"github.com/fwojciec/sitereport/fs"
)

// stdoutOutput selects standard output as the report destination.
const stdoutOutput = "-"

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	format, err := sitereport.ParseFormat(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitereport.ErrorMessage(err))
		return err
	}

	// The report owns stdout when written there.
	out := deps.Stdout
	if c.Output == stdoutOutput {
		out = deps.Stderr
	}

	if c.PagesDir != "" {
		deps.Orchestrator.Pages = fs.NewFileStore(filepath.Dir(c.PagesDir), filepath.Base(c.PagesDir))
	}

	progress := newProgressReporter(deps.Stderr)
	run, err := deps.Orchestrator.Run(deps.Ctx, crawl.Request{
		SeedURL:  c.URL,
		MaxPages: c.MaxPages,
		Format:   format,
	}, progress.Report)
	progress.Stop()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitereport.ErrorMessage(err))
		return err
	}

	if run.Empty() {
		fmt.Fprintln(out, "No data was scraped. Check the URL and try again.")
		return nil
	}

	if deps.Ctx.Err() != nil {
		fmt.Fprintln(out, "Crawl interrupted; reporting pages collected so far.")
	}
	printSummary(out, run)

	if c.Output == stdoutOutput {
		if _, err := deps.Stdout.Write(run.Report); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	} else {
		path := c.Output
		if path == "" {
			path = fs.ReportPath(".", format)
		}
		if err := deps.ReportWriter.Write(path, run.Report); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitereport.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(out, "\nReport saved to %s (%s)\n", path, crawl.FormatBytes(len(run.Report)))
	}

	if c.PagesDir != "" {
		fmt.Fprintf(out, "Pages exported to %s\n", c.PagesDir)
	}

	if c.Archive {
		r := &sitereport.Report{
			SeedURL:   run.State.SeedURL,
			Format:    format,
			PageCount: len(run.Records()),
			Payload:   run.Report,
		}
		// An interrupted crawl is still archived.
		if err := deps.Reports.CreateReport(context.WithoutCancel(deps.Ctx), r); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitereport.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(out, "Archived report %s\n", r.ID)
	}

	return nil
}

// printSummary writes crawl statistics followed by the scraped pages.
func printSummary(w io.Writer, run *crawl.Run) {
	s := run.Summary
	fmt.Fprintf(w, "Crawled %d pages from %s", s.TotalPages, run.State.Domain)
	if run.State.Failed > 0 {
		fmt.Fprintf(w, " (%d failed)", run.State.Failed)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Words:          total %d, average %d\n", s.TotalWords, s.AverageWords)
	fmt.Fprintf(w, "Internal links: total %d, average %d\n", s.TotalInternalLinks, s.AverageInternalLinks)
	fmt.Fprintf(w, "External links: total %d, average %d\n", s.TotalExternalLinks, s.AverageExternalLinks)
	fmt.Fprintf(w, "Images:         %d\n", s.TotalImages)

	fmt.Fprintln(w, "\nScraped pages:")
	for _, r := range run.Records() {
		fmt.Fprintf(w, "  %s  %s  (%d words)\n", r.URL, r.Title, r.WordCount)
	}
}
