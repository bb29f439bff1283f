package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sitereport"
	"github.com/fwojciec/sitereport/crawl"
	"github.com/fwojciec/sitereport/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdout       io.Writer
	Stderr       io.Writer
	Logger       *slog.Logger
	Reports      sitereport.ReportService
	Orchestrator *crawl.Orchestrator
	ReportWriter *fs.ReportWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  kong.ConfigFlag `help:"YAML file with flag defaults" env:"SITEREPORT_CONFIG"`
	DB      string          `name:"db" help:"Report archive database path" env:"SITEREPORT_DB"`
	Verbose bool            `short:"v" help:"Enable debug logging" env:"SITEREPORT_VERBOSE"`

	Crawl   CrawlCmd   `cmd:"" help:"Crawl a site and generate a report"`
	Reports ReportsCmd `cmd:"" help:"List archived reports"`
	Show    ShowCmd    `cmd:"" help:"Print an archived report"`
	Delete  DeleteCmd  `cmd:"" help:"Delete an archived report"`
	Serve   ServeCmd   `cmd:"" help:"Serve archived reports over HTTP"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL         string        `arg:"" help:"Seed URL; only pages on its host are crawled"`
	MaxPages    int           `short:"n" default:"50" help:"Maximum pages to scrape (1-500)" env:"SITEREPORT_MAX_PAGES"`
	Format      string        `short:"f" default:"html" help:"Report format (html, json, csv, xlsx, markdown)" env:"SITEREPORT_FORMAT"`
	Output      string        `short:"o" help:"Report file path, or - for stdout (default web_scraping_report.<ext>)" env:"SITEREPORT_OUTPUT"`
	PagesDir    string        `name:"pages-dir" help:"Also export each page's text as markdown under this directory" type:"path"`
	Concurrency int           `short:"c" default:"1" help:"Concurrent fetch limit" env:"SITEREPORT_CONCURRENCY"`
	Timeout     time.Duration `default:"10s" help:"Per-request timeout" env:"SITEREPORT_TIMEOUT"`
	Delay       time.Duration `default:"1s" help:"Politeness delay between requests" env:"SITEREPORT_DELAY"`
	Archive     bool          `help:"Store the report in the archive database" env:"SITEREPORT_ARCHIVE"`
}

// ReportsCmd is the "reports" subcommand.
type ReportsCmd struct {
	Seed   string `help:"Only reports for this seed URL"`
	Format string `help:"Only reports in this format"`
	Limit  int    `default:"20" help:"Maximum reports to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Report ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Report ID"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" help:"Listen address" env:"SITEREPORT_ADDR"`
}
