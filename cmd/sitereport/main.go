package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sitereport"
	"github.com/fwojciec/sitereport/crawl"
	"github.com/fwojciec/sitereport/fs"
	"github.com/fwojciec/sitereport/goquery"
	srhttp "github.com/fwojciec/sitereport/http"
	"github.com/fwojciec/sitereport/report"
	srslog "github.com/fwojciec/sitereport/slog"
	"github.com/fwojciec/sitereport/sqlite"
)

func main() {
	// Interrupting a crawl stops dequeuing; pages already collected are
	// still reported.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(). The --db flag overrides it.
	DBPath string

	// ConfigPath is the YAML defaults file read when present.
	ConfigPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	Reports sitereport.ReportService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:     defaultDBPath(),
		ConfigPath: defaultConfigPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name(AppName),
		kong.Description("Crawl one site and report on its pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Configuration(YAMLLoader, m.ConfigPath),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sitereport --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose)

	cmd := kongCtx.Selected().Name
	if cmd == "reports" || cmd == "show" || cmd == "delete" || cmd == "serve" || (cmd == "crawl" && cli.Crawl.Archive) {
		reports, err := m.openReports(cli.DB, stderr)
		if err != nil {
			return err
		}
		defer m.Close()
		deps.Reports = srslog.NewLoggingReportService(reports, deps.Logger)
	}

	if cmd == "crawl" {
		fetcher := srhttp.NewFetcher(srhttp.WithTimeout(cli.Crawl.Timeout))
		defer fetcher.Close()

		deps.Orchestrator = &crawl.Orchestrator{
			Crawler: &crawl.Crawler{
				Fetcher:      srslog.NewLoggingFetcher(fetcher, deps.Logger),
				Extractor:    srslog.NewLoggingExtractor(goquery.NewExtractor(), deps.Logger),
				LinkSelector: goquery.NewLinkSelector(),
				RateLimiter:  crawl.NewDomainLimiter(cli.Crawl.Delay),
				Concurrency:  cli.Crawl.Concurrency,
			},
			Renderer: srslog.NewLoggingRenderer(report.NewRenderer(), deps.Logger),
		}
		deps.ReportWriter = fs.NewReportWriter()
	}

	return kongCtx.Run(deps)
}

// openReports opens the archive database unless a report service was
// injected.
func (m *Main) openReports(path string, stderr io.Writer) (sitereport.ReportService, error) {
	if m.Reports != nil {
		return m.Reports, nil
	}
	if path == "" {
		path = m.DBPath
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SITEREPORT_DB to use a different database path\n")
		return nil, fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	return sqlite.NewReportService(m.DB), nil
}
