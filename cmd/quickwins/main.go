package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/awalter/quickwins"
	"github.com/awalter/quickwins/crawl"
	"github.com/awalter/quickwins/gemini"
	"github.com/awalter/quickwins/goquery"
	qwhttp "github.com/awalter/quickwins/http"
	qwslog "github.com/awalter/quickwins/slog"
	"github.com/awalter/quickwins/xlsx"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services for end-to-end testing.
	Crawler     *crawl.Crawler
	Prioritizer quickwins.Prioritizer
	Reports     quickwins.ReportWriter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
		kong.Name("quickwins"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'quickwins --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logLevel := slog.LevelWarn
	if cli.Verbose {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	if cmd == "audit" {
		fetcher := qwhttp.NewFetcher()

		m.Crawler = &crawl.Crawler{
			Sitemaps:    qwslog.NewLoggingSitemapService(qwhttp.NewSitemapService(nil), logger),
			Fetcher:     fetcher,
			Extractor:   goquery.NewExtractor(),
			Anchors:     goquery.NewLinkExtractor(),
			Links:       qwslog.NewLoggingLinkChecker(qwhttp.NewLinkChecker(nil), logger),
			Limiter:     crawl.NewDomainLimiter(defaultCrawlRPS),
			Concurrency: cli.Audit.Concurrency,
			MaxPages:    cli.Audit.MaxPages,
		}
		m.Reports = xlsx.NewReportWriter()

		// Prioritization is optional: without an API key the audit still
		// runs and reports raw findings.
		if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			m.Prioritizer = qwslog.NewLoggingPrioritizer(gemini.NewPrioritizer(client, defaultModel), logger)
		} else {
			fmt.Fprintln(stderr, "GEMINI_API_KEY not set: skipping quick-win prioritization")
		}

		deps.Crawler = m.Crawler
		deps.Prioritizer = m.Prioritizer
		deps.Reports = m.Reports
	}

	return kongCtx.Run(deps)
}

const defaultModel = "gemini-3-flash-preview"

// defaultCrawlRPS limits homepage-fallback discovery to one request per
// second per domain.
const defaultCrawlRPS = 1.0
