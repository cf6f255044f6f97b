package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/prince50856457/readable"
	"github.com/prince50856457/readable/dict"
	"github.com/prince50856457/readable/extract"
	"github.com/prince50856457/readable/goquery"
	"github.com/prince50856457/readable/heuristic"
	"github.com/prince50856457/readable/htmltomarkdown"
	readablehttp "github.com/prince50856457/readable/http"
	"github.com/prince50856457/readable/readability"
	"github.com/prince50856457/readable/rod"
	readableslog "github.com/prince50856457/readable/slog"
	"github.com/prince50856457/readable/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher held for cleanup after Run.
	fetcher readable.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.fetcher != nil {
		return m.fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("readable"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'readable --help' to see available commands")
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

	// Wire the pipeline from the parsed command's flags.
	var flags engineFlags
	var maxInFlight int64 = extract.DefaultMaxInFlight
	switch cmd {
	case "extract":
		flags = cli.Extract.engineFlags
	case "serve":
		flags = cli.Serve.engineFlags
		maxInFlight = cli.Serve.Concurrency
	}

	articles, err := m.buildService(flags, maxInFlight, logger, stderr)
	if err != nil {
		return err
	}
	deps.Articles = articles

	return kongCtx.Run(deps)
}

// buildService assembles the extraction pipeline from CLI flags.
func (m *Main) buildService(flags engineFlags, maxInFlight int64, logger *slog.Logger, stderr io.Writer) (readable.ArticleService, error) {
	var fetcher readable.Fetcher
	if flags.Browser {
		browserFetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = browserFetcher
	} else {
		fetcher = readablehttp.NewFetcher(readablehttp.WithTimeout(flags.Timeout))
	}
	m.fetcher = fetcher

	var extractor readable.Extractor
	switch flags.Engine {
	case "readability":
		extractor = readability.NewExtractor()
	case "trafilatura":
		extractor = trafilatura.NewExtractor()
	default:
		extractor = heuristic.NewExtractor()
	}

	dictionary, err := loadDictionary(flags.Dict)
	if err != nil {
		return nil, err
	}

	links := goquery.NewLinkExtractor(
		goquery.WithMaxLinks(flags.Links),
		goquery.WithMinTitleLen(flags.MinTitle),
	)

	svc := extract.NewService(
		readableslog.NewLoggingFetcher(fetcher, logger),
		extractor,
		links,
		extract.WithConverter(htmltomarkdown.NewConverter()),
		extract.WithDictionary(dictionary),
		extract.WithDomainLimiter(extract.NewDomainLimiter(flags.RPS)),
		extract.WithMaxInFlight(maxInFlight),
		extract.WithFetchTimeout(flags.Timeout),
	)

	return readableslog.NewLoggingArticleService(svc, logger), nil
}

// loadDictionary reads the dictionary file when given, otherwise the
// built-in default.
func loadDictionary(path string) (readable.Dictionary, error) {
	if path == "" {
		return dict.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary %q: %w", path, err)
	}
	defer f.Close()

	d, err := dict.Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary %q: %w", path, err)
	}
	return d, nil
}
