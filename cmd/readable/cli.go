package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/prince50856457/readable"
)

// Dependencies holds the services and configuration commands run with.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Articles readable.ArticleService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract article content from a URL"`
	Serve   ServeCmd   `cmd:"" help:"Run the extraction HTTP service"`
}

// engineFlags are shared by commands that build the pipeline.
type engineFlags struct {
	Engine   string        `default:"heuristic" enum:"heuristic,readability,trafilatura" help:"Extraction engine"`
	Browser  bool          `help:"Fetch with a headless browser (for JavaScript-rendered pages)"`
	Links    int           `default:"10" help:"Maximum related links to return"`
	MinTitle int           `name:"min-title" default:"5" help:"Minimum link title length"`
	Timeout  time.Duration `default:"15s" help:"Per-fetch timeout"`
	RPS      float64       `name:"rps" default:"1" help:"Per-domain fetch rate limit (requests per second)"`
	Dict     string        `help:"YAML dictionary file (defaults to the built-in dictionary)" type:"existingfile"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	engineFlags
	URL  string `arg:"" help:"Page URL to extract"`
	JSON bool   `help:"Emit the full result as JSON"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	engineFlags
	Addr        string `default:":8080" help:"Listen address"`
	Concurrency int64  `default:"16" help:"Maximum concurrent extractions"`
}
