package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/newsbrief"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Service newsbrief.SummaryService
	JSON    bool
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Provider  string        `enum:"auto,replicate,gemini,openai,none" default:"auto" env:"NEWSBRIEF_PROVIDER" help:"Summarization provider (${enum})"`
	Model     string        `env:"NEWSBRIEF_MODEL" help:"Model override for the selected provider"`
	Extractor string        `enum:"heuristic,readability,trafilatura" default:"heuristic" env:"NEWSBRIEF_EXTRACTOR" help:"Article extractor (${enum})"`
	Timeout   time.Duration `default:"10s" help:"Page fetch timeout"`
	Verbose   bool          `short:"v" help:"Enable debug logging"`
	JSON      bool          `name:"json" help:"Print results as JSON"`

	ReplicateToken string `name:"replicate-token" env:"REPLICATE_API_TOKEN" help:"Replicate API token"`
	GeminiKey      string `name:"gemini-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	OpenAIKey      string `name:"openai-key" env:"OPENAI_API_KEY" help:"OpenAI API key"`
	OpenAIBaseURL  string `name:"openai-base-url" env:"OPENAI_BASE_URL" help:"OpenAI-compatible API base URL"`

	Serve     ServeCmd     `cmd:"" help:"Run the HTTP server and browser client"`
	Summarize SummarizeCmd `cmd:"" help:"Summarize the article at a URL"`
	Demo      DemoCmd      `cmd:"" help:"Summarize the built-in demo article"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr            string        `default:":5000" env:"NEWSBRIEF_ADDR" help:"Listen address"`
	ShutdownTimeout time.Duration `default:"10s" help:"Grace period for in-flight requests on shutdown"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	URL string `arg:"" help:"Article URL"`
}

// DemoCmd is the "demo" subcommand.
type DemoCmd struct{}
