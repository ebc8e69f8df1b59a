package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/newsbrief"
	"github.com/fwojciec/newsbrief/gemini"
	"github.com/fwojciec/newsbrief/goquery"
	nbhttp "github.com/fwojciec/newsbrief/http"
	"github.com/fwojciec/newsbrief/news"
	nbopenai "github.com/fwojciec/newsbrief/openai"
	"github.com/fwojciec/newsbrief/readability"
	nbreplicate "github.com/fwojciec/newsbrief/replicate"
	nbslog "github.com/fwojciec/newsbrief/slog"
	"github.com/fwojciec/newsbrief/trafilatura"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		reportError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher replaces the HTTP fetcher when set. Used for end-to-end testing.
	Fetcher newsbrief.Fetcher

	// Generator replaces the provider selected by flags when set.
	Generator newsbrief.Generator
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
		kong.Name("newsbrief"),
		kong.Description("Summarize news articles from a URL."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'newsbrief --help' to see available commands")
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

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel(kongCtx.Command(), cli.Verbose),
	}))
	deps.Logger = logger
	deps.JSON = cli.JSON

	extractor, err := newExtractor(cli.Extractor)
	if err != nil {
		return fmt.Errorf("failed to configure extractor: %w", err)
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = nbhttp.NewFetcher(nbhttp.WithTimeout(cli.Timeout))
	}

	generator := m.Generator
	model := cli.Model
	if generator == nil {
		generator, model, err = newGenerator(ctx, cli)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check the API key for the selected --provider")
			return fmt.Errorf("failed to configure %s provider: %w", cli.Provider, err)
		}
	}

	var summaryGenerator newsbrief.Generator
	if generator != nil {
		summaryGenerator = nbslog.NewLoggingGenerator(generator, model, logger)
		logger.Debug("summarization provider", "model", model)
	} else {
		logger.Debug("summarization provider", "model", "(extractive fallback)")
	}

	articles := news.NewArticleExtractor(
		nbslog.NewLoggingFetcher(fetcher, logger),
		nbslog.NewLoggingExtractor(extractor, logger),
	)
	summarizer := news.NewSummarizer(summaryGenerator, news.WithLogger(logger))
	deps.Service = news.NewService(articles, summarizer)

	return kongCtx.Run(deps)
}

// reportError prints err unless a command already reported it. Commands
// print application errors themselves and return them unwrapped.
func reportError(w io.Writer, err error) {
	if _, ok := err.(*newsbrief.Error); ok {
		return
	}
	fmt.Fprintln(w, err)
}

// logLevel returns the log level for the parsed command. The server logs
// requests at info level; one-shot commands only warn so their output stays
// clean. Verbose enables debug output everywhere.
func logLevel(command string, verbose bool) slog.Level {
	switch {
	case verbose:
		return slog.LevelDebug
	case strings.HasPrefix(command, "serve"):
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

// newExtractor returns the HTML parser named by the --extractor flag.
func newExtractor(name string) (newsbrief.Extractor, error) {
	switch name {
	case "", "heuristic":
		return goquery.NewExtractor(), nil
	case "readability":
		return readability.NewExtractor(), nil
	case "trafilatura":
		return trafilatura.NewExtractor(), nil
	default:
		return nil, newsbrief.Errorf(newsbrief.EINVALID, "unknown extractor %q", name)
	}
}

// newGenerator returns the summarization backend selected by the --provider
// flag along with its model name. A nil Generator means extractive summaries
// only. In auto mode the first provider with credentials wins.
func newGenerator(ctx context.Context, cli *CLI) (newsbrief.Generator, string, error) {
	provider := cli.Provider
	if provider == "auto" {
		provider = autoProvider(cli)
	}

	switch provider {
	case "none", "":
		return nil, "", nil

	case "replicate":
		runner, err := nbreplicate.NewRunner(cli.ReplicateToken)
		if err != nil {
			return nil, "", err
		}
		gen := nbreplicate.NewGenerator(runner, cli.Model)
		return gen, gen.Model(), nil

	case "gemini":
		if cli.GeminiKey == "" {
			return nil, "", newsbrief.Errorf(newsbrief.EINVALID, "GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cli.GeminiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, "", err
		}
		gen := gemini.NewGenerator(client, cli.Model)
		return gen, gen.Model(), nil

	case "openai":
		if cli.OpenAIKey == "" && cli.OpenAIBaseURL == "" {
			return nil, "", newsbrief.Errorf(newsbrief.EINVALID, "OPENAI_API_KEY or OPENAI_BASE_URL must be set")
		}
		gen := nbopenai.NewGenerator(nbopenai.NewClient(cli.OpenAIKey, cli.OpenAIBaseURL), cli.Model)
		return gen, gen.Model(), nil

	default:
		return nil, "", newsbrief.Errorf(newsbrief.EINVALID, "unknown provider %q", provider)
	}
}

// autoProvider picks the first provider with credentials configured.
func autoProvider(cli *CLI) string {
	switch {
	case cli.ReplicateToken != "":
		return "replicate"
	case cli.GeminiKey != "":
		return "gemini"
	case cli.OpenAIKey != "" || cli.OpenAIBaseURL != "":
		return "openai"
	default:
		return "none"
	}
}
