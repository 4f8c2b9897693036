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
	"github.com/fwojciec/notebook"
	"github.com/fwojciec/notebook/anthropic"
	"github.com/fwojciec/notebook/crawl"
	"github.com/fwojciec/notebook/gemini"
	"github.com/fwojciec/notebook/goquery"
	"github.com/fwojciec/notebook/htmltomarkdown"
	nbhttp "github.com/fwojciec/notebook/http"
	"github.com/fwojciec/notebook/ingest"
	"github.com/fwojciec/notebook/pdf"
	nbprometheus "github.com/fwojciec/notebook/prometheus"
	"github.com/fwojciec/notebook/readability"
	nbslog "github.com/fwojciec/notebook/slog"
	"github.com/fwojciec/notebook/trafilatura"
	"github.com/fwojciec/notebook/yaml"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Configuration files, in lookup order. Missing files are skipped.
	ConfigPaths []string

	// Registry collects the metrics served on /metrics. Metrics is
	// registered on it once, so Run may be called more than once.
	Registry *prometheus.Registry
	Metrics  *nbprometheus.Metrics
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &Main{
		ConfigPaths: defaultConfigPaths(),
		Registry:    reg,
		Metrics:     nbprometheus.NewMetrics(reg),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:      ctx,
		Stdin:    stdin,
		Stdout:   stdout,
		Stderr:   stderr,
		Gatherer: m.Registry,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("notebook"),
		kong.Description("Answer questions over PDFs, web pages and notes, with the context assembled per request."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Configuration(yaml.Loader, m.ConfigPaths...),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'notebook --help' to see available commands")
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
	cmd = kongCtx.Command()

	deps.Logger = newLogger(stderr, cli.LogLevel)

	deps.Assembler = m.assembler(cli, deps.Logger, m.Metrics)

	if cmd == "serve" || cmd == "ask <request>" {
		answerer, err := m.answerer(ctx, cli, cmd == "serve", stderr)
		if err != nil {
			return err
		}
		answerer = m.Metrics.Answerer(nbslog.NewLoggingAnswerer(answerer, deps.Logger))

		chat := ingest.NewChatService(deps.Assembler, answerer)
		chat.Logger = deps.Logger
		deps.ChatService = chat
	}

	if cmd == "extract <request>" && cli.Extract.CountTokens {
		counter, err := gemini.NewTokenCounter(gemini.DefaultModel)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}
		deps.TokenCounter = counter
	}

	return kongCtx.Run(deps)
}

// assembler wires the extraction pipeline: fetcher, crawler and resolver,
// each decorated with logging and metrics.
func (m *Main) assembler(cli *CLI, logger *slog.Logger, metrics *nbprometheus.Metrics) *ingest.Assembler {
	var fetcher notebook.Fetcher = nbhttp.NewFetcher()
	fetcher = metrics.Fetcher(nbslog.NewLoggingFetcher(fetcher, logger))

	c := crawl.NewCrawler(fetcher, goquery.NewLinkDiscoverer())
	c.Extractor = textExtractor(cli.ExtractMode)
	c.MaxPages = cli.MaxPages
	c.SkipDuplicates = cli.DedupPages
	c.Logger = logger
	if cli.RateLimit > 0 {
		c.RateLimiter = crawl.NewDomainLimiter(cli.RateLimit)
	}
	crawler := metrics.Crawler(nbslog.NewLoggingCrawler(c, logger))

	r := ingest.NewResolver(fetcher, pdf.NewExtractor(), crawler)
	r.Logger = logger

	return ingest.NewAssembler(nbslog.NewLoggingResolver(r, logger))
}

// answerer returns the configured provider's Answerer. A missing API key is
// fatal for one-shot commands. The server still starts and every chat
// fails upstream until the key is set.
func (m *Main) answerer(ctx context.Context, cli *CLI, lenient bool, stderr io.Writer) (notebook.Answerer, error) {
	switch cli.Provider {
	case "anthropic":
		if cli.AnthropicAPIKey == "" {
			if !lenient {
				return nil, fmt.Errorf("ANTHROPIC_API_KEY not set")
			}
			fmt.Fprintln(stderr, "warning: ANTHROPIC_API_KEY is not set; chat requests will fail")
		}
		return anthropic.NewAnswerer(cli.AnthropicAPIKey, cli.Model), nil

	default:
		if cli.GeminiAPIKey == "" {
			if !lenient {
				fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
				return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
			}
			fmt.Fprintln(stderr, "warning: GEMINI_API_KEY is not set; chat requests will fail")
			return gemini.NewAnswerer(nil, cli.Model), nil
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cli.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewAnswerer(client, cli.Model), nil
	}
}

// textExtractor maps an --extract-mode value to the page text extractor.
func textExtractor(mode string) notebook.TextExtractor {
	switch mode {
	case "readability":
		return readability.NewExtractor()
	case "trafilatura":
		return trafilatura.NewExtractor()
	case "markdown":
		return htmltomarkdown.NewConverter()
	default:
		return notebook.SanitizeExtractor
	}
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}

func defaultConfigPaths() []string {
	var paths []string
	if path := os.Getenv("NOTEBOOK_CONFIG"); path != "" {
		paths = append(paths, path)
	}
	return append(paths, "notebook.yaml", "~/.notebook.yaml")
}
