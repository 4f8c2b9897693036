package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/notebook"
	"github.com/fwojciec/notebook/ingest"
	"github.com/prometheus/client_golang/prometheus"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Gatherer     prometheus.Gatherer
	Assembler    *ingest.Assembler
	ChatService  notebook.ChatService
	TokenCounter notebook.TokenCounter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config kong.ConfigFlag `help:"Path to a YAML configuration file"`

	LogLevel string `name:"log-level" default:"info" enum:"debug,info,warn,error" env:"NOTEBOOK_LOG_LEVEL" help:"Log level (${enum})"`

	Provider        string `default:"gemini" enum:"gemini,anthropic" env:"NOTEBOOK_PROVIDER" help:"Answering provider (${enum})"`
	Model           string `env:"NOTEBOOK_MODEL" help:"Model name, defaults to the provider's default"`
	GeminiAPIKey    string `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	AnthropicAPIKey string `name:"anthropic-api-key" env:"ANTHROPIC_API_KEY" help:"Anthropic API key"`

	ExtractMode string  `name:"extract-mode" default:"sanitize" enum:"sanitize,readability,trafilatura,markdown" env:"NOTEBOOK_EXTRACT_MODE" help:"Page text extraction (${enum})"`
	MaxPages    int     `name:"max-pages" default:"5" env:"NOTEBOOK_MAX_PAGES" help:"Pages visited per crawled URL"`
	RateLimit   float64 `name:"rate-limit" default:"0" env:"NOTEBOOK_RATE_LIMIT" help:"Requests per second per domain, 0 for unlimited"`
	DedupPages  bool    `name:"dedup-pages" env:"NOTEBOOK_DEDUP_PAGES" help:"Drop pages whose text repeats an earlier page of the same crawl"`

	Serve   ServeCmd   `cmd:"" help:"Serve the chat API over HTTP"`
	Ask     AskCmd     `cmd:"" help:"Answer the chat request in a JSON file"`
	Extract ExtractCmd `cmd:"" help:"Print the context assembled for a chat request, without answering"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Host    string `default:"0.0.0.0" env:"NOTEBOOK_HOST" help:"Bind host"`
	Port    int    `default:"3001" env:"PORT" help:"Bind port"`
	MaxBody int64  `name:"max-body" default:"31457280" env:"NOTEBOOK_MAX_BODY" help:"Chat request size limit in bytes"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Request string `arg:"" help:"Chat request JSON file, - for stdin"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Request     string `arg:"" help:"Chat request JSON file, - for stdin"`
	CountTokens bool   `name:"count-tokens" help:"Report the Gemini token count of the context"`
}
