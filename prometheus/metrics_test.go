package prometheus_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/notebook"
	"github.com/fwojciec/notebook/mock"
	nbprom "github.com/fwojciec/notebook/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Fetcher(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := nbprom.NewMetrics(reg)

	fetcher := m.Fetcher(&mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (*notebook.FetchResponse, error) {
			if url == "https://example.com/missing" {
				return nil, notebook.Errorf(notebook.ENETWORK, "HTTP 404")
			}
			return &notebook.FetchResponse{URL: url, Body: []byte("hello")}, nil
		},
	})

	_, err := fetcher.Fetch(context.Background(), "https://example.com/")
	require.NoError(t, err)
	_, err = fetcher.Fetch(context.Background(), "https://example.com/missing")
	require.Error(t, err)

	expected := `
# HELP notebook_fetches_total Remote fetches by outcome.
# TYPE notebook_fetches_total counter
notebook_fetches_total{outcome="network"} 1
notebook_fetches_total{outcome="ok"} 1
# HELP notebook_fetch_bytes_total Response bytes read by remote fetches.
# TYPE notebook_fetch_bytes_total counter
notebook_fetch_bytes_total 5
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"notebook_fetches_total", "notebook_fetch_bytes_total"))
	count, err := testutil.GatherAndCount(reg, "notebook_fetch_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetrics_Crawler(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := nbprom.NewMetrics(reg)

	crawler := m.Crawler(&mock.Crawler{
		CrawlFn: func(_ context.Context, seedURL string) (string, error) {
			if seedURL == "" {
				return "", notebook.Errorf(notebook.EPARSE, "invalid seed URL")
			}
			return "page text", nil
		},
	})

	_, _ = crawler.Crawl(context.Background(), "https://example.com/")
	_, _ = crawler.Crawl(context.Background(), "")

	expected := `
# HELP notebook_crawls_total Website crawls by outcome.
# TYPE notebook_crawls_total counter
notebook_crawls_total{outcome="ok"} 1
notebook_crawls_total{outcome="parse"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "notebook_crawls_total"))
}

func TestMetrics_Answerer(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := nbprom.NewMetrics(reg)

	answerer := m.Answerer(&mock.Answerer{
		AnswerFn: func(context.Context, string, string) (string, error) {
			return "", notebook.Errorf(notebook.EUPSTREAM, "quota")
		},
	})

	_, err := answerer.Answer(context.Background(), "ctx", "q")
	require.Error(t, err)

	expected := `
# HELP notebook_answers_total Answering calls by outcome.
# TYPE notebook_answers_total counter
notebook_answers_total{outcome="upstream"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "notebook_answers_total"))
}

func TestNewMetrics_PanicsOnDoubleRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	nbprom.NewMetrics(reg)

	assert.Panics(t, func() { nbprom.NewMetrics(reg) })
}
