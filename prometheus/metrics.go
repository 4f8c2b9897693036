// Package prometheus instruments notebook services with Prometheus metrics.
package prometheus

import (
	"context"
	"time"

	"github.com/fwojciec/notebook"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "notebook"

// Metrics holds the collectors shared by the instrumented services.
type Metrics struct {
	fetches        *prometheus.CounterVec
	fetchDuration  prometheus.Histogram
	fetchBytes     prometheus.Counter
	crawls         *prometheus.CounterVec
	crawlChars     prometheus.Histogram
	answers        *prometheus.CounterVec
	answerDuration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetches_total",
			Help:      "Remote fetches by outcome.",
		}, []string{"outcome"}),
		fetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Time spent on remote fetches.",
			Buckets:   prometheus.DefBuckets,
		}),
		fetchBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_bytes_total",
			Help:      "Response bytes read by remote fetches.",
		}),
		crawls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "crawls_total",
			Help:      "Website crawls by outcome.",
		}, []string{"outcome"}),
		crawlChars: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "crawl_chars",
			Help:      "Characters of text returned per crawl.",
			Buckets:   prometheus.ExponentialBuckets(500, 2, 8),
		}),
		answers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "answers_total",
			Help:      "Answering calls by outcome.",
		}, []string{"outcome"}),
		answerDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "answer_duration_seconds",
			Help:      "Time spent waiting for the answering capability.",
			Buckets:   []float64{.5, 1, 2.5, 5, 10, 20, 40, 80},
		}),
	}

	reg.MustRegister(
		m.fetches, m.fetchDuration, m.fetchBytes,
		m.crawls, m.crawlChars,
		m.answers, m.answerDuration,
	)
	return m
}

// outcome labels a result by its error code, or "ok".
func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	return notebook.ErrorCode(err)
}

// Fetcher returns next instrumented with fetch metrics.
func (m *Metrics) Fetcher(next notebook.Fetcher) notebook.Fetcher {
	return &fetcher{next: next, m: m}
}

type fetcher struct {
	next notebook.Fetcher
	m    *Metrics
}

func (f *fetcher) Fetch(ctx context.Context, url string) (*notebook.FetchResponse, error) {
	begin := time.Now()
	resp, err := f.next.Fetch(ctx, url)
	f.m.fetchDuration.Observe(time.Since(begin).Seconds())
	f.m.fetches.WithLabelValues(outcome(err)).Inc()
	if resp != nil {
		f.m.fetchBytes.Add(float64(len(resp.Body)))
	}
	return resp, err
}

// Crawler returns next instrumented with crawl metrics.
func (m *Metrics) Crawler(next notebook.Crawler) notebook.Crawler {
	return &crawler{next: next, m: m}
}

type crawler struct {
	next notebook.Crawler
	m    *Metrics
}

func (c *crawler) Crawl(ctx context.Context, seedURL string) (string, error) {
	text, err := c.next.Crawl(ctx, seedURL)
	c.m.crawls.WithLabelValues(outcome(err)).Inc()
	if err == nil {
		c.m.crawlChars.Observe(float64(notebook.TextLen(text)))
	}
	return text, err
}

// Answerer returns next instrumented with answer metrics.
func (m *Metrics) Answerer(next notebook.Answerer) notebook.Answerer {
	return &answerer{next: next, m: m}
}

type answerer struct {
	next notebook.Answerer
	m    *Metrics
}

func (a *answerer) Answer(ctx context.Context, systemContext, question string) (string, error) {
	begin := time.Now()
	answer, err := a.next.Answer(ctx, systemContext, question)
	a.m.answerDuration.Observe(time.Since(begin).Seconds())
	a.m.answers.WithLabelValues(outcome(err)).Inc()
	return answer, err
}
