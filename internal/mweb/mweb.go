package mweb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/Matheusmno/MWebCrawler/internal/assemble"
	"github.com/Matheusmno/MWebCrawler/internal/catalog"
	"github.com/Matheusmno/MWebCrawler/internal/components/assert"
	"github.com/Matheusmno/MWebCrawler/internal/components/telemetry"
	"github.com/Matheusmno/MWebCrawler/internal/patterns"
	"github.com/Matheusmno/MWebCrawler/lib/platforms/matriculaweb"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("mwebcrawler.internal.mweb")

// Fetcher returns the page for an endpoint, or "" when it could not be
// retrieved. It must not block past the deadline of ctx.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint matriculaweb.Endpoint, params url.Values) string
}

type Options struct {
	// Timeout bounds each fetch, it defaults to 1 second.
	Timeout time.Duration
	// Rules defaults to patterns.Default.
	Rules patterns.Registry
	// Logger receives progress messages of calls made with verbose set,
	// it defaults to slog.Default().
	Logger *slog.Logger
}

type Client struct {
	fetcher Fetcher
	tel     telemetry.API
	timeout time.Duration
	rules   patterns.Registry
	logger  *slog.Logger
}

func New(fetcher Fetcher, tel telemetry.API, opts Options) (*Client, error) {
	assert.NotNil(fetcher)
	assert.NotNil(tel)

	if opts.Timeout == 0 {
		opts.Timeout = time.Second
	}
	if opts.Rules == nil {
		opts.Rules = patterns.Default
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	err := opts.Rules.Validate(patterns.Required)
	if err != nil {
		return nil, fmt.Errorf("invalid rule set: %w", err)
	}

	return &Client{
		fetcher: fetcher,
		tel:     telemetry.NewScopedAPI("mweb", tel),
		timeout: opts.Timeout,
		rules:   opts.Rules,
		logger:  opts.Logger,
	}, nil
}

// call holds the per-call state shared by every query method.
type call struct {
	ctx     context.Context
	span    trace.Span
	name    string
	code    string
	level   catalog.Level
	verbose bool
}

func (c *Client) begin(ctx context.Context, name, code string, level catalog.Level, verbose bool) (*call, error) {
	if level == "" {
		level = catalog.Graduacao
	}
	ctx, span := tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("code", code),
		attribute.String("level", string(level)),
	))
	cl := &call{ctx: ctx, span: span, name: name, code: code, level: level, verbose: verbose}
	if !level.Valid() {
		return cl, cl.fail(fmt.Errorf("unknown level %q", level))
	}
	return cl, nil
}

func (cl *call) end() {
	cl.span.End()
}

func (cl *call) fail(err error) error {
	cl.span.RecordError(err)
	cl.span.SetStatus(codes.Error, err.Error())
	return fmt.Errorf("%s %s: %w", cl.name, cl.code, err)
}

func (c *Client) progress(cl *call, msg string, args ...any) {
	if !cl.verbose {
		return
	}
	c.logger.InfoContext(cl.ctx, msg, args...)
}

func (c *Client) fetch(cl *call, page matriculaweb.Page, params url.Values) string {
	ctx, cancel := context.WithTimeout(cl.ctx, c.timeout)
	defer cancel()

	doc := c.fetcher.Fetch(ctx, matriculaweb.Endpoint{Level: cl.level, Page: page}, params)
	cl.span.SetAttributes(attribute.Int("document.length", len(doc)))
	if doc == "" {
		c.tel.ReportDebug("empty document", cl.name, cl.code)
	}
	return doc
}

// assembleFailed reports a capture that could not be assembled, parse
// errors mean the rules drifted from the page and are reported as broken.
func (c *Client) assembleFailed(cl *call, report string, err error) error {
	if errors.Is(err, assemble.ErrMalformedNumber) {
		c.tel.ReportBroken(report, err, cl.code)
	}
	return cl.fail(err)
}

func codeParams(code string) url.Values {
	return url.Values{"cod": {code}}
}
