// Package matriculaweb fetches pages from Matrícula Web.
//
// The client never returns transport errors: a failed, timed out or
// rejected request is reported through telemetry and yields an empty
// document, which the extraction layer treats as "nothing matched".
package matriculaweb

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"sync"
	"time"

	"github.com/Matheusmno/MWebCrawler/internal/components/assert"
	"github.com/Matheusmno/MWebCrawler/internal/components/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"github.com/temoto/robotstxt"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/net/html/charset"
	"golang.org/x/time/rate"
)

const (
	report_fetch        = "fetcher.fetch"
	report_fetch_status = "fetcher.fetch-status"
	report_fetch_decode = "fetcher.fetch-decode"
	report_robots       = "fetcher.robots"
)

const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

var meter = otel.Meter("mwebcrawler.lib.platforms.matriculaweb")
var fetchCounter, _ = meter.Int64Counter(
	"matriculaweb.fetches",
	metric.WithDescription("pages fetched from matricula web, by page and outcome"),
)

type Options struct {
	// BaseUrl defaults to DefaultBaseUrl.
	BaseUrl string
	// Timeout bounds a single request, it defaults to 1 second.
	Timeout time.Duration
	// UserAgent defaults to DefaultUserAgent.
	UserAgent string
	// RequestsPerSecond defaults to 2, a negative value disables the limit.
	RequestsPerSecond float64
	// RespectRobots makes the client check robots.txt before fetching.
	RespectRobots bool
	// BypassCloudflare wraps the transport with a cloudflare bypass.
	BypassCloudflare bool
	// Output receives the raw request/response pairs when it is not nil.
	Output telemetry.MessageOutput
}

type Client struct {
	baseUrl   string
	userAgent string
	http      *resty.Client
	tel       telemetry.API

	robotsOnce sync.Once
	robots     *robotstxt.RobotsData
}

func NewClient(opts Options, tel telemetry.API) (*Client, error) {
	assert.NotNil(tel)
	tel = telemetry.NewScopedAPI("matriculaweb", tel)

	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	if opts.Timeout == 0 {
		opts.Timeout = time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.RequestsPerSecond == 0 {
		opts.RequestsPerSecond = 2
	}

	parsedBaseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if parsedBaseUrl.Scheme == "" || parsedBaseUrl.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", opts.BaseUrl)
	}

	httpClient := resty.New()
	httpClient.SetBaseURL(opts.BaseUrl)
	httpClient.SetHeader("user-agent", opts.UserAgent)
	httpClient.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(parsedBaseUrl.Hostname()))
	httpClient.SetTimeout(opts.Timeout)
	if opts.BypassCloudflare {
		httpClient.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(httpClient.GetClient().Transport)
	}

	if opts.RequestsPerSecond > 0 {
		burst := int(opts.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		rateLimiter := rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
		httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return rateLimiter.Wait(req.Context())
		})
	}

	telemetry.InstrumentResty(httpClient, tel, opts.Output)

	c := &Client{
		baseUrl:   opts.BaseUrl,
		userAgent: opts.UserAgent,
		http:      httpClient,
		tel:       tel,
	}
	if !opts.RespectRobots {
		c.robotsOnce.Do(func() {})
	}
	return c, nil
}

func (c *Client) BaseUrl() string {
	return c.baseUrl
}

// Fetch returns the page for an endpoint decoded to UTF-8, or "" if it
// could not be retrieved. The context bounds the request.
func (c *Client) Fetch(ctx context.Context, endpoint Endpoint, params url.Values) string {
	outcome := "ok"
	defer func() {
		fetchCounter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("page", string(endpoint.Page)),
			attribute.String("outcome", outcome),
		))
	}()

	if !c.allowed(ctx, endpoint.Path()) {
		outcome = "disallowed"
		c.tel.ReportWarning(report_robots, "disallowed by robots.txt", endpoint.String())
		return ""
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params).
		Get(endpoint.Path())
	if err != nil {
		outcome = "error"
		c.tel.ReportWarning(report_fetch, fmt.Errorf("get %s: %w", endpoint, err))
		return ""
	}
	if res.IsError() {
		outcome = "status"
		c.tel.ReportWarning(report_fetch_status, endpoint.String(), res.Status())
		return ""
	}

	text, err := decode(res.Body(), res.Header().Get("content-type"))
	if err != nil {
		outcome = "decode"
		c.tel.ReportWarning(report_fetch_decode, fmt.Errorf("decode %s: %w", endpoint, err))
		return ""
	}
	return text
}

// decode converts a body in the charset declared by the response (or
// sniffed from the document) into UTF-8.
func decode(body []byte, contentType string) (string, error) {
	if len(body) == 0 {
		return "", nil
	}
	reader, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return "", err
	}
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

func (c *Client) allowed(ctx context.Context, path string) bool {
	c.robotsOnce.Do(func() {
		res, err := c.http.R().SetContext(ctx).Get("/robots.txt")
		if err != nil {
			c.tel.ReportWarning(report_robots, fmt.Errorf("fetch robots.txt: %w", err))
			return
		}
		robots, err := robotstxt.FromStatusAndBytes(res.StatusCode(), res.Body())
		if err != nil {
			c.tel.ReportWarning(report_robots, fmt.Errorf("parse robots.txt: %w", err))
			return
		}
		c.robots = robots
	})
	if c.robots == nil {
		return true
	}
	return c.robots.TestAgent(path, c.userAgent)
}
