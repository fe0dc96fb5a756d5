package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// Default configuration values.
const (
	DefaultBaseURL    = "https://app.icontact.com/icp/"
	SandboxBaseURL    = "https://app.sandbox.icontact.com/icp/"
	DefaultAPIVersion = "2.2"
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 5
)

// Format selects how a response body should be negotiated and decoded.
type Format string

const (
	// FormatJSON requests and sends application/json payloads.
	FormatJSON Format = "json"
	// FormatXML requests and sends text/xml payloads.
	FormatXML Format = "xml"
)

func (f Format) contentType() string {
	if f == FormatXML {
		return "text/xml"
	}
	return "application/json"
}

// Request describes a single API call.
type Request struct {
	// Method is the HTTP verb. Case-insensitive; defaults to GET.
	Method string
	// Path is the resource path relative to the base URL,
	// e.g. "a/12345/c/67890/lists".
	Path string
	// Params carries request parameters. For read verbs they are encoded
	// into the query string; for write verbs they become the request body.
	Params map[string]string
	// Body, when non-nil, is used as the write body instead of Params.
	// It is serialized according to Format.
	Body any
	// Form requests form-encoded bodies for write verbs. PUT requests
	// ignore it and always serialize per Format.
	Form bool
	// Format selects the response format. Defaults to FormatJSON.
	Format Format
}

// Response captures a raw API response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Config holds explicit client configuration.
type Config struct {
	// BaseURL is the API root, always ending in a slash.
	BaseURL string
	// AppID is the registered application key, sent as Api-AppId.
	AppID string
	// Username and Password authenticate every request. There is no
	// session or token exchange.
	Username string
	Password string
	// APIVersion is sent as Api-Version on every request.
	APIVersion string
	// HTTPClient optionally replaces the underlying transport.
	HTTPClient *http.Client
	// Timeout applies when HTTPClient is nil.
	Timeout time.Duration
	// MaxRetries caps the consecutive-failure counter. Zero disables the
	// gate entirely; a negative value selects the default.
	MaxRetries int
	// Debug enables request/response logging through Logger. Logging is
	// side-effect-only and never changes an outcome.
	Debug bool
	// Logger receives debug output. The zero value discards it.
	Logger zerolog.Logger
}

// Client dispatches authenticated requests against the iContact API.
//
// The retry gate is plain mutable state: Client is not safe for use from
// multiple goroutines without external synchronization.
type Client struct {
	baseURL    string
	appID      string
	username   string
	password   string
	apiVersion string
	rest       *resty.Client
	maxRetries int
	retryCount int
	debug      bool
	log        zerolog.Logger
}

// NewClient creates a client from explicit configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.AppID == "" {
		return nil, fmt.Errorf("application key is required")
	}
	if cfg.Username == "" || cfg.Password == "" {
		return nil, fmt.Errorf("username and password are required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = DefaultMaxRetries
	}

	var rest *resty.Client
	if cfg.HTTPClient != nil {
		rest = resty.NewWithClient(cfg.HTTPClient)
	} else {
		rest = resty.New()
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		rest.SetTimeout(timeout)
	}

	return &Client{
		baseURL:    baseURL,
		appID:      cfg.AppID,
		username:   cfg.Username,
		password:   cfg.Password,
		apiVersion: apiVersion,
		rest:       rest,
		maxRetries: maxRetries,
		debug:      cfg.Debug,
		log:        cfg.Logger,
	}, nil
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// RetryCount returns the current consecutive-failure count.
func (c *Client) RetryCount() int {
	return c.retryCount
}

// Do dispatches a request and captures the raw response.
//
// Failures of any kind (transport errors and statuses >= 400) increment
// the consecutive-failure counter; once the counter reaches the configured
// maximum, subsequent calls fail with *ExcessiveRetriesError before any
// network I/O. A successful response resets the counter to zero.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	if c.maxRetries > 0 && c.retryCount >= c.maxRetries {
		return nil, &ExcessiveRetriesError{Limit: c.maxRetries}
	}

	method := strings.ToUpper(req.Method)
	if method == "" {
		method = http.MethodGet
	}
	format := req.Format
	if format == "" {
		format = FormatJSON
	}
	url := c.baseURL + req.Path

	r := c.rest.R().SetContext(ctx)
	r.SetHeader("Accept", format.contentType())
	r.SetHeader("Api-Version", c.apiVersion)
	r.SetHeader("Api-AppId", c.appID)
	r.SetHeader("Api-Username", c.username)
	r.SetHeader("Api-Password", c.password)

	switch method {
	case http.MethodGet, http.MethodDelete:
		// An empty parameter map must leave the URL untouched.
		if len(req.Params) > 0 {
			r.SetQueryParams(req.Params)
		}
		r.SetHeader("Content-Type", format.contentType())
	default:
		c.encodeWriteBody(r, method, req, format)
	}

	if c.debug {
		c.log.Debug().Str("method", method).Str("url", url).Msg("API request")
	}

	resp, err := r.Execute(method, url)
	if err != nil {
		c.retryCount++
		if c.debug {
			c.log.Error().Err(err).Str("method", method).Str("url", url).Msg("API request failed")
		}
		return nil, &NetworkError{Err: err, URL: url}
	}

	if c.debug {
		c.log.Debug().
			Str("method", method).
			Str("url", url).
			Int("status_code", resp.StatusCode()).
			Str("body", string(resp.Body())).
			Msg("API response")
	}

	if resp.StatusCode() >= 400 {
		c.retryCount++
		return nil, parseErrorResponse(resp.StatusCode(), resp.Body())
	}

	c.retryCount = 0
	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}

// encodeWriteBody attaches a body to a write request. PUT always carries
// a payload in the negotiated format; other write verbs may opt into
// form encoding.
func (c *Client) encodeWriteBody(r *resty.Request, method string, req Request, format Format) {
	if req.Form && method != http.MethodPut {
		if len(req.Params) > 0 {
			r.SetFormData(req.Params)
		}
		r.SetHeader("Content-Type", "application/x-www-form-urlencoded")
		return
	}

	r.SetHeader("Content-Type", format.contentType())
	if req.Body != nil {
		r.SetBody(req.Body)
		return
	}
	if len(req.Params) > 0 {
		r.SetBody(req.Params)
	}
}

// parseErrorResponse converts an error-status body into an *APIError.
// The API reports failures as {"errors": ["...", ...]}; when that key is
// missing the raw body is surfaced as the only message so the condition
// still fails loudly.
func parseErrorResponse(statusCode int, body []byte) error {
	var errResp struct {
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && len(errResp.Errors) > 0 {
		return &APIError{
			StatusCode: statusCode,
			Messages:   errResp.Errors,
		}
	}

	msg := strings.TrimSpace(string(body))
	var messages []string
	if msg != "" {
		messages = []string{msg}
	}
	return &APIError{
		StatusCode: statusCode,
		Messages:   messages,
	}
}
