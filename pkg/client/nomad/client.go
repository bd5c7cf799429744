package nomad

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/devantler-tech/jobplan/pkg/io/config"
	"github.com/sirupsen/logrus"
)

const (
	tokenHeader      = "X-Nomad-Token"
	defaultUserAgent = "jobplan"
	maxErrorBody     = 64 << 10
)

// Client talks to a single scheduler agent. It is safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	token      string
	region     string
	namespace  string
	userAgent  string
	logger     logrus.FieldLogger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client. TLS settings from the
// configuration are not applied to it.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger that receives one debug entry per request.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// New creates a client for the agent described by cfg.
func New(cfg *config.Config, opts ...Option) (*Client, error) {
	baseURL, err := url.Parse(strings.TrimRight(cfg.Address, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid scheduler address: %w", err)
	}

	client := &Client{
		baseURL:   baseURL,
		token:     cfg.Token,
		region:    cfg.Region,
		namespace: cfg.Namespace,
		userAgent: defaultUserAgent,
		logger:    logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		tlsCfg, err := tlsConfig(cfg)
		if err != nil {
			return nil, err
		}

		transport := http.DefaultTransport.(*http.Transport).Clone() //nolint:forcetypeassert // stdlib default
		if tlsCfg != nil {
			transport.TLSClientConfig = tlsCfg
		}

		client.httpClient = &http.Client{Transport: transport}
	}

	return client, nil
}

// do sends a request and decodes a JSON response into out when out is non-nil.
// path must already be escaped.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	reqURL, err := url.Parse(c.baseURL.String() + path)
	if err != nil {
		return fmt.Errorf("invalid request path %q: %w", path, err)
	}

	reqURL.RawQuery = c.query(query).Encode()

	var payload io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s request: %w", method, path, err)
		}

		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), payload)
	if err != nil {
		return fmt.Errorf("failed to create %s %s request: %w", method, path, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.token != "" {
		req.Header.Set(tokenHeader, c.token)
	}

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithFields(logrus.Fields{"method": method, "path": path}).
			WithError(err).Debug("scheduler request failed")

		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	defer func() { _ = resp.Body.Close() }()

	c.logger.WithFields(logrus.Fields{
		"method":   method,
		"path":     path,
		"status":   resp.StatusCode,
		"duration": time.Since(start).Round(time.Millisecond),
	}).Debug("scheduler request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return &APIError{Method: method, Path: path, Code: resp.StatusCode, Body: string(data)}
	}

	if out == nil {
		return nil
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}

	return nil
}

func (c *Client) query(extra url.Values) url.Values {
	query := url.Values{}

	if c.region != "" {
		query.Set("region", c.region)
	}

	if c.namespace != "" {
		query.Set("namespace", c.namespace)
	}

	for key, values := range extra {
		query[key] = values
	}

	return query
}
