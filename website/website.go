package website

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gridkit/config"
)

// DefaultBaseURL is the puzzle site.
const DefaultBaseURL = "https://adventofcode.com"

const userAgent = "github.com/katalvlaran/gridkit"

var (
	// ErrNoSession is returned when no session cookie is configured.
	ErrNoSession = errors.New("website: no session configured")
	// ErrStatus indicates an unsuccessful HTTP response.
	ErrStatus = errors.New("website: unsuccessful response status")
	// ErrDownload indicates a request or transfer failure.
	ErrDownload = errors.New("website: downloading input")
)

// Client fetches inputs. The zero value is not usable; call New.
type Client struct {
	baseURL  string
	http     *http.Client
	logger   *log.Logger
	now      func() time.Time
	attempts int
	delay    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another site, such as a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient replaces the default client, which times out after 5s.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithLogger sends debug and warning records to l.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock replaces time.Now for throttle decisions.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// WithRetry sets the attempt count and initial backoff delay.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(c *Client) {
		c.attempts, c.delay = attempts, delay
	}
}

// New returns a Client for DefaultBaseURL: 3 attempts starting at a 1s
// backoff, logging discarded.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:  DefaultBaseURL,
		http:     &http.Client{Timeout: 5 * time.Second},
		logger:   log.New(io.Discard),
		now:      time.Now,
		attempts: 3,
		delay:    time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DayURL is the puzzle page of one day.
func (c *Client) DayURL(year, day int) string {
	return fmt.Sprintf("%s/%d/day/%d", c.baseURL, year, day)
}

// InputURL is the personal input of one day.
func (c *Client) InputURL(year, day int) string {
	return c.DayURL(year, day) + "/input"
}

// GetInput makes sure the input for year/day is on disk at
// cfg.InputFor(year, day) and returns that path.
//
// An existing file is returned untouched. Otherwise the throttle file is
// consulted, the input is downloaded with cfg.Session as cookie, and the
// throttle is pushed ThrottleDelay into the future.
func (c *Client) GetInput(ctx context.Context, cfg *config.Config, year, day int) (string, error) {
	path := cfg.InputFor(year, day)
	if _, err := os.Stat(path); err == nil {
		c.logger.Debug("input already present", "path", path)
		return path, nil
	}
	if cfg.Session == "" {
		return "", ErrNoSession
	}
	if err := CheckThrottle(cfg.ThrottleFile(), c.now()); err != nil {
		return "", err
	}

	var body []byte
	err := Retry(ctx, c.attempts, c.delay, func() error {
		var err error
		body, err = c.fetch(ctx, c.InputURL(year, day), cfg.Session)
		if err != nil {
			c.logger.Debug("fetch failed", "year", year, "day", day, "err", err)
		}
		return err
	})
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", err
	}
	if err := UpdateThrottle(cfg.ThrottleFile(), c.now()); err != nil {
		c.logger.Warn("could not update throttle file", "path", cfg.ThrottleFile(), "err", err)
	}
	c.logger.Debug("input downloaded", "path", path, "bytes", len(body))
	return path, nil
}

func (c *Client) fetch(ctx context.Context, url, session string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDownload, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.AddCookie(&http.Cookie{Name: "session", Value: session})

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RetryableError{Err: fmt.Errorf("%w: %w", ErrDownload, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("%w: %s", ErrStatus, resp.Status)
		if resp.StatusCode >= 500 {
			return nil, &RetryableError{Err: err}
		}
		return nil, err
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RetryableError{Err: fmt.Errorf("%w: %w", ErrDownload, err)}
	}
	return body, nil
}
