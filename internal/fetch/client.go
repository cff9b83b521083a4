// Package fetch talks to the puzzle site: personal inputs and puzzle pages.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"advent/internal/config"
	"advent/internal/logging"

	"go.uber.org/zap"
)

// ErrNoSession is returned when a request needs the session cookie and none
// is configured.
var ErrNoSession = errors.New("no session token configured (set AOC_SESSION)")

// maxBody caps how much of a response is read.
const maxBody = 2 << 20

// Client fetches pages for one event year.
type Client struct {
	BaseURL   string
	Session   string
	UserAgent string
	Year      int
	HTTP      *http.Client
}

// New builds a client from the loaded configuration.
func New(cfg *config.Config) *Client {
	return &Client{
		BaseURL:   cfg.Session.BaseURL,
		Session:   cfg.Session.Token,
		UserAgent: cfg.Session.UserAgent,
		Year:      cfg.Year,
		HTTP:      &http.Client{Timeout: cfg.GetSessionTimeout()},
	}
}

// Input downloads the personal puzzle input for day.
func (c *Client) Input(ctx context.Context, day int) (string, error) {
	if c.Session == "" {
		return "", ErrNoSession
	}
	body, err := c.get(ctx, fmt.Sprintf("/%d/day/%d/input", c.Year, day))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// SaveInput downloads the input for day and writes it to path.
func (c *Client) SaveInput(ctx context.Context, day int, path string) (string, error) {
	input, err := c.Input(ctx, day)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create input directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(input), 0644); err != nil {
		return "", fmt.Errorf("failed to write input: %w", err)
	}
	return input, nil
}

// Puzzle downloads the puzzle page for day. The session cookie is sent when
// available so the page includes part 2 and earlier answers.
func (c *Client) Puzzle(ctx context.Context, day int) (Page, error) {
	body, err := c.get(ctx, fmt.Sprintf("/%d/day/%d", c.Year, day))
	if err != nil {
		return Page{}, err
	}
	return ParsePage(string(body))
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	url := strings.TrimSuffix(c.BaseURL, "/") + path
	log := logging.For(logging.FromContext(ctx), logging.CategoryFetch)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if c.Session != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: c.Session})
	}

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	log.Debug("fetched",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: HTTP %d: %s", url, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}
