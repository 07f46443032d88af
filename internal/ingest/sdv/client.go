// Package sdv loads the sportsdataverse college-basketball season feeds:
// play-by-play events and player box scores, published as gzipped CSV.
package sdv

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/fortuna/courtside/internal/store"
)

// BaseURL is where the season data releases are published.
const BaseURL = "https://github.com/sportsdataverse/sportsdataverse-data/releases/download"

// Some data hosts reject default Go client fingerprints, so requests carry
// browser-like headers.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Client fetches season feeds over HTTP.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     *zap.Logger
}

// NewClient creates a feed client. An empty baseURL selects the default
// release host.
func NewClient(baseURL string, log *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 5 * time.Minute},
		log:     log,
	}
}

// LoadSeason fetches and parses both feeds for a season (identified by its
// end year, e.g. 2026 for 2025-26) and builds the immutable dataset. Any
// failure here is fatal to startup; there is no partial-availability mode.
func (c *Client) LoadSeason(ctx context.Context, season int) (*store.Dataset, error) {
	pbpURL := fmt.Sprintf("%s/espn_mbb_pbp/play_by_play_%d.csv.gz", c.baseURL, season)
	boxURL := fmt.Sprintf("%s/espn_mbb_player_boxscores/player_box_%d.csv.gz", c.baseURL, season)

	c.log.Info("loading play-by-play feed", zap.String("url", pbpURL))
	plays, skipped, err := c.fetchPlayByPlay(ctx, pbpURL)
	if err != nil {
		return nil, fmt.Errorf("loading play-by-play feed: %w", err)
	}
	c.log.Info("play-by-play feed loaded", zap.Int("rows", len(plays)), zap.Int("skipped", skipped))

	c.log.Info("loading player box-score feed", zap.String("url", boxURL))
	box, skipped, err := c.fetchPlayerBox(ctx, boxURL)
	if err != nil {
		return nil, fmt.Errorf("loading player box-score feed: %w", err)
	}
	c.log.Info("player box-score feed loaded", zap.Int("rows", len(box)), zap.Int("skipped", skipped))

	data := store.NewDataset(plays, box)
	c.log.Info("dataset ready",
		zap.Int("teams", len(data.Teams())),
		zap.Int("conferences", len(data.Conferences())))
	return data, nil
}

func (c *Client) fetchPlayByPlay(ctx context.Context, url string) ([]store.PlayEvent, int, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, 0, err
	}
	defer body.Close()

	gz, err := gzip.NewReader(body)
	if err != nil {
		return nil, 0, fmt.Errorf("opening gzip stream: %w", err)
	}
	defer gz.Close()

	return ParsePlayByPlay(gz)
}

func (c *Client) fetchPlayerBox(ctx context.Context, url string) ([]store.BoxScoreRow, int, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, 0, err
	}
	defer body.Close()

	gz, err := gzip.NewReader(body)
	if err != nil {
		return nil, 0, fmt.Errorf("opening gzip stream: %w", err)
	}
	defer gz.Close()

	return ParsePlayerBox(gz)
}

func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/octet-stream")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}
	return resp.Body, nil
}
