package spots

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// Service fetches the three feed documents. Each fetch observes the
// freshest server state: a per-request cache-busting token is appended
// so no intermediate cache can serve a stale snapshot.
type Service interface {
	FetchCollection(ctx context.Context) (*Collection, error)
	FetchSummary(ctx context.Context) (Summary, error)
	FetchHistory(ctx context.Context) (History, error)
}

var _ Service = (*feedService)(nil)

type feedService struct {
	base   string
	token  string
	client *http.Client
}

// NewService creates a feed client rooted at base. token is the feed
// access credential sent as a bearer token on every request; callers
// gate startup on its presence before constructing the service.
func NewService(base, token string) Service {
	return &feedService{
		base:   strings.TrimRight(base, "/"),
		token:  token,
		client: &http.Client{Timeout: 20 * time.Second},
	}
}

func (s *feedService) get(ctx context.Context, name string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s?t=%s", s.base, name, uuid.NewString())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "surfmap")
	req.Header.Set("Cache-Control", "no-cache")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("unexpected status code: " + resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// FetchCollection retrieves and decodes the point collection.
func (s *feedService) FetchCollection(ctx context.Context) (*Collection, error) {
	body, err := s.get(ctx, "beaches.geojson")
	if err != nil {
		return nil, fmt.Errorf("fetching beaches: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		return nil, fmt.Errorf("parsing beaches: %w", err)
	}
	return FromFeatureCollection(fc)
}

// FetchSummary retrieves the build manifest.
func (s *feedService) FetchSummary(ctx context.Context) (Summary, error) {
	body, err := s.get(ctx, "summary.json")
	if err != nil {
		return Summary{}, fmt.Errorf("fetching summary: %w", err)
	}
	return parseSummary(body)
}

// FetchHistory retrieves the rolling 72-hour history document.
func (s *feedService) FetchHistory(ctx context.Context) (History, error) {
	body, err := s.get(ctx, "history_72h.json")
	if err != nil {
		return nil, fmt.Errorf("fetching history: %w", err)
	}
	return parseHistory(body)
}
