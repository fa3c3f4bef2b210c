package inventory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/b-ciq/brandkit/internal/config"
	"github.com/b-ciq/brandkit/internal/observability"
)

// ErrUnavailable is returned when the inventory document cannot be fetched
// or decoded. Callers translate it into a friendly message; it never
// propagates to end users as a raw error.
var ErrUnavailable = errors.New("asset inventory unavailable")

// Source yields the current inventory. *Loader is the production
// implementation; tests substitute a static source.
type Source interface {
	Get(ctx context.Context) (*Inventory, error)
}

// Loader fetches the inventory document once and caches it for the life of
// the process. Concurrent first callers share a single fetch.
type Loader struct {
	url    string
	client *http.Client
	logger *observability.Logger

	mu     sync.Mutex
	loaded bool
	inv    *Inventory
}

// NewLoader builds a Loader from configuration.
func NewLoader(cfg config.InventoryConfig, logger *observability.Logger) *Loader {
	return &Loader{
		url: cfg.URL,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// Get returns the cached inventory, fetching it on first use. A fetch
// failure is not cached: the next call retries.
func (l *Loader) Get(ctx context.Context) (*Inventory, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.loaded {
		return l.inv, nil
	}

	inv, err := l.fetch(ctx)
	if err != nil {
		return nil, err
	}

	l.inv = inv
	l.loaded = true
	return inv, nil
}

// Refresh drops the cached inventory and fetches a fresh copy.
func (l *Loader) Refresh(ctx context.Context) (*Inventory, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	inv, err := l.fetch(ctx)
	if err != nil {
		return nil, err
	}

	l.inv = inv
	l.loaded = true
	return inv, nil
}

// Loaded reports whether an inventory is cached, without triggering a fetch.
func (l *Loader) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}

func (l *Loader) fetch(ctx context.Context) (*Inventory, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		l.logger.Error().Err(err).Str("url", l.url).Msg("Invalid inventory URL")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		l.logger.Error().Err(err).Str("url", l.url).Msg("Inventory fetch failed")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		l.logger.Error().
			Int("status", resp.StatusCode).
			Str("url", l.url).
			Msg("Inventory fetch returned non-OK status")
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		l.logger.Error().Err(err).Msg("Failed to read inventory response")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	inv, skipped, err := DecodeInventory(body)
	if err != nil {
		l.logger.Error().Err(err).Msg("Failed to decode inventory")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	assetCount := 0
	for _, cat := range inv.Catalogs {
		assetCount += len(cat.Assets)
	}

	event := l.logger.Info().
		Int("catalogs", len(inv.Catalogs)).
		Int("assets", assetCount).
		Dur("duration", time.Since(start))
	if skipped > 0 {
		event = l.logger.Warn().
			Int("catalogs", len(inv.Catalogs)).
			Int("assets", assetCount).
			Int("skipped_records", skipped).
			Dur("duration", time.Since(start))
	}
	event.Msg("Inventory loaded")

	return inv, nil
}

// StaticSource serves a fixed inventory. Used by tests and by callers that
// already hold a decoded inventory.
type StaticSource struct {
	Inventory *Inventory
	Err       error
}

func (s *StaticSource) Get(_ context.Context) (*Inventory, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Inventory, nil
}
