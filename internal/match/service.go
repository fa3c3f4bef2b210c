package match

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/b-ciq/brandkit/internal/cache"
	"github.com/b-ciq/brandkit/internal/config"
	"github.com/b-ciq/brandkit/internal/inventory"
	"github.com/b-ciq/brandkit/internal/observability"
)

// sampleAssetsPerProduct bounds the listing payload.
const sampleAssetsPerProduct = 3

// ProductListing is one catalog in the full asset listing.
type ProductListing struct {
	Key         string        `json:"key"`
	DisplayName string        `json:"display_name"`
	Description string        `json:"description,omitempty"`
	AssetCount  int           `json:"asset_count"`
	Samples     []AssetChoice `json:"samples,omitempty"`
}

// Listing is the full-inventory view.
type Listing struct {
	Products    []ProductListing `json:"products"`
	TotalAssets int              `json:"total_assets"`
}

// GuidelinesResponse carries the brand usage rules with a rendered message.
type GuidelinesResponse struct {
	ClearSpace   string `json:"clear_space"`
	MinimumSize  string `json:"minimum_size"`
	PrimaryGreen string `json:"primary_green"`
	Message      string `json:"message"`
}

// Service answers brand-asset requests. Responses are pure given a loaded
// inventory, so they are cached by request+background.
type Service struct {
	logger   *observability.Logger
	source   inventory.Source
	cache    cache.Client
	detector *Detector
	cacheTTL time.Duration
}

// NewService wires the request pipeline.
func NewService(logger *observability.Logger, source inventory.Source, cacheClient cache.Client, cfg config.Config) *Service {
	return &Service{
		logger:   logger,
		source:   source,
		cache:    cacheClient,
		detector: NewDetector(cfg.Matching),
		cacheTTL: cfg.Cache.TTL,
	}
}

// GetBrandAsset resolves a free-text request into a Response. The background
// parameter, when set to "light" or "dark", overrides anything parsed from
// the text. Every outcome is a payload: an unreachable inventory produces
// the unavailable response, never an error.
func (s *Service) GetBrandAsset(ctx context.Context, request, background string) Response {
	requestID := observability.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
		ctx = observability.ContextWithRequestID(ctx, requestID)
	}
	logger := s.logger.WithContext(ctx)
	start := time.Now()

	key := responseCacheKey(request, background)
	if resp, ok := s.cachedResponse(ctx, key); ok {
		logger.Debug().Str("cache_key", key).Msg("Response cache hit")
		return resp
	}

	inv, err := s.source.Get(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("Inventory unavailable for request")
		return Response{
			Kind:    KindUnavailable,
			Level:   LevelNone,
			Message: UnavailableMessage,
		}
	}

	parsed := s.detector.DetectWithBackground(request, inventory.ParseBackground(background))
	resp := Respond(inv, parsed)

	logger.Info().
		Str("product", parsed.Product).
		Str("kind", string(resp.Kind)).
		Str("confidence", string(resp.Level)).
		Float64("score", parsed.Confidence).
		Dur("duration", time.Since(start)).
		Msg("Brand asset request resolved")

	s.storeResponse(ctx, key, resp)
	return resp
}

// ListAssets returns every catalog with counts and a few sample assets.
func (s *Service) ListAssets(ctx context.Context) (Listing, error) {
	inv, err := s.source.Get(ctx)
	if err != nil {
		return Listing{}, err
	}

	listing := Listing{Products: make([]ProductListing, 0, len(inv.Catalogs))}
	for _, cat := range inv.Catalogs {
		pl := ProductListing{
			Key:         cat.Key,
			DisplayName: cat.DisplayName,
			Description: cat.Description,
			AssetCount:  len(cat.Assets),
		}
		for i, asset := range cat.Assets {
			if i == sampleAssetsPerProduct {
				break
			}
			pl.Samples = append(pl.Samples, toChoice(cat, ScoredAsset{Asset: asset}))
		}
		listing.TotalAssets += len(cat.Assets)
		listing.Products = append(listing.Products, pl)
	}
	return listing, nil
}

// Products returns the catalog summaries shown in help listings.
func (s *Service) Products(ctx context.Context) ([]ProductSummary, error) {
	inv, err := s.source.Get(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]ProductSummary, 0, len(inv.Catalogs))
	for _, cat := range inv.Catalogs {
		products = append(products, ProductSummary{
			Key:         cat.Key,
			DisplayName: cat.DisplayName,
			Description: cat.Description,
			AssetCount:  len(cat.Assets),
		})
	}
	return products, nil
}

// Guidelines renders the brand usage rules.
func (s *Service) Guidelines(ctx context.Context) (GuidelinesResponse, error) {
	inv, err := s.source.Get(ctx)
	if err != nil {
		return GuidelinesResponse{}, err
	}

	g := inv.Guidelines
	var b strings.Builder
	b.WriteString("**CIQ Brand Guidelines**\n\n")
	if g.ClearSpace != "" {
		fmt.Fprintf(&b, "- Clear space: %s\n", g.ClearSpace)
	}
	if g.MinimumSize != "" {
		fmt.Fprintf(&b, "- Minimum size: %s\n", g.MinimumSize)
	}
	if g.PrimaryGreen != "" {
		fmt.Fprintf(&b, "- Primary green: %s\n", g.PrimaryGreen)
	}

	return GuidelinesResponse{
		ClearSpace:   g.ClearSpace,
		MinimumSize:  g.MinimumSize,
		PrimaryGreen: g.PrimaryGreen,
		Message:      b.String(),
	}, nil
}

// refresher is implemented by inventory sources that can re-fetch.
type refresher interface {
	Refresh(ctx context.Context) (*inventory.Inventory, error)
}

// Refresh re-fetches the inventory and drops cached responses so stale
// recommendations don't outlive the document they were computed from.
func (s *Service) Refresh(ctx context.Context) error {
	r, ok := s.source.(refresher)
	if !ok {
		return errors.New("inventory source does not support refresh")
	}
	if _, err := r.Refresh(ctx); err != nil {
		return err
	}
	if err := s.cache.DeleteByPrefix(ctx, "response:"); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to clear response cache after refresh")
	}
	return nil
}

// Ready reports whether the service can answer from a loaded inventory.
func (s *Service) Ready(ctx context.Context) error {
	_, err := s.source.Get(ctx)
	return err
}

func (s *Service) cachedResponse(ctx context.Context, key string) (Response, bool) {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Debug().Err(err).Msg("Response cache read failed")
		}
		return Response{}, false
	}

	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return Response{}, false
	}
	return resp, true
}

func (s *Service) storeResponse(ctx context.Context, key string, resp Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		s.logger.Debug().Err(err).Msg("Response cache write failed")
	}
}

// responseCacheKey derives a deterministic key from the request text and the
// background override.
func responseCacheKey(request, background string) string {
	h := sha256.New()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(request))))
	h.Write([]byte{0})
	h.Write([]byte(strings.ToLower(strings.TrimSpace(background))))
	return "response:" + hex.EncodeToString(h.Sum(nil))
}
