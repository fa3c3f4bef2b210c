package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/b-ciq/brandkit/internal/cache"
	"github.com/b-ciq/brandkit/internal/config"
	"github.com/b-ciq/brandkit/internal/inventory"
	"github.com/b-ciq/brandkit/internal/match"
	"github.com/b-ciq/brandkit/internal/observability"
)

const handlerFixtureJSON = `{
	"logos": {
		"ciq-1color-light": {
			"filename": "CIQ-logo-1color_blk.svg",
			"url": "https://assets.example.com/ciq/CIQ-logo-1color_blk.svg",
			"color_type": "1color", "color": "black", "background": "light"
		}
	},
	"fuzzball_logos": {
		"fuzzball-icon-dark": {
			"filename": "fuzzball-icon_wht.svg",
			"url": "https://assets.example.com/fuzzball/fuzzball-icon_wht.svg",
			"layout": "icon", "color": "white", "background": "dark"
		},
		"fuzzball-h-dark": {
			"filename": "fuzzball-logo-h_wht.svg",
			"url": "https://assets.example.com/fuzzball/fuzzball-logo-h_wht.svg",
			"layout": "horizontal", "color": "white", "background": "dark"
		}
	},
	"brand_guidelines": {
		"clear_space": "1/4 the height of the Q",
		"minimum_size": "70px height",
		"primary_green": "#229529"
	}
}`

func newHandler(t *testing.T, source inventory.Source) *AssetsHandler {
	t.Helper()
	logger := observability.NopLogger()
	service := match.NewService(logger, source, cache.NewMemoryClient(100), *config.DefaultConfig())
	return NewAssetsHandler(logger, service)
}

func fixtureSource(t *testing.T) inventory.Source {
	t.Helper()
	inv, _, err := inventory.DecodeInventory([]byte(handlerFixtureJSON))
	require.NoError(t, err)
	return &inventory.StaticSource{Inventory: inv}
}

func TestQueryEndpoint(t *testing.T) {
	h := newHandler(t, fixtureSource(t))

	body := `{"request": "fuzzball icon for a dark background"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/assets/query", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Query(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp match.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, match.KindAnswer, resp.Kind)
	require.NotNil(t, resp.Primary)
	assert.Equal(t, "fuzzball-icon-dark", resp.Primary.ID)
}

func TestQueryEndpointValidation(t *testing.T) {
	h := newHandler(t, fixtureSource(t))

	tests := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"bad json", `not json`},
		{"bad background", `{"request": "fuzzball logo", "background": "plaid"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/assets/query", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Query(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestQueryEndpointUnavailableStillOK(t *testing.T) {
	h := newHandler(t, &inventory.StaticSource{Err: inventory.ErrUnavailable})

	body := `{"request": "fuzzball logo"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/assets/query", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Query(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp match.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, match.KindUnavailable, resp.Kind)
}

func TestListEndpoint(t *testing.T) {
	h := newHandler(t, fixtureSource(t))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assets", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var listing match.Listing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	assert.Equal(t, 3, listing.TotalAssets)
	require.Len(t, listing.Products, 2)
	assert.Equal(t, "ciq", listing.Products[0].Key)
}

func TestListEndpointUnavailable(t *testing.T) {
	h := newHandler(t, &inventory.StaticSource{Err: inventory.ErrUnavailable})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assets", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGuidelinesEndpoint(t *testing.T) {
	h := newHandler(t, fixtureSource(t))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/guidelines", nil)
	rec := httptest.NewRecorder()
	h.Guidelines(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var g match.GuidelinesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))
	assert.Equal(t, "#229529", g.PrimaryGreen)
}
