// Package inventory models the brand-asset inventory and loads it from its
// externally hosted JSON document.
package inventory

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Background is the background an asset is designed for. It is a property of
// the intended placement, not of the image file itself.
type Background string

const (
	BackgroundLight   Background = "light"
	BackgroundDark    Background = "dark"
	BackgroundUnknown Background = "unknown"
)

// ParseBackground maps a raw inventory string to a Background.
func ParseBackground(s string) Background {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return BackgroundLight
	case "dark":
		return BackgroundDark
	default:
		return BackgroundUnknown
	}
}

// Color is the ink color of an asset.
type Color string

const (
	ColorBlack   Color = "black"
	ColorWhite   Color = "white"
	ColorGreen   Color = "green"
	ColorUnknown Color = "unknown"
)

// ParseColor maps a raw inventory string to a Color.
func ParseColor(s string) Color {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "blk":
		return ColorBlack
	case "white", "wht":
		return ColorWhite
	case "green":
		return ColorGreen
	default:
		return ColorUnknown
	}
}

// Layout is the structural variant of an asset. Product catalogs vary by
// icon/horizontal/vertical; the company catalog varies by color scheme
// (1-color/2-color), which the inventory stores under color_type.
type Layout string

const (
	LayoutIcon       Layout = "icon"
	LayoutHorizontal Layout = "horizontal"
	LayoutVertical   Layout = "vertical"
	LayoutOneColor   Layout = "1-color"
	LayoutTwoColor   Layout = "2-color"
	LayoutUnknown    Layout = "unknown"
)

// ParseLayout maps a raw inventory string to a Layout.
func ParseLayout(s string) Layout {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "icon", "symbol":
		return LayoutIcon
	case "horizontal":
		return LayoutHorizontal
	case "vertical":
		return LayoutVertical
	case "1-color", "1color", "one-color":
		return LayoutOneColor
	case "2-color", "2color", "two-color":
		return LayoutTwoColor
	default:
		return LayoutUnknown
	}
}

// StructuralType describes which variant axis a catalog selects on.
type StructuralType string

const (
	// TypeCompany catalogs select among color-scheme variants.
	TypeCompany StructuralType = "company"
	// TypeProduct catalogs select among layout variants.
	TypeProduct StructuralType = "product"
)

// AssetRecord is one deliverable image variant.
type AssetRecord struct {
	ID          string     `json:"id"`
	URL         string     `json:"url"`
	Filename    string     `json:"filename"`
	Description string     `json:"description"`
	Guidance    string     `json:"guidance"`
	Layout      Layout     `json:"layout"`
	Color       Color      `json:"color"`
	Background  Background `json:"background"`
	Size        string     `json:"size,omitempty"`
	Format      string     `json:"format,omitempty"`
	UseCases    []string   `json:"use_cases,omitempty"`
}

// Catalog is the full set of assets belonging to one product or brand.
// Assets are ordered by asset key, which fixes the tie-break order used by
// scoring: arbitrary but stable for a given inventory document.
type Catalog struct {
	Key            string
	DisplayName    string
	Description    string
	StructuralType StructuralType
	Assets         []AssetRecord
}

// Guidelines holds the reserved brand_guidelines collection.
type Guidelines struct {
	ClearSpace   string `json:"clear_space"`
	MinimumSize  string `json:"minimum_size"`
	PrimaryGreen string `json:"primary_green"`
}

// Inventory is the decoded asset inventory. Catalogs preserve registration
// order: the company catalog first, then product catalogs sorted by key.
type Inventory struct {
	Catalogs   []*Catalog
	Guidelines Guidelines

	byKey map[string]*Catalog
}

// Catalog returns the catalog for a product key, if present.
func (inv *Inventory) Catalog(key string) (*Catalog, bool) {
	c, ok := inv.byKey[key]
	return c, ok
}

// Products returns catalog keys in registration order.
func (inv *Inventory) Products() []string {
	keys := make([]string, 0, len(inv.Catalogs))
	for _, c := range inv.Catalogs {
		keys = append(keys, c.Key)
	}
	return keys
}

// reserved top-level keys that are not product collections.
const (
	companyCollectionKey    = "logos"
	guidelinesCollectionKey = "brand_guidelines"
	productCollectionSuffix = "_logos"
)

// productDescriptions are the short blurbs shown in help and listings.
var productDescriptions = map[string]string{
	"ciq":          "Main company brand",
	"fuzzball":     "HPC/AI workload management platform",
	"warewulf-pro": "HPC cluster provisioning tool",
	"apptainer":    "Container platform for HPC/scientific workflows",
	"ascender-pro": "Infrastructure automation platform",
	"bridge":       "CentOS 7 migration solution",
	"rlcx":         "Rocky Linux Commercial variants (AI, Hardened)",
	"ciq-support":  "CIQ support services",
}

// rawRecord mirrors the wire shape of one asset entry.
type rawRecord struct {
	Filename    string   `json:"filename"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Guidance    string   `json:"guidance"`
	Layout      string   `json:"layout"`
	ColorType   string   `json:"color_type"`
	Color       string   `json:"color"`
	Background  string   `json:"background"`
	Size        string   `json:"size"`
	Format      string   `json:"format"`
	UseCases    []string `json:"use_cases"`
}

// DecodeInventory parses the asset inventory document. Individual records
// that are malformed (no URL) are skipped rather than failing the whole
// document; the skipped count is returned for logging.
func DecodeInventory(data []byte) (*Inventory, int, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, 0, fmt.Errorf("decode inventory: %w", err)
	}

	inv := &Inventory{byKey: make(map[string]*Catalog)}
	skipped := 0

	if raw, ok := top[guidelinesCollectionKey]; ok {
		// Guidelines are best-effort; a malformed block leaves zero values.
		_ = json.Unmarshal(raw, &inv.Guidelines)
	}

	// Company catalog first, then product catalogs sorted by key. This fixes
	// the documented registration order used for detection tie-breaks.
	if raw, ok := top[companyCollectionKey]; ok {
		cat, n, err := decodeCatalog("ciq", TypeCompany, raw)
		if err != nil {
			return nil, 0, err
		}
		skipped += n
		inv.register(cat)
	}

	productKeys := make([]string, 0, len(top))
	for key := range top {
		if key == companyCollectionKey || key == guidelinesCollectionKey {
			continue
		}
		if strings.HasSuffix(key, productCollectionSuffix) {
			productKeys = append(productKeys, key)
		}
	}
	sort.Strings(productKeys)

	for _, key := range productKeys {
		product := strings.TrimSuffix(key, productCollectionSuffix)
		cat, n, err := decodeCatalog(product, TypeProduct, top[key])
		if err != nil {
			return nil, 0, err
		}
		skipped += n
		inv.register(cat)
	}

	return inv, skipped, nil
}

func (inv *Inventory) register(cat *Catalog) {
	inv.Catalogs = append(inv.Catalogs, cat)
	inv.byKey[cat.Key] = cat
}

func decodeCatalog(product string, st StructuralType, raw json.RawMessage) (*Catalog, int, error) {
	var entries map[string]rawRecord
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, 0, fmt.Errorf("decode %s collection: %w", product, err)
	}

	cat := &Catalog{
		Key:            product,
		DisplayName:    displayName(product),
		Description:    productDescriptions[product],
		StructuralType: st,
	}

	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	skipped := 0
	for _, key := range keys {
		rec, ok := normalizeRecord(key, st, entries[key])
		if !ok {
			skipped++
			continue
		}
		cat.Assets = append(cat.Assets, rec)
	}

	return cat, skipped, nil
}

// normalizeRecord converts a wire record to an AssetRecord. A record without
// a URL is undeliverable and is dropped here so it never reaches scoring.
func normalizeRecord(key string, st StructuralType, raw rawRecord) (AssetRecord, bool) {
	if strings.TrimSpace(raw.URL) == "" {
		return AssetRecord{}, false
	}

	layout := raw.Layout
	if st == TypeCompany && layout == "" {
		layout = raw.ColorType
	}

	return AssetRecord{
		ID:          key,
		URL:         raw.URL,
		Filename:    raw.Filename,
		Description: raw.Description,
		Guidance:    raw.Guidance,
		Layout:      ParseLayout(layout),
		Color:       ParseColor(raw.Color),
		Background:  ParseBackground(raw.Background),
		Size:        raw.Size,
		Format:      raw.Format,
		UseCases:    raw.UseCases,
	}, true
}

// displayName renders a product key for humans, e.g. "warewulf-pro" ->
// "Warewulf Pro".
func displayName(product string) string {
	if product == "ciq" {
		return "CIQ"
	}
	if product == "rlcx" {
		return "RLC(x)"
	}
	words := strings.FieldsFunc(product, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
