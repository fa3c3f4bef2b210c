package match

import (
	"fmt"
	"sort"

	"github.com/b-ciq/brandkit/internal/inventory"
)

// Scoring weights for ranking assets within a catalog. These encode fixed
// preference orderings rather than tunables: exact requests dominate
// defaults, and default variants rank standard > hero > accent.
const (
	exactMatchPoints     = 40
	primaryDefaultPoints = 20
	secondDefaultPoints  = 10
	thirdDefaultPoints   = 5
	contrastPoints       = 10
)

// ScoredAsset is one catalog record with its rank and the human-readable
// reasons it earned it.
type ScoredAsset struct {
	Asset   inventory.AssetRecord
	Score   int
	Reasons []string
}

// ScoreCatalog ranks a catalog's assets against a resolved background and an
// optional requested aspect. The background is a hard filter: records for a
// different background, or with no stated background, never appear in the
// result. An empty result means nothing compatible exists, which callers
// must surface explicitly.
func ScoreCatalog(cat *inventory.Catalog, background inventory.Background, aspect Aspect) []ScoredAsset {
	var scored []ScoredAsset

	for _, asset := range cat.Assets {
		if asset.URL == "" {
			continue
		}
		if background != inventory.BackgroundUnknown && asset.Background != background {
			continue
		}
		// Vertical lockups are a last resort: offered only on request.
		if cat.StructuralType == inventory.TypeProduct &&
			asset.Layout == inventory.LayoutVertical && aspect != AspectVertical {
			continue
		}

		var (
			score   int
			reasons []string
		)
		if cat.StructuralType == inventory.TypeCompany {
			score, reasons = scoreCompanyAsset(asset, aspect)
		} else {
			score, reasons = scoreProductAsset(asset, aspect)
		}

		if bonus, reason := contrastBonus(asset, background); bonus > 0 {
			score += bonus
			reasons = append(reasons, reason)
		}

		scored = append(scored, ScoredAsset{Asset: asset, Score: score, Reasons: reasons})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// scoreCompanyAsset ranks company-catalog records, which vary by color
// scheme: 1-color, 2-color, or the green accent treatment.
func scoreCompanyAsset(asset inventory.AssetRecord, aspect Aspect) (int, []string) {
	if variantMatches(asset, aspect) {
		return exactMatchPoints, []string{fmt.Sprintf("matches the requested %s variant", aspect)}
	}

	switch {
	case asset.Layout == inventory.LayoutOneColor:
		return primaryDefaultPoints, []string{"1-color is the standard choice for most uses"}
	case asset.Layout == inventory.LayoutTwoColor:
		return secondDefaultPoints, []string{"2-color works well for hero placements"}
	case asset.Color == inventory.ColorGreen:
		return thirdDefaultPoints, []string{"green accent variant for brand-forward contexts"}
	}
	return 0, nil
}

// scoreProductAsset ranks product-catalog records, which vary by layout.
func scoreProductAsset(asset inventory.AssetRecord, aspect Aspect) (int, []string) {
	if layoutMatches(asset, aspect) {
		return exactMatchPoints, []string{fmt.Sprintf("matches the requested %s layout", aspect)}
	}

	switch asset.Layout {
	case inventory.LayoutHorizontal:
		return primaryDefaultPoints, []string{"horizontal layout is the default recommendation"}
	case inventory.LayoutIcon:
		return secondDefaultPoints, []string{"icon works for compact placements"}
	}
	return 0, nil
}

func variantMatches(asset inventory.AssetRecord, aspect Aspect) bool {
	switch aspect {
	case AspectOneColor:
		return asset.Layout == inventory.LayoutOneColor
	case AspectTwoColor:
		return asset.Layout == inventory.LayoutTwoColor
	case AspectGreen:
		return asset.Color == inventory.ColorGreen
	}
	return false
}

func layoutMatches(asset inventory.AssetRecord, aspect Aspect) bool {
	switch aspect {
	case AspectIcon:
		return asset.Layout == inventory.LayoutIcon
	case AspectHorizontal:
		return asset.Layout == inventory.LayoutHorizontal
	case AspectVertical:
		return asset.Layout == inventory.LayoutVertical
	}
	return false
}

// contrastBonus rewards ink colors that read correctly on the resolved
// background: black on light, white on dark.
func contrastBonus(asset inventory.AssetRecord, background inventory.Background) (int, string) {
	switch {
	case background == inventory.BackgroundLight && asset.Color == inventory.ColorBlack:
		return contrastPoints, "black version reads best on light backgrounds"
	case background == inventory.BackgroundDark && asset.Color == inventory.ColorWhite:
		return contrastPoints, "white version reads best on dark backgrounds"
	}
	return 0, ""
}
