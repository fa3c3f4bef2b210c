package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/b-ciq/brandkit/internal/inventory"
)

func TestScoreCatalogBackgroundHardFilter(t *testing.T) {
	inv := testInventory(t)
	cat, ok := inv.Catalog("fuzzball")
	require.True(t, ok)

	scored := ScoreCatalog(cat, inventory.BackgroundDark, AspectNone)
	require.NotEmpty(t, scored)
	for _, s := range scored {
		assert.Equal(t, inventory.BackgroundDark, s.Asset.Background,
			"asset %s leaked through the background filter", s.Asset.ID)
	}
}

func TestScoreCatalogNothingCompatible(t *testing.T) {
	inv := testInventory(t)
	cat, ok := inv.Catalog("apptainer")
	require.True(t, ok)

	// Apptainer only ships light-background art in the fixture.
	scored := ScoreCatalog(cat, inventory.BackgroundDark, AspectNone)
	assert.Empty(t, scored)
}

func TestScoreCatalogVerticalExcludedByDefault(t *testing.T) {
	inv := testInventory(t)
	cat, ok := inv.Catalog("fuzzball")
	require.True(t, ok)

	scored := ScoreCatalog(cat, inventory.BackgroundLight, AspectNone)
	for _, s := range scored {
		assert.NotEqual(t, inventory.LayoutVertical, s.Asset.Layout)
	}

	// Asking for vertical brings it back, ranked first.
	scored = ScoreCatalog(cat, inventory.BackgroundLight, AspectVertical)
	require.NotEmpty(t, scored)
	assert.Equal(t, inventory.LayoutVertical, scored[0].Asset.Layout)
}

func TestScoreCatalogProductDefaults(t *testing.T) {
	inv := testInventory(t)
	cat, ok := inv.Catalog("fuzzball")
	require.True(t, ok)

	// No layout requested: horizontal outranks icon.
	scored := ScoreCatalog(cat, inventory.BackgroundDark, AspectNone)
	require.Len(t, scored, 2)
	assert.Equal(t, inventory.LayoutHorizontal, scored[0].Asset.Layout)
	assert.Equal(t, inventory.LayoutIcon, scored[1].Asset.Layout)
}

func TestScoreCatalogExactLayoutBeatsDefault(t *testing.T) {
	inv := testInventory(t)
	cat, ok := inv.Catalog("fuzzball")
	require.True(t, ok)

	scored := ScoreCatalog(cat, inventory.BackgroundDark, AspectIcon)
	require.Len(t, scored, 2)
	assert.Equal(t, inventory.LayoutIcon, scored[0].Asset.Layout)
	assert.Greater(t, scored[0].Score, scored[1].Score)
	assert.Contains(t, scored[0].Reasons[0], "icon")
}

func TestScoreCatalogCompanyDefaults(t *testing.T) {
	inv := testInventory(t)
	cat, ok := inv.Catalog("ciq")
	require.True(t, ok)

	// No variant requested: 1-color > 2-color > green.
	scored := ScoreCatalog(cat, inventory.BackgroundLight, AspectNone)
	require.Len(t, scored, 3)
	assert.Equal(t, inventory.LayoutOneColor, scored[0].Asset.Layout)
	assert.Equal(t, inventory.LayoutTwoColor, scored[1].Asset.Layout)
	assert.Equal(t, inventory.ColorGreen, scored[2].Asset.Color)
}

func TestScoreCatalogCompanyVariantRequest(t *testing.T) {
	inv := testInventory(t)
	cat, ok := inv.Catalog("ciq")
	require.True(t, ok)

	scored := ScoreCatalog(cat, inventory.BackgroundDark, AspectTwoColor)
	require.NotEmpty(t, scored)
	assert.Equal(t, inventory.LayoutTwoColor, scored[0].Asset.Layout)

	scored = ScoreCatalog(cat, inventory.BackgroundLight, AspectGreen)
	require.NotEmpty(t, scored)
	assert.Equal(t, inventory.ColorGreen, scored[0].Asset.Color)
}

func TestScoreCatalogContrastBonus(t *testing.T) {
	inv := testInventory(t)
	cat, ok := inv.Catalog("fuzzball")
	require.True(t, ok)

	scored := ScoreCatalog(cat, inventory.BackgroundDark, AspectNone)
	require.NotEmpty(t, scored)

	// White art on a dark background earns the contrast bonus and says so.
	top := scored[0]
	assert.Equal(t, inventory.ColorWhite, top.Asset.Color)
	assert.Contains(t, top.Reasons, "white version reads best on dark backgrounds")
}

func TestScoreCatalogStableOrder(t *testing.T) {
	inv := testInventory(t)
	cat, ok := inv.Catalog("fuzzball")
	require.True(t, ok)

	first := ScoreCatalog(cat, inventory.BackgroundLight, AspectNone)
	second := ScoreCatalog(cat, inventory.BackgroundLight, AspectNone)
	assert.Equal(t, first, second)
}
