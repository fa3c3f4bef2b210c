package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/b-ciq/brandkit/internal/inventory"
)

func respond(t *testing.T, request string) Response {
	t.Helper()
	d := NewDetector(testMatchingConfig())
	return Respond(testInventory(t), d.Detect(request))
}

func TestRespondUnknownProductGetsHelp(t *testing.T) {
	resp := respond(t, "I need a sandwich picture")

	assert.Equal(t, KindHelp, resp.Kind)
	assert.Equal(t, LevelNone, resp.Level)
	require.NotEmpty(t, resp.Products)
	assert.Equal(t, "ciq", resp.Products[0].Key)
	assert.Contains(t, resp.Message, "Fuzzball")
}

func TestRespondVagueRequestAsksBackgroundFirst(t *testing.T) {
	// Product known, nothing else: background is always the first question,
	// even for the company catalog which also needs a variant.
	for _, request := range []string{"I need a fuzzball logo", "ciq logo please"} {
		resp := respond(t, request)
		assert.Equal(t, KindQuestion, resp.Kind, "request %q", request)
		require.NotNil(t, resp.Question)
		assert.Equal(t, "background", resp.Question.Attribute)
		assert.ElementsMatch(t, []string{"light", "dark"}, resp.Question.Options)
		assert.Nil(t, resp.Primary)
	}
}

func TestRespondCompanyNeedsVariant(t *testing.T) {
	resp := respond(t, "CIQ logo for a light background")

	assert.Equal(t, KindQuestion, resp.Kind)
	require.NotNil(t, resp.Question)
	assert.Equal(t, "variant", resp.Question.Attribute)
	assert.ElementsMatch(t, []string{"1-color", "2-color", "green"}, resp.Question.Options)
}

func TestRespondCompanyVariantResolved(t *testing.T) {
	resp := respond(t, "CIQ 1-color logo for a light background")

	// Full company request: exactly one confident answer.
	assert.Equal(t, KindAnswer, resp.Kind)
	assert.Equal(t, LevelHigh, resp.Level)
	require.NotNil(t, resp.Primary)
	assert.Equal(t, "ciq-1color-light", resp.Primary.ID)
	assert.Empty(t, resp.Alternatives)
}

func TestRespondFullProductRequestSingleAnswer(t *testing.T) {
	resp := respond(t, "fuzzball icon for a dark background")

	assert.Equal(t, KindAnswer, resp.Kind)
	assert.Equal(t, LevelHigh, resp.Level)
	require.NotNil(t, resp.Primary)
	assert.Equal(t, "fuzzball-icon-dark", resp.Primary.ID)
	assert.Contains(t, resp.Message, resp.Primary.URL)
	assert.Contains(t, resp.Message, "keep clear space")
	assert.Empty(t, resp.Alternatives)
}

func TestRespondMediumConfidenceOffersAlternatives(t *testing.T) {
	resp := respond(t, "fuzzball logo for a dark background")

	assert.Equal(t, KindAlternatives, resp.Kind)
	assert.Equal(t, LevelMedium, resp.Level)
	require.NotNil(t, resp.Primary)
	assert.Equal(t, "fuzzball-h-dark", resp.Primary.ID)
	require.NotEmpty(t, resp.Primary.Reasons)
	assert.LessOrEqual(t, len(resp.Alternatives), 2)
	for _, alt := range resp.Alternatives {
		assert.NotEmpty(t, alt.Reasons)
	}
}

func TestRespondNoCompatibleAssets(t *testing.T) {
	resp := respond(t, "apptainer icon for a dark background")

	assert.Equal(t, KindNoMatch, resp.Kind)
	assert.Equal(t, "apptainer", resp.Product)
	assert.Contains(t, resp.Message, "Apptainer")
	assert.Contains(t, resp.Message, "dark")
	assert.Nil(t, resp.Primary)
}

func TestRespondHighConfidenceTieDegrades(t *testing.T) {
	// Two identical-scoring icon records force the alternatives shape even
	// at high confidence.
	inv := testInventory(t)
	cat, ok := inv.Catalog("fuzzball")
	require.True(t, ok)
	dup := cat.Assets[0]
	for i, a := range cat.Assets {
		if a.ID == "fuzzball-icon-dark" {
			dup = cat.Assets[i]
		}
	}
	dup.ID = "fuzzball-icon-dark-alt"
	cat.Assets = append(cat.Assets, dup)

	d := NewDetector(testMatchingConfig())
	resp := Respond(inv, d.Detect("fuzzball icon for a dark background"))

	assert.Equal(t, KindAlternatives, resp.Kind)
	require.NotNil(t, resp.Primary)
	assert.NotEmpty(t, resp.Alternatives)
}

func TestRespondAnswerURLRoundTrip(t *testing.T) {
	inv := testInventory(t)
	d := NewDetector(testMatchingConfig())
	resp := Respond(inv, d.Detect("fuzzball icon for a dark background"))

	require.NotNil(t, resp.Primary)
	cat, ok := inv.Catalog("fuzzball")
	require.True(t, ok)

	var found bool
	for _, a := range cat.Assets {
		if a.ID == resp.Primary.ID {
			found = true
			assert.Equal(t, a.URL, resp.Primary.URL)
		}
	}
	assert.True(t, found)
}

func TestRespondDeterministic(t *testing.T) {
	first := respond(t, "warewulf logo for a dark background")
	second := respond(t, "warewulf logo for a dark background")
	assert.Equal(t, first, second)
	assert.Equal(t, KindAlternatives, first.Kind)
	assert.Equal(t, "warewulf-pro", first.Product)
	assert.Equal(t, inventory.LayoutHorizontal, inventory.Layout(first.Primary.Layout))
}
