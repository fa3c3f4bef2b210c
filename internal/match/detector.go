// Package match turns free-text brand-asset requests into concrete asset
// recommendations: detection of what was asked, scoring of the catalog
// against it, and formatting of the answer.
package match

import (
	"strings"

	"github.com/b-ciq/brandkit/internal/config"
	"github.com/b-ciq/brandkit/internal/inventory"
)

// Aspect is the structural variant a request asked for. Layout terms apply
// to product catalogs, color-scheme terms to the company catalog.
type Aspect string

const (
	AspectNone       Aspect = ""
	AspectIcon       Aspect = "icon"
	AspectHorizontal Aspect = "horizontal"
	AspectVertical   Aspect = "vertical"
	AspectOneColor   Aspect = "1-color"
	AspectTwoColor   Aspect = "2-color"
	AspectGreen      Aspect = "green"
)

// Level is the detection confidence band for a parsed request.
type Level string

const (
	LevelNone   Level = "none"
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// ParsedRequest is the detector's reading of one free-text request. It is
// ephemeral; nothing persists it.
type ParsedRequest struct {
	Raw        string
	Product    string
	Background inventory.Background
	Aspect     Aspect

	ProductScore float64
	Confidence   float64
	Level        Level
	MatchedTerms []string
}

// productEntry binds a catalog key to the phrases that select it. Order in
// the registry is the tie-break order when two products score equally.
type productEntry struct {
	key      string
	keywords []string
}

// productRegistry lists every known catalog with its trigger phrases. Longer
// phrases score higher than single words, so "warewulf pro" beats a stray
// "pro" elsewhere.
var productRegistry = []productEntry{
	{"ciq", []string{"ciq", "company logo", "main logo", "brand logo"}},
	{"fuzzball", []string{"fuzzball", "fuzz ball"}},
	{"apptainer", []string{"apptainer", "singularity"}},
	{"warewulf-pro", []string{"warewulf pro", "warewulf"}},
	{"ascender-pro", []string{"ascender pro", "ascender"}},
	{"bridge", []string{"bridge"}},
	{"rlcx", []string{"rlcx", "rlc ai", "rlc hardened", "rocky linux", "rlc", "rocky"}},
	{"ciq-support", []string{"ciq support", "support"}},
}

// backgroundTable is checked in order; specific phrases come before bare
// color words so "white logo for dark background" resolves to dark.
var backgroundTable = []struct {
	phrase     string
	background inventory.Background
}{
	{"light background", inventory.BackgroundLight},
	{"dark background", inventory.BackgroundDark},
	{"light mode", inventory.BackgroundLight},
	{"dark mode", inventory.BackgroundDark},
	{"on light", inventory.BackgroundLight},
	{"on dark", inventory.BackgroundDark},
	{"light", inventory.BackgroundLight},
	{"dark", inventory.BackgroundDark},
	{"white", inventory.BackgroundLight},
	{"black", inventory.BackgroundDark},
}

// aspectTable is checked in order; first phrase found wins.
var aspectTable = []struct {
	phrase string
	aspect Aspect
}{
	{"icon", AspectIcon},
	{"symbol", AspectIcon},
	{"favicon", AspectIcon},
	{"horizontal", AspectHorizontal},
	{"lockup", AspectHorizontal},
	{"logotype", AspectHorizontal},
	{"full logo", AspectHorizontal},
	{"wide", AspectHorizontal},
	{"vertical", AspectVertical},
	{"stacked", AspectVertical},
	{"1 color", AspectOneColor},
	{"one color", AspectOneColor},
	{"standard", AspectOneColor},
	{"2 color", AspectTwoColor},
	{"two color", AspectTwoColor},
	{"hero", AspectTwoColor},
	{"green", AspectGreen},
	{"accent", AspectGreen},
}

// Detector parses free text into request attributes. It is pure: no I/O,
// deterministic for a given input and configuration.
type Detector struct {
	cfg config.MatchingConfig
}

// NewDetector builds a Detector with the given scoring weights.
func NewDetector(cfg config.MatchingConfig) *Detector {
	return &Detector{cfg: cfg}
}

// Detect parses a request. An unrecognized product leaves Product empty and
// Level at none regardless of other attributes.
func (d *Detector) Detect(request string) ParsedRequest {
	return d.DetectWithBackground(request, inventory.BackgroundUnknown)
}

// DetectWithBackground parses a request with an out-of-band background, for
// callers that accept it as a separate parameter. The override takes
// precedence over anything parsed from the text and counts as a resolved
// attribute for confidence purposes.
func (d *Detector) DetectWithBackground(request string, override inventory.Background) ParsedRequest {
	text := normalize(request)

	parsed := ParsedRequest{
		Raw:        request,
		Background: inventory.BackgroundUnknown,
		Level:      LevelNone,
	}

	parsed.Product, parsed.ProductScore, parsed.MatchedTerms = d.detectProduct(text)
	if parsed.Product == "" {
		return parsed
	}

	score := parsed.ProductScore
	fired := 1

	if bg, term, ok := detectBackground(text); ok {
		parsed.Background = bg
		parsed.MatchedTerms = append(parsed.MatchedTerms, term)
		score += float64(d.cfg.BackgroundPoints)
		fired++
	}
	if override != inventory.BackgroundUnknown {
		if parsed.Background == inventory.BackgroundUnknown {
			score += float64(d.cfg.BackgroundPoints)
			fired++
		}
		parsed.Background = override
	}

	if aspect, term, ok := detectAspect(text); ok {
		parsed.Aspect = aspect
		parsed.MatchedTerms = append(parsed.MatchedTerms, term)
		score += float64(d.cfg.LayoutPoints)
		fired++
	}

	if fired == 3 {
		score *= d.cfg.FullRequestBoost
	}

	parsed.Confidence = score
	parsed.Level = d.level(score)
	return parsed
}

// detectProduct scores every registry entry and keeps the best. Each matched
// phrase contributes TokenPoints per word, capped at ProductScoreCap; a
// strictly higher total replaces the incumbent, so registry order breaks
// ties.
func (d *Detector) detectProduct(text string) (string, float64, []string) {
	var (
		bestKey   string
		bestScore float64
		bestTerms []string
	)

	for _, entry := range productRegistry {
		score := 0.0
		var terms []string
		for _, kw := range entry.keywords {
			if containsPhrase(text, kw) {
				score += float64(d.cfg.TokenPoints * len(strings.Fields(kw)))
				terms = append(terms, kw)
			}
		}
		if score > float64(d.cfg.ProductScoreCap) {
			score = float64(d.cfg.ProductScoreCap)
		}
		if score > bestScore {
			bestKey = entry.key
			bestScore = score
			bestTerms = terms
		}
	}

	return bestKey, bestScore, bestTerms
}

func detectBackground(text string) (inventory.Background, string, bool) {
	for _, entry := range backgroundTable {
		if containsPhrase(text, entry.phrase) {
			return entry.background, entry.phrase, true
		}
	}
	return inventory.BackgroundUnknown, "", false
}

func detectAspect(text string) (Aspect, string, bool) {
	for _, entry := range aspectTable {
		if containsPhrase(text, entry.phrase) {
			return entry.aspect, entry.phrase, true
		}
	}
	return AspectNone, "", false
}

func (d *Detector) level(score float64) Level {
	switch {
	case score >= float64(d.cfg.HighThreshold):
		return LevelHigh
	case score >= float64(d.cfg.MediumThreshold):
		return LevelMedium
	case score > 0:
		return LevelLow
	default:
		return LevelNone
	}
}

// normalize lowercases the text, flattens punctuation to single spaces, and
// pads the ends, so phrase lookups are word-boundary safe: "RLC-AI?" becomes
// " rlc ai ".
func normalize(s string) string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	return " " + strings.Join(fields, " ") + " "
}

// containsPhrase matches a phrase on word boundaries within normalized text.
func containsPhrase(normalizedText, phrase string) bool {
	return strings.Contains(normalizedText, normalize(phrase))
}
