package match

import (
	"fmt"
	"strings"

	"github.com/b-ciq/brandkit/internal/inventory"
)

// ResponseKind tells clients which shape of answer they received.
type ResponseKind string

const (
	// KindAnswer carries exactly one confident recommendation.
	KindAnswer ResponseKind = "answer"
	// KindAlternatives carries a primary choice plus ranked alternatives.
	KindAlternatives ResponseKind = "alternatives"
	// KindQuestion asks for exactly one missing attribute.
	KindQuestion ResponseKind = "question"
	// KindHelp lists the known products when none was recognized.
	KindHelp ResponseKind = "help"
	// KindNoMatch means the product resolved but nothing fits the criteria.
	KindNoMatch ResponseKind = "no_match"
	// KindUnavailable means the inventory could not be loaded.
	KindUnavailable ResponseKind = "unavailable"
)

// UnavailableMessage is the friendly text shown when the inventory cannot
// be fetched. Raw transport errors never reach end users.
const UnavailableMessage = "The brand asset inventory isn't reachable right now. " +
	"Please try again in a moment, or contact the brand team if this keeps happening."

// AssetChoice is one recommended asset in a response.
type AssetChoice struct {
	ID          string   `json:"id"`
	Product     string   `json:"product"`
	Filename    string   `json:"filename"`
	URL         string   `json:"url"`
	Description string   `json:"description,omitempty"`
	Guidance    string   `json:"guidance,omitempty"`
	Layout      string   `json:"layout"`
	Color       string   `json:"color"`
	Background  string   `json:"background"`
	Score       int      `json:"score"`
	Reasons     []string `json:"reasons,omitempty"`
}

// Question asks the caller for one missing attribute.
type Question struct {
	Attribute string   `json:"attribute"`
	Prompt    string   `json:"prompt"`
	Options   []string `json:"options"`
}

// ProductSummary is one catalog in a help listing.
type ProductSummary struct {
	Key         string `json:"key"`
	DisplayName string `json:"display_name"`
	Description string `json:"description,omitempty"`
	AssetCount  int    `json:"asset_count"`
}

// Response is the single payload shape for every outcome of a request.
// Exactly one of Primary/Question/Products is populated depending on Kind;
// Message always carries renderable text.
type Response struct {
	Kind         ResponseKind     `json:"kind"`
	Level        Level            `json:"confidence"`
	Product      string           `json:"product,omitempty"`
	Message      string           `json:"message"`
	Primary      *AssetChoice     `json:"primary,omitempty"`
	Alternatives []AssetChoice    `json:"alternatives,omitempty"`
	Question     *Question        `json:"question,omitempty"`
	Products     []ProductSummary `json:"products,omitempty"`
}

// maxAlternatives bounds how many runner-up choices a response carries.
const maxAlternatives = 2

// Respond maps a parsed request against the inventory to a Response. Pure
// function: same inventory and parse always produce the same answer.
//
// The outcome ladder: no product -> help; missing background -> question;
// company catalog without a variant -> question; nothing compatible ->
// no-match; high confidence with a clear winner -> single answer; otherwise
// primary plus alternatives.
func Respond(inv *inventory.Inventory, parsed ParsedRequest) Response {
	if parsed.Product == "" {
		return helpResponse(inv, "I couldn't tell which product you mean.")
	}

	cat, ok := inv.Catalog(parsed.Product)
	if !ok {
		return helpResponse(inv, fmt.Sprintf("I don't have assets for %q yet.", parsed.Product))
	}

	if parsed.Background == inventory.BackgroundUnknown {
		return questionResponse(cat, parsed.Level, backgroundQuestion(cat))
	}

	if cat.StructuralType == inventory.TypeCompany && !isVariantAspect(parsed.Aspect) {
		return questionResponse(cat, parsed.Level, variantQuestion(cat))
	}

	scored := ScoreCatalog(cat, parsed.Background, parsed.Aspect)
	if len(scored) == 0 {
		return noMatchResponse(cat, parsed.Background)
	}

	if parsed.Level == LevelHigh && hasClearWinner(scored) {
		return answerResponse(cat, scored[0])
	}

	return alternativesResponse(cat, parsed.Level, scored)
}

func isVariantAspect(a Aspect) bool {
	return a == AspectOneColor || a == AspectTwoColor || a == AspectGreen
}

// hasClearWinner reports whether the top score is strictly ahead of the
// runner-up. A tie at the top degrades a high-confidence request to the
// alternatives shape.
func hasClearWinner(scored []ScoredAsset) bool {
	return len(scored) == 1 || scored[0].Score > scored[1].Score
}

func helpResponse(inv *inventory.Inventory, lead string) Response {
	var b strings.Builder
	b.WriteString(lead)
	b.WriteString(" I can help you find brand assets for:\n\n")

	products := make([]ProductSummary, 0, len(inv.Catalogs))
	for _, cat := range inv.Catalogs {
		products = append(products, ProductSummary{
			Key:         cat.Key,
			DisplayName: cat.DisplayName,
			Description: cat.Description,
			AssetCount:  len(cat.Assets),
		})
		if cat.Description != "" {
			fmt.Fprintf(&b, "- **%s** — %s\n", cat.DisplayName, cat.Description)
		} else {
			fmt.Fprintf(&b, "- **%s**\n", cat.DisplayName)
		}
	}

	b.WriteString("\nTry something like \"Fuzzball icon for a dark background\" or \"CIQ 1-color logo on light\".")

	return Response{
		Kind:     KindHelp,
		Level:    LevelNone,
		Message:  b.String(),
		Products: products,
	}
}

func backgroundQuestion(cat *inventory.Catalog) Question {
	return Question{
		Attribute: "background",
		Prompt: fmt.Sprintf("Will the %s logo go on a light or dark background?",
			cat.DisplayName),
		Options: []string{"light", "dark"},
	}
}

func variantQuestion(cat *inventory.Catalog) Question {
	return Question{
		Attribute: "variant",
		Prompt: fmt.Sprintf("Which %s logo variant do you need? 1-color is the standard choice, "+
			"2-color suits hero placements, green is the accent treatment.", cat.DisplayName),
		Options: []string{"1-color", "2-color", "green"},
	}
}

func questionResponse(cat *inventory.Catalog, level Level, q Question) Response {
	return Response{
		Kind:     KindQuestion,
		Level:    level,
		Product:  cat.Key,
		Message:  q.Prompt,
		Question: &q,
	}
}

func noMatchResponse(cat *inventory.Catalog, background inventory.Background) Response {
	return Response{
		Kind:    KindNoMatch,
		Level:   LevelNone,
		Product: cat.Key,
		Message: fmt.Sprintf("No %s assets are designed for a %s background. "+
			"Try the other background, or ask for the full %s listing.",
			cat.DisplayName, background, cat.DisplayName),
	}
}

func answerResponse(cat *inventory.Catalog, top ScoredAsset) Response {
	choice := toChoice(cat, top)

	var b strings.Builder
	fmt.Fprintf(&b, "**%s** — %s\n\n", cat.DisplayName, choice.Filename)
	fmt.Fprintf(&b, "Download: %s\n", choice.URL)
	if choice.Guidance != "" {
		fmt.Fprintf(&b, "\n%s\n", choice.Guidance)
	}

	return Response{
		Kind:    KindAnswer,
		Level:   LevelHigh,
		Product: cat.Key,
		Message: b.String(),
		Primary: &choice,
	}
}

func alternativesResponse(cat *inventory.Catalog, level Level, scored []ScoredAsset) Response {
	primary := toChoice(cat, scored[0])

	var alternatives []AssetChoice
	for _, s := range scored[1:] {
		if len(alternatives) == maxAlternatives {
			break
		}
		alternatives = append(alternatives, toChoice(cat, s))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Best match for **%s**: %s\n", cat.DisplayName, primary.Filename)
	for _, r := range primary.Reasons {
		fmt.Fprintf(&b, "- %s\n", r)
	}
	fmt.Fprintf(&b, "\nDownload: %s\n", primary.URL)

	if len(alternatives) > 0 {
		b.WriteString("\nAlternatives:\n")
		for _, alt := range alternatives {
			fmt.Fprintf(&b, "- %s (%s)\n", alt.Filename, strings.Join(alt.Reasons, "; "))
		}
	}

	if level == LevelNone {
		level = LevelLow
	}

	return Response{
		Kind:         KindAlternatives,
		Level:        level,
		Product:      cat.Key,
		Message:      b.String(),
		Primary:      &primary,
		Alternatives: alternatives,
	}
}

func toChoice(cat *inventory.Catalog, s ScoredAsset) AssetChoice {
	return AssetChoice{
		ID:          s.Asset.ID,
		Product:     cat.Key,
		Filename:    s.Asset.Filename,
		URL:         s.Asset.URL,
		Description: s.Asset.Description,
		Guidance:    s.Asset.Guidance,
		Layout:      string(s.Asset.Layout),
		Color:       string(s.Asset.Color),
		Background:  string(s.Asset.Background),
		Score:       s.Score,
		Reasons:     s.Reasons,
	}
}
