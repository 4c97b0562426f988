// Package ingredient splits free-text ingredient lines into structured
// quantity/unit/name/preparation fields. Parsing never fails: a line with
// no recognizable quantity still comes back with its text as the name and
// the original retained verbatim.
package ingredient

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mealworks/recipe-harvester/models"
)

var (
	bulletPrefixPattern = regexp.MustCompile(`^\s*(?:[-*•·]\s*|\d+[.)]\s+)`)

	// Quantity grammars, most specific first so "2 1/2" is a mixed number
	// rather than the integer 2, and "1-2" is a range rather than 1.
	mixedPattern    = regexp.MustCompile(`^(\d+)\s+(\d+)\s*/\s*(\d+)\b`)
	fractionPattern = regexp.MustCompile(`^(\d+)\s*/\s*(\d+)\b`)
	rangePattern    = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*[-–]\s*(\d+(?:\.\d+)?)\b`)
	decimalPattern  = regexp.MustCompile(`^(\d+(?:\.\d+)?)\b`)
)

// unicodeFractions normalizes the vulgar fraction characters recipe sites
// love into plain a/b text before parsing.
var unicodeFractions = strings.NewReplacer(
	"½", " 1/2", "⅓", " 1/3", "⅔", " 2/3", "¼", " 1/4", "¾", " 3/4",
	"⅛", " 1/8", "⅜", " 3/8", "⅝", " 5/8", "⅞", " 7/8",
)

type Parser struct {
	unitTokens []string
}

// NewParser builds a parser over the default unit vocabulary.
func NewParser() *Parser {
	return NewParserWithUnits(DefaultUnits())
}

// NewParserWithUnits builds a parser over a caller-supplied vocabulary,
// grouped by kind the way DefaultUnits is.
func NewParserWithUnits(groups map[string][]string) *Parser {
	return &Parser{unitTokens: flattenUnits(groups)}
}

// Parse splits one ingredient line. The original text is always retained
// verbatim for audit, even when no structured field could be extracted.
func (p *Parser) Parse(line string) models.ParsedIngredient {
	parsed := models.ParsedIngredient{Original: line}

	text := bulletPrefixPattern.ReplaceAllString(line, "")
	text = strings.TrimSpace(unicodeFractions.Replace(text))
	text = strings.TrimSpace(text)

	quantity, rest := extractQuantity(text)
	if quantity != nil {
		parsed.Quantity = quantity
		text = rest
	}

	if unit, rest := matchUnit(p.unitTokens, text); unit != "" {
		parsed.Unit = unit
		text = rest
	}

	name, preparation := splitPreparation(text)
	if name == "" {
		name = strings.TrimSpace(line)
	}
	parsed.Name = name
	parsed.Preparation = preparation

	return parsed
}

// ParseAll parses a recipe's ingredient list, preserving order.
func (p *Parser) ParseAll(lines []string) []models.ParsedIngredient {
	out := make([]models.ParsedIngredient, 0, len(lines))
	for _, line := range lines {
		out = append(out, p.Parse(line))
	}
	return out
}

// extractQuantity tries each numeric grammar in order; the first match
// wins. Ranges resolve to their arithmetic mean.
func extractQuantity(text string) (*float64, string) {
	if m := mixedPattern.FindStringSubmatch(text); m != nil {
		whole, _ := strconv.ParseFloat(m[1], 64)
		num, _ := strconv.ParseFloat(m[2], 64)
		den, _ := strconv.ParseFloat(m[3], 64)
		if den != 0 {
			q := whole + num/den
			return &q, strings.TrimSpace(text[len(m[0]):])
		}
	}
	if m := fractionPattern.FindStringSubmatch(text); m != nil {
		num, _ := strconv.ParseFloat(m[1], 64)
		den, _ := strconv.ParseFloat(m[2], 64)
		if den != 0 {
			q := num / den
			return &q, strings.TrimSpace(text[len(m[0]):])
		}
	}
	if m := rangePattern.FindStringSubmatch(text); m != nil {
		lo, _ := strconv.ParseFloat(m[1], 64)
		hi, _ := strconv.ParseFloat(m[2], 64)
		q := (lo + hi) / 2
		return &q, strings.TrimSpace(text[len(m[0]):])
	}
	if m := decimalPattern.FindStringSubmatch(text); m != nil {
		q, _ := strconv.ParseFloat(m[1], 64)
		return &q, strings.TrimSpace(text[len(m[0]):])
	}
	return nil, text
}

// splitPreparation splits on the first comma: "flour, sifted" becomes the
// name "flour" and preparation note "sifted".
func splitPreparation(text string) (string, string) {
	name, prep, found := strings.Cut(text, ",")
	name = strings.TrimSpace(name)
	if !found {
		return name, ""
	}
	return name, strings.TrimSpace(prep)
}
