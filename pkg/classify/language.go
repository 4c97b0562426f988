package classify

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// minLanguageConfidence is how sure the detector must be before we treat
// a page as non-English and skip cuisine scoring. Short ingredient lists
// give weak signals, so the bar is deliberately high.
const minLanguageConfidence = 0.85

// LanguageGate wraps a lingua detector restricted to the languages recipe
// sites actually publish in. Building the detector loads language models,
// so construct one gate and share it.
type LanguageGate struct {
	detector lingua.LanguageDetector
}

func NewLanguageGate() *LanguageGate {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.English, lingua.Spanish, lingua.French, lingua.German,
			lingua.Italian, lingua.Portuguese, lingua.Dutch, lingua.Japanese,
		).
		Build()
	return &LanguageGate{detector: detector}
}

// Detect returns the ISO 639-1 code of the detected language and whether
// the text should be scored against English vocabularies. Ambiguous text
// passes through as English rather than being dropped.
func (g *LanguageGate) Detect(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", true
	}

	lang, exists := g.detector.DetectLanguageOf(text)
	if !exists {
		return "", true
	}

	code := strings.ToLower(lang.IsoCode639_1().String())
	if lang == lingua.English {
		return code, true
	}

	confidence := g.detector.ComputeLanguageConfidence(text, lang)
	if confidence < minLanguageConfidence {
		return code, true
	}
	return code, false
}
