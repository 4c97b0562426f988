package classify

import "testing"

const spanishText = "Receta tradicional de paella valenciana con azafrán, " +
	"mariscos frescos y arroz. Cocinar a fuego lento durante veinte minutos " +
	"y dejar reposar antes de servir a toda la familia."

func TestLanguageGateDetect(t *testing.T) {
	gate := NewLanguageGate()

	tests := []struct {
		name        string
		text        string
		wantCode    string
		wantEnglish bool
	}{
		{"english passes", "Preheat the oven and bake the chicken with butter and garlic until golden.", "en", true},
		{"spanish is gated", spanishText, "es", false},
		{"empty passes", "", "", true},
		{"short text passes", "mix well", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, english := gate.Detect(tt.text)
			if english != tt.wantEnglish {
				t.Fatalf("Detect() english = %v, want %v (code %q)", english, tt.wantEnglish, code)
			}
			if tt.wantCode != "" && code != tt.wantCode {
				t.Errorf("Detect() code = %q, want %q", code, tt.wantCode)
			}
		})
	}
}

func TestClassifyGatesNonEnglishText(t *testing.T) {
	c := NewCuisineClassifier(WithLanguageGate(NewLanguageGate()))

	// "paella" is a high-specificity keyword, but confidently non-English
	// text must bypass the English vocabularies entirely.
	match := c.Classify("Paella valenciana tradicional", spanishText, "")
	if match.Label != "unknown" || match.Confidence != 0 {
		t.Errorf("Classify() = {%q, %v}, want {unknown, 0} for gated text", match.Label, match.Confidence)
	}
	if match.Language != "es" {
		t.Errorf("Language = %q, want %q preserved on the match", match.Language, "es")
	}
}
