package app

import (
	"strings"
	"testing"

	"agroassist/internal/model"
)

func soil(ph, moisture float64) model.SoilRequest {
	return model.SoilRequest{PH: model.NewNumber(ph), Moisture: model.NewNumber(moisture)}
}

func TestEvaluateSoil_Table(t *testing.T) {
	cases := []struct {
		name string
		req  model.SoilRequest
		want string
	}{
		{"acidic", soil(5.0, 50), SoilAcidic},
		{"acidic beats dry", soil(4.2, 10), SoilAcidic},
		{"alkaline", soil(8.1, 50), SoilAlkaline},
		{"alkaline beats wet", soil(7.6, 95), SoilAlkaline},
		{"dry", soil(6.5, 20), SoilDry},
		{"wet", soil(6.5, 85), SoilWet},
		{"healthy", soil(6.5, 50), SoilHealthy},
		{"ph boundary low", soil(5.5, 50), SoilHealthy},
		{"ph boundary high", soil(7.5, 50), SoilHealthy},
		{"moisture boundary low", soil(6.5, 30), SoilHealthy},
		{"moisture boundary high", soil(6.5, 80), SoilHealthy},
		{"out of range falls through rules", soil(-1, 500), SoilAcidic},
		{"missing everything", model.SoilRequest{}, SoilHealthy},
		{"missing ph, dry", model.SoilRequest{Moisture: model.NewNumber(10)}, SoilDry},
		{"missing moisture, alkaline", model.SoilRequest{PH: model.NewNumber(9)}, SoilAlkaline},
		{"null ph compares as zero", model.SoilRequest{PH: model.Number{Null: true}, Moisture: model.NewNumber(50)}, SoilAcidic},
		{"null moisture compares as zero", model.SoilRequest{PH: model.NewNumber(6.5), Moisture: model.Number{Null: true}}, SoilDry},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EvaluateSoil(tc.req).SoilResult; got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEvaluateSoil_AcidicAlwaysMentionsLime(t *testing.T) {
	for ph := -2.0; ph < 5.5; ph += 0.25 {
		for moisture := -10.0; moisture <= 110; moisture += 5 {
			got := EvaluateSoil(soil(ph, moisture)).SoilResult
			if !strings.Contains(got, "lime") {
				t.Fatalf("ph=%v moisture=%v: %q does not mention lime", ph, moisture, got)
			}
		}
	}
}

func TestEvaluateSoil_NeutralDryMentionsIrrigation(t *testing.T) {
	for ph := 5.5; ph <= 7.5; ph += 0.1 {
		for moisture := -5.0; moisture < 30; moisture += 2.5 {
			got := EvaluateSoil(soil(ph, moisture)).SoilResult
			if !strings.Contains(got, "irrigation") {
				t.Fatalf("ph=%v moisture=%v: %q does not mention irrigation", ph, moisture, got)
			}
		}
	}
}
