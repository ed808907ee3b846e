package app

import "agroassist/internal/model"

const (
	SoilAcidic   = "Soil is acidic → add lime"
	SoilAlkaline = "Soil is alkaline → add gypsum"
	SoilDry      = "Soil moisture is low → irrigation needed"
	SoilWet      = "Soil too wet → risk of root rot"
	SoilHealthy  = "Soil is healthy ✅"
)

// EvaluateSoil applies the soil rules in priority order; the first match wins.
// An absent reading never satisfies a comparison, so it falls through.
// An explicit null compares as 0.
func EvaluateSoil(req model.SoilRequest) model.SoilResponse {
	ph, moisture := req.PH.NullAsZero(), req.Moisture.NullAsZero()

	var result string
	switch {
	case ph.Less(5.5):
		result = SoilAcidic
	case ph.Greater(7.5):
		result = SoilAlkaline
	case moisture.Less(30):
		result = SoilDry
	case moisture.Greater(80):
		result = SoilWet
	default:
		result = SoilHealthy
	}
	return model.SoilResponse{SoilResult: result}
}
