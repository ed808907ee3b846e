package model

type SoilRequest struct {
	PH       Number `json:"ph"`
	Moisture Number `json:"moisture"`
}

type SoilResponse struct {
	SoilResult string `json:"soilResult"`
}
