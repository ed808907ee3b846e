package model

import (
	"bytes"
	"encoding/json"
)

// LeafLabels is the output ordering of the leaf classification model.
var LeafLabels = [...]string{"Healthy", "Fungal Disease", "Bacterial Disease", "Nutrient Deficiency"}

type LeafRequest struct {
	LeafImage ImagePayload `json:"leafImage"`
}

// ImagePayload is the leafImage field as sent by the client. Any JSON type is
// accepted. Provided follows loose truthiness: "", 0, false and null count as
// not provided, while objects and arrays count as provided. Only a string
// sets IsText.
type ImagePayload struct {
	Data     string
	IsText   bool
	Provided bool
}

// NewImageText returns the payload for a string leafImage.
func NewImageText(s string) ImagePayload {
	return ImagePayload{Data: s, IsText: true, Provided: s != ""}
}

func (p *ImagePayload) UnmarshalJSON(data []byte) error {
	*p = ImagePayload{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = NewImageText(s)
	case 't':
		p.Provided = true
	case 'f':
	case '{', '[':
		p.Provided = true
	default:
		var v float64
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		p.Provided = v != 0
	}
	return nil
}

// LeafResponse omits Confidence for the degraded "model not loaded" reply.
type LeafResponse struct {
	LeafStatus string `json:"leafStatus"`
	Confidence string `json:"confidence,omitempty"`
}
