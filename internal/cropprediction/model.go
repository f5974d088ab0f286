package cropprediction

import (
	"errors"
	"time"
)

type CropPrediction struct {
	ID                uint              `json:"id"`
	SoilPh            float64           `json:"soilPh"`
	WaterAvailability string            `json:"waterAvailability"`
	Season            string            `json:"season"`
	SoilType          string            `json:"soilType"`
	GrowingPeriod     string            `json:"growingPeriod"`
	RecommendedCrops  []RecommendedCrop `json:"recommendedCrops"`
	Description       string            `json:"description,omitempty"`
	Fertilizers       []string          `json:"fertilizers"`
	CreatedAt         time.Time         `json:"createdAt"`
}

type RecommendedCrop struct {
	Name string `json:"name"`
	// Priority 1 marks the best crop, 2 an alternative.
	Priority int    `json:"priority"`
	ImageURL string `json:"imageUrl,omitempty"`
}

var (
	ErrNotFound   = errors.New("prediction not found")
	ErrValidation = errors.New("invalid prediction fields")
)

var (
	waterLevels    = map[string]bool{"Low": true, "Medium": true, "High": true}
	seasons        = map[string]bool{"Winter": true, "Monsoon": true, "Summer": true}
	soilTypes      = map[string]bool{"Sandy": true, "Loamy": true, "Clay": true, "Black": true, "Alluvial": true}
	growingPeriods = map[string]bool{"Short": true, "Medium": true, "Long": true}
)

// Validate checks the reference-data constraints carried over from the crop
// advisory dataset: pH within the typical crop range, closed enums, bounded
// description, recommended crops with a valid priority.
func (p *CropPrediction) Validate() error {
	if p.SoilPh < 4 || p.SoilPh > 9 {
		return ErrValidation
	}
	if !waterLevels[p.WaterAvailability] || !seasons[p.Season] ||
		!soilTypes[p.SoilType] || !growingPeriods[p.GrowingPeriod] {
		return ErrValidation
	}
	if len(p.Description) > 500 {
		return ErrValidation
	}
	for _, crop := range p.RecommendedCrops {
		if crop.Name == "" || (crop.Priority != 1 && crop.Priority != 2) {
			return ErrValidation
		}
	}
	return nil
}
