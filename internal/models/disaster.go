package models

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Disaster is a single incident shown on the live map.
type Disaster struct {
	ID       int      `json:"id"`
	Lat      float64  `json:"lat"`
	Lng      float64  `json:"lng"`
	Type     string   `json:"type"`
	Severity Severity `json:"severity"`
	Details  string   `json:"details"`
}

// InsertDisaster is the caller-supplied creation payload. The id is
// assigned by the store and is never bound from a request body.
// Lat/Lng are pointers so a coordinate of 0 still satisfies required.
type InsertDisaster struct {
	Lat      *float64 `json:"lat" binding:"required"`
	Lng      *float64 `json:"lng" binding:"required"`
	Type     string   `json:"type" binding:"required"`
	Severity Severity `json:"severity" binding:"required,oneof=low medium high critical"`
	Details  string   `json:"details" binding:"required"`
}

type Coordinates struct {
	Lat float64
	Lng float64
}

func (d *Disaster) Coordinates() Coordinates {
	return Coordinates{Lat: d.Lat, Lng: d.Lng}
}
