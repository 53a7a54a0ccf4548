package repository

import (
	"context"
	"fmt"

	"github.com/Anuj3937/DisasterResponse/internal/models"
)

func f64(v float64) *float64 { return &v }

var sampleDisasters = []models.InsertDisaster{
	{Lat: f64(34.05), Lng: f64(-118.24), Type: "Wildfire", Severity: models.SeverityHigh, Details: "Wildfire in Los Angeles County"},
	{Lat: f64(29.76), Lng: f64(-95.36), Type: "Flood", Severity: models.SeverityCritical, Details: "Flooding in Houston metropolitan area"},
	{Lat: f64(40.71), Lng: f64(-74.00), Type: "Storm", Severity: models.SeverityMedium, Details: "Severe thunderstorm warning"},
	{Lat: f64(33.44), Lng: f64(-112.07), Type: "Heat Wave", Severity: models.SeverityHigh, Details: "Extreme heat advisory"},
	{Lat: f64(47.60), Lng: f64(-122.33), Type: "Earthquake", Severity: models.SeverityLow, Details: "Minor seismic activity detected"},
	{Lat: f64(25.76), Lng: f64(-80.19), Type: "Hurricane", Severity: models.SeverityCritical, Details: "Hurricane warning issued for Miami"},
	{Lat: f64(41.85), Lng: f64(-87.65), Type: "Tornado", Severity: models.SeverityMedium, Details: "Tornado watch in effect"},
	{Lat: f64(39.95), Lng: f64(-75.16), Type: "Power Outage", Severity: models.SeverityLow, Details: "Localized power disruptions"},
}

var sampleNews = []models.InsertNews{
	{
		Title:    "Wildfire Update: Northern Region",
		Content:  "Containment has reached 45% as additional fire crews arrive from neighboring states. Evacuation orders remain in effect for Riverdale County.",
		Category: "Wildfire",
	},
	{
		Title:    "Hurricane Warning: Coastal Areas",
		Content:  "Category 3 hurricane expected to make landfall Friday evening. Mandatory evacuations issued for zones A through C.",
		Category: "Hurricane",
	},
	{
		Title:    "Earthquake Relief: Southern Province",
		Content:  "Relief supplies being airlifted to remote villages. Medical teams have established field hospitals in the most affected areas.",
		Category: "Earthquake",
	},
	{
		Title:    "Flood Recovery: Eastern Districts",
		Content:  "Water levels beginning to recede in most areas. Clean-up crews deployed to assist with removal of debris and restoration of essential services.",
		Category: "Flood",
	},
}

// Seed loads the fixed sample dataset through the normal create path, so
// seeded records consume ids exactly like caller-created ones.
func Seed(ctx context.Context, store Store) error {
	for _, d := range sampleDisasters {
		if _, err := store.CreateDisaster(ctx, d); err != nil {
			return fmt.Errorf("seeding disaster: %w", err)
		}
	}
	for _, n := range sampleNews {
		if _, err := store.CreateNewsItem(ctx, n); err != nil {
			return fmt.Errorf("seeding news item: %w", err)
		}
	}
	return nil
}
