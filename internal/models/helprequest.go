package models

import "time"

type HelpStatus string

const (
	HelpStatusPending  HelpStatus = "pending"
	HelpStatusAssigned HelpStatus = "assigned"
	HelpStatusResolved HelpStatus = "resolved"
)

func (s HelpStatus) Valid() bool {
	switch s {
	case HelpStatusPending, HelpStatusAssigned, HelpStatusResolved:
		return true
	}
	return false
}

// HelpRequest is a citizen's call for assistance. Status is the only
// field that may change after creation; it always starts at pending.
type HelpRequest struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	Location      string     `json:"location"`
	Phone         string     `json:"phone"`
	EmergencyType string     `json:"emergencyType"`
	Details       string     `json:"details"`
	People        int        `json:"people"`
	Status        HelpStatus `json:"status"`
	Timestamp     time.Time  `json:"timestamp"`
}

// InsertHelpRequest deliberately has no status or timestamp field; both
// are server-assigned regardless of what the caller sends.
type InsertHelpRequest struct {
	Name          string `json:"name" binding:"required,min=2"`
	Location      string `json:"location" binding:"required,min=5"`
	Phone         string `json:"phone" binding:"required,min=10"`
	EmergencyType string `json:"emergencyType" binding:"required"`
	Details       string `json:"details" binding:"required,min=10"`
	People        *int   `json:"people" binding:"required,min=1"`
}
