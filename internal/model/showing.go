package model

import "time"

type ShowingStatus string

const (
	ShowingStatusPending   ShowingStatus = "pending"
	ShowingStatusConfirmed ShowingStatus = "confirmed"
	ShowingStatusCompleted ShowingStatus = "completed"
	ShowingStatusCancelled ShowingStatus = "cancelled"
)

// DefaultShowingDuration is applied when a showing is booked without a duration, in minutes.
const DefaultShowingDuration = 60

type Feedback struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Showing is a scheduled viewing of a property by a buyer.
type Showing struct {
	ID              string           `json:"id"`
	PropertyID      string           `json:"propertyId"`
	BuyerID         string           `json:"buyerId"`
	AgentID         string           `json:"agentId,omitempty"`
	ScheduledAt     time.Time        `json:"scheduledDate"`
	DurationMinutes int              `json:"duration"`
	Status          ShowingStatus    `json:"status"`
	Notes           string           `json:"notes,omitempty"`
	Feedback        *Feedback        `json:"feedback,omitempty"`
	Property        *PropertySummary `json:"property,omitempty"`
	Buyer           *UserSummary     `json:"buyer,omitempty"`
	Agent           *UserSummary     `json:"agent,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// Active reports whether the showing still occupies its time slot.
func (s *Showing) Active() bool {
	return s.Status == ShowingStatusPending || s.Status == ShowingStatusConfirmed
}
