package models

import (
	"time"
)

type ParticipationStatus string

const (
	StatusInterested ParticipationStatus = "INTERESTED"
	StatusGoing      ParticipationStatus = "GOING"
)

// EventParticipation records one user's declared status for one event.
// The composite unique index keeps at most one row per (user, event) pair
// even under concurrent marks.
type EventParticipation struct {
	ID        uint                `json:"id" gorm:"primaryKey"`
	UserID    uint                `json:"user_id" gorm:"not null;uniqueIndex:idx_participation_user_event"`
	EventID   uint                `json:"event_id" gorm:"not null;uniqueIndex:idx_participation_user_event"`
	Status    ParticipationStatus `json:"status" gorm:"type:varchar(16);not null"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

type ParticipationRequest struct {
	Status ParticipationStatus `json:"status" validate:"required,oneof=INTERESTED GOING"`
}

type ParticipationCounts struct {
	InterestedCount int64 `json:"interestedCount"`
	GoingCount      int64 `json:"goingCount"`
}
