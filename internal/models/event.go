package models

import (
	"time"
)

type Event struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Date        time.Time `json:"date" gorm:"not null"`
	Location    string    `json:"location" gorm:"not null"`
	Category    string    `json:"category" gorm:"not null"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Participations []EventParticipation `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

type EventRequest struct {
	Title       string    `json:"title" validate:"required,notblank"`
	Description string    `json:"description" validate:"required,notblank"`
	Date        time.Time `json:"date" validate:"required,future"`
	Location    string    `json:"location" validate:"required,notblank"`
	Category    string    `json:"category" validate:"required,notblank"`
	ImageURL    string    `json:"imageUrl"`
}

// EventView is the read-facing representation of an event: the stored fields
// plus live participation counts and the requesting user's own status.
// Field names match what the frontend already consumes.
type EventView struct {
	ID              uint                `json:"id"`
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	Date            time.Time           `json:"date"`
	Location        string              `json:"location"`
	Category        string              `json:"category"`
	ImageURL        string              `json:"imageUrl"`
	InterestedCount int64               `json:"interestedCount"`
	GoingCount      int64               `json:"goingCount"`
	MyStatus        ParticipationStatus `json:"myStatus,omitempty"`
}
