package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eventexplorer/internal/models"
)

type ParticipationRepository struct {
	db *gorm.DB
}

func NewParticipationRepository(db *gorm.DB) *ParticipationRepository {
	return &ParticipationRepository{db: db}
}

func (r *ParticipationRepository) FindByEventAndUser(eventID, userID uint) (*models.EventParticipation, error) {
	var participation models.EventParticipation
	err := r.db.Where("event_id = ? AND user_id = ?", eventID, userID).First(&participation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrParticipationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &participation, nil
}

// Upsert inserts the participation row or, when one already exists for the
// (user, event) pair, overwrites its status. A single INSERT ... ON CONFLICT
// statement keeps concurrent marks from creating duplicates.
func (r *ParticipationRepository) Upsert(participation *models.EventParticipation) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "event_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(participation).Error
}

// DeleteByEventAndUser removes the pair's row. Deleting a row that does not
// exist is not an error.
func (r *ParticipationRepository) DeleteByEventAndUser(eventID, userID uint) error {
	return r.db.Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&models.EventParticipation{}).Error
}

func (r *ParticipationRepository) CountByEventAndStatus(eventID uint, status models.ParticipationStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.EventParticipation{}).
		Where("event_id = ? AND status = ?", eventID, status).
		Count(&count).Error
	return count, err
}
