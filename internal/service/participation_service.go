package service

import (
	"eventexplorer/internal/models"
)

type ParticipationService struct {
	eventStore         EventStore
	userStore          UserStore
	participationStore ParticipationStore
}

func NewParticipationService(eventStore EventStore, userStore UserStore, participationStore ParticipationStore) *ParticipationService {
	return &ParticipationService{
		eventStore:         eventStore,
		userStore:          userStore,
		participationStore: participationStore,
	}
}

// Mark records the user's status for an event, overwriting any previous
// status. Marking the same status twice is a no-op.
func (s *ParticipationService) Mark(eventID uint, username string, status models.ParticipationStatus) error {
	if _, err := s.eventStore.GetByID(eventID); err != nil {
		return err
	}
	user, err := s.userStore.GetByUsername(username)
	if err != nil {
		return err
	}

	participation := &models.EventParticipation{
		UserID:  user.ID,
		EventID: eventID,
		Status:  status,
	}
	return s.participationStore.Upsert(participation)
}

// Remove deletes the user's participation for the event. Removing a
// participation that was never marked succeeds.
func (s *ParticipationService) Remove(eventID uint, username string) error {
	if _, err := s.eventStore.GetByID(eventID); err != nil {
		return err
	}
	user, err := s.userStore.GetByUsername(username)
	if err != nil {
		return err
	}
	return s.participationStore.DeleteByEventAndUser(eventID, user.ID)
}

func (s *ParticipationService) Counts(eventID uint) (*models.ParticipationCounts, error) {
	if _, err := s.eventStore.GetByID(eventID); err != nil {
		return nil, err
	}

	interested, err := s.participationStore.CountByEventAndStatus(eventID, models.StatusInterested)
	if err != nil {
		return nil, err
	}
	going, err := s.participationStore.CountByEventAndStatus(eventID, models.StatusGoing)
	if err != nil {
		return nil, err
	}

	return &models.ParticipationCounts{
		InterestedCount: interested,
		GoingCount:      going,
	}, nil
}
