package service

import (
	"errors"

	"eventexplorer/internal/models"
)

type EventStore interface {
	Create(event *models.Event) error
	GetByID(id uint) (*models.Event, error)
	GetAll() ([]models.Event, error)
	Update(event *models.Event) error
	Delete(id uint) error
}

type ParticipationStore interface {
	FindByEventAndUser(eventID, userID uint) (*models.EventParticipation, error)
	Upsert(participation *models.EventParticipation) error
	DeleteByEventAndUser(eventID, userID uint) error
	CountByEventAndStatus(eventID uint, status models.ParticipationStatus) (int64, error)
}

type EventService struct {
	eventStore         EventStore
	participationStore ParticipationStore
}

func NewEventService(eventStore EventStore, participationStore ParticipationStore) *EventService {
	return &EventService{
		eventStore:         eventStore,
		participationStore: participationStore,
	}
}

// ListEvents returns every event annotated with live counts and, when viewer
// is non-nil, the viewer's own participation status.
func (s *EventService) ListEvents(viewer *models.User) ([]models.EventView, error) {
	events, err := s.eventStore.GetAll()
	if err != nil {
		return nil, err
	}

	views := make([]models.EventView, 0, len(events))
	for i := range events {
		view, err := s.buildView(&events[i], viewer)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *EventService) GetEvent(id uint, viewer *models.User) (*models.EventView, error) {
	event, err := s.eventStore.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.buildView(event, viewer)
}

func (s *EventService) CreateEvent(req models.EventRequest) (*models.EventView, error) {
	event := &models.Event{}
	applyRequest(event, req)

	if err := s.eventStore.Create(event); err != nil {
		return nil, err
	}
	return s.buildView(event, nil)
}

func (s *EventService) UpdateEvent(id uint, req models.EventRequest) (*models.EventView, error) {
	event, err := s.eventStore.GetByID(id)
	if err != nil {
		return nil, err
	}
	applyRequest(event, req)

	if err := s.eventStore.Update(event); err != nil {
		return nil, err
	}
	return s.buildView(event, nil)
}

func (s *EventService) DeleteEvent(id uint) error {
	if _, err := s.eventStore.GetByID(id); err != nil {
		return err
	}
	return s.eventStore.Delete(id)
}

func applyRequest(event *models.Event, req models.EventRequest) {
	event.Title = req.Title
	event.Description = req.Description
	event.Date = req.Date
	event.Location = req.Location
	event.Category = req.Category
	event.ImageURL = req.ImageURL
}

// buildView reads counts from the store on every call so the view always
// reflects the current database state.
func (s *EventService) buildView(event *models.Event, viewer *models.User) (*models.EventView, error) {
	interested, err := s.participationStore.CountByEventAndStatus(event.ID, models.StatusInterested)
	if err != nil {
		return nil, err
	}
	going, err := s.participationStore.CountByEventAndStatus(event.ID, models.StatusGoing)
	if err != nil {
		return nil, err
	}

	view := &models.EventView{
		ID:              event.ID,
		Title:           event.Title,
		Description:     event.Description,
		Date:            event.Date,
		Location:        event.Location,
		Category:        event.Category,
		ImageURL:        event.ImageURL,
		InterestedCount: interested,
		GoingCount:      going,
	}

	if viewer != nil {
		participation, err := s.participationStore.FindByEventAndUser(event.ID, viewer.ID)
		switch {
		case err == nil:
			view.MyStatus = participation.Status
		case !errors.Is(err, models.ErrParticipationNotFound):
			return nil, err
		}
	}
	return view, nil
}
