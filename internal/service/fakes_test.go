package service

import (
	"sort"

	"eventexplorer/internal/models"
)

// fakeUserStore implements UserStore for tests.
type fakeUserStore struct {
	byUsername map[string]*models.User
	nextID     uint
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byUsername: make(map[string]*models.User)}
}

func (f *fakeUserStore) Create(user *models.User) error {
	if _, ok := f.byUsername[user.Username]; ok {
		return models.ErrUsernameTaken
	}
	f.nextID++
	user.ID = f.nextID
	stored := *user
	f.byUsername[user.Username] = &stored
	return nil
}

func (f *fakeUserStore) GetByID(id uint) (*models.User, error) {
	for _, user := range f.byUsername {
		if user.ID == id {
			cp := *user
			return &cp, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (f *fakeUserStore) GetByUsername(username string) (*models.User, error) {
	user, ok := f.byUsername[username]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

func (f *fakeUserStore) UsernameExists(username string) (bool, error) {
	_, ok := f.byUsername[username]
	return ok, nil
}

// fakeEventStore implements EventStore for tests.
type fakeEventStore struct {
	byID   map[uint]*models.Event
	nextID uint
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{byID: make(map[uint]*models.Event)}
}

func (f *fakeEventStore) Create(event *models.Event) error {
	f.nextID++
	event.ID = f.nextID
	stored := *event
	f.byID[event.ID] = &stored
	return nil
}

func (f *fakeEventStore) GetByID(id uint) (*models.Event, error) {
	event, ok := f.byID[id]
	if !ok {
		return nil, models.ErrEventNotFound
	}
	cp := *event
	return &cp, nil
}

func (f *fakeEventStore) GetAll() ([]models.Event, error) {
	events := make([]models.Event, 0, len(f.byID))
	for _, event := range f.byID {
		events = append(events, *event)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events, nil
}

func (f *fakeEventStore) Update(event *models.Event) error {
	if _, ok := f.byID[event.ID]; !ok {
		return models.ErrEventNotFound
	}
	stored := *event
	f.byID[event.ID] = &stored
	return nil
}

func (f *fakeEventStore) Delete(id uint) error {
	delete(f.byID, id)
	return nil
}

// fakeParticipationStore implements ParticipationStore for tests.
type pairKey struct {
	eventID uint
	userID  uint
}

type fakeParticipationStore struct {
	rows   map[pairKey]*models.EventParticipation
	nextID uint
}

func newFakeParticipationStore() *fakeParticipationStore {
	return &fakeParticipationStore{rows: make(map[pairKey]*models.EventParticipation)}
}

func (f *fakeParticipationStore) FindByEventAndUser(eventID, userID uint) (*models.EventParticipation, error) {
	row, ok := f.rows[pairKey{eventID: eventID, userID: userID}]
	if !ok {
		return nil, models.ErrParticipationNotFound
	}
	cp := *row
	return &cp, nil
}

func (f *fakeParticipationStore) Upsert(participation *models.EventParticipation) error {
	key := pairKey{eventID: participation.EventID, userID: participation.UserID}
	if existing, ok := f.rows[key]; ok {
		existing.Status = participation.Status
		participation.ID = existing.ID
		return nil
	}
	f.nextID++
	participation.ID = f.nextID
	stored := *participation
	f.rows[key] = &stored
	return nil
}

func (f *fakeParticipationStore) DeleteByEventAndUser(eventID, userID uint) error {
	delete(f.rows, pairKey{eventID: eventID, userID: userID})
	return nil
}

func (f *fakeParticipationStore) CountByEventAndStatus(eventID uint, status models.ParticipationStatus) (int64, error) {
	var count int64
	for _, row := range f.rows {
		if row.EventID == eventID && row.Status == status {
			count++
		}
	}
	return count, nil
}
