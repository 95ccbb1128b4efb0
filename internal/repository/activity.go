package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/mergington/activities/internal/model"
)

// ActivityRepository is an in-memory activity store. A single mutex guards
// the map so that every check-then-mutate sequence is atomic; concurrent
// signups can never produce duplicate roster entries or lost updates.
type ActivityRepository struct {
	mu         sync.Mutex
	activities map[string]*model.Activity
}

// NewActivityRepository creates a store holding a deep copy of initial.
// Pass Seed() for the fixed school roster, or nil for an empty store.
func NewActivityRepository(initial map[string]*model.Activity) *ActivityRepository {
	activities := make(map[string]*model.Activity, len(initial))
	for name, activity := range initial {
		activities[name] = activity.Clone()
	}
	return &ActivityRepository{activities: activities}
}

// Seed returns the fixed activity set the service starts with. Participant
// order is meaningful and preserved by the store.
func Seed() map[string]*model.Activity {
	return map[string]*model.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}

// List returns a snapshot of the full name-to-activity mapping.
func (r *ActivityRepository) List(ctx context.Context) (map[string]*model.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make(map[string]*model.Activity, len(r.activities))
	for name, activity := range r.activities {
		snapshot[name] = activity.Clone()
	}
	return snapshot, nil
}

// Get returns a copy of the named activity, or nil when no such activity
// exists. Absence is not an error; the service layer owns that decision.
func (r *ActivityRepository) Get(ctx context.Context, name string) (*model.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.activities[name].Clone(), nil
}

// AddParticipant atomically appends email to the named activity's roster.
// It returns a copy of the activity after the call and whether the email
// was appended. A nil activity means the name is unknown; added == false
// with a non-nil activity means the email was already on the roster.
// Capacity is advisory and deliberately not checked here.
func (r *ActivityRepository) AddParticipant(ctx context.Context, name, email string) (*model.Activity, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return nil, false, nil
	}
	if activity.HasParticipant(email) {
		return activity.Clone(), false, nil
	}

	activity.Participants = append(activity.Participants, email)
	return activity.Clone(), true, nil
}

// RemoveParticipant atomically removes email from the named activity's
// roster, preserving the order of the remaining entries. Return values
// mirror AddParticipant: nil activity for an unknown name, removed == false
// when the email was not on the roster.
func (r *ActivityRepository) RemoveParticipant(ctx context.Context, name, email string) (*model.Activity, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return nil, false, nil
	}

	i := slices.Index(activity.Participants, email)
	if i < 0 {
		return activity.Clone(), false, nil
	}

	activity.Participants = slices.Delete(activity.Participants, i, i+1)
	return activity.Clone(), true, nil
}
