package service

import (
	"context"

	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/observability"
)

// ActivityRepository defines the interface for the activity store
type ActivityRepository interface {
	List(ctx context.Context) (map[string]*model.Activity, error)
	Get(ctx context.Context, name string) (*model.Activity, error)
	AddParticipant(ctx context.Context, name, email string) (*model.Activity, bool, error)
	RemoveParticipant(ctx context.Context, name, email string) (*model.Activity, bool, error)
}

// ActivityServiceConfig holds dependencies for ActivityService
type ActivityServiceConfig struct {
	Repo ActivityRepository
	Hub  *RosterHub // optional; nil disables roster event broadcasting
}

// ActivityService implements the roster operations: listing activities and
// signing students up for or unregistering them from an activity.
type ActivityService struct {
	repo ActivityRepository
	hub  *RosterHub
}

// NewActivityService creates a new activity service and primes the
// per-activity roster gauge from the store's current state.
func NewActivityService(cfg ActivityServiceConfig) *ActivityService {
	s := &ActivityService{
		repo: cfg.Repo,
		hub:  cfg.Hub,
	}
	if snapshot, err := s.repo.List(context.Background()); err == nil {
		for name, activity := range snapshot {
			observability.SetRosterSize(name, len(activity.Participants))
		}
	}
	return s
}

// ListActivities returns a snapshot of every activity keyed by name.
func (s *ActivityService) ListActivities(ctx context.Context) (map[string]*model.Activity, error) {
	return s.repo.List(ctx)
}

// GetActivity returns the named activity
func (s *ActivityService) GetActivity(ctx context.Context, name string) (*model.Activity, error) {
	activity, err := s.repo.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}
	return activity, nil
}

// Signup adds email to the named activity's roster and returns the updated
// activity. The email is treated as an opaque identifier; capacity is
// advisory and never enforced.
func (s *ActivityService) Signup(ctx context.Context, name, email string) (*model.Activity, error) {
	activity, added, err := s.repo.AddParticipant(ctx, name, email)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}
	if !added {
		return nil, ErrAlreadyRegistered
	}

	observability.RecordSignup(name, len(activity.Participants))
	s.publish(RosterEventSignup, name, email, len(activity.Participants))
	return activity, nil
}

// Unregister removes email from the named activity's roster and returns the
// updated activity.
func (s *ActivityService) Unregister(ctx context.Context, name, email string) (*model.Activity, error) {
	activity, removed, err := s.repo.RemoveParticipant(ctx, name, email)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}
	if !removed {
		return nil, ErrNotRegistered
	}

	observability.RecordUnregistration(name, len(activity.Participants))
	s.publish(RosterEventUnregister, name, email, len(activity.Participants))
	return activity, nil
}

func (s *ActivityService) publish(eventType EventType, activity, email string, participants int) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(&Event{
		Type: eventType,
		Data: RosterEvent{
			Activity:     activity,
			Email:        email,
			Participants: participants,
		},
	})
}
