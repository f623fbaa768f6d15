package activity

import (
	"context"
	"log"
	"time"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/Domenick1991/roombooking/internal/kafka"
	"github.com/Domenick1991/roombooking/internal/repository"
	"github.com/google/uuid"
)

type ActivityUseCase interface {
	Record(ctx context.Context, activityType domain.ActivityType, page domain.PageContext, userID uuid.UUID)
	List(ctx context.Context, actor domain.Actor) ([]domain.ActivityLog, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type ActivityService struct {
	repo     repository.ActivityRepository
	producer Producer
	topic    string
}

func NewActivityService(repo repository.ActivityRepository, producer Producer, topic string) *ActivityService {
	return &ActivityService{repo: repo, producer: producer, topic: topic}
}

// Record is fire-and-forget: the entry is published for the worker to
// persist, falling back to a direct insert when the broker is unreachable.
// Failures are logged and swallowed so an audit outage never fails the
// operation being audited.
func (s *ActivityService) Record(ctx context.Context, activityType domain.ActivityType, page domain.PageContext, userID uuid.UUID) {
	now := time.Now().UTC()

	if s.producer != nil && s.topic != "" {
		event := kafka.ActivityEvent{
			TypeActivity: string(activityType),
			Page:         string(page),
			UserID:       userID.String(),
			OccurredAt:   now,
		}
		err := s.producer.Publish(ctx, s.topic, userID.String(), event)
		if err == nil {
			return
		}
		log.Printf("WARNING: failed to publish activity event %s: %v", activityType, err)
	}

	entry := &domain.ActivityLog{TypeActivity: activityType, Page: page, UserID: userID, CreatedAt: now}
	if err := s.repo.Insert(ctx, entry); err != nil {
		log.Printf("WARNING: failed to insert activity log %s: %v", activityType, err)
	}
}

func (s *ActivityService) List(ctx context.Context, actor domain.Actor) ([]domain.ActivityLog, error) {
	if !actor.Admin {
		return nil, domain.ForbiddenError("only administrators can view logs")
	}
	return s.repo.List(ctx)
}

var _ ActivityUseCase = (*ActivityService)(nil)
