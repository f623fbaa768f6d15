package scheduling

import (
	"context"
	"time"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/Domenick1991/roombooking/internal/repository"
	"github.com/google/uuid"
)

type SchedulingUseCase interface {
	Admit(ctx context.Context, actor domain.Actor, input CreateSchedulingInput) (*domain.Scheduling, error)
	Confirm(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Scheduling, error)
	Cancel(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Scheduling, error)
	List(ctx context.Context, actor domain.Actor, page, limit int) ([]domain.Scheduling, int64, error)
}

type Cache interface {
	AcquireSlotLock(ctx context.Context, roomID uuid.UUID, startsAt time.Time, ttl time.Duration) (bool, error)
	ReleaseSlotLock(ctx context.Context, roomID uuid.UUID, startsAt time.Time) error
}

type Recorder interface {
	Record(ctx context.Context, activityType domain.ActivityType, page domain.PageContext, userID uuid.UUID)
}

type SchedulingService struct {
	schedulings repository.SchedulingRepository
	windows     repository.ScheduleTimeRepository
	rooms       repository.RoomRepository
	customers   repository.CustomerRepository
	cache       Cache
	activity    Recorder
	slotLockTTL time.Duration
}

type CreateSchedulingInput struct {
	RoomID     uuid.UUID
	CustomerID uuid.UUID
	Date       string // "2006-01-02"
	Time       string // "15:04"
}

func NewSchedulingService(
	schedulings repository.SchedulingRepository,
	windows repository.ScheduleTimeRepository,
	rooms repository.RoomRepository,
	customers repository.CustomerRepository,
	cache Cache,
	activity Recorder,
	slotLockTTL time.Duration,
) *SchedulingService {
	return &SchedulingService{
		schedulings: schedulings,
		windows:     windows,
		rooms:       rooms,
		customers:   customers,
		cache:       cache,
		activity:    activity,
		slotLockTTL: slotLockTTL,
	}
}

// Admit validates a reservation request against the room's availability
// windows and existing bookings and creates it as PENDING. The block length
// always comes from the matched window, never from the caller.
func (s *SchedulingService) Admit(ctx context.Context, actor domain.Actor, input CreateSchedulingInput) (*domain.Scheduling, error) {
	if input.Date == "" || input.Time == "" || input.RoomID == uuid.Nil || input.CustomerID == uuid.Nil {
		return nil, domain.ValidationError("date, time, client and room are required")
	}

	day, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, domain.ValidationError("date must be in YYYY-MM-DD format")
	}
	minute, err := domain.MinuteOfDay(input.Time)
	if err != nil {
		return nil, domain.ValidationError("time must be in HH:MM format")
	}

	customer, err := s.customers.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if !actor.CanManage(customer.UserID) {
		return nil, domain.ForbiddenError("client does not belong to user")
	}

	if _, err := s.rooms.GetByID(ctx, input.RoomID); err != nil {
		return nil, err
	}

	window, err := s.resolveWindow(ctx, input.RoomID, minute)
	if err != nil {
		return nil, err
	}

	startsAt := time.Date(day.Year(), day.Month(), day.Day(), minute/60, minute%60, 0, 0, time.UTC)
	endsAt := startsAt.Add(time.Duration(window.BlockMinutes) * time.Minute)

	locked := false
	if s.cache != nil {
		ok, err := s.cache.AcquireSlotLock(ctx, input.RoomID, startsAt, s.slotLockTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ConflictError("room is already booked for this time")
		}
		locked = true
	}

	scheduling := &domain.Scheduling{
		CustomerID: input.CustomerID,
		RoomID:     input.RoomID,
		StartsAt:   startsAt,
		EndsAt:     endsAt,
	}
	if err := s.schedulings.CreatePending(ctx, scheduling); err != nil {
		if locked {
			_ = s.cache.ReleaseSlotLock(ctx, input.RoomID, startsAt)
		}
		return nil, err
	}

	s.activity.Record(ctx, domain.ActivityCreateSchedule, domain.PageSchedule, actor.ID)
	return scheduling, nil
}

// resolveWindow returns the first window of the room containing the
// wall-clock minute, both window ends inclusive. Windows are ordered by
// start time and cannot overlap, so first-match is unambiguous.
func (s *SchedulingService) resolveWindow(ctx context.Context, roomID uuid.UUID, minute int) (*domain.ScheduleTime, error) {
	windows, err := s.windows.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	for i := range windows {
		if windows[i].Contains(minute) {
			return &windows[i], nil
		}
	}
	return nil, domain.NoAvailabilityError("room has no availability window covering this time")
}

func (s *SchedulingService) Confirm(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Scheduling, error) {
	if !actor.Admin {
		return nil, domain.ForbiddenError("only administrators can confirm schedulings")
	}

	current, err := s.schedulings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != domain.SchedulingStatusPending {
		return nil, domain.InvalidStateError("only pending schedulings can be confirmed")
	}

	updated, err := s.schedulings.UpdateStatus(ctx, id, domain.SchedulingStatusConfirmed)
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, domain.ActivityConfirmSchedule, domain.PageSchedule, actor.ID)
	return updated, nil
}

func (s *SchedulingService) Cancel(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Scheduling, error) {
	current, err := s.schedulings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customer, err := s.customers.GetByID(ctx, current.CustomerID)
	if err != nil {
		return nil, err
	}
	if !actor.CanManage(customer.UserID) {
		return nil, domain.ForbiddenError("no permission to cancel this scheduling")
	}

	if current.Status == domain.SchedulingStatusCanceled {
		return nil, domain.InvalidStateError("scheduling already canceled")
	}

	updated, err := s.schedulings.UpdateStatus(ctx, id, domain.SchedulingStatusCanceled)
	if err != nil {
		return nil, err
	}

	// the slot becomes bookable again immediately
	if s.cache != nil {
		_ = s.cache.ReleaseSlotLock(ctx, updated.RoomID, updated.StartsAt)
	}

	s.activity.Record(ctx, domain.ActivityCancelSchedule, domain.PageSchedule, actor.ID)
	return updated, nil
}

func (s *SchedulingService) List(ctx context.Context, actor domain.Actor, page, limit int) ([]domain.Scheduling, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return s.schedulings.ListPage(ctx, actor.ID, actor.Admin, page, limit)
}

var _ SchedulingUseCase = (*SchedulingService)(nil)
