package scheduletimes

import (
	"context"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/Domenick1991/roombooking/internal/repository"
	"github.com/google/uuid"
)

type ScheduleTimeUseCase interface {
	Create(ctx context.Context, actor domain.Actor, input CreateScheduleTimeInput) (*domain.ScheduleTime, error)
	Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input UpdateScheduleTimeInput) (*domain.ScheduleTime, error)
	List(ctx context.Context, actor domain.Actor, roomID uuid.UUID) ([]domain.ScheduleTime, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ScheduleTime, error)
	Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error
}

type ScheduleTimeService struct {
	windows repository.ScheduleTimeRepository
	rooms   repository.RoomRepository
}

type CreateScheduleTimeInput struct {
	RoomID       uuid.UUID
	StartTime    string
	EndTime      string
	BlockMinutes int
}

type UpdateScheduleTimeInput struct {
	StartTime    string
	EndTime      string
	BlockMinutes int
}

func NewScheduleTimeService(windows repository.ScheduleTimeRepository, rooms repository.RoomRepository) *ScheduleTimeService {
	return &ScheduleTimeService{windows: windows, rooms: rooms}
}

func (s *ScheduleTimeService) Create(ctx context.Context, actor domain.Actor, input CreateScheduleTimeInput) (*domain.ScheduleTime, error) {
	if input.RoomID == uuid.Nil || input.StartTime == "" || input.EndTime == "" || input.BlockMinutes == 0 {
		return nil, domain.ValidationError("room, start time, end time and block are required")
	}
	if err := validateBounds(input.StartTime, input.EndTime, input.BlockMinutes); err != nil {
		return nil, err
	}

	if _, err := s.rooms.GetByID(ctx, input.RoomID); err != nil {
		return nil, err
	}

	window := &domain.ScheduleTime{
		RoomID:       input.RoomID,
		UserID:       actor.ID,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		BlockMinutes: input.BlockMinutes,
	}

	if err := s.checkOverlap(ctx, window, uuid.Nil); err != nil {
		return nil, err
	}

	if err := s.windows.Create(ctx, window); err != nil {
		return nil, err
	}
	return window, nil
}

func (s *ScheduleTimeService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input UpdateScheduleTimeInput) (*domain.ScheduleTime, error) {
	if input.StartTime == "" || input.EndTime == "" || input.BlockMinutes == 0 {
		return nil, domain.ValidationError("start time, end time and block are required")
	}
	if err := validateBounds(input.StartTime, input.EndTime, input.BlockMinutes); err != nil {
		return nil, err
	}

	window, err := s.windows.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanManage(window.UserID) {
		return nil, domain.ForbiddenError("no permission to edit this schedule time")
	}

	window.StartTime = input.StartTime
	window.EndTime = input.EndTime
	window.BlockMinutes = input.BlockMinutes

	if err := s.checkOverlap(ctx, window, id); err != nil {
		return nil, err
	}

	if err := s.windows.Update(ctx, window); err != nil {
		return nil, err
	}
	return window, nil
}

func (s *ScheduleTimeService) List(ctx context.Context, actor domain.Actor, roomID uuid.UUID) ([]domain.ScheduleTime, error) {
	return s.windows.List(ctx, roomID, actor.ID, actor.Admin)
}

func (s *ScheduleTimeService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ScheduleTime, error) {
	return s.windows.GetByID(ctx, id)
}

func (s *ScheduleTimeService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	window, err := s.windows.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanManage(window.UserID) {
		return domain.ForbiddenError("no permission to delete this schedule time")
	}
	return s.windows.Delete(ctx, id)
}

func validateBounds(startTime, endTime string, blockMinutes int) error {
	start, err := domain.MinuteOfDay(startTime)
	if err != nil {
		return domain.ValidationError("start time must be in HH:MM format")
	}
	end, err := domain.MinuteOfDay(endTime)
	if err != nil {
		return domain.ValidationError("end time must be in HH:MM format")
	}
	if end <= start {
		return domain.ValidationError("end time must be after start time")
	}
	if blockMinutes < 1 {
		return domain.ValidationError("block minutes must be at least 1")
	}
	return nil
}

// checkOverlap rejects windows that share wall-clock time with another
// window of the same room. Keeping windows disjoint makes the admission
// engine's first-match resolution unambiguous.
func (s *ScheduleTimeService) checkOverlap(ctx context.Context, window *domain.ScheduleTime, excludeID uuid.UUID) error {
	existing, err := s.windows.ListByRoom(ctx, window.RoomID)
	if err != nil {
		return err
	}
	for _, other := range existing {
		if other.ID == excludeID {
			continue
		}
		if window.OverlapsWindow(other) {
			return domain.ConflictError("conflicts with another schedule time of this room")
		}
	}
	return nil
}

var _ ScheduleTimeUseCase = (*ScheduleTimeService)(nil)
