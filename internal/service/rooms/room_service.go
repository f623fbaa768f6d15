package rooms

import (
	"context"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/Domenick1991/roombooking/internal/repository"
	"github.com/google/uuid"
)

type RoomUseCase interface {
	Create(ctx context.Context, actor domain.Actor, name string) (*domain.Room, error)
	List(ctx context.Context) ([]domain.Room, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error)
	Update(ctx context.Context, actor domain.Actor, id uuid.UUID, name string) (*domain.Room, error)
	Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error
}

type RoomCache interface {
	GetRooms(ctx context.Context) ([]domain.Room, error)
	SetRooms(ctx context.Context, rooms []domain.Room) error
	InvalidateRooms(ctx context.Context) error
}

type RoomService struct {
	repo  repository.RoomRepository
	cache RoomCache
}

func NewRoomService(repo repository.RoomRepository, cache RoomCache) *RoomService {
	return &RoomService{repo: repo, cache: cache}
}

func (s *RoomService) Create(ctx context.Context, actor domain.Actor, name string) (*domain.Room, error) {
	if !actor.Admin {
		return nil, domain.ForbiddenError("only administrators can create rooms")
	}
	if name == "" {
		return nil, domain.ValidationError("room name is required")
	}

	room := &domain.Room{Name: name}
	if err := s.repo.Create(ctx, room); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return room, nil
}

func (s *RoomService) List(ctx context.Context) ([]domain.Room, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetRooms(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	rooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetRooms(ctx, rooms)
	}
	return rooms, nil
}

func (s *RoomService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *RoomService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, name string) (*domain.Room, error) {
	if !actor.Admin {
		return nil, domain.ForbiddenError("only administrators can edit rooms")
	}
	if name == "" {
		return nil, domain.ValidationError("room name is required")
	}

	room, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	room.Name = name
	if err := s.repo.Update(ctx, room); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return room, nil
}

func (s *RoomService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if !actor.Admin {
		return domain.ForbiddenError("only administrators can delete rooms")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *RoomService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateRooms(ctx)
	}
}

var _ RoomUseCase = (*RoomService)(nil)
