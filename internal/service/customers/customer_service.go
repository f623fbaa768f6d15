package customers

import (
	"context"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/Domenick1991/roombooking/internal/repository"
	"github.com/google/uuid"
)

type CustomerUseCase interface {
	Create(ctx context.Context, actor domain.Actor, input CustomerInput) (*domain.Customer, error)
	List(ctx context.Context, actor domain.Actor) ([]domain.Customer, error)
	GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Customer, error)
	Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input CustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error
}

type CustomerService struct {
	repo repository.CustomerRepository
}

type CustomerInput struct {
	CEP        string
	Street     string
	Number     int
	Complement string
	Neighboor  string
	City       string
	State      string
}

func NewCustomerService(repo repository.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) Create(ctx context.Context, actor domain.Actor, input CustomerInput) (*domain.Customer, error) {
	customer := &domain.Customer{
		UserID:     actor.ID,
		CEP:        input.CEP,
		Street:     input.Street,
		Number:     input.Number,
		Complement: input.Complement,
		Neighboor:  input.Neighboor,
		City:       input.City,
		State:      input.State,
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) List(ctx context.Context, actor domain.Actor) ([]domain.Customer, error) {
	return s.repo.List(ctx, actor.ID, actor.Admin)
}

func (s *CustomerService) GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanManage(customer.UserID) {
		return nil, domain.ForbiddenError("no permission to view this client")
	}
	return customer, nil
}

func (s *CustomerService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input CustomerInput) (*domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanManage(customer.UserID) {
		return nil, domain.ForbiddenError("no permission to edit this client")
	}

	customer.CEP = input.CEP
	customer.Street = input.Street
	customer.Number = input.Number
	customer.Complement = input.Complement
	customer.Neighboor = input.Neighboor
	customer.City = input.City
	customer.State = input.State

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanManage(customer.UserID) {
		return domain.ForbiddenError("no permission to remove this client")
	}
	return s.repo.Delete(ctx, id)
}

var _ CustomerUseCase = (*CustomerService)(nil)
