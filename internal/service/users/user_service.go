package users

import (
	"context"

	"github.com/Domenick1991/roombooking/internal/auth"
	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/Domenick1991/roombooking/internal/repository"
	"github.com/google/uuid"
)

type UserUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, *domain.Customer, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Create(ctx context.Context, input RegisterInput) (*domain.User, error)
	List(ctx context.Context, actor domain.Actor) ([]domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error
}

type Recorder interface {
	Record(ctx context.Context, activityType domain.ActivityType, page domain.PageContext, userID uuid.UUID)
}

type TokenIssuer interface {
	Issue(userID uuid.UUID, admin bool) (string, error)
}

type UserService struct {
	users     repository.UserRepository
	customers repository.CustomerRepository
	tokens    TokenIssuer
	activity  Recorder
}

type RegisterInput struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
	Admin     bool

	// customer profile created alongside the account
	CEP        string
	Street     string
	Number     int
	Complement string
	Neighboor  string
	City       string
	State      string
}

type UpdateUserInput struct {
	Email     string
	FirstName string
	LastName  string
	Admin     *bool
}

func NewUserService(users repository.UserRepository, customers repository.CustomerRepository, tokens TokenIssuer, activity Recorder) *UserService {
	return &UserService{users: users, customers: customers, tokens: tokens, activity: activity}
}

// Register creates a user together with its customer profile.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*domain.User, *domain.Customer, error) {
	user, err := s.createUser(ctx, input)
	if err != nil {
		return nil, nil, err
	}

	customer := &domain.Customer{
		UserID:     user.ID,
		CEP:        input.CEP,
		Street:     input.Street,
		Number:     input.Number,
		Complement: input.Complement,
		Neighboor:  input.Neighboor,
		City:       input.City,
		State:      input.State,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, nil, err
	}

	s.activity.Record(ctx, domain.ActivityCreateAccount, domain.PageMyAccount, user.ID)
	return user, customer, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ValidationError("email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return "", nil, domain.UnauthenticatedError("invalid email or password")
		}
		return "", nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", nil, domain.UnauthenticatedError("invalid email or password")
	}

	token, err := s.tokens.Issue(user.ID, user.Admin)
	if err != nil {
		return "", nil, err
	}

	s.activity.Record(ctx, domain.ActivityLogin, domain.PageMyAccount, user.ID)
	return token, user, nil
}

func (s *UserService) Create(ctx context.Context, input RegisterInput) (*domain.User, error) {
	return s.createUser(ctx, input)
}

func (s *UserService) List(ctx context.Context, actor domain.Actor) ([]domain.User, error) {
	if !actor.Admin {
		return nil, domain.ForbiddenError("only administrators can list users")
	}
	return s.users.List(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input UpdateUserInput) (*domain.User, error) {
	if !actor.CanManage(id) {
		return nil, domain.ForbiddenError("no permission to edit this user")
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != "" {
		user.Email = input.Email
	}
	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	// only admins may grant or revoke the admin flag
	if actor.Admin && input.Admin != nil {
		user.Admin = *input.Admin
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if !actor.Admin {
		return domain.ForbiddenError("only administrators can remove users")
	}
	return s.users.Delete(ctx, id)
}

func (s *UserService) createUser(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ValidationError("email and password are required")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: hash,
		Admin:        input.Admin,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

var _ UserUseCase = (*UserService)(nil)
