package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSchedulingRepository struct {
	mock.Mock
}

func (m *MockSchedulingRepository) CreatePending(ctx context.Context, scheduling *domain.Scheduling) error {
	args := m.Called(ctx, scheduling)
	return args.Error(0)
}

func (m *MockSchedulingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Scheduling, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Scheduling), args.Error(1)
}

func (m *MockSchedulingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SchedulingStatus) (*domain.Scheduling, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Scheduling), args.Error(1)
}

func (m *MockSchedulingRepository) ListPage(ctx context.Context, userID uuid.UUID, admin bool, page, limit int) ([]domain.Scheduling, int64, error) {
	args := m.Called(ctx, userID, admin, page, limit)
	return args.Get(0).([]domain.Scheduling), args.Get(1).(int64), args.Error(2)
}

type MockScheduleTimeRepository struct {
	mock.Mock
}

func (m *MockScheduleTimeRepository) Create(ctx context.Context, window *domain.ScheduleTime) error {
	args := m.Called(ctx, window)
	return args.Error(0)
}

func (m *MockScheduleTimeRepository) Update(ctx context.Context, window *domain.ScheduleTime) error {
	args := m.Called(ctx, window)
	return args.Error(0)
}

func (m *MockScheduleTimeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ScheduleTime, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduleTime), args.Error(1)
}

func (m *MockScheduleTimeRepository) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]domain.ScheduleTime, error) {
	args := m.Called(ctx, roomID)
	return args.Get(0).([]domain.ScheduleTime), args.Error(1)
}

func (m *MockScheduleTimeRepository) List(ctx context.Context, roomID, userID uuid.UUID, admin bool) ([]domain.ScheduleTime, error) {
	args := m.Called(ctx, roomID, userID, admin)
	return args.Get(0).([]domain.ScheduleTime), args.Error(1)
}

func (m *MockScheduleTimeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) Update(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) List(ctx context.Context, userID uuid.UUID, admin bool) ([]domain.Customer, error) {
	args := m.Called(ctx, userID, admin)
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) AcquireSlotLock(ctx context.Context, roomID uuid.UUID, startsAt time.Time, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, roomID, startsAt, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) ReleaseSlotLock(ctx context.Context, roomID uuid.UUID, startsAt time.Time) error {
	args := m.Called(ctx, roomID, startsAt)
	return args.Error(0)
}

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) Record(ctx context.Context, activityType domain.ActivityType, page domain.PageContext, userID uuid.UUID) {
	m.Called(ctx, activityType, page, userID)
}

type fixture struct {
	schedulings *MockSchedulingRepository
	windows     *MockScheduleTimeRepository
	rooms       *MockRoomRepository
	customers   *MockCustomerRepository
	cache       *MockCache
	recorder    *MockRecorder
	service     *SchedulingService
}

func newFixture() *fixture {
	f := &fixture{
		schedulings: &MockSchedulingRepository{},
		windows:     &MockScheduleTimeRepository{},
		rooms:       &MockRoomRepository{},
		customers:   &MockCustomerRepository{},
		cache:       &MockCache{},
		recorder:    &MockRecorder{},
	}
	f.service = NewSchedulingService(f.schedulings, f.windows, f.rooms, f.customers, f.cache, f.recorder, 2*time.Minute)
	return f
}

var (
	testRoomID     = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	testCustomerID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	testUserID     = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

func morningWindow() domain.ScheduleTime {
	return domain.ScheduleTime{
		ID:           uuid.New(),
		RoomID:       testRoomID,
		StartTime:    "08:00",
		EndTime:      "12:00",
		BlockMinutes: 30,
	}
}

func TestSchedulingService_Admit_Success(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	actor := domain.Actor{ID: testUserID}

	f.customers.On("GetByID", ctx, testCustomerID).Return(&domain.Customer{ID: testCustomerID, UserID: testUserID}, nil)
	f.rooms.On("GetByID", ctx, testRoomID).Return(&domain.Room{ID: testRoomID, Name: "A"}, nil)
	f.windows.On("ListByRoom", ctx, testRoomID).Return([]domain.ScheduleTime{morningWindow()}, nil)

	wantStart := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	f.cache.On("AcquireSlotLock", ctx, testRoomID, wantStart, 2*time.Minute).Return(true, nil)
	f.schedulings.On("CreatePending", ctx, mock.AnythingOfType("*domain.Scheduling")).Run(func(args mock.Arguments) {
		s := args.Get(1).(*domain.Scheduling)
		s.ID = uuid.New()
		s.Status = domain.SchedulingStatusPending
	}).Return(nil)
	f.recorder.On("Record", ctx, domain.ActivityCreateSchedule, domain.PageSchedule, testUserID).Return()

	created, err := f.service.Admit(ctx, actor, CreateSchedulingInput{
		RoomID:     testRoomID,
		CustomerID: testCustomerID,
		Date:       "2024-06-10",
		Time:       "08:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, wantStart, created.StartsAt)
	assert.Equal(t, wantStart.Add(30*time.Minute), created.EndsAt)
	assert.Equal(t, domain.SchedulingStatusPending, created.Status)
	f.schedulings.AssertExpectations(t)
	f.recorder.AssertExpectations(t)
}

func TestSchedulingService_Admit_OutsideWindow(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	actor := domain.Actor{ID: testUserID}

	f.customers.On("GetByID", ctx, testCustomerID).Return(&domain.Customer{ID: testCustomerID, UserID: testUserID}, nil)
	f.rooms.On("GetByID", ctx, testRoomID).Return(&domain.Room{ID: testRoomID}, nil)
	f.windows.On("ListByRoom", ctx, testRoomID).Return([]domain.ScheduleTime{morningWindow()}, nil)

	_, err := f.service.Admit(ctx, actor, CreateSchedulingInput{
		RoomID:     testRoomID,
		CustomerID: testCustomerID,
		Date:       "2024-06-10",
		Time:       "13:00",
	})

	assert.Equal(t, domain.KindNoAvailability, domain.KindOf(err))
	f.schedulings.AssertNotCalled(t, "CreatePending", mock.Anything, mock.Anything)
}

func TestSchedulingService_Admit_WindowEndInclusive(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	actor := domain.Actor{ID: testUserID}

	f.customers.On("GetByID", ctx, testCustomerID).Return(&domain.Customer{ID: testCustomerID, UserID: testUserID}, nil)
	f.rooms.On("GetByID", ctx, testRoomID).Return(&domain.Room{ID: testRoomID}, nil)
	f.windows.On("ListByRoom", ctx, testRoomID).Return([]domain.ScheduleTime{morningWindow()}, nil)

	wantStart := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	f.cache.On("AcquireSlotLock", ctx, testRoomID, wantStart, 2*time.Minute).Return(true, nil)
	f.schedulings.On("CreatePending", ctx, mock.AnythingOfType("*domain.Scheduling")).Return(nil)
	f.recorder.On("Record", ctx, domain.ActivityCreateSchedule, domain.PageSchedule, testUserID).Return()

	created, err := f.service.Admit(ctx, actor, CreateSchedulingInput{
		RoomID:     testRoomID,
		CustomerID: testCustomerID,
		Date:       "2024-06-10",
		Time:       "12:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, wantStart, created.StartsAt)
}

func TestSchedulingService_Admit_Conflict(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	actor := domain.Actor{ID: testUserID}

	f.customers.On("GetByID", ctx, testCustomerID).Return(&domain.Customer{ID: testCustomerID, UserID: testUserID}, nil)
	f.rooms.On("GetByID", ctx, testRoomID).Return(&domain.Room{ID: testRoomID}, nil)
	f.windows.On("ListByRoom", ctx, testRoomID).Return([]domain.ScheduleTime{morningWindow()}, nil)

	wantStart := time.Date(2024, 6, 10, 8, 15, 0, 0, time.UTC)
	f.cache.On("AcquireSlotLock", ctx, testRoomID, wantStart, 2*time.Minute).Return(true, nil)
	f.schedulings.On("CreatePending", ctx, mock.AnythingOfType("*domain.Scheduling")).
		Return(domain.ConflictError("room is already booked for this time"))
	f.cache.On("ReleaseSlotLock", ctx, testRoomID, wantStart).Return(nil)

	_, err := f.service.Admit(ctx, actor, CreateSchedulingInput{
		RoomID:     testRoomID,
		CustomerID: testCustomerID,
		Date:       "2024-06-10",
		Time:       "08:15",
	})

	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
	f.cache.AssertCalled(t, "ReleaseSlotLock", ctx, testRoomID, wantStart)
	f.recorder.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSchedulingService_Admit_SlotLockHeld(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	actor := domain.Actor{ID: testUserID}

	f.customers.On("GetByID", ctx, testCustomerID).Return(&domain.Customer{ID: testCustomerID, UserID: testUserID}, nil)
	f.rooms.On("GetByID", ctx, testRoomID).Return(&domain.Room{ID: testRoomID}, nil)
	f.windows.On("ListByRoom", ctx, testRoomID).Return([]domain.ScheduleTime{morningWindow()}, nil)
	f.cache.On("AcquireSlotLock", ctx, testRoomID, mock.Anything, 2*time.Minute).Return(false, nil)

	_, err := f.service.Admit(ctx, actor, CreateSchedulingInput{
		RoomID:     testRoomID,
		CustomerID: testCustomerID,
		Date:       "2024-06-10",
		Time:       "08:00",
	})

	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
	f.schedulings.AssertNotCalled(t, "CreatePending", mock.Anything, mock.Anything)
}

func TestSchedulingService_Admit_ForeignCustomer(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	actor := domain.Actor{ID: testUserID}

	otherUser := uuid.New()
	f.customers.On("GetByID", ctx, testCustomerID).Return(&domain.Customer{ID: testCustomerID, UserID: otherUser}, nil)

	_, err := f.service.Admit(ctx, actor, CreateSchedulingInput{
		RoomID:     testRoomID,
		CustomerID: testCustomerID,
		Date:       "2024-06-10",
		Time:       "08:00",
	})

	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
}

func TestSchedulingService_Admit_AdminOnBehalf(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	admin := domain.Actor{ID: uuid.New(), Admin: true}

	f.customers.On("GetByID", ctx, testCustomerID).Return(&domain.Customer{ID: testCustomerID, UserID: testUserID}, nil)
	f.rooms.On("GetByID", ctx, testRoomID).Return(&domain.Room{ID: testRoomID}, nil)
	f.windows.On("ListByRoom", ctx, testRoomID).Return([]domain.ScheduleTime{morningWindow()}, nil)
	f.cache.On("AcquireSlotLock", ctx, testRoomID, mock.Anything, 2*time.Minute).Return(true, nil)
	f.schedulings.On("CreatePending", ctx, mock.AnythingOfType("*domain.Scheduling")).Return(nil)
	f.recorder.On("Record", ctx, domain.ActivityCreateSchedule, domain.PageSchedule, admin.ID).Return()

	_, err := f.service.Admit(ctx, admin, CreateSchedulingInput{
		RoomID:     testRoomID,
		CustomerID: testCustomerID,
		Date:       "2024-06-10",
		Time:       "09:00",
	})

	assert.NoError(t, err)
}

func TestSchedulingService_Admit_Validation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	actor := domain.Actor{ID: testUserID}

	_, err := f.service.Admit(ctx, actor, CreateSchedulingInput{RoomID: testRoomID, CustomerID: testCustomerID})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, err = f.service.Admit(ctx, actor, CreateSchedulingInput{
		RoomID: testRoomID, CustomerID: testCustomerID, Date: "10/06/2024", Time: "08:00",
	})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, err = f.service.Admit(ctx, actor, CreateSchedulingInput{
		RoomID: testRoomID, CustomerID: testCustomerID, Date: "2024-06-10", Time: "8am",
	})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestSchedulingService_Confirm_Success(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	admin := domain.Actor{ID: uuid.New(), Admin: true}
	id := uuid.New()

	pending := &domain.Scheduling{ID: id, RoomID: testRoomID, CustomerID: testCustomerID, Status: domain.SchedulingStatusPending}
	confirmed := &domain.Scheduling{ID: id, RoomID: testRoomID, CustomerID: testCustomerID, Status: domain.SchedulingStatusConfirmed}

	f.schedulings.On("GetByID", ctx, id).Return(pending, nil)
	f.schedulings.On("UpdateStatus", ctx, id, domain.SchedulingStatusConfirmed).Return(confirmed, nil)
	f.recorder.On("Record", ctx, domain.ActivityConfirmSchedule, domain.PageSchedule, admin.ID).Return()

	updated, err := f.service.Confirm(ctx, admin, id)

	assert.NoError(t, err)
	assert.Equal(t, domain.SchedulingStatusConfirmed, updated.Status)
	f.recorder.AssertExpectations(t)
}

func TestSchedulingService_Confirm_NotAdmin(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.service.Confirm(ctx, domain.Actor{ID: testUserID}, uuid.New())

	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	f.schedulings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestSchedulingService_Confirm_Twice(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	admin := domain.Actor{ID: uuid.New(), Admin: true}
	id := uuid.New()

	f.schedulings.On("GetByID", ctx, id).Return(
		&domain.Scheduling{ID: id, Status: domain.SchedulingStatusConfirmed}, nil)

	_, err := f.service.Confirm(ctx, admin, id)

	assert.Equal(t, domain.KindInvalidState, domain.KindOf(err))
	f.schedulings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestSchedulingService_Cancel_ByOwner(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	actor := domain.Actor{ID: testUserID}
	id := uuid.New()
	startsAt := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)

	current := &domain.Scheduling{ID: id, RoomID: testRoomID, CustomerID: testCustomerID, StartsAt: startsAt, Status: domain.SchedulingStatusConfirmed}
	canceled := &domain.Scheduling{ID: id, RoomID: testRoomID, CustomerID: testCustomerID, StartsAt: startsAt, Status: domain.SchedulingStatusCanceled}

	f.schedulings.On("GetByID", ctx, id).Return(current, nil)
	f.customers.On("GetByID", ctx, testCustomerID).Return(&domain.Customer{ID: testCustomerID, UserID: testUserID}, nil)
	f.schedulings.On("UpdateStatus", ctx, id, domain.SchedulingStatusCanceled).Return(canceled, nil)
	f.cache.On("ReleaseSlotLock", ctx, testRoomID, startsAt).Return(nil)
	f.recorder.On("Record", ctx, domain.ActivityCancelSchedule, domain.PageSchedule, testUserID).Return()

	updated, err := f.service.Cancel(ctx, actor, id)

	assert.NoError(t, err)
	assert.Equal(t, domain.SchedulingStatusCanceled, updated.Status)
	f.cache.AssertCalled(t, "ReleaseSlotLock", ctx, testRoomID, startsAt)
}

func TestSchedulingService_Cancel_AlreadyCanceled(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	actor := domain.Actor{ID: testUserID}
	id := uuid.New()

	f.schedulings.On("GetByID", ctx, id).Return(
		&domain.Scheduling{ID: id, CustomerID: testCustomerID, Status: domain.SchedulingStatusCanceled}, nil)
	f.customers.On("GetByID", ctx, testCustomerID).Return(&domain.Customer{ID: testCustomerID, UserID: testUserID}, nil)

	_, err := f.service.Cancel(ctx, actor, id)

	assert.Equal(t, domain.KindInvalidState, domain.KindOf(err))
	f.schedulings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestSchedulingService_Cancel_Forbidden(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	id := uuid.New()

	f.schedulings.On("GetByID", ctx, id).Return(
		&domain.Scheduling{ID: id, CustomerID: testCustomerID, Status: domain.SchedulingStatusPending}, nil)
	f.customers.On("GetByID", ctx, testCustomerID).Return(&domain.Customer{ID: testCustomerID, UserID: uuid.New()}, nil)

	_, err := f.service.Cancel(ctx, domain.Actor{ID: testUserID}, id)

	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
}

func TestSchedulingService_List_NormalizesPaging(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	actor := domain.Actor{ID: testUserID}

	f.schedulings.On("ListPage", ctx, testUserID, false, 1, 10).Return([]domain.Scheduling{}, int64(0), nil)

	_, total, err := f.service.List(ctx, actor, 0, -5)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), total)
	f.schedulings.AssertExpectations(t)
}
