package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/hmsops/hotel_management_app/internal/apperrors"
	"github.com/hmsops/hotel_management_app/internal/core/domain"
	portssvc "github.com/hmsops/hotel_management_app/internal/core/ports/services"
	"github.com/hmsops/hotel_management_app/internal/core/services"
	"github.com/hmsops/hotel_management_app/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RoomRepository ---
type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) FindRoomByNumber(ctx context.Context, roomNumber int) (*domain.Room, error) {
	args := m.Called(ctx, roomNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) ListRooms(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) SetOccupant(ctx context.Context, roomNumber int, occupant *domain.Stay) error {
	args := m.Called(ctx, roomNumber, occupant)
	return args.Error(0)
}

func (m *MockRoomRepository) FindRoomByNumberForUpdate(ctx context.Context, tx pgx.Tx, roomNumber int) (*domain.Room, error) {
	args := m.Called(ctx, tx, roomNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) SetOccupantInTx(ctx context.Context, tx pgx.Tx, roomNumber int, occupant *domain.Stay) error {
	args := m.Called(ctx, tx, roomNumber, occupant)
	return args.Error(0)
}

func (m *MockRoomRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockRoomRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockRoomRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock ReservationRepository ---
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) FindReservationByID(ctx context.Context, reservationID int64) (*domain.Reservation, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ListReservationsForRoom(ctx context.Context, roomNumber int) ([]domain.Reservation, error) {
	args := m.Called(ctx, roomNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) DeleteReservation(ctx context.Context, reservationID int64) error {
	args := m.Called(ctx, reservationID)
	return args.Error(0)
}

func (m *MockReservationRepository) ListReservationsForRoomInTx(ctx context.Context, tx pgx.Tx, roomNumber int) ([]domain.Reservation, error) {
	args := m.Called(ctx, tx, roomNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) InsertReservationInTx(ctx context.Context, tx pgx.Tx, reservation domain.Reservation) (int64, error) {
	args := m.Called(ctx, tx, reservation)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationRepository) DeleteReservationInTx(ctx context.Context, tx pgx.Tx, reservationID int64) error {
	args := m.Called(ctx, tx, reservationID)
	return args.Error(0)
}

// --- Test Suite ---
type BookingServiceTestSuite struct {
	suite.Suite
	mockRoomRepo *MockRoomRepository
	mockResRepo  *MockReservationRepository
	service      portssvc.BookingSvcFacade
	today        time.Time
}

func (suite *BookingServiceTestSuite) SetupTest() {
	suite.mockRoomRepo = new(MockRoomRepository)
	suite.mockResRepo = new(MockReservationRepository)
	suite.service = services.NewBookingService(suite.mockRoomRepo, suite.mockResRepo)
	suite.today = domain.DateOnly(time.Now())
}

func (suite *BookingServiceTestSuite) expectTx() {
	suite.mockRoomRepo.On("Begin", mock.Anything).Return(nil, nil).Once()
	suite.mockRoomRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
}

func (suite *BookingServiceTestSuite) registerRequest(roomNumber int, checkIn time.Time, nights int) dto.RegisterStayRequest {
	return dto.RegisterStayRequest{
		RoomNumber:  roomNumber,
		GuestName:   "Ana Souza",
		IDDocument:  "12.345.678-9",
		Nights:      nights,
		CheckInDate: checkIn.Format("2006-01-02"),
		TotalCost:   decimal.NewFromInt(int64(nights) * 150),
		Paid:        decimal.NewFromInt(100),
	}
}

func stayFor(name string, checkIn time.Time, nights int) domain.Stay {
	return domain.Stay{
		Guest:  domain.Guest{Name: name, IDDocument: "doc-" + name},
		Nights: nights,
		Period: domain.DateRange{
			CheckIn:  domain.DateOnly(checkIn),
			CheckOut: domain.DateOnly(checkIn).AddDate(0, 0, nights),
		},
		TotalCost: decimal.NewFromInt(int64(nights) * 150),
		Paid:      decimal.Zero,
	}
}

// --- RegisterStay ---

func (suite *BookingServiceTestSuite) TestRegisterStay_ImmediateCheckIn() {
	ctx := context.Background()
	room := &domain.Room{RoomNumber: 5}
	req := suite.registerRequest(5, suite.today, 3)

	suite.expectTx()
	suite.mockRoomRepo.On("FindRoomByNumberForUpdate", ctx, mock.Anything, 5).Return(room, nil).Once()
	suite.mockResRepo.On("ListReservationsForRoomInTx", ctx, mock.Anything, 5).Return([]domain.Reservation{}, nil).Once()
	suite.mockRoomRepo.On("SetOccupantInTx", ctx, mock.Anything, 5, mock.MatchedBy(func(s *domain.Stay) bool {
		return s != nil && s.Guest.Name == req.GuestName && s.Nights == 3
	})).Return(nil).Once()
	suite.mockRoomRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	reg, err := suite.service.RegisterStay(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(reg)
	suite.Equal(domain.PlacementImmediate, reg.Kind)
	suite.Require().NotNil(reg.Room)
	suite.Equal(5, reg.Room.RoomNumber)
	suite.Require().NotNil(reg.Room.Occupant)
	suite.Equal(req.GuestName, reg.Room.Occupant.Guest.Name)
	suite.mockRoomRepo.AssertExpectations(suite.T())
	suite.mockResRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestRegisterStay_FutureStayIsReserved() {
	ctx := context.Background()
	room := &domain.Room{RoomNumber: 7}
	checkIn := suite.today.AddDate(0, 0, 10)
	req := suite.registerRequest(7, checkIn, 2)

	suite.expectTx()
	suite.mockRoomRepo.On("FindRoomByNumberForUpdate", ctx, mock.Anything, 7).Return(room, nil).Once()
	suite.mockResRepo.On("ListReservationsForRoomInTx", ctx, mock.Anything, 7).Return([]domain.Reservation{}, nil).Once()
	suite.mockResRepo.On("InsertReservationInTx", ctx, mock.Anything, mock.MatchedBy(func(r domain.Reservation) bool {
		return r.RoomNumber == 7 && r.Guest.Name == req.GuestName
	})).Return(int64(42), nil).Once()
	suite.mockRoomRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	reg, err := suite.service.RegisterStay(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(reg)
	suite.Equal(domain.PlacementReserved, reg.Kind)
	suite.Require().NotNil(reg.Reservation)
	suite.Equal(int64(42), reg.Reservation.ReservationID)
	suite.Equal(7, reg.Reservation.RoomNumber)
	suite.mockRoomRepo.AssertExpectations(suite.T())
	suite.mockResRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestRegisterStay_ConflictWithOccupant() {
	ctx := context.Background()
	occupant := stayFor("Bruno Lima", suite.today.AddDate(0, 0, -1), 5)
	room := &domain.Room{RoomNumber: 3, Occupant: &occupant}
	req := suite.registerRequest(3, suite.today.AddDate(0, 0, 1), 2)

	suite.expectTx()
	suite.mockRoomRepo.On("FindRoomByNumberForUpdate", ctx, mock.Anything, 3).Return(room, nil).Once()
	suite.mockResRepo.On("ListReservationsForRoomInTx", ctx, mock.Anything, 3).Return([]domain.Reservation{}, nil).Once()

	reg, err := suite.service.RegisterStay(ctx, req)

	suite.Require().Error(err)
	suite.Nil(reg)
	suite.ErrorIs(err, apperrors.ErrConflict)

	var conflictErr *services.ConflictError
	suite.Require().ErrorAs(err, &conflictErr)
	suite.Len(conflictErr.Conflicts, 1)
	suite.Equal("Bruno Lima", conflictErr.Conflicts[0].GuestName)

	suite.mockRoomRepo.AssertNotCalled(suite.T(), "SetOccupantInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockRoomRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.mockRoomRepo.AssertExpectations(suite.T())
	suite.mockResRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestRegisterStay_ConflictReportsAllCollisions() {
	ctx := context.Background()
	occupant := stayFor("Bruno Lima", suite.today, 10)
	room := &domain.Room{RoomNumber: 3, Occupant: &occupant}
	queued := []domain.Reservation{
		{ReservationID: 11, RoomNumber: 3, Stay: stayFor("Carla Dias", suite.today.AddDate(0, 0, 2), 3)},
	}
	req := suite.registerRequest(3, suite.today.AddDate(0, 0, 1), 6)

	suite.expectTx()
	suite.mockRoomRepo.On("FindRoomByNumberForUpdate", ctx, mock.Anything, 3).Return(room, nil).Once()
	suite.mockResRepo.On("ListReservationsForRoomInTx", ctx, mock.Anything, 3).Return(queued, nil).Once()

	reg, err := suite.service.RegisterStay(ctx, req)

	suite.Require().Error(err)
	suite.Nil(reg)

	var conflictErr *services.ConflictError
	suite.Require().ErrorAs(err, &conflictErr)
	suite.Len(conflictErr.Conflicts, 2)
	suite.mockRoomRepo.AssertExpectations(suite.T())
	suite.mockResRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestRegisterStay_BackToBackIsAccepted() {
	ctx := context.Background()
	occupant := stayFor("Bruno Lima", suite.today.AddDate(0, 0, -3), 3) // checks out today
	room := &domain.Room{RoomNumber: 4, Occupant: &occupant}
	req := suite.registerRequest(4, suite.today, 2)

	suite.expectTx()
	suite.mockRoomRepo.On("FindRoomByNumberForUpdate", ctx, mock.Anything, 4).Return(room, nil).Once()
	suite.mockResRepo.On("ListReservationsForRoomInTx", ctx, mock.Anything, 4).Return([]domain.Reservation{}, nil).Once()
	suite.mockRoomRepo.On("SetOccupantInTx", ctx, mock.Anything, 4, mock.AnythingOfType("*domain.Stay")).Return(nil).Once()
	suite.mockRoomRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	reg, err := suite.service.RegisterStay(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.PlacementImmediate, reg.Kind)
	suite.mockRoomRepo.AssertExpectations(suite.T())
	suite.mockResRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestRegisterStay_ValidationError() {
	ctx := context.Background()
	req := suite.registerRequest(5, suite.today, 3)
	req.GuestName = "  "

	reg, err := suite.service.RegisterStay(ctx, req)

	suite.Require().Error(err)
	suite.Nil(reg)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRoomRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *BookingServiceTestSuite) TestRegisterStay_RoomNotFound() {
	ctx := context.Background()
	req := suite.registerRequest(99, suite.today, 1)

	suite.expectTx()
	suite.mockRoomRepo.On("FindRoomByNumberForUpdate", ctx, mock.Anything, 99).Return(nil, apperrors.ErrNotFound).Once()

	reg, err := suite.service.RegisterStay(ctx, req)

	suite.Require().Error(err)
	suite.Nil(reg)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRoomRepo.AssertExpectations(suite.T())
}

// --- CheckOut ---

func (suite *BookingServiceTestSuite) TestCheckOut_SettlesAndFreesRoom() {
	ctx := context.Background()
	occupant := stayFor("Bruno Lima", suite.today.AddDate(0, 0, -2), 2)
	occupant.TotalCost = decimal.NewFromInt(300)
	occupant.Paid = decimal.NewFromInt(100)
	room := &domain.Room{RoomNumber: 8, Occupant: &occupant}

	suite.expectTx()
	suite.mockRoomRepo.On("FindRoomByNumberForUpdate", ctx, mock.Anything, 8).Return(room, nil).Once()
	suite.mockRoomRepo.On("SetOccupantInTx", ctx, mock.Anything, 8, (*domain.Stay)(nil)).Return(nil).Once()
	suite.mockResRepo.On("ListReservationsForRoomInTx", ctx, mock.Anything, 8).Return([]domain.Reservation{}, nil).Once()
	suite.mockRoomRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	result, err := suite.service.CheckOut(ctx, 8, decimal.NewFromInt(200))

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(8, result.RoomNumber)
	suite.True(result.AmountPaid.Equal(decimal.NewFromInt(300)))
	suite.True(result.Overpaid.IsZero())
	suite.Nil(result.Promoted)
	suite.mockRoomRepo.AssertExpectations(suite.T())
	suite.mockResRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestCheckOut_StillOwingLeavesRoomUntouched() {
	ctx := context.Background()
	occupant := stayFor("Bruno Lima", suite.today.AddDate(0, 0, -2), 2)
	occupant.TotalCost = decimal.NewFromInt(300)
	occupant.Paid = decimal.NewFromInt(100)
	room := &domain.Room{RoomNumber: 8, Occupant: &occupant}

	suite.expectTx()
	suite.mockRoomRepo.On("FindRoomByNumberForUpdate", ctx, mock.Anything, 8).Return(room, nil).Once()

	result, err := suite.service.CheckOut(ctx, 8, decimal.NewFromInt(50))

	suite.Require().Error(err)
	suite.Nil(result)

	var owingErr *services.StillOwingError
	suite.Require().ErrorAs(err, &owingErr)
	suite.True(owingErr.Remaining.Equal(decimal.NewFromInt(150)))

	suite.mockRoomRepo.AssertNotCalled(suite.T(), "SetOccupantInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockRoomRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.mockRoomRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestCheckOut_OverpaymentReported() {
	ctx := context.Background()
	occupant := stayFor("Bruno Lima", suite.today.AddDate(0, 0, -1), 1)
	occupant.TotalCost = decimal.NewFromInt(100)
	occupant.Paid = decimal.NewFromInt(100)
	room := &domain.Room{RoomNumber: 2, Occupant: &occupant}

	suite.expectTx()
	suite.mockRoomRepo.On("FindRoomByNumberForUpdate", ctx, mock.Anything, 2).Return(room, nil).Once()
	suite.mockRoomRepo.On("SetOccupantInTx", ctx, mock.Anything, 2, (*domain.Stay)(nil)).Return(nil).Once()
	suite.mockResRepo.On("ListReservationsForRoomInTx", ctx, mock.Anything, 2).Return([]domain.Reservation{}, nil).Once()
	suite.mockRoomRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	result, err := suite.service.CheckOut(ctx, 2, decimal.NewFromInt(40))

	suite.Require().NoError(err)
	suite.True(result.Overpaid.Equal(decimal.NewFromInt(40)))
	suite.mockRoomRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestCheckOut_PromotesDueReservation() {
	ctx := context.Background()
	occupant := stayFor("Bruno Lima", suite.today.AddDate(0, 0, -2), 2)
	occupant.TotalCost = decimal.NewFromInt(200)
	occupant.Paid = decimal.NewFromInt(200)
	room := &domain.Room{RoomNumber: 6, Occupant: &occupant}

	due := domain.Reservation{ReservationID: 17, RoomNumber: 6, Stay: stayFor("Carla Dias", suite.today, 4)}
	future := domain.Reservation{ReservationID: 18, RoomNumber: 6, Stay: stayFor("Davi Rocha", suite.today.AddDate(0, 0, 20), 2)}

	suite.expectTx()
	suite.mockRoomRepo.On("FindRoomByNumberForUpdate", ctx, mock.Anything, 6).Return(room, nil).Once()
	suite.mockRoomRepo.On("SetOccupantInTx", ctx, mock.Anything, 6, (*domain.Stay)(nil)).Return(nil).Once()
	suite.mockResRepo.On("ListReservationsForRoomInTx", ctx, mock.Anything, 6).Return([]domain.Reservation{future, due}, nil).Once()
	suite.mockRoomRepo.On("SetOccupantInTx", ctx, mock.Anything, 6, mock.MatchedBy(func(s *domain.Stay) bool {
		return s != nil && s.Guest.Name == "Carla Dias"
	})).Return(nil).Once()
	suite.mockResRepo.On("DeleteReservationInTx", ctx, mock.Anything, int64(17)).Return(nil).Once()
	suite.mockRoomRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	result, err := suite.service.CheckOut(ctx, 6, decimal.Zero)

	suite.Require().NoError(err)
	suite.Require().NotNil(result.Promoted)
	suite.Equal(int64(17), result.Promoted.ReservationID)
	suite.Equal("Carla Dias", result.Promoted.Guest.Name)
	suite.mockRoomRepo.AssertExpectations(suite.T())
	suite.mockResRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestCheckOut_VacantRoom() {
	ctx := context.Background()
	room := &domain.Room{RoomNumber: 9}

	suite.expectTx()
	suite.mockRoomRepo.On("FindRoomByNumberForUpdate", ctx, mock.Anything, 9).Return(room, nil).Once()

	result, err := suite.service.CheckOut(ctx, 9, decimal.Zero)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, services.ErrRoomNotOccupied)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRoomRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestCheckOut_NegativePaymentRejected() {
	ctx := context.Background()

	result, err := suite.service.CheckOut(ctx, 1, decimal.NewFromInt(-10))

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRoomRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

// --- PromoteDueReservations ---

func (suite *BookingServiceTestSuite) TestPromoteDueReservations_FillsVacantRooms() {
	ctx := context.Background()
	occupant := stayFor("Bruno Lima", suite.today, 2)
	rooms := []domain.Room{
		{RoomNumber: 1, Occupant: &occupant},
		{RoomNumber: 2},
	}
	due := domain.Reservation{ReservationID: 5, RoomNumber: 2, Stay: stayFor("Carla Dias", suite.today.AddDate(0, 0, -1), 3)}

	suite.mockRoomRepo.On("ListRooms", ctx).Return(rooms, nil).Once()
	suite.expectTx()
	suite.mockRoomRepo.On("FindRoomByNumberForUpdate", ctx, mock.Anything, 2).Return(&domain.Room{RoomNumber: 2}, nil).Once()
	suite.mockResRepo.On("ListReservationsForRoomInTx", ctx, mock.Anything, 2).Return([]domain.Reservation{due}, nil).Once()
	suite.mockRoomRepo.On("SetOccupantInTx", ctx, mock.Anything, 2, mock.AnythingOfType("*domain.Stay")).Return(nil).Once()
	suite.mockResRepo.On("DeleteReservationInTx", ctx, mock.Anything, int64(5)).Return(nil).Once()
	suite.mockRoomRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	promoted, err := suite.service.PromoteDueReservations(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(promoted, 1)
	suite.Equal(int64(5), promoted[0].ReservationID)
	suite.mockRoomRepo.AssertExpectations(suite.T())
	suite.mockResRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestPromoteDueReservations_FutureReservationsStayQueued() {
	ctx := context.Background()
	rooms := []domain.Room{{RoomNumber: 2}}
	future := domain.Reservation{ReservationID: 6, RoomNumber: 2, Stay: stayFor("Carla Dias", suite.today.AddDate(0, 0, 5), 3)}

	suite.mockRoomRepo.On("ListRooms", ctx).Return(rooms, nil).Once()
	suite.expectTx()
	suite.mockRoomRepo.On("FindRoomByNumberForUpdate", ctx, mock.Anything, 2).Return(&domain.Room{RoomNumber: 2}, nil).Once()
	suite.mockResRepo.On("ListReservationsForRoomInTx", ctx, mock.Anything, 2).Return([]domain.Reservation{future}, nil).Once()

	promoted, err := suite.service.PromoteDueReservations(ctx)

	suite.Require().NoError(err)
	suite.Empty(promoted)
	suite.mockRoomRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.mockRoomRepo.AssertExpectations(suite.T())
	suite.mockResRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestPromoteDueReservations_ListError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRoomRepo.On("ListRooms", ctx).Return(nil, expectedErr).Once()

	promoted, err := suite.service.PromoteDueReservations(ctx)

	suite.Require().Error(err)
	suite.Empty(promoted)
	suite.ErrorIs(err, expectedErr)
	suite.mockRoomRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestBookingService(t *testing.T) {
	suite.Run(t, new(BookingServiceTestSuite))
}
