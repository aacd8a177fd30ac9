package booking

import (
	"context"
	"regexp"
	"testing"

	"chcrent/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockEquipmentRepo struct {
	mock.Mock
}

func (m *mockEquipmentRepo) ListByCenter(chcID string) ([]models.Equipment, error) {
	args := m.Called(chcID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Equipment), args.Error(1)
}

func (m *mockEquipmentRepo) GetByID(chcID, equipmentID string) (*models.Equipment, error) {
	args := m.Called(chcID, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Equipment), args.Error(1)
}

func (m *mockEquipmentRepo) OptionsByCenter(chcID string) ([]models.EquipmentOption, error) {
	args := m.Called(chcID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.EquipmentOption), args.Error(1)
}

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *mockOrderRepo) ListByUser(chcID, userID string) ([]models.Order, error) {
	args := m.Called(chcID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *mockOrderRepo) GetByID(chcID, orderID string) (*models.Order, error) {
	args := m.Called(chcID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *mockOrderRepo) WatchUserOrders(ctx context.Context, chcID, userID string) (<-chan []models.Order, <-chan error, error) {
	args := m.Called(ctx, chcID, userID)
	return nil, nil, args.Error(2)
}

func validRequest() models.BookingRequest {
	return models.BookingRequest{
		UserID:      "user-1",
		UserName:    "Asha",
		ChcID:       "chc-1",
		EquipmentID: "eq-1",
		Hours:       3,
	}
}

func tractor() *models.Equipment {
	return &models.Equipment{
		ID:    "eq-1",
		ChcID: "chc-1",
		Name:  "Tractor with Rotavator",
		Rent:  500,
	}
}

func TestPlaceBookingSuccess(t *testing.T) {
	equipRepo := new(mockEquipmentRepo)
	orderRepo := new(mockOrderRepo)
	svc := &DefaultBookingService{EquipmentRepo: equipRepo, OrderRepo: orderRepo}

	equipRepo.On("GetByID", "chc-1", "eq-1").Return(tractor(), nil)

	var captured models.Order
	orderRepo.On("Create", mock.AnythingOfType("*models.Order")).Run(func(args mock.Arguments) {
		o := args.Get(0).(*models.Order)
		o.ID = "ab12cd34-0000-0000-0000-000000000000"
		captured = *o
	}).Return(nil)

	receipt, err := svc.PlaceBooking(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, receipt)

	// Cost is derived from the catalog rate, never from the request.
	assert.Equal(t, int64(1500), receipt.EstimatedCost)
	assert.Equal(t, "Tractor with Rotavator", receipt.EquipmentName)
	assert.Equal(t, 3, receipt.BookingHrs)
	assert.Regexp(t, regexp.MustCompile(`^[1-9][0-9]{3}$`), receipt.DeliveryOTP)
	assert.Equal(t,
		"Successfully booked Tractor with Rotavator for 3 hours (Order ID: ab12). Estimated cost: ₹1500.",
		receipt.Message)

	assert.Equal(t, models.StatusPending, captured.Status)
	assert.Equal(t, models.ModeApp, captured.BookingMode)
	assert.Equal(t, int64(500), captured.EquipmentRent)
	assert.Equal(t, int64(1500), captured.EstimatedCost)
	assert.Equal(t, "user-1", captured.UserID)
	assert.Equal(t, "Asha", captured.UserName)
	assert.Equal(t, "chc-1", captured.ChcID)
	assert.Equal(t, receipt.DeliveryOTP, captured.DeliveryOTP)
}

func TestPlaceBookingVoiceBotMode(t *testing.T) {
	equipRepo := new(mockEquipmentRepo)
	orderRepo := new(mockOrderRepo)
	svc := &DefaultBookingService{EquipmentRepo: equipRepo, OrderRepo: orderRepo}

	equipRepo.On("GetByID", "chc-1", "eq-1").Return(tractor(), nil)

	var captured models.Order
	orderRepo.On("Create", mock.AnythingOfType("*models.Order")).Run(func(args mock.Arguments) {
		captured = *args.Get(0).(*models.Order)
	}).Return(nil)

	req := validRequest()
	req.Mode = models.ModeVoiceBot
	_, err := svc.PlaceBooking(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.ModeVoiceBot, captured.BookingMode)
}

func TestPlaceBookingAuthRequired(t *testing.T) {
	svc := &DefaultBookingService{EquipmentRepo: new(mockEquipmentRepo), OrderRepo: new(mockOrderRepo)}

	req := validRequest()
	req.UserID = ""
	_, err := svc.PlaceBooking(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, CodeAuthRequired, CodeOf(err))
}

func TestPlaceBookingInvalidDuration(t *testing.T) {
	equipRepo := new(mockEquipmentRepo)
	orderRepo := new(mockOrderRepo)
	svc := &DefaultBookingService{EquipmentRepo: equipRepo, OrderRepo: orderRepo}

	for _, hours := range []int{0, -2, 25} {
		req := validRequest()
		req.Hours = hours
		_, err := svc.PlaceBooking(context.Background(), req)
		require.Error(t, err, "hours=%d", hours)
		assert.Equal(t, CodeInvalidDuration, CodeOf(err))
	}
	orderRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestPlaceBookingEquipmentNotFound(t *testing.T) {
	equipRepo := new(mockEquipmentRepo)
	orderRepo := new(mockOrderRepo)
	svc := &DefaultBookingService{EquipmentRepo: equipRepo, OrderRepo: orderRepo}

	equipRepo.On("GetByID", "chc-1", "eq-1").Return(nil, nil)

	_, err := svc.PlaceBooking(context.Background(), validRequest())
	require.Error(t, err)
	assert.Equal(t, CodeEquipmentNotFound, CodeOf(err))
	assert.Equal(t, "Equipment with ID eq-1 not found at your center.", MessageOf(err))
	orderRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestPlaceBookingZeroRate(t *testing.T) {
	equipRepo := new(mockEquipmentRepo)
	orderRepo := new(mockOrderRepo)
	svc := &DefaultBookingService{EquipmentRepo: equipRepo, OrderRepo: orderRepo}

	free := tractor()
	free.Rent = 0
	equipRepo.On("GetByID", "chc-1", "eq-1").Return(free, nil)

	_, err := svc.PlaceBooking(context.Background(), validRequest())
	require.Error(t, err)
	assert.Equal(t, CodeInvalidRate, CodeOf(err))
	assert.Equal(t, "Equipment rate is missing or zero. Cannot book.", MessageOf(err))
	orderRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestPlaceBookingPersistenceErrors(t *testing.T) {
	equipRepo := new(mockEquipmentRepo)
	orderRepo := new(mockOrderRepo)
	svc := &DefaultBookingService{EquipmentRepo: equipRepo, OrderRepo: orderRepo}

	equipRepo.On("GetByID", "chc-1", "eq-1").Return(tractor(), nil)
	orderRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(assert.AnError)

	_, err := svc.PlaceBooking(context.Background(), validRequest())
	require.Error(t, err)
	assert.Equal(t, CodePersistenceError, CodeOf(err))
}
