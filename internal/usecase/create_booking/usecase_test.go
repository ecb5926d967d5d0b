package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DaySeven-BookingService/internal/domain"
	"github.com/m04kA/DaySeven-BookingService/internal/integrations/mpesa"
	"github.com/m04kA/DaySeven-BookingService/internal/service/notification"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type mockRepo struct{ mock.Mock }

func (m *mockRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, b)
	created, _ := args.Get(0).(*domain.Booking)
	return created, args.Error(1)
}

type mockPayments struct{ mock.Mock }

func (m *mockPayments) InitiateSTKPush(ctx context.Context, req mpesa.STKPushRequest) (*mpesa.STKPushResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*mpesa.STKPushResponse)
	return resp, args.Error(1)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) NotifyBookingCreated(ctx context.Context, n notification.BookingNotice) error {
	return m.Called(ctx, n).Error(0)
}

type panickingRepo struct{}

func (panickingRepo) Create(context.Context, *domain.Booking) (*domain.Booking, error) {
	panic("connection pool exhausted")
}

var now = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		SuiteID:     "nomad",
		StartDate:   time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC),
		GuestName:   "Amina Wanjiru",
		GuestEmail:  "amina@example.com",
		GuestPhone:  "+254712345678",
		VerifiedID:  true,
		TotalAmount: 16000,
	}
}

func newUseCase(repo BookingRepository, payments PaymentClient, notifier Notifier) *UseCase {
	uc := NewUseCase(repo, payments, notifier, nil, nopLogger{})
	uc.timeProvider = fixedTime{now}
	return uc
}

func TestExecute_SimulationMode(t *testing.T) {
	uc := newUseCase(nil, nil, nil)

	resp := uc.Execute(context.Background(), validRequest())

	assert.True(t, resp.Success)
	assert.Equal(t, "mock-1735732800000", resp.BookingID)
	assert.Equal(t, MsgBookingReceived, resp.Message)
	assert.Empty(t, resp.Error)
}

func TestExecute_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "no suite", mutate: func(r *Request) { r.SuiteID = "" }},
		{name: "short name", mutate: func(r *Request) { r.GuestName = "A" }},
		{name: "bad email", mutate: func(r *Request) { r.GuestEmail = "amina@" }},
		{name: "no dates", mutate: func(r *Request) { r.StartDate = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRepo)
			uc := newUseCase(repo, nil, nil)

			req := validRequest()
			tt.mutate(req)
			resp := uc.Execute(context.Background(), req)

			assert.False(t, resp.Success)
			assert.Equal(t, MsgInvalidInput, resp.Error)
			assert.ErrorIs(t, resp.Err, ErrInvalidInput)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_FullFlow(t *testing.T) {
	payments := new(mockPayments)
	repo := new(mockRepo)
	notifier := new(mockNotifier)

	payments.On("InitiateSTKPush", mock.Anything, mpesa.STKPushRequest{
		Phone:            "+254712345678",
		Amount:           16000,
		AccountReference: "nomad",
		TransactionDesc:  "Booking nomad",
	}).Return(&mpesa.STKPushResponse{CheckoutRequestID: "ws_CO_1"}, nil).Once()

	repo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Status == domain.StatusPending &&
			b.Metadata.VerifiedID &&
			b.Metadata.MpesaCheckoutID != nil && *b.Metadata.MpesaCheckoutID == "ws_CO_1"
	})).Return(&domain.Booking{ID: "7f9c1c0e-1111-4c2b-9a8e-8b1f5f1f0c11"}, nil).Once()

	notifier.On("NotifyBookingCreated", mock.Anything, mock.MatchedBy(func(n notification.BookingNotice) bool {
		return n.BookingID == "7f9c1c0e-1111-4c2b-9a8e-8b1f5f1f0c11" && n.VerifiedID
	})).Return(nil).Once()

	uc := newUseCase(repo, payments, notifier)
	resp := uc.Execute(context.Background(), validRequest())

	require.True(t, resp.Success)
	assert.Equal(t, "7f9c1c0e-1111-4c2b-9a8e-8b1f5f1f0c11", resp.BookingID)
	assert.Equal(t, MsgPaymentStarted, resp.Message)

	payments.AssertExpectations(t)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestExecute_PaymentFailureContinues(t *testing.T) {
	payments := new(mockPayments)
	repo := new(mockRepo)

	payments.On("InitiateSTKPush", mock.Anything, mock.Anything).
		Return(nil, mpesa.ErrAuthFailed).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Metadata.MpesaCheckoutID == nil
	})).Return(&domain.Booking{ID: "b-2"}, nil).Once()

	uc := newUseCase(repo, payments, nil)
	resp := uc.Execute(context.Background(), validRequest())

	assert.True(t, resp.Success)
	assert.Equal(t, "b-2", resp.BookingID)
	assert.Equal(t, MsgBookingReceived, resp.Message)
	repo.AssertExpectations(t)
}

func TestExecute_ZeroAmountSkipsPayment(t *testing.T) {
	payments := new(mockPayments)

	req := validRequest()
	req.TotalAmount = 0

	uc := newUseCase(nil, payments, nil)
	resp := uc.Execute(context.Background(), req)

	assert.True(t, resp.Success)
	payments.AssertNotCalled(t, "InitiateSTKPush", mock.Anything, mock.Anything)
}

func TestExecute_PersistenceFailureSkipsEmail(t *testing.T) {
	repo := new(mockRepo)
	notifier := new(mockNotifier)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused")).Once()

	uc := newUseCase(repo, nil, notifier)
	resp := uc.Execute(context.Background(), validRequest())

	assert.False(t, resp.Success)
	assert.Equal(t, MsgPersistence, resp.Error)
	assert.ErrorIs(t, resp.Err, ErrPersistence)
	assert.NotContains(t, resp.Error, "connection refused")
	notifier.AssertNotCalled(t, "NotifyBookingCreated", mock.Anything, mock.Anything)
}

func TestExecute_EmailFailureIsUnexpected(t *testing.T) {
	repo := new(mockRepo)
	notifier := new(mockNotifier)

	repo.On("Create", mock.Anything, mock.Anything).Return(&domain.Booking{ID: "b-3"}, nil).Once()
	notifier.On("NotifyBookingCreated", mock.Anything, mock.Anything).Return(notification.ErrSendFailed).Once()

	uc := newUseCase(repo, nil, notifier)
	resp := uc.Execute(context.Background(), validRequest())

	assert.False(t, resp.Success)
	assert.Equal(t, MsgUnexpected, resp.Error)
	assert.ErrorIs(t, resp.Err, ErrInternal)
}

func TestExecute_PanicIsRecovered(t *testing.T) {
	uc := newUseCase(panickingRepo{}, nil, nil)

	resp := uc.Execute(context.Background(), validRequest())

	assert.False(t, resp.Success)
	assert.Equal(t, MsgUnexpected, resp.Error)
	assert.ErrorIs(t, resp.Err, ErrInternal)
}

func TestExecute_EmptyRepositoryIDKeepsPlaceholder(t *testing.T) {
	repo := new(mockRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(&domain.Booking{}, nil).Once()

	uc := newUseCase(repo, nil, nil)
	resp := uc.Execute(context.Background(), validRequest())

	assert.True(t, resp.Success)
	assert.Equal(t, "mock-1735732800000", resp.BookingID)
}
