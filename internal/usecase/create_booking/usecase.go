package create_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/DaySeven-BookingService/internal/domain"
	"github.com/m04kA/DaySeven-BookingService/internal/integrations/mpesa"
	"github.com/m04kA/DaySeven-BookingService/internal/service/notification"
)

// UseCase оформление бронирования: оплата, сохранение, письма
//
// Каждая из зависимостей опциональна. Без хранилища бронирование получает
// временный идентификатор mock-<ms>, без платежей и почты шаги пропускаются.
type UseCase struct {
	bookingRepo  BookingRepository
	payments     PaymentClient
	notifier     Notifier
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger

	hasPersistence bool
	hasPayments    bool
	hasEmail       bool
}

// NewUseCase создает новый экземпляр use case
// Отсутствующие зависимости передаются как nil интерфейсы
func NewUseCase(
	bookingRepo BookingRepository,
	payments PaymentClient,
	notifier Notifier,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &UseCase{
		bookingRepo:    bookingRepo,
		payments:       payments,
		notifier:       notifier,
		metrics:        metrics,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
		hasPersistence: bookingRepo != nil,
		hasPayments:    payments != nil,
		hasEmail:       notifier != nil,
	}
}

// Execute оформляет бронирование
// Никогда не возвращает ошибку наружу: результат всегда описан в Response
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response) {
	defer func() {
		if r := recover(); r != nil {
			uc.logger.Error("CreateBooking: panic recovered: %v", r)
			uc.metrics.RecordBooking(ResultError)
			resp = failure(fmt.Errorf("%w: panic: %v", ErrInternal, r), MsgUnexpected)
		}
	}()

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.RecordBooking(ResultInvalid)
		return failure(err, MsgInvalidInput)
	}

	uc.logger.Info("CreateBooking: suite=%s, guest=%s, from=%s, to=%s, amount=%.2f",
		req.SuiteID, req.GuestEmail, req.StartDate.Format(domain.DateFormat),
		req.EndDate.Format(domain.DateFormat), req.TotalAmount)

	// 2. Запрос оплаты на телефон гостя, ошибка не прерывает оформление
	checkoutID := uc.initiatePayment(ctx, req)

	// 3. Сохраняем бронирование
	bookingID := fmt.Sprintf("mock-%d", uc.timeProvider.Now().UnixMilli())

	if uc.hasPersistence {
		created, err := uc.bookingRepo.Create(ctx, &domain.Booking{
			SuiteID:     req.SuiteID,
			GuestName:   req.GuestName,
			GuestEmail:  req.GuestEmail,
			GuestPhone:  req.GuestPhone,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			TotalAmount: req.TotalAmount,
			Status:      domain.StatusPending,
			Metadata: domain.BookingMetadata{
				VerifiedID:      req.VerifiedID,
				MpesaCheckoutID: checkoutID,
			},
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to save booking for suite=%s: %v", req.SuiteID, err)
			uc.metrics.RecordBooking(ResultPersistence)
			return failure(fmt.Errorf("%w: %v", ErrPersistence, err), MsgPersistence)
		}
		if created != nil && created.ID != "" {
			bookingID = created.ID
		}
	} else {
		uc.logger.Warn("CreateBooking: persistence not configured, using placeholder id=%s", bookingID)
	}

	// 4. Письма владельцу и гостю
	if uc.hasEmail {
		err := uc.notifier.NotifyBookingCreated(ctx, notification.BookingNotice{
			BookingID:  bookingID,
			SuiteID:    req.SuiteID,
			GuestName:  req.GuestName,
			GuestEmail: req.GuestEmail,
			GuestPhone: req.GuestPhone,
			StartDate:  req.StartDate,
			EndDate:    req.EndDate,
			VerifiedID: req.VerifiedID,
		})
		if err != nil {
			// бронирование уже сохранено, но гость получает общий ответ об ошибке
			uc.logger.Error("CreateBooking: email notification failed for booking=%s: %v", bookingID, err)
			uc.metrics.RecordExternalCall(integrationEmail, ResultError)
			uc.metrics.RecordBooking(ResultError)
			return failure(fmt.Errorf("%w: notify: %v", ErrInternal, err), MsgUnexpected)
		}
		uc.metrics.RecordExternalCall(integrationEmail, ResultSuccess)
	} else {
		uc.logger.Warn("CreateBooking: email not configured, skipping notification for booking=%s", bookingID)
	}

	message := MsgBookingReceived
	if checkoutID != nil {
		message = MsgPaymentStarted
	}

	uc.logger.Info("CreateBooking: booking id=%s accepted", bookingID)
	uc.metrics.RecordBooking(ResultSuccess)

	return &Response{
		Success:   true,
		BookingID: bookingID,
		Message:   message,
	}
}

// initiatePayment запрашивает оплату, если платежи настроены и сумма положительна
// Возвращает CheckoutRequestID или nil
func (uc *UseCase) initiatePayment(ctx context.Context, req *Request) *string {
	if !uc.hasPayments || req.TotalAmount <= 0 {
		return nil
	}

	resp, err := uc.payments.InitiateSTKPush(ctx, mpesa.STKPushRequest{
		Phone:            req.GuestPhone,
		Amount:           req.TotalAmount,
		AccountReference: req.SuiteID,
		TransactionDesc:  "Booking " + req.SuiteID,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: payment push failed for suite=%s, continuing without payment: %v", req.SuiteID, err)
		uc.metrics.RecordExternalCall(integrationPayment, ResultError)
		return nil
	}

	uc.metrics.RecordExternalCall(integrationPayment, ResultSuccess)
	uc.logger.Info("CreateBooking: payment initiated checkout_id=%s", resp.CheckoutRequestID)

	id := resp.CheckoutRequestID
	return &id
}
