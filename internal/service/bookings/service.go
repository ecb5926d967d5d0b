package bookings

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/DaySeven-BookingService/internal/domain"
	"github.com/m04kA/DaySeven-BookingService/internal/pricing"
	"github.com/m04kA/DaySeven-BookingService/internal/service/bookings/models"
)

// Service сервис чтения бронирований: календарь номера и панель администратора
//
// Без хранилища (repo == nil) и при ошибках чтения сервис отдает пустые
// списки, чтобы календарь и панель продолжали работать.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
// Отсутствующий репозиторий передается как nil интерфейс
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetBlockedDates возвращает периоды, недоступные для бронирования номера
func (s *Service) GetBlockedDates(ctx context.Context, suiteID string) (*models.BlockedDatesResponse, error) {
	if strings.TrimSpace(suiteID) == "" {
		return nil, fmt.Errorf("%w: suite id is required", ErrInvalidInput)
	}

	if s.bookingRepo == nil {
		return models.FromDomainRanges(suiteID, nil), nil
	}

	ranges, err := s.bookingRepo.GetBlockedRanges(ctx, suiteID)
	if err != nil {
		s.logger.Error("GetBlockedDates: repository error for suite=%s: %v", suiteID, err)
		return models.FromDomainRanges(suiteID, nil), nil
	}

	s.logger.Info("GetBlockedDates: suite=%s, ranges=%d", suiteID, len(ranges))
	return models.FromDomainRanges(suiteID, ranges), nil
}

// ListBookings возвращает бронирования (новые первыми), опционально по статусу
func (s *Service) ListBookings(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	var status *domain.BookingStatus
	if req != nil && req.Status != nil {
		st, ok := models.ToDomainBookingStatus(*req.Status)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *req.Status)
		}
		status = &st
	}

	bookings := s.list(ctx)

	resp := &models.BookingListResponse{Bookings: make([]models.BookingResponse, 0, len(bookings))}
	for _, b := range bookings {
		if status != nil && b.Status != *status {
			continue
		}
		resp.Bookings = append(resp.Bookings, *models.FromDomainBooking(b, pricing.FormatCurrency(b.TotalAmount)))
	}

	return resp, nil
}

// GetDashboard сводка по всем бронированиям для администратора
func (s *Service) GetDashboard(ctx context.Context) *models.DashboardResponse {
	bookings := s.list(ctx)

	resp := &models.DashboardResponse{
		TotalBookings:         len(bookings),
		PersistenceConfigured: s.bookingRepo != nil,
		Bookings:              make([]models.BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		resp.TotalRevenue += b.TotalAmount
		if b.Metadata.VerifiedID {
			resp.VerifiedIDs++
		}
		if b.HasPaymentReference() {
			resp.PaymentsInitiated++
		}
		resp.Bookings = append(resp.Bookings, *models.FromDomainBooking(b, pricing.FormatCurrency(b.TotalAmount)))
	}
	resp.TotalRevenueFormatted = pricing.FormatCurrency(resp.TotalRevenue)

	s.logger.Info("GetDashboard: bookings=%d, revenue=%.2f", resp.TotalBookings, resp.TotalRevenue)
	return resp
}

func (s *Service) list(ctx context.Context) []*domain.Booking {
	if s.bookingRepo == nil {
		s.logger.Warn("ListBookings: persistence not configured")
		return nil
	}

	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListBookings: repository error: %v", err)
		return nil
	}
	return bookings
}
