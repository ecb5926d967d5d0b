package notification

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/m04kA/DaySeven-BookingService/internal/domain"
)

// Service рассылка писем о новых бронированиях
type Service struct {
	sender   EmailSender
	settings Settings
	logger   Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(sender EmailSender, settings Settings, logger Logger) *Service {
	return &Service{
		sender:   sender,
		settings: settings,
		logger:   logger,
	}
}

// NotifyBookingCreated отправляет уведомление владельцу, затем подтверждение гостю
// Ошибка первого письма прерывает рассылку
func (s *Service) NotifyBookingCreated(ctx context.Context, notice BookingNotice) error {
	s.logger.Info("NotifyBookingCreated: booking=%s, suite=%s", notice.BookingID, notice.SuiteID)

	owner, err := s.OwnerEmail(notice)
	if err != nil {
		return err
	}
	if err := s.sender.Send(ctx, owner); err != nil {
		s.logger.Error("NotifyBookingCreated: owner email failed for booking=%s: %v", notice.BookingID, err)
		return fmt.Errorf("%w: owner: %v", ErrSendFailed, err)
	}

	guest, err := s.GuestEmail(notice)
	if err != nil {
		return err
	}
	if err := s.sender.Send(ctx, guest); err != nil {
		s.logger.Error("NotifyBookingCreated: guest email failed for booking=%s: %v", notice.BookingID, err)
		return fmt.Errorf("%w: guest: %v", ErrSendFailed, err)
	}

	return nil
}

// OwnerEmail собирает уведомление владельцу
func (s *Service) OwnerEmail(notice BookingNotice) (domain.Email, error) {
	verified := "No"
	if notice.VerifiedID {
		verified = "Yes (File Uploaded)"
	}

	html, err := render(ownerTemplate, ownerView{
		BookingNotice: notice,
		From:          notice.StartDate.Format(DateLayout),
		To:            notice.EndDate.Format(DateLayout),
		Verified:      verified,
	})
	if err != nil {
		return domain.Email{}, err
	}

	return domain.Email{
		From:    s.settings.From,
		To:      []string{s.settings.OwnerEmail},
		Subject: fmt.Sprintf("New Booking: %s - %s", notice.GuestName, notice.SuiteID),
		HTML:    html,
	}, nil
}

// GuestEmail собирает подтверждение получения заявки для гостя
func (s *Service) GuestEmail(notice BookingNotice) (domain.Email, error) {
	html, err := render(guestTemplate, guestView{
		BookingNotice: notice,
		AppName:       s.settings.AppName,
	})
	if err != nil {
		return domain.Email{}, err
	}

	return domain.Email{
		From:    s.settings.From,
		To:      []string{notice.GuestEmail},
		Subject: fmt.Sprintf("Booking Request Received: %s - %s", s.settings.AppName, notice.SuiteID),
		HTML:    html,
	}, nil
}

func render(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRender, t.Name(), err)
	}
	return buf.String(), nil
}
