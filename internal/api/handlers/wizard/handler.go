package wizard

import (
	"context"
	"encoding/gob"
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/DaySeven-BookingService/internal/api/handlers"
	"github.com/m04kA/DaySeven-BookingService/internal/catalog"
	"github.com/m04kA/DaySeven-BookingService/internal/domain"
	"github.com/m04kA/DaySeven-BookingService/internal/infra/storage/uploads"
	createBooking "github.com/m04kA/DaySeven-BookingService/internal/usecase/create_booking"
	bookingWizard "github.com/m04kA/DaySeven-BookingService/internal/wizard"
)

// SessionKey ключ состояния мастера в сессии
const SessionKey = "booking_wizard"

const (
	msgInvalidRequestBody = "invalid request body"
	msgSuiteNotFound      = "suite not found"
	msgInvalidDates       = "invalid dates: expected YYYY-MM-DD, check-out after check-in"
	msgPastDates          = "dates in the past cannot be booked"
	msgInvalidHours       = "hours must be between 1 and 12"
	msgUnknownField       = "unknown field, expected one of: name, email, phone"
	msgUnknownStep        = "unknown step, expected one of: DATE_SELECTION, GUEST_INFO, CONFIRMATION"
	msgMissingFile        = "file is required"
	msgFileTooLarge       = "File is too large"
	msgUnsupportedFile    = "Only images and PDF documents are accepted"
	msgNoSuiteSelected    = "Please select a suite"
	msgNoDatesSelected    = "Please select your dates"
	msgInvalidGuestInfo   = "Please correct the highlighted fields"
	msgRulesNotAccepted   = "Please agree to the house rules"
)

// scs сериализует значения сессии через gob
func init() {
	gob.Register(bookingWizard.State{})
}

// Handler шаги мастера бронирования, состояние хранится в сессии посетителя
type Handler struct {
	sessions  SessionStore
	catalog   SuiteCatalog
	documents DocumentStorage
	useCase   CreateBookingUseCase
	now       func() time.Time
	logger    Logger
}

func NewHandler(
	sessions SessionStore,
	catalog SuiteCatalog,
	documents DocumentStorage,
	useCase CreateBookingUseCase,
	logger Logger,
) *Handler {
	return &Handler{
		sessions:  sessions,
		catalog:   catalog,
		documents: documents,
		useCase:   useCase,
		now:       time.Now,
		logger:    logger,
	}
}

// GetState GET /api/v1/wizard
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	h.respondState(w, http.StatusOK, h.load(r.Context()))
}

// SelectSuite POST /api/v1/wizard/suite
func (h *Handler) SelectSuite(w http.ResponseWriter, r *http.Request) {
	var req SelectSuiteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/suite - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if _, err := h.catalog.Get(req.SuiteID); err != nil {
		h.logger.Warn("POST /wizard/suite - Suite not found: suite_id=%s", req.SuiteID)
		handlers.RespondNotFound(w, msgSuiteNotFound)
		return
	}

	h.update(w, r, func(s *bookingWizard.State) {
		s.SelectSuite(req.SuiteID)
	})
}

// SetDates POST /api/v1/wizard/dates
func (h *Handler) SetDates(w http.ResponseWriter, r *http.Request) {
	var req DatesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	dates, err := toDateRange(req)
	if err != nil {
		h.logger.Warn("POST /wizard/dates - Invalid dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	if h.startsInPast(dates) {
		h.logger.Warn("POST /wizard/dates - Dates in the past: from=%s, to=%s", req.From, req.To)
		handlers.RespondBadRequest(w, msgPastDates)
		return
	}

	h.update(w, r, func(s *bookingWizard.State) {
		s.SetSelectedDates(dates)
	})
}

// SetHours POST /api/v1/wizard/hours
func (h *Handler) SetHours(w http.ResponseWriter, r *http.Request) {
	var req HoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.Hours < 1 || req.Hours > domain.MaxHours {
		h.logger.Warn("POST /wizard/hours - Invalid hours: %d, err=%v", req.Hours, err)
		handlers.RespondBadRequest(w, msgInvalidHours)
		return
	}

	h.update(w, r, func(s *bookingWizard.State) {
		s.SetSelectedHours(req.Hours)
	})
}

// UpdateGuest POST /api/v1/wizard/guest
func (h *Handler) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	var req GuestFieldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/guest - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	field, err := bookingWizard.ParseField(req.Field)
	if err != nil {
		handlers.RespondBadRequest(w, msgUnknownField)
		return
	}

	h.update(w, r, func(s *bookingWizard.State) {
		_ = s.UpdateGuestInfo(field, req.Value)
	})
}

// ValidateGuestField POST /api/v1/wizard/guest/validate
func (h *Handler) ValidateGuestField(w http.ResponseWriter, r *http.Request) {
	var req ValidateFieldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/guest/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	field, err := bookingWizard.ParseField(req.Field)
	if err != nil {
		handlers.RespondBadRequest(w, msgUnknownField)
		return
	}

	h.update(w, r, func(s *bookingWizard.State) {
		value := s.FieldValue(field)
		if req.Value != nil {
			value = *req.Value
		}
		_ = s.ValidateField(field, value)
	})
}

// UploadIDDocument POST /api/v1/wizard/guest/id-document (multipart, поле "file")
func (h *Handler) UploadIDDocument(w http.ResponseWriter, r *http.Request) {
	// запас на заголовки multipart сверх размера файла
	r.Body = http.MaxBytesReader(w, r.Body, h.documents.MaxSize()+64<<10)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgFileTooLarge)
			return
		}
		h.logger.Warn("POST /wizard/guest/id-document - Missing file: %v", err)
		handlers.RespondBadRequest(w, msgMissingFile)
		return
	}
	defer file.Close()

	ref, err := h.documents.Save(r.Context(), header.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, uploads.ErrTooLarge):
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgFileTooLarge)
		case errors.Is(err, uploads.ErrUnsupportedType):
			handlers.RespondError(w, http.StatusUnsupportedMediaType, msgUnsupportedFile)
		default:
			h.logger.Error("POST /wizard/guest/id-document - Failed to store document: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/guest/id-document - Document stored: ref=%s", ref)

	h.update(w, r, func(s *bookingWizard.State) {
		s.AttachIDDocument(ref)
	})
}

// SetRulesAgreement POST /api/v1/wizard/guest/rules
func (h *Handler) SetRulesAgreement(w http.ResponseWriter, r *http.Request) {
	var req RulesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	h.update(w, r, func(s *bookingWizard.State) {
		s.SetAgreedToRules(req.Agreed)
	})
}

// NextStep POST /api/v1/wizard/next
func (h *Handler) NextStep(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, (*bookingWizard.State).NextStep)
}

// PreviousStep POST /api/v1/wizard/previous
func (h *Handler) PreviousStep(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, (*bookingWizard.State).PreviousStep)
}

// GoToStep POST /api/v1/wizard/step
func (h *Handler) GoToStep(w http.ResponseWriter, r *http.Request) {
	var req StepRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	step, err := bookingWizard.ParseStep(req.Step)
	if err != nil {
		handlers.RespondBadRequest(w, msgUnknownStep)
		return
	}

	h.update(w, r, func(s *bookingWizard.State) {
		s.GoToStep(step)
	})
}

// Reset POST /api/v1/wizard/reset
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, (*bookingWizard.State).Reset)
}

// Submit POST /api/v1/wizard/submit
// Проверяет заполненность мастера и передает бронирование на оформление
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	state := h.load(ctx)

	if state.SuiteID == nil {
		h.respondSubmitError(w, http.StatusBadRequest, msgNoSuiteSelected, state, nil)
		return
	}

	suite, err := h.catalog.Get(*state.SuiteID)
	if err != nil {
		h.logger.Warn("POST /wizard/submit - Selected suite disappeared: suite_id=%s", *state.SuiteID)
		h.respondSubmitError(w, http.StatusNotFound, msgSuiteNotFound, state, nil)
		return
	}

	if !suite.IsHourly && !state.IsDatesSelected() {
		h.respondSubmitError(w, http.StatusBadRequest, msgNoDatesSelected, state, &suite)
		return
	}

	// даты могли устареть, пока гость заполнял форму
	if !suite.IsHourly && h.startsInPast(state.Dates) {
		h.respondSubmitError(w, http.StatusBadRequest, msgPastDates, state, &suite)
		return
	}

	if !state.IsFormValid() {
		h.save(ctx, state)
		h.respondSubmitError(w, http.StatusUnprocessableEntity, msgInvalidGuestInfo, state, &suite)
		return
	}

	if !state.Guest.AgreedToRules {
		h.respondSubmitError(w, http.StatusBadRequest, msgRulesNotAccepted, state, &suite)
		return
	}

	draft, err := state.Draft(suite, h.now())
	if err != nil {
		h.logger.Error("POST /wizard/submit - Failed to build booking: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	result := h.useCase.Execute(ctx, &createBooking.Request{
		SuiteID:     draft.SuiteID,
		StartDate:   draft.StartDate,
		EndDate:     draft.EndDate,
		GuestName:   draft.Guest.Name,
		GuestEmail:  draft.Guest.Email,
		GuestPhone:  draft.Guest.Phone,
		VerifiedID:  draft.VerifiedID,
		TotalAmount: draft.TotalAmount,
	})

	status := http.StatusInternalServerError
	switch {
	case result.Success:
		status = http.StatusCreated
		state.Reset()
		h.save(ctx, state)
		h.logger.Info("POST /wizard/submit - Booking accepted: booking_id=%s, suite_id=%s", result.BookingID, suite.ID)
	case errors.Is(result.Err, createBooking.ErrInvalidInput):
		status = http.StatusBadRequest
		h.logger.Warn("POST /wizard/submit - Booking rejected: %v", result.Err)
	default:
		h.logger.Error("POST /wizard/submit - Booking failed: suite_id=%s, error=%v", suite.ID, result.Err)
	}

	var current *domain.Suite
	if state.SuiteID != nil {
		current = &suite
	}

	handlers.RespondJSON(w, status, &SubmitResponse{
		Success:   result.Success,
		BookingID: result.BookingID,
		Message:   result.Message,
		Error:     result.Error,
		State:     FromState(state, current),
	})
}

func (h *Handler) load(ctx context.Context) *bookingWizard.State {
	if st, ok := h.sessions.Get(ctx, SessionKey).(bookingWizard.State); ok {
		return &st
	}
	return bookingWizard.New()
}

func (h *Handler) save(ctx context.Context, state *bookingWizard.State) {
	h.sessions.Put(ctx, SessionKey, *state)
}

// update применяет переход к состоянию из сессии, сохраняет и возвращает результат
func (h *Handler) update(w http.ResponseWriter, r *http.Request, apply func(*bookingWizard.State)) {
	state := h.load(r.Context())
	apply(state)
	h.save(r.Context(), state)
	h.respondState(w, http.StatusOK, state)
}

func (h *Handler) respondState(w http.ResponseWriter, status int, state *bookingWizard.State) {
	handlers.RespondJSON(w, status, FromState(state, h.selectedSuite(state)))
}

func (h *Handler) respondSubmitError(w http.ResponseWriter, status int, msg string, state *bookingWizard.State, suite *domain.Suite) {
	handlers.RespondJSON(w, status, &SubmitResponse{
		Success: false,
		Error:   msg,
		State:   FromState(state, suite),
	})
}

func (h *Handler) selectedSuite(state *bookingWizard.State) *domain.Suite {
	if state.SuiteID == nil {
		return nil
	}
	suite, err := h.catalog.Get(*state.SuiteID)
	if err != nil {
		if !errors.Is(err, catalog.ErrSuiteNotFound) {
			h.logger.Error("wizard - Failed to load suite %s: %v", *state.SuiteID, err)
		}
		return nil
	}
	return &suite
}

// startsInPast true, если одна из дат раньше сегодняшнего дня (UTC)
func (h *Handler) startsInPast(dates domain.DateRange) bool {
	now := h.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return (dates.From != nil && dates.From.Before(today)) ||
		(dates.To != nil && dates.To.Before(today))
}

func toDateRange(req DatesRequest) (domain.DateRange, error) {
	from, err := handlers.ParseOptionalDate(req.From)
	if err != nil {
		return domain.DateRange{}, err
	}
	to, err := handlers.ParseOptionalDate(req.To)
	if err != nil {
		return domain.DateRange{}, err
	}
	if from != nil && to != nil && !to.After(*from) {
		return domain.DateRange{}, errors.New("check-out must be after check-in")
	}
	return domain.DateRange{From: from, To: to}, nil
}
