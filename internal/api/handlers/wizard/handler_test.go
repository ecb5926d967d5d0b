package wizard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DaySeven-BookingService/internal/catalog"
	"github.com/m04kA/DaySeven-BookingService/internal/infra/storage/uploads"
	createBooking "github.com/m04kA/DaySeven-BookingService/internal/usecase/create_booking"
	bookingWizard "github.com/m04kA/DaySeven-BookingService/internal/wizard"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// memorySession одна сессия в памяти
type memorySession struct {
	values map[string]interface{}
}

func newMemorySession() *memorySession {
	return &memorySession{values: map[string]interface{}{}}
}

func (m *memorySession) Get(_ context.Context, key string) interface{} {
	return m.values[key]
}

func (m *memorySession) Put(_ context.Context, key string, val interface{}) {
	m.values[key] = val
}

type fakeDocuments struct {
	ref string
	err error
}

func (f *fakeDocuments) Save(_ context.Context, _ string, r io.Reader) (string, error) {
	_, _ = io.Copy(io.Discard, r)
	return f.ref, f.err
}

func (f *fakeDocuments) MaxSize() int64 { return 5 << 20 }

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) *createBooking.Response {
	return m.Called(ctx, req).Get(0).(*createBooking.Response)
}

type fixture struct {
	handler   *Handler
	session   *memorySession
	documents *fakeDocuments
	useCase   *mockUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cat, err := catalog.New(catalog.Default(catalog.Images{}))
	require.NoError(t, err)

	f := &fixture{
		session:   newMemorySession(),
		documents: &fakeDocuments{ref: "doc.png"},
		useCase:   &mockUseCase{},
	}
	f.handler = NewHandler(f.session, cat, f.documents, f.useCase, nopLogger{})
	f.handler.now = func() time.Time { return time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC) }
	return f
}

func (f *fixture) state() bookingWizard.State {
	st, _ := f.session.values[SessionKey].(bookingWizard.State)
	return st
}

func call(h http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/wizard", &buf)
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeState(t *testing.T, rec *httptest.ResponseRecorder) StateResponse {
	t.Helper()
	var resp StateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func fillValidGuest(f *fixture) {
	call(f.handler.UpdateGuest, GuestFieldRequest{Field: "name", Value: "Jane Doe"})
	call(f.handler.UpdateGuest, GuestFieldRequest{Field: "email", Value: "jane@example.com"})
	call(f.handler.UpdateGuest, GuestFieldRequest{Field: "phone", Value: "0712345678"})
	call(f.handler.SetRulesAgreement, RulesRequest{Agreed: true})
}

func TestGetState_Initial(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/wizard", nil)
	rec := httptest.NewRecorder()
	f.handler.GetState(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeState(t, rec)
	assert.Equal(t, "DATE_SELECTION", resp.Step)
	assert.Nil(t, resp.SuiteID)
	assert.Equal(t, 1, resp.Hours)
	assert.Empty(t, resp.Errors)
	assert.Nil(t, resp.Stay)
}

func TestSelectSuite(t *testing.T) {
	f := newFixture(t)

	rec := call(f.handler.SelectSuite, SelectSuiteRequest{SuiteID: catalog.SuiteNomad})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeState(t, rec)
	require.NotNil(t, resp.SuiteID)
	assert.Equal(t, catalog.SuiteNomad, *resp.SuiteID)
	require.NotNil(t, resp.Suite)
	require.NotNil(t, resp.Stay)
	assert.Equal(t, 0, resp.Stay.Nights)

	st := f.state()
	require.NotNil(t, st.SuiteID)
	assert.Equal(t, catalog.SuiteNomad, *st.SuiteID)
}

func TestSelectSuite_Unknown(t *testing.T) {
	f := newFixture(t)

	rec := call(f.handler.SelectSuite, SelectSuiteRequest{SuiteID: "penthouse"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, f.session.values, SessionKey)
}

func TestSetDates_PricesStay(t *testing.T) {
	f := newFixture(t)
	call(f.handler.SelectSuite, SelectSuiteRequest{SuiteID: catalog.SuiteNomad})

	rec := call(f.handler.SetDates, DatesRequest{From: "2025-02-01", To: "2025-02-04"})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeState(t, rec)
	assert.True(t, resp.IsDatesSelected)
	require.NotNil(t, resp.Stay)
	assert.Equal(t, 3, resp.Stay.Nights)
	assert.Greater(t, resp.Stay.Rate, 0.0)
}

func TestSetDates_Invalid(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		req  DatesRequest
	}{
		{name: "bad format", req: DatesRequest{From: "01/02/2025"}},
		{name: "check-out before check-in", req: DatesRequest{From: "2025-02-04", To: "2025-02-01"}},
		{name: "same day", req: DatesRequest{From: "2025-02-04", To: "2025-02-04"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := call(f.handler.SetDates, tt.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestSetHours(t *testing.T) {
	f := newFixture(t)
	call(f.handler.SelectSuite, SelectSuiteRequest{SuiteID: catalog.SuitePause})

	rec := call(f.handler.SetHours, HoursRequest{Hours: 3})
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeState(t, rec)
	assert.Equal(t, 3, resp.Hours)
	require.NotNil(t, resp.Stay)
	require.NotNil(t, resp.Stay.Hours)
	assert.Equal(t, 3, *resp.Stay.Hours)

	rec = call(f.handler.SetHours, HoursRequest{Hours: 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 3, f.state().Hours)
}

func TestUpdateGuest_NormalizesPhone(t *testing.T) {
	f := newFixture(t)

	rec := call(f.handler.UpdateGuest, GuestFieldRequest{Field: "phone", Value: "0712 345 678"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "+254712345678", decodeState(t, rec).Guest.Phone)

	rec = call(f.handler.UpdateGuest, GuestFieldRequest{Field: "address", Value: "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidateGuestField(t *testing.T) {
	f := newFixture(t)
	call(f.handler.UpdateGuest, GuestFieldRequest{Field: "email", Value: "not-an-email"})

	rec := call(f.handler.ValidateGuestField, ValidateFieldRequest{Field: "email"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Please enter a valid email address", decodeState(t, rec).Errors["email"])

	value := "jane@example.com"
	rec = call(f.handler.ValidateGuestField, ValidateFieldRequest{Field: "email", Value: &value})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, decodeState(t, rec).Errors, "email")
}

func TestStepNavigation(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, "GUEST_INFO", decodeState(t, call(f.handler.NextStep, nil)).Step)
	assert.Equal(t, "CONFIRMATION", decodeState(t, call(f.handler.NextStep, nil)).Step)
	assert.Equal(t, "CONFIRMATION", decodeState(t, call(f.handler.NextStep, nil)).Step)
	assert.Equal(t, "GUEST_INFO", decodeState(t, call(f.handler.PreviousStep, nil)).Step)
	assert.Equal(t, "DATE_SELECTION", decodeState(t, call(f.handler.GoToStep, StepRequest{Step: "DATE_SELECTION"})).Step)

	rec := call(f.handler.GoToStep, StepRequest{Step: "PAYMENT"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReset(t *testing.T) {
	f := newFixture(t)
	call(f.handler.SelectSuite, SelectSuiteRequest{SuiteID: catalog.SuiteNomad})
	fillValidGuest(f)

	rec := call(f.handler.Reset, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	st := f.state()
	assert.Equal(t, *bookingWizard.New(), st)
}

func uploadRequest(t *testing.T, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "passport.png")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/wizard/guest/id-document", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadIDDocument(t *testing.T) {
	f := newFixture(t)

	rec := httptest.NewRecorder()
	f.handler.UploadIDDocument(rec, uploadRequest(t, []byte("\x89PNG\r\n\x1a\nrest")))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeState(t, rec).Guest.HasIDDocument)
	assert.Equal(t, "doc.png", f.state().Guest.IDDocument)
}

func TestUploadIDDocument_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "too large", err: uploads.ErrTooLarge, status: http.StatusRequestEntityTooLarge},
		{name: "unsupported", err: uploads.ErrUnsupportedType, status: http.StatusUnsupportedMediaType},
		{name: "write failure", err: uploads.ErrWrite, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.documents.err = tt.err

			rec := httptest.NewRecorder()
			f.handler.UploadIDDocument(rec, uploadRequest(t, []byte("data")))

			assert.Equal(t, tt.status, rec.Code)
			assert.Empty(t, f.state().Guest.IDDocument)
		})
	}
}

func TestUploadIDDocument_MissingFile(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/wizard/guest/id-document", strings.NewReader("x"))
	rec := httptest.NewRecorder()
	f.handler.UploadIDDocument(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func decodeSubmit(t *testing.T, rec *httptest.ResponseRecorder) SubmitResponse {
	t.Helper()
	var resp SubmitResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestSubmit_Preconditions(t *testing.T) {
	t.Run("no suite", func(t *testing.T) {
		f := newFixture(t)
		rec := call(f.handler.Submit, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, msgNoSuiteSelected, decodeSubmit(t, rec).Error)
	})

	t.Run("nightly without dates", func(t *testing.T) {
		f := newFixture(t)
		call(f.handler.SelectSuite, SelectSuiteRequest{SuiteID: catalog.SuiteNomad})
		fillValidGuest(f)

		rec := call(f.handler.Submit, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, msgNoDatesSelected, decodeSubmit(t, rec).Error)
	})

	t.Run("invalid guest", func(t *testing.T) {
		f := newFixture(t)
		call(f.handler.SelectSuite, SelectSuiteRequest{SuiteID: catalog.SuitePause})
		call(f.handler.UpdateGuest, GuestFieldRequest{Field: "name", Value: "J"})

		rec := call(f.handler.Submit, nil)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		resp := decodeSubmit(t, rec)
		assert.Equal(t, "Name must be at least 2 characters", resp.State.Errors["name"])
		assert.Contains(t, resp.State.Errors, "email")
		assert.Contains(t, f.state().Errors, "phone")
	})

	t.Run("rules not accepted", func(t *testing.T) {
		f := newFixture(t)
		call(f.handler.SelectSuite, SelectSuiteRequest{SuiteID: catalog.SuitePause})
		fillValidGuest(f)
		call(f.handler.SetRulesAgreement, RulesRequest{Agreed: false})

		rec := call(f.handler.Submit, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, msgRulesNotAccepted, decodeSubmit(t, rec).Error)
	})
}

func TestSubmit_HourlySuccessResetsWizard(t *testing.T) {
	f := newFixture(t)
	call(f.handler.SelectSuite, SelectSuiteRequest{SuiteID: catalog.SuitePause})
	call(f.handler.SetHours, HoursRequest{Hours: 2})
	fillValidGuest(f)

	now := f.handler.now()
	f.useCase.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.SuiteID == catalog.SuitePause &&
			req.StartDate.Equal(now) &&
			req.EndDate.Equal(now.Add(2*time.Hour)) &&
			req.GuestPhone == "+254712345678" &&
			req.TotalAmount > 0 &&
			!req.VerifiedID
	})).Return(&createBooking.Response{
		Success:   true,
		BookingID: "b-1",
		Message:   createBooking.MsgPaymentStarted,
	}).Once()

	rec := call(f.handler.Submit, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeSubmit(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "b-1", resp.BookingID)
	assert.Equal(t, "DATE_SELECTION", resp.State.Step)
	assert.Nil(t, resp.State.SuiteID)
	assert.Equal(t, *bookingWizard.New(), f.state())
	f.useCase.AssertExpectations(t)
}

func TestSubmit_NightlyFailureKeepsState(t *testing.T) {
	f := newFixture(t)
	call(f.handler.SelectSuite, SelectSuiteRequest{SuiteID: catalog.SuiteNomad})
	call(f.handler.SetDates, DatesRequest{From: "2025-02-01", To: "2025-02-08"})
	fillValidGuest(f)

	f.useCase.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.StartDate.Equal(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)) &&
			req.EndDate.Equal(time.Date(2025, 2, 8, 0, 0, 0, 0, time.UTC))
	})).Return(&createBooking.Response{
		Error: createBooking.MsgPersistence,
		Err:   errors.Join(createBooking.ErrPersistence, errors.New("db down")),
	}).Once()

	rec := call(f.handler.Submit, nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeSubmit(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, createBooking.MsgPersistence, resp.Error)

	st := f.state()
	require.NotNil(t, st.SuiteID)
	assert.Equal(t, "Jane Doe", st.Guest.Name)
	f.useCase.AssertExpectations(t)
}

func TestSetHours_Bounds(t *testing.T) {
	f := newFixture(t)
	call(f.handler.SelectSuite, SelectSuiteRequest{SuiteID: catalog.SuitePause})

	rec := call(f.handler.SetHours, HoursRequest{Hours: 12})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 12, f.state().Hours)

	for _, hours := range []int{13, 500} {
		rec = call(f.handler.SetHours, HoursRequest{Hours: hours})
		assert.Equal(t, http.StatusBadRequest, rec.Code, "hours=%d", hours)
	}
	assert.Equal(t, 12, f.state().Hours)
}

func TestSetDates_RejectsPast(t *testing.T) {
	f := newFixture(t)
	call(f.handler.SelectSuite, SelectSuiteRequest{SuiteID: catalog.SuiteNomad})

	tests := []struct {
		name string
		req  DatesRequest
	}{
		{name: "whole stay in the past", req: DatesRequest{From: "2020-03-01", To: "2020-03-05"}},
		{name: "check-in yesterday", req: DatesRequest{From: "2025-01-09", To: "2025-01-12"}},
		{name: "check-in only, in the past", req: DatesRequest{From: "2024-12-31"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := call(f.handler.SetDates, tt.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, f.state().Dates.IsComplete())
		})
	}

	rec := call(f.handler.SetDates, DatesRequest{From: "2025-01-10", To: "2025-01-11"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decodeState(t, rec).Stay.Nights)
}

func TestSubmit_RejectsStaleDates(t *testing.T) {
	f := newFixture(t)
	call(f.handler.SelectSuite, SelectSuiteRequest{SuiteID: catalog.SuiteNomad})
	call(f.handler.SetDates, DatesRequest{From: "2025-02-01", To: "2025-02-04"})
	fillValidGuest(f)

	f.handler.now = func() time.Time { return time.Date(2025, 2, 2, 9, 0, 0, 0, time.UTC) }

	rec := call(f.handler.Submit, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgPastDates, decodeSubmit(t, rec).Error)
	f.useCase.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
