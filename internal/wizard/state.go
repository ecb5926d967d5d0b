// Package wizard holds the state of the three-step booking wizard:
// date or hour selection, guest details, confirmation.
package wizard

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/DaySeven-BookingService/internal/domain"
	"github.com/m04kA/DaySeven-BookingService/internal/pricing"
	"github.com/m04kA/DaySeven-BookingService/pkg/phone"
)

// Step is a stage of the wizard
type Step int

const (
	StepDateSelection Step = iota
	StepGuestInfo
	StepConfirmation
)

var stepNames = map[Step]string{
	StepDateSelection: "DATE_SELECTION",
	StepGuestInfo:     "GUEST_INFO",
	StepConfirmation:  "CONFIRMATION",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

// ParseStep parses a step name such as "GUEST_INFO"
func ParseStep(name string) (Step, error) {
	for step, n := range stepNames {
		if strings.EqualFold(n, name) {
			return step, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStep, name)
}

// Field is an editable text field of the guest form
type Field string

const (
	FieldName  Field = "name"
	FieldEmail Field = "email"
	FieldPhone Field = "phone"
)

// GuestFields lists the text fields in form order
var GuestFields = []Field{FieldName, FieldEmail, FieldPhone}

// ParseField parses a guest form field name
func ParseField(name string) (Field, error) {
	for _, f := range GuestFields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// State is the in-memory state of one wizard session
type State struct {
	SuiteID *string
	Step    Step
	Dates   domain.DateRange
	Hours   int
	Guest   domain.GuestInfo
	Errors  map[string]string
}

// New returns the initial wizard state
func New() *State {
	return &State{
		Step:   StepDateSelection,
		Hours:  domain.DefaultHours,
		Errors: map[string]string{},
	}
}

// SelectSuite picks a suite and returns to date selection.
// Hours and guest details are kept so the guest does not retype them.
func (s *State) SelectSuite(id string) {
	s.SuiteID = &id
	s.Step = StepDateSelection
}

func (s *State) SetSelectedDates(dates domain.DateRange) {
	s.Dates = dates
}

func (s *State) SetSelectedHours(hours int) {
	s.Hours = hours
}

// UpdateGuestInfo replaces one guest field and clears its validation error.
// Phone numbers are normalized on the way in.
func (s *State) UpdateGuestInfo(field Field, value string) error {
	switch field {
	case FieldName:
		s.Guest.Name = value
	case FieldEmail:
		s.Guest.Email = value
	case FieldPhone:
		s.Guest.Phone = phone.Format(value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	delete(s.ensureErrors(), string(field))
	return nil
}

// AttachIDDocument records the reference of an uploaded identity document
func (s *State) AttachIDDocument(ref string) {
	s.Guest.IDDocument = ref
}

func (s *State) SetAgreedToRules(agreed bool) {
	s.Guest.AgreedToRules = agreed
}

// ValidateField validates one field and records the result for that field only
func (s *State) ValidateField(field Field, value string) error {
	if _, ok := rules[field]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	errs := s.ensureErrors()
	if msg := ValidateValue(field, value); msg != "" {
		errs[string(field)] = msg
	} else {
		delete(errs, string(field))
	}
	return nil
}

// IsFormValid re-validates every guest field, replaces the error map with
// the fresh result and reports whether it is empty.
func (s *State) IsFormValid() bool {
	s.Errors = ValidateGuest(s.Guest)
	return len(s.Errors) == 0
}

// NextStep advances the wizard, staying put at confirmation
func (s *State) NextStep() {
	if s.Step < StepConfirmation {
		s.Step++
	}
}

// PreviousStep goes back one step, staying put at date selection
func (s *State) PreviousStep() {
	if s.Step > StepDateSelection {
		s.Step--
	}
}

// GoToStep jumps to any step without checks
func (s *State) GoToStep(step Step) {
	s.Step = step
}

// Reset restores the initial state
func (s *State) Reset() {
	*s = *New()
}

// IsGuestInfoComplete is true when name, email and phone are filled in and
// no validation error is recorded. Fields never validated count as valid.
func (s *State) IsGuestInfoComplete() bool {
	return strings.TrimSpace(s.Guest.Name) != "" &&
		strings.TrimSpace(s.Guest.Email) != "" &&
		strings.TrimSpace(s.Guest.Phone) != "" &&
		len(s.Errors) == 0
}

func (s *State) IsDatesSelected() bool {
	return s.Dates.IsComplete()
}

// Draft is everything needed to submit the booking held by the wizard
type Draft struct {
	SuiteID     string
	StartDate   time.Time
	EndDate     time.Time
	Guest       domain.GuestInfo
	Stay        domain.StayCalculation
	TotalAmount float64
	VerifiedID  bool
}

// Draft prices the current selection for the given suite.
// Hourly stays start now; nightly stays use the selected dates and fall back
// to now for a missing end.
func (s *State) Draft(suite domain.Suite, now time.Time) (Draft, error) {
	if s.SuiteID == nil || *s.SuiteID != suite.ID {
		return Draft{}, ErrNoSuiteSelected
	}

	stay := pricing.CalculateStay(suite, s.Dates, s.Hours)

	start, end := now, now
	if suite.IsHourly {
		end = now.Add(time.Duration(s.Hours) * time.Hour)
	} else {
		if s.Dates.From != nil {
			start = *s.Dates.From
		}
		if s.Dates.To != nil {
			end = *s.Dates.To
		}
	}

	return Draft{
		SuiteID:     suite.ID,
		StartDate:   start,
		EndDate:     end,
		Guest:       s.Guest,
		Stay:        stay,
		TotalAmount: stay.Rate,
		VerifiedID:  s.Guest.HasIDDocument(),
	}, nil
}

func (s *State) ensureErrors() map[string]string {
	if s.Errors == nil {
		s.Errors = map[string]string{}
	}
	return s.Errors
}

// FieldValue returns the current value of a guest form field
func (s *State) FieldValue(f Field) string {
	return guestValue(s.Guest, f)
}

func guestValue(g domain.GuestInfo, f Field) string {
	switch f {
	case FieldName:
		return g.Name
	case FieldEmail:
		return g.Email
	case FieldPhone:
		return g.Phone
	}
	return ""
}
