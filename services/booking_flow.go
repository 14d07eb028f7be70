package services

import (
	"context"
	"errors"
	"time"

	"studiobook-backend/models"
	"studiobook-backend/store"
	"studiobook-backend/utils"
)

// FlowStep is one step of the booking wizard.
type FlowStep int

const (
	StepSelectService FlowStep = iota + 1
	StepSelectDateTime
	StepEnterDetails
	StepConfirmed
)

var (
	ErrServiceRequired  = errors.New("please select a service")
	ErrDateTimeRequired = errors.New("please select a date and time")
	ErrSubmitRequired   = errors.New("confirm the booking to continue")
	ErrAtFirstStep      = errors.New("already at the first step")
	ErrFlowFinished     = errors.New("booking flow is finished")
)

// CustomerDetails are the wizard's details-step fields.
type CustomerDetails struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Notes     string
}

// BookingFlow drives the four-step booking wizard: service selection, date
// and time selection, customer details, confirmation. Transitions that lack
// their required input are rejected in place with a named error and the
// step does not change; going back never discards entered data. Confirmed
// is terminal.
type BookingFlow struct {
	store store.Store

	step     FlowStep
	service  *models.Service
	date     time.Time
	slotTime string
	details  CustomerDetails
	result   *models.Booking
}

func NewBookingFlow(st store.Store) *BookingFlow {
	return &BookingFlow{store: st, step: StepSelectService}
}

func (f *BookingFlow) Step() FlowStep { return f.step }

// Result returns the created booking once the flow is confirmed.
func (f *BookingFlow) Result() *models.Booking { return f.result }

// SelectService records the chosen service.
func (f *BookingFlow) SelectService(service *models.Service) {
	f.service = service
}

// SelectDateTime records the chosen calendar day and "HH:MM" slot start.
// The slot is expected to come from GenerateSlots output with
// available=true; the store re-checks conflicts at submission anyway.
func (f *BookingFlow) SelectDateTime(date time.Time, slotTime string) {
	f.date = date
	f.slotTime = slotTime
}

// SetDetails records the customer details entered so far.
func (f *BookingFlow) SetDetails(details CustomerDetails) {
	f.details = details
}

// Next advances to the following step when the current step's requirement
// is met. The details step advances through Submit, not Next.
func (f *BookingFlow) Next() error {
	switch f.step {
	case StepSelectService:
		if f.service == nil {
			return ErrServiceRequired
		}
		f.step = StepSelectDateTime
	case StepSelectDateTime:
		if f.date.IsZero() || f.slotTime == "" {
			return ErrDateTimeRequired
		}
		f.step = StepEnterDetails
	case StepEnterDetails:
		return ErrSubmitRequired
	default:
		return ErrFlowFinished
	}
	return nil
}

// Previous steps back to the preceding step, keeping everything entered.
func (f *BookingFlow) Previous() error {
	switch f.step {
	case StepSelectService:
		return ErrAtFirstStep
	case StepConfirmed:
		return ErrFlowFinished
	default:
		f.step--
	}
	return nil
}

// Submit validates the customer details and sends exactly one
// booking-creation request. Field errors or a store failure leave the flow
// in the details step; on success the flow enters Confirmed holding the
// created booking.
func (f *BookingFlow) Submit(ctx context.Context) (*models.Booking, []utils.FieldError, error) {
	if f.step != StepEnterDetails {
		if f.step == StepConfirmed {
			return nil, nil, ErrFlowFinished
		}
		return nil, nil, ErrDateTimeRequired
	}
	if f.service == nil || f.date.IsZero() || f.slotTime == "" {
		return nil, nil, ErrDateTimeRequired
	}

	if fieldErrs := utils.ValidateCustomerDetails(
		f.details.FirstName, f.details.LastName, f.details.Email,
	); len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	hour, minute, err := utils.ParseClock(f.slotTime)
	if err != nil {
		return nil, nil, ErrDateTimeRequired
	}

	booking, err := f.store.CreateBooking(ctx, store.CreateBookingInput{
		ServiceID: f.service.ID,
		FirstName: f.details.FirstName,
		LastName:  f.details.LastName,
		Email:     f.details.Email,
		Phone:     f.details.Phone,
		StartTime: utils.AtClock(f.date, hour, minute),
		Notes:     f.details.Notes,
	})
	if err != nil {
		return nil, nil, err
	}

	f.step = StepConfirmed
	f.result = booking
	return booking, nil, nil
}

// Reset discards all in-memory flow state, as when leaving the
// confirmation screen.
func (f *BookingFlow) Reset() {
	*f = BookingFlow{store: f.store, step: StepSelectService}
}
