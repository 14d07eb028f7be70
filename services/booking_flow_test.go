package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studiobook-backend/models"
	"studiobook-backend/store"
	"studiobook-backend/utils"
)

// fakeStore implements store.Store for flow tests; only CreateBooking is
// exercised by the wizard.
type fakeStore struct {
	store.Store

	createCalls int
	createErr   error
	lastInput   store.CreateBookingInput
}

func (f *fakeStore) CreateBooking(ctx context.Context, in store.CreateBookingInput) (*models.Booking, error) {
	f.createCalls++
	f.lastInput = in
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Booking{
		ID:         uuid.New(),
		ServiceID:  in.ServiceID,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		StartTime:  in.StartTime,
		EndTime:    in.StartTime.Add(time.Hour),
		Status:     models.BookingStatusPending,
		TotalPrice: "150.00",
	}, nil
}

func flowWithSelections(st store.Store) *BookingFlow {
	f := NewBookingFlow(st)
	f.SelectService(testService(60))
	f.SelectDateTime(futureDate(), "10:00")
	return f
}

func validDetails() CustomerDetails {
	return CustomerDetails{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "+447700900123",
		Notes:     "first session",
	}
}

func TestBookingFlow_StartsAtServiceSelection(t *testing.T) {
	f := NewBookingFlow(&fakeStore{})
	assert.Equal(t, StepSelectService, f.Step())
}

func TestBookingFlow_NextRequiresService(t *testing.T) {
	f := NewBookingFlow(&fakeStore{})

	err := f.Next()
	assert.ErrorIs(t, err, ErrServiceRequired)
	assert.Equal(t, StepSelectService, f.Step(), "rejected transition must not change state")

	f.SelectService(testService(60))
	require.NoError(t, f.Next())
	assert.Equal(t, StepSelectDateTime, f.Step())
}

func TestBookingFlow_NextRequiresDateAndTime(t *testing.T) {
	f := NewBookingFlow(&fakeStore{})
	f.SelectService(testService(60))
	require.NoError(t, f.Next())

	err := f.Next()
	assert.ErrorIs(t, err, ErrDateTimeRequired)
	assert.Equal(t, StepSelectDateTime, f.Step())

	f.SelectDateTime(futureDate(), "")
	assert.ErrorIs(t, f.Next(), ErrDateTimeRequired)

	f.SelectDateTime(futureDate(), "10:00")
	require.NoError(t, f.Next())
	assert.Equal(t, StepEnterDetails, f.Step())
}

func TestBookingFlow_PreviousKeepsData(t *testing.T) {
	f := flowWithSelections(&fakeStore{})
	require.NoError(t, f.Next())
	require.NoError(t, f.Next())
	f.SetDetails(validDetails())

	require.NoError(t, f.Previous())
	assert.Equal(t, StepSelectDateTime, f.Step())
	require.NoError(t, f.Previous())
	assert.Equal(t, StepSelectService, f.Step())
	assert.ErrorIs(t, f.Previous(), ErrAtFirstStep)

	// Everything entered survives the round trip.
	require.NoError(t, f.Next())
	require.NoError(t, f.Next())
	assert.Equal(t, StepEnterDetails, f.Step())
}

func TestBookingFlow_SubmitValidatesDetails(t *testing.T) {
	st := &fakeStore{}
	f := flowWithSelections(st)
	require.NoError(t, f.Next())
	require.NoError(t, f.Next())

	f.SetDetails(CustomerDetails{FirstName: "", LastName: "", Email: "not-an-email"})

	_, fieldErrs, err := f.Submit(context.Background())
	require.NoError(t, err)
	require.Len(t, fieldErrs, 3)

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"firstName", "lastName", "email"}, fields)

	assert.Equal(t, StepEnterDetails, f.Step())
	assert.Zero(t, st.createCalls, "no request may be sent while validation fails")
}

func TestBookingFlow_SubmitSuccess(t *testing.T) {
	st := &fakeStore{}
	f := flowWithSelections(st)
	require.NoError(t, f.Next())
	require.NoError(t, f.Next())
	f.SetDetails(validDetails())

	booking, fieldErrs, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
	require.NotNil(t, booking)

	assert.Equal(t, StepConfirmed, f.Step())
	assert.Same(t, booking, f.Result())
	assert.Equal(t, 1, st.createCalls, "exactly one booking-creation request")
	assert.Equal(t, utils.AtClock(futureDate(), 10, 0), st.lastInput.StartTime)
}

func TestBookingFlow_SubmitFailureStaysInDetails(t *testing.T) {
	st := &fakeStore{createErr: store.ErrSlotConflict}
	f := flowWithSelections(st)
	require.NoError(t, f.Next())
	require.NoError(t, f.Next())
	f.SetDetails(validDetails())

	_, _, err := f.Submit(context.Background())
	assert.ErrorIs(t, err, store.ErrSlotConflict)
	assert.Equal(t, StepEnterDetails, f.Step())
	assert.Nil(t, f.Result())

	// Manual retry resubmits.
	st.createErr = nil
	_, _, err = f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StepConfirmed, f.Step())
	assert.Equal(t, 2, st.createCalls)
}

func TestBookingFlow_ConfirmedIsTerminal(t *testing.T) {
	st := &fakeStore{}
	f := flowWithSelections(st)
	require.NoError(t, f.Next())
	require.NoError(t, f.Next())
	f.SetDetails(validDetails())

	_, _, err := f.Submit(context.Background())
	require.NoError(t, err)

	assert.ErrorIs(t, f.Next(), ErrFlowFinished)
	assert.ErrorIs(t, f.Previous(), ErrFlowFinished)
	_, _, err = f.Submit(context.Background())
	assert.ErrorIs(t, err, ErrFlowFinished)
	assert.Equal(t, 1, st.createCalls)
}

func TestBookingFlow_ResetDiscardsEverything(t *testing.T) {
	st := &fakeStore{}
	f := flowWithSelections(st)
	require.NoError(t, f.Next())
	require.NoError(t, f.Next())
	f.SetDetails(validDetails())

	_, _, err := f.Submit(context.Background())
	require.NoError(t, err)

	f.Reset()
	assert.Equal(t, StepSelectService, f.Step())
	assert.Nil(t, f.Result())
	assert.ErrorIs(t, f.Next(), ErrServiceRequired)
}
