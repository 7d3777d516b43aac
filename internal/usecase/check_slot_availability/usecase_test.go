package check_slot_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cst-sportspot/booking-service/internal/domain"
	venueRepo "github.com/cst-sportspot/booking-service/internal/infra/storage/venue"
	"github.com/cst-sportspot/booking-service/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) List(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeVenueRepo struct {
	venue   *domain.Venue
	blocked []*domain.BlockedSlot
	err     error
}

func (f *fakeVenueRepo) GetByID(_ context.Context, _ int64) (*domain.Venue, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.venue, nil
}

func (f *fakeVenueRepo) GetBlockedSlotsByDay(_ context.Context, _ int64, _, _ time.Time) ([]*domain.BlockedSlot, error) {
	return f.blocked, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testDate() time.Time {
	return time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
}

func availableVenue() *domain.Venue {
	return &domain.Venue{ID: 1, Name: "Basketball Court", Status: domain.VenueAvailable}
}

func booking(start, end types.TimeString, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:        100,
		VenueID:   1,
		FullName:  "Alex Chen",
		Email:     "alex@campus.edu",
		Date:      testDate(),
		StartTime: start,
		EndTime:   end,
		Status:    status,
	}
}

func request(start, end types.TimeString) *Request {
	return &Request{VenueID: 1, Date: testDate(), StartTime: start, EndTime: end}
}

func TestExecute_FreeDay(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeVenueRepo{venue: availableVenue()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), request("10:00", "11:00"))
	require.NoError(t, err)

	assert.True(t, resp.IsAvailable)
	assert.Equal(t, 0, resp.ConflictingBookings)
}

func TestExecute_OverlappingBooking(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking("10:00", "12:00", domain.StatusApproved),
	}}
	uc := NewUseCase(repo, &fakeVenueRepo{venue: availableVenue()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), request("11:00", "13:00"))
	require.NoError(t, err)

	assert.False(t, resp.IsAvailable)
	assert.Equal(t, 1, resp.ConflictingBookings)
}

func TestExecute_TouchingIntervalsDoNotConflict(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking("10:00", "11:00", domain.StatusApproved),
	}}
	uc := NewUseCase(repo, &fakeVenueRepo{venue: availableVenue()}, nopLogger{})

	// Кандидат начинается ровно там, где заканчивается бронирование
	resp, err := uc.Execute(context.Background(), request("11:00", "12:00"))
	require.NoError(t, err)

	assert.True(t, resp.IsAvailable)
	assert.Equal(t, 0, resp.ConflictingBookings)
}

func TestExecute_PendingBookingOccupiesSlot(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking("10:00", "11:00", domain.StatusPending),
	}}
	uc := NewUseCase(repo, &fakeVenueRepo{venue: availableVenue()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), request("10:30", "11:30"))
	require.NoError(t, err)

	assert.False(t, resp.IsAvailable)
	assert.Equal(t, 1, resp.ConflictingBookings)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking("10:00", "11:00", domain.StatusCancelled),
		booking("10:00", "11:00", domain.StatusRejected),
	}}
	uc := NewUseCase(repo, &fakeVenueRepo{venue: availableVenue()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), request("10:00", "11:00"))
	require.NoError(t, err)

	assert.True(t, resp.IsAvailable)
	assert.Equal(t, 0, resp.ConflictingBookings)
}

func TestExecute_BlockedSlotConflicts(t *testing.T) {
	venues := &fakeVenueRepo{
		venue: availableVenue(),
		blocked: []*domain.BlockedSlot{
			{ID: 5, VenueID: 1, Date: testDate(), StartTime: "14:00", EndTime: "16:00"},
		},
	}
	uc := NewUseCase(&fakeBookingRepo{}, venues, nopLogger{})

	resp, err := uc.Execute(context.Background(), request("15:00", "17:00"))
	require.NoError(t, err)

	assert.False(t, resp.IsAvailable)
	assert.Equal(t, 1, resp.ConflictingBookings)
}

func TestExecute_ConflictsFromBothSources(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking("10:00", "12:00", domain.StatusApproved),
	}}
	venues := &fakeVenueRepo{
		venue: availableVenue(),
		blocked: []*domain.BlockedSlot{
			{ID: 5, VenueID: 1, Date: testDate(), StartTime: "11:00", EndTime: "13:00"},
		},
	}
	uc := NewUseCase(repo, venues, nopLogger{})

	resp, err := uc.Execute(context.Background(), request("11:30", "11:45"))
	require.NoError(t, err)

	assert.False(t, resp.IsAvailable)
	assert.Equal(t, 2, resp.ConflictingBookings)
}

func TestExecute_MaintenanceVenueNeverAvailable(t *testing.T) {
	venues := &fakeVenueRepo{
		venue: &domain.Venue{ID: 1, Name: "Pool", Status: domain.VenueMaintenance},
	}
	uc := NewUseCase(&fakeBookingRepo{}, venues, nopLogger{})

	// Слот полностью свободен, но площадка на обслуживании
	resp, err := uc.Execute(context.Background(), request("10:00", "11:00"))
	require.NoError(t, err)

	assert.False(t, resp.IsAvailable)
	assert.Equal(t, 0, resp.ConflictingBookings)
}

func TestExecute_MalformedOccupiedRecordSkipped(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		// Историческая запись с битым временем - пропускается, не конфликтует
		booking("25:99", "zz", domain.StatusApproved),
		booking("10:00", "11:00", domain.StatusApproved),
	}}
	uc := NewUseCase(repo, &fakeVenueRepo{venue: availableVenue()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), request("10:30", "11:30"))
	require.NoError(t, err)

	assert.False(t, resp.IsAvailable)
	assert.Equal(t, 1, resp.ConflictingBookings)
}

func TestExecute_VenueNotFound(t *testing.T) {
	venues := &fakeVenueRepo{err: venueRepo.ErrVenueNotFound}
	uc := NewUseCase(&fakeBookingRepo{}, venues, nopLogger{})

	_, err := uc.Execute(context.Background(), request("10:00", "11:00"))
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeVenueRepo{venue: availableVenue()}, nopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "end before start", req: request("12:00", "10:00")},
		{name: "equal endpoints", req: request("10:00", "10:00")},
		{name: "malformed time", req: request("10am", "11:00")},
		{name: "zero venue", req: &Request{Date: testDate(), StartTime: "10:00", EndTime: "11:00"}},
		{name: "zero date", req: &Request{VenueID: 1, StartTime: "10:00", EndTime: "11:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
