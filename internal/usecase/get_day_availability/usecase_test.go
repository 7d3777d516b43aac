package get_day_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cst-sportspot/booking-service/internal/domain"
	venueRepo "github.com/cst-sportspot/booking-service/internal/infra/storage/venue"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) List(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
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

func TestExecute_ReportSortedByStart(t *testing.T) {
	notes := "team practice"
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 2, VenueID: 1, FullName: "Maria Lopez", Date: testDate(),
			StartTime: "14:00", EndTime: "15:00", Participants: 8, Status: domain.StatusApproved, Notes: &notes},
		{ID: 1, VenueID: 1, FullName: "Alex Chen", Date: testDate(),
			StartTime: "09:00", EndTime: "10:00", Participants: 4, Status: domain.StatusPending},
	}}
	venues := &fakeVenueRepo{
		venue: &domain.Venue{ID: 1, Name: "Basketball Court", Status: domain.VenueAvailable},
		blocked: []*domain.BlockedSlot{
			{ID: 7, VenueID: 1, Date: testDate(), StartTime: "11:00", EndTime: "12:00"},
		},
	}

	uc := NewUseCase(bookings, venues, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: testDate()})
	require.NoError(t, err)

	assert.Equal(t, "Basketball Court", resp.VenueName)
	assert.Equal(t, domain.VenueAvailable, resp.VenueStatus)
	assert.True(t, resp.IsAvailable)

	require.Len(t, resp.BookedSlots, 3)
	assert.Equal(t, "09:00", resp.BookedSlots[0].Interval.Start.String())
	assert.Equal(t, "11:00", resp.BookedSlots[1].Interval.Start.String())
	assert.Equal(t, "14:00", resp.BookedSlots[2].Interval.Start.String())

	// Бронирование переносит данные заявителя
	first := resp.BookedSlots[0]
	assert.Equal(t, "Pending", first.Status)
	assert.Equal(t, "Alex Chen", first.BookedBy)
	require.NotNil(t, first.BookingID)
	assert.Equal(t, int64(1), *first.BookingID)

	// Блокировка помечается фиксированными атрибутами администратора
	blockedSlot := resp.BookedSlots[1]
	assert.Equal(t, domain.SlotStatusBlocked, blockedSlot.Status)
	assert.Equal(t, domain.SlotOwnerAdmin, blockedSlot.BookedBy)
	require.NotNil(t, blockedSlot.Notes)
	assert.Equal(t, "Reserved by administrator", *blockedSlot.Notes)
	assert.Nil(t, blockedSlot.BookingID)
}

func TestExecute_StableOrderOnEqualStart(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, VenueID: 1, FullName: "Alex Chen", Date: testDate(),
			StartTime: "10:00", EndTime: "11:00", Status: domain.StatusApproved},
	}}
	venues := &fakeVenueRepo{
		venue: &domain.Venue{ID: 1, Name: "Court", Status: domain.VenueAvailable},
		blocked: []*domain.BlockedSlot{
			{ID: 7, VenueID: 1, Date: testDate(), StartTime: "10:00", EndTime: "12:00"},
		},
	}

	uc := NewUseCase(bookings, venues, nopLogger{})

	// Повторные вызовы с одинаковыми данными дают одинаковый порядок:
	// при равном start бронирования идут раньше блокировок
	for i := 0; i < 3; i++ {
		resp, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: testDate()})
		require.NoError(t, err)
		require.Len(t, resp.BookedSlots, 2)
		assert.Equal(t, "Approved", resp.BookedSlots[0].Status)
		assert.Equal(t, domain.SlotStatusBlocked, resp.BookedSlots[1].Status)
	}
}

func TestExecute_FallbackDisplayName(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, VenueID: 1, Email: "old@campus.edu", Date: testDate(),
			StartTime: "09:00", EndTime: "10:00", Status: domain.StatusApproved},
		{ID: 2, VenueID: 1, Date: testDate(),
			StartTime: "11:00", EndTime: "12:00", Status: domain.StatusApproved},
	}}
	venues := &fakeVenueRepo{venue: &domain.Venue{ID: 1, Name: "Court", Status: domain.VenueAvailable}}

	uc := NewUseCase(bookings, venues, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: testDate()})
	require.NoError(t, err)

	require.Len(t, resp.BookedSlots, 2)
	assert.Equal(t, "old@campus.edu", resp.BookedSlots[0].BookedBy)
	assert.Equal(t, "Anonymous", resp.BookedSlots[1].BookedBy)
}

func TestExecute_BookedVenueReportsUnavailable(t *testing.T) {
	venues := &fakeVenueRepo{venue: &domain.Venue{ID: 1, Name: "Court", Status: domain.VenueBooked}}

	uc := NewUseCase(&fakeBookingRepo{}, venues, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: testDate()})
	require.NoError(t, err)

	assert.False(t, resp.IsAvailable)
	assert.Empty(t, resp.BookedSlots)
}

func TestExecute_VenueNotFound(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeVenueRepo{err: venueRepo.ErrVenueNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{VenueID: 42, Date: testDate()})
	assert.ErrorIs(t, err, ErrVenueNotFound)
}
