package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cst-sportspot/booking-service/internal/domain"
	"github.com/cst-sportspot/booking-service/internal/events"
	bookingRepo "github.com/cst-sportspot/booking-service/internal/infra/storage/booking"
	venueRepo "github.com/cst-sportspot/booking-service/internal/infra/storage/venue"
)

type fakeBookingRepo struct {
	existing  []*domain.Booking
	createErr error
	created   *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	b.ID = 42
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	f.created = b
	return b, nil
}

func (f *fakeBookingRepo) List(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.existing, nil
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

// passthroughTxManager выполняет функцию без реальной транзакции
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePublisher struct {
	published []events.BookingEvent
	keys      []string
}

func (f *fakePublisher) Publish(_ context.Context, key string, event events.BookingEvent) error {
	f.keys = append(f.keys, key)
	f.published = append(f.published, event)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testDate() time.Time {
	return time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
}

func validRequest() *Request {
	return &Request{
		UserID:       7,
		VenueID:      1,
		FullName:     "Alex Chen",
		Email:        "alex@campus.edu",
		Date:         testDate(),
		StartTime:    "10:00",
		EndTime:      "11:00",
		Participants: 4,
	}
}

func newUseCase(bookings *fakeBookingRepo, venues *fakeVenueRepo, pub *fakePublisher) *UseCase {
	return NewUseCase(bookings, venues, passthroughTxManager{}, pub, nopLogger{})
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	bookings := &fakeBookingRepo{}
	venues := &fakeVenueRepo{venue: &domain.Venue{ID: 1, Name: "Basketball Court", Status: domain.VenueAvailable}}
	pub := &fakePublisher{}

	resp, err := newUseCase(bookings, venues, pub).Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "Basketball Court", resp.VenueName)

	require.NotNil(t, bookings.created)
	assert.Equal(t, domain.StatusPending, bookings.created.Status)
	assert.Equal(t, "Basketball Court", bookings.created.VenueName)

	// Событие публикуется после успешного создания
	require.Len(t, pub.keys, 1)
	assert.Equal(t, events.KeyBookingCreated, pub.keys[0])
	assert.Equal(t, int64(42), pub.published[0].BookingID)
}

func TestExecute_ConflictRejected(t *testing.T) {
	bookings := &fakeBookingRepo{existing: []*domain.Booking{
		{ID: 9, VenueID: 1, Date: testDate(), StartTime: "10:30", EndTime: "11:30", Status: domain.StatusApproved},
	}}
	venues := &fakeVenueRepo{venue: &domain.Venue{ID: 1, Name: "Court", Status: domain.VenueAvailable}}
	pub := &fakePublisher{}

	_, err := newUseCase(bookings, venues, pub).Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, bookings.created)
	assert.Empty(t, pub.keys)
}

func TestExecute_BlockedSlotConflictRejected(t *testing.T) {
	bookings := &fakeBookingRepo{}
	venues := &fakeVenueRepo{
		venue: &domain.Venue{ID: 1, Name: "Court", Status: domain.VenueAvailable},
		blocked: []*domain.BlockedSlot{
			{ID: 3, VenueID: 1, Date: testDate(), StartTime: "09:00", EndTime: "10:30"},
		},
	}

	_, err := newUseCase(bookings, venues, &fakePublisher{}).Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, bookings.created)
}

func TestExecute_TouchingSlotAccepted(t *testing.T) {
	bookings := &fakeBookingRepo{existing: []*domain.Booking{
		{ID: 9, VenueID: 1, Date: testDate(), StartTime: "09:00", EndTime: "10:00", Status: domain.StatusApproved},
	}}
	venues := &fakeVenueRepo{venue: &domain.Venue{ID: 1, Name: "Court", Status: domain.VenueAvailable}}

	resp, err := newUseCase(bookings, venues, &fakePublisher{}).Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestExecute_VenueGateRejectsRegardlessOfSlots(t *testing.T) {
	for _, status := range []domain.VenueStatus{domain.VenueBooked, domain.VenueMaintenance} {
		t.Run(string(status), func(t *testing.T) {
			venues := &fakeVenueRepo{venue: &domain.Venue{ID: 1, Name: "Court", Status: status}}

			_, err := newUseCase(&fakeBookingRepo{}, venues, &fakePublisher{}).Execute(context.Background(), validRequest())
			assert.ErrorIs(t, err, ErrVenueNotAvailable)
		})
	}
}

func TestExecute_VenueNotFound(t *testing.T) {
	venues := &fakeVenueRepo{err: venueRepo.ErrVenueNotFound}

	_, err := newUseCase(&fakeBookingRepo{}, venues, &fakePublisher{}).Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestExecute_DuplicateSlotMappedToConflict(t *testing.T) {
	// Гонка дошла до вставки: частичный уникальный индекс вернул 23505
	bookings := &fakeBookingRepo{createErr: bookingRepo.ErrDuplicateSlot}
	venues := &fakeVenueRepo{venue: &domain.Venue{ID: 1, Name: "Court", Status: domain.VenueAvailable}}

	_, err := newUseCase(bookings, venues, &fakePublisher{}).Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_Validation(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{}, &fakeVenueRepo{}, &fakePublisher{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "missing full name", mutate: func(r *Request) { r.FullName = "" }},
		{name: "missing email", mutate: func(r *Request) { r.Email = "" }},
		{name: "zero participants", mutate: func(r *Request) { r.Participants = 0 }},
		{name: "end before start", mutate: func(r *Request) { r.StartTime, r.EndTime = "12:00", "10:00" }},
		{name: "equal endpoints", mutate: func(r *Request) { r.EndTime = r.StartTime }},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
