package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cst-sportspot/booking-service/internal/domain"
	"github.com/cst-sportspot/booking-service/internal/events"
	bookingRepo "github.com/cst-sportspot/booking-service/internal/infra/storage/booking"
	"github.com/cst-sportspot/booking-service/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	byID          map[int64]*domain.Booking
	updatedStatus map[int64]domain.BookingStatus
	deleted       []int64
	countByStatus map[domain.BookingStatus]int64
	repaired      int64
}

func newFakeBookingRepo(bs ...*domain.Booking) *fakeBookingRepo {
	f := &fakeBookingRepo{
		byID:          make(map[int64]*domain.Booking),
		updatedStatus: make(map[int64]domain.BookingStatus),
		countByStatus: make(map[domain.BookingStatus]int64),
	}
	for _, b := range bs {
		f.byID[b.ID] = b
	}
	return f
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) List(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0, len(f.byID))
	for _, b := range f.byID {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.updatedStatus[id] = status
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.deleted = append(f.deleted, id)
	delete(f.byID, id)
	return nil
}

func (f *fakeBookingRepo) CountByStatus(_ context.Context, status domain.BookingStatus) (int64, error) {
	return f.countByStatus[status], nil
}

func (f *fakeBookingRepo) CountByUser(_ context.Context, _ int64) (int64, error) {
	return int64(len(f.byID)), nil
}

func (f *fakeBookingRepo) CountActiveByUser(_ context.Context, _ int64, _ time.Time) (int64, error) {
	return 1, nil
}

func (f *fakeBookingRepo) RepairVenueNames(_ context.Context) (int64, error) {
	return f.repaired, nil
}

type fakeCounter struct{ n int64 }

func (f fakeCounter) Count(_ context.Context) (int64, error) { return f.n, nil }

type fakePublisher struct {
	keys []string
}

func (f *fakePublisher) Publish(_ context.Context, key string, _ events.BookingEvent) error {
	f.keys = append(f.keys, key)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func student(id int64) *domain.User {
	return &domain.User{ID: id, Role: domain.RoleStudent}
}

func admin() *domain.User {
	return &domain.User{ID: 999, Role: domain.RoleAdmin}
}

func pendingBooking(id, userID int64) *domain.Booking {
	return &domain.Booking{
		ID: id, UserID: userID, VenueID: 1, VenueName: "Court",
		FullName: "Alex Chen", Email: "alex@campus.edu",
		Date: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00", EndTime: "11:00", Participants: 4,
		Status: domain.StatusPending,
	}
}

func newService(repo *fakeBookingRepo, pub *fakePublisher) *Service {
	return NewService(repo, fakeCounter{n: 10}, fakeCounter{n: 3}, pub, nopLogger{})
}

func TestGetByID_Access(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking(1, 7))
	svc := newService(repo, &fakePublisher{})

	// Владелец видит своё бронирование
	resp, err := svc.GetByID(context.Background(), 1, student(7))
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	// Администратор видит любое
	_, err = svc.GetByID(context.Background(), 1, admin())
	require.NoError(t, err)

	// Чужой пользователь - нет
	_, err = svc.GetByID(context.Background(), 1, student(8))
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 404, student(7))
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus_TransitionTable(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.BookingStatus
		to      string
		allowed bool
	}{
		{name: "pending to approved", from: domain.StatusPending, to: "Approved", allowed: true},
		{name: "pending to rejected", from: domain.StatusPending, to: "Rejected", allowed: true},
		{name: "pending to cancelled", from: domain.StatusPending, to: "Cancelled", allowed: true},
		{name: "approved to cancelled", from: domain.StatusApproved, to: "Cancelled", allowed: true},
		{name: "approved to rejected", from: domain.StatusApproved, to: "Rejected", allowed: false},
		{name: "approved to pending", from: domain.StatusApproved, to: "Pending", allowed: false},
		{name: "rejected is terminal", from: domain.StatusRejected, to: "Approved", allowed: false},
		{name: "cancelled is terminal", from: domain.StatusCancelled, to: "Pending", allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := pendingBooking(1, 7)
			b.Status = tt.from
			repo := newFakeBookingRepo(b)
			pub := &fakePublisher{}
			svc := newService(repo, pub)

			resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: tt.to})
			if !tt.allowed {
				assert.ErrorIs(t, err, ErrInvalidTransition)
				assert.Empty(t, repo.updatedStatus)
				assert.Empty(t, pub.keys)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.to, resp.Status)
			assert.Equal(t, domain.BookingStatus(tt.to), repo.updatedStatus[1])
			require.Len(t, pub.keys, 1)
			assert.Equal(t, events.KeyBookingStatusChanged, pub.keys[0])
		})
	}
}

func TestUpdateStatus_InvalidStatusValue(t *testing.T) {
	svc := newService(newFakeBookingRepo(pendingBooking(1, 7)), &fakePublisher{})

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "Confirmed"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel(t *testing.T) {
	t.Run("owner cancels pending", func(t *testing.T) {
		repo := newFakeBookingRepo(pendingBooking(1, 7))
		pub := &fakePublisher{}
		svc := newService(repo, pub)

		resp, err := svc.Cancel(context.Background(), 1, student(7))
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), resp.Status)
		require.Len(t, pub.keys, 1)
		assert.Equal(t, events.KeyBookingCancelled, pub.keys[0])
	})

	t.Run("admin cancels approved", func(t *testing.T) {
		b := pendingBooking(1, 7)
		b.Status = domain.StatusApproved
		svc := newService(newFakeBookingRepo(b), &fakePublisher{})

		resp, err := svc.Cancel(context.Background(), 1, admin())
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	})

	t.Run("stranger denied", func(t *testing.T) {
		svc := newService(newFakeBookingRepo(pendingBooking(1, 7)), &fakePublisher{})

		_, err := svc.Cancel(context.Background(), 1, student(8))
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("terminal status cannot be cancelled", func(t *testing.T) {
		for _, status := range []domain.BookingStatus{domain.StatusRejected, domain.StatusCancelled} {
			b := pendingBooking(1, 7)
			b.Status = status
			svc := newService(newFakeBookingRepo(b), &fakePublisher{})

			_, err := svc.Cancel(context.Background(), 1, student(7))
			assert.ErrorIs(t, err, ErrCannotCancel)
		}
	})
}

func TestDelete(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking(1, 7))
	svc := newService(repo, &fakePublisher{})

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Equal(t, []int64{1}, repo.deleted)

	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrBookingNotFound)
}

func TestAdminStats(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.countByStatus[domain.StatusApproved] = 5
	repo.countByStatus[domain.StatusPending] = 2
	svc := newService(repo, &fakePublisher{})

	stats, err := svc.AdminStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(10), stats.TotalUsers)
	assert.Equal(t, int64(3), stats.TotalVenues)
	assert.Equal(t, int64(5), stats.ActiveBookings)
	assert.Equal(t, int64(2), stats.PendingRequests)
}

func TestRepairVenueNames(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.repaired = 17
	svc := newService(repo, &fakePublisher{})

	resp, err := svc.RepairVenueNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(17), resp.Repaired)
}
