package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cst-sportspot/booking-service/internal/domain"
	"github.com/cst-sportspot/booking-service/internal/events"
	bookingRepo "github.com/cst-sportspot/booking-service/internal/infra/storage/booking"
	"github.com/cst-sportspot/booking-service/internal/service/bookings/models"
	"github.com/cst-sportspot/booking-service/pkg/ptr"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	userRepo    UserRepository
	venueRepo   VenueRepository
	publisher   EventPublisher
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	venueRepo VenueRepository,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		venueRepo:   venueRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID.
// Пользователь видит только своё бронирование, администратор - любое.
func (s *Service) GetByID(ctx context.Context, id int64, actor *domain.User) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, actor.ID)

	booking, err := s.getBooking(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	if booking.UserID != actor.ID && !actor.IsAdmin() {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", actor.ID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя.
// Опционально фильтрует по статусу.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	filter := domain.BookingsFilter{UserID: ptr.Ptr(req.UserID)}

	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetAllBookings получает все бронирования с опциональной фильтрацией.
// Доступно только администратору, проверка роли выполняется в middleware.
func (s *Service) GetAllBookings(ctx context.Context, req *models.GetAllBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetAllBookings: fetching bookings, status=%v, venue=%v, user=%v",
		req.Status, req.VenueID, req.UserID)

	filter := domain.BookingsFilter{
		UserID:  req.UserID,
		VenueID: req.VenueID,
	}

	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetAllBookings: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("GetAllBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAllBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAllBookings: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus обновляет статус бронирования. Доступно только администратору.
// Переход проверяется против диаграммы состояний: Pending -> Approved/Rejected/
// Cancelled, Approved -> Cancelled; Rejected и Cancelled терминальны.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	booking, err := s.getBooking(ctx, bookingID, "UpdateStatus")
	if err != nil {
		return nil, err
	}

	if !booking.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for booking id=%d",
			booking.Status, newStatus, bookingID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	prevStatus := booking.Status
	booking.Status = newStatus
	booking.UpdatedAt = time.Now()

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	s.publishTransition(ctx, booking, prevStatus, events.KeyBookingStatusChanged)

	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование.
// Пользователь может отменить только своё бронирование, администратор - любое.
// Отмена возможна только из статусов Pending и Approved.
func (s *Service) Cancel(ctx context.Context, bookingID int64, actor *domain.User) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, actor.ID)

	booking, err := s.getBooking(ctx, bookingID, "Cancel")
	if err != nil {
		return nil, err
	}

	if booking.UserID != actor.ID && !actor.IsAdmin() {
		s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", actor.ID, bookingID)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return nil, ErrCannotCancel
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCancelled); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	prevStatus := booking.Status
	booking.Status = domain.StatusCancelled
	booking.UpdatedAt = time.Now()

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	s.publishTransition(ctx, booking, prevStatus, events.KeyBookingCancelled)

	return models.FromDomainBooking(booking), nil
}

// Delete физически удаляет бронирование. Доступно только администратору,
// используется для очистки исторических записей.
func (s *Service) Delete(ctx context.Context, bookingID int64) error {
	s.logger.Info("Delete: deleting booking id=%d", bookingID)

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", bookingID)
	return nil
}

// AdminStats собирает агрегированную статистику для панели администратора.
// Активные бронирования считаются по статусу Approved, заявки - по Pending.
func (s *Service) AdminStats(ctx context.Context) (*models.AdminStatsResponse, error) {
	s.logger.Info("AdminStats: collecting statistics")

	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		s.logger.Error("AdminStats: failed to count users: %v", err)
		return nil, fmt.Errorf("%w: AdminStats - count users: %v", ErrInternal, err)
	}

	totalVenues, err := s.venueRepo.Count(ctx)
	if err != nil {
		s.logger.Error("AdminStats: failed to count venues: %v", err)
		return nil, fmt.Errorf("%w: AdminStats - count venues: %v", ErrInternal, err)
	}

	active, err := s.bookingRepo.CountByStatus(ctx, domain.StatusApproved)
	if err != nil {
		s.logger.Error("AdminStats: failed to count approved bookings: %v", err)
		return nil, fmt.Errorf("%w: AdminStats - count approved bookings: %v", ErrInternal, err)
	}

	pending, err := s.bookingRepo.CountByStatus(ctx, domain.StatusPending)
	if err != nil {
		s.logger.Error("AdminStats: failed to count pending bookings: %v", err)
		return nil, fmt.Errorf("%w: AdminStats - count pending bookings: %v", ErrInternal, err)
	}

	return &models.AdminStatsResponse{
		TotalUsers:      totalUsers,
		TotalVenues:     totalVenues,
		ActiveBookings:  active,
		PendingRequests: pending,
	}, nil
}

// UserStats собирает статистику бронирований пользователя для его профиля
func (s *Service) UserStats(ctx context.Context, userID int64) (*models.UserStatsResponse, error) {
	s.logger.Info("UserStats: collecting statistics for user=%d", userID)

	total, err := s.bookingRepo.CountByUser(ctx, userID)
	if err != nil {
		s.logger.Error("UserStats: failed to count bookings for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: UserStats - count bookings: %v", ErrInternal, err)
	}

	today, _ := domain.DayBounds(time.Now())
	active, err := s.bookingRepo.CountActiveByUser(ctx, userID, today)
	if err != nil {
		s.logger.Error("UserStats: failed to count active bookings for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: UserStats - count active bookings: %v", ErrInternal, err)
	}

	return &models.UserStatsResponse{
		TotalBookings:  total,
		ActiveBookings: active,
	}, nil
}

// RepairVenueNames заполняет кэш venue_name для исторических записей.
// Вызывается администратором как явный repair pass.
func (s *Service) RepairVenueNames(ctx context.Context) (*models.RepairVenueNamesResponse, error) {
	s.logger.Info("RepairVenueNames: starting repair pass")

	repaired, err := s.bookingRepo.RepairVenueNames(ctx)
	if err != nil {
		s.logger.Error("RepairVenueNames: repository error: %v", err)
		return nil, fmt.Errorf("%w: RepairVenueNames - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RepairVenueNames: repaired %d bookings", repaired)
	return &models.RepairVenueNamesResponse{Repaired: repaired}, nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, id int64, method string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", method, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return booking, nil
}

// publishTransition публикует событие смены статуса, best-effort
func (s *Service) publishTransition(ctx context.Context, b *domain.Booking, prev domain.BookingStatus, key string) {
	event := events.BookingEvent{
		EventID:    uuid.NewString(),
		BookingID:  b.ID,
		UserID:     b.UserID,
		VenueID:    b.VenueID,
		VenueName:  b.VenueName,
		Date:       b.Date.Format(domain.DateFormat),
		StartTime:  b.StartTime.String(),
		EndTime:    b.EndTime.String(),
		Status:     string(b.Status),
		PrevStatus: string(prev),
		OccurredAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, key, event); err != nil {
		s.logger.Warn("publishTransition: failed to publish %s for booking id=%d: %v", key, b.ID, err)
	}
}
