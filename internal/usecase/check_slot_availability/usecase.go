package check_slot_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/cst-sportspot/booking-service/internal/domain"
	venueRepo "github.com/cst-sportspot/booking-service/internal/infra/storage/venue"
	"github.com/cst-sportspot/booking-service/pkg/ptr"
)

// UseCase use case проверки доступности конкретного временного слота.
// Решение: IsAvailable = (площадка в статусе Available) И (ни один занятый
// интервал не пересекается с кандидатом). Гейт статуса площадки не зависит
// от занятости слотов и проверяется отдельно.
type UseCase struct {
	bookingRepo BookingRepository
	venueRepo   VenueRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, venueRepo VenueRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		logger:      logger,
	}
}

// Execute выполняет проверку доступности слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckSlotAvailability: venue=%d, date=%s, slot=%s-%s",
		req.VenueID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	candidate, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CheckSlotAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем площадку
	venue, err := uc.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("CheckSlotAvailability: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("CheckSlotAvailability: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 3. Агрегируем занятые интервалы на день из обоих источников
	dayStart, dayEnd := domain.DayBounds(req.Date)

	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		VenueID:   ptr.Ptr(req.VenueID),
		DayStart:  &dayStart,
		DayEnd:    &dayEnd,
		Occupying: true,
	})
	if err != nil {
		uc.logger.Error("CheckSlotAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	blocked, err := uc.venueRepo.GetBlockedSlotsByDay(ctx, req.VenueID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("CheckSlotAvailability: failed to get blocked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked slots: %v", ErrInternal, err)
	}

	occupied := buildOccupiedSlots(bookings, blocked)

	// 4. Считаем конфликты по строгому правилу пересечения
	conflicts := countConflicts(occupied, candidate)
	isAvailable := venue.AcceptsBookings() && conflicts == 0

	uc.logger.Info("CheckSlotAvailability: venue=%d, slot=%s-%s, conflicts=%d, available=%t",
		req.VenueID, req.StartTime, req.EndTime, conflicts, isAvailable)

	return &Response{
		Date:                req.Date,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		IsAvailable:         isAvailable,
		ConflictingBookings: conflicts,
	}, nil
}
