package get_day_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/cst-sportspot/booking-service/internal/domain"
	venueRepo "github.com/cst-sportspot/booking-service/internal/infra/storage/venue"
	"github.com/cst-sportspot/booking-service/pkg/ptr"
)

// UseCase use case отчета о занятости площадки за день.
// Только чтение: решение о доступности конкретного кандидатного слота
// принимает check_slot_availability, а не этот отчет.
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

// Execute выполняет формирование отчета
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDayAvailability: venue=%d, date=%s", req.VenueID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.VenueID <= 0 {
		return nil, fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Получаем площадку
	venue, err := uc.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("GetDayAvailability: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("GetDayAvailability: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 3. Агрегируем занятые интервалы из обоих источников по границам дня
	dayStart, dayEnd := domain.DayBounds(req.Date)

	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		VenueID:   ptr.Ptr(req.VenueID),
		DayStart:  &dayStart,
		DayEnd:    &dayEnd,
		Occupying: true,
	})
	if err != nil {
		uc.logger.Error("GetDayAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	blocked, err := uc.venueRepo.GetBlockedSlotsByDay(ctx, req.VenueID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetDayAvailability: failed to get blocked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked slots: %v", ErrInternal, err)
	}

	// 4. Объединяем и сортируем по времени начала
	occupied := buildOccupiedSlots(bookings, blocked)
	sortSlotsByStart(occupied)

	uc.logger.Info("GetDayAvailability: venue=%d, date=%s, occupied_slots=%d",
		req.VenueID, req.Date.Format(domain.DateFormat), len(occupied))

	return &Response{
		Date:        req.Date,
		VenueName:   venue.Name,
		VenueStatus: venue.Status,
		BookedSlots: occupied,
		IsAvailable: venue.AcceptsBookings(),
	}, nil
}
