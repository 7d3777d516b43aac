package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cst-sportspot/booking-service/internal/domain"
	"github.com/cst-sportspot/booking-service/internal/events"
	bookingRepo "github.com/cst-sportspot/booking-service/internal/infra/storage/booking"
	venueRepo "github.com/cst-sportspot/booking-service/internal/infra/storage/venue"
	"github.com/cst-sportspot/booking-service/pkg/ptr"
)

// UseCase use case создания бронирования.
//
// Проверка доступности и вставка выполняются в одной serializable-транзакции
// с блокировкой строк дня (SELECT ... FOR UPDATE), поэтому два конкурентных
// запроса на один слот не могут оба пройти проверку. Частичный уникальный
// индекс по (venue_id, date, start_time, end_time) для занимающих статусов -
// последний рубеж: нарушение маппится в ErrSlotConflict.
type UseCase struct {
	bookingRepo BookingRepository
	venueRepo   VenueRepository
	txManager   TransactionManager
	publisher   EventPublisher
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	venueRepo VenueRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger,
	}
}

// Execute выполняет создание бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, venue=%d, date=%s, slot=%s-%s",
		req.UserID, req.VenueID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	candidate, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var created *domain.Booking

	// 2. Проверка доступности и вставка атомарно
	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		venue, err := uc.venueRepo.GetByID(txCtx, req.VenueID)
		if err != nil {
			if errors.Is(err, venueRepo.ErrVenueNotFound) {
				return ErrVenueNotFound
			}
			return fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
		}

		// Площадка в статусе Booked или Maintenance не принимает заявки
		// независимо от занятости конкретного слота
		if !venue.AcceptsBookings() {
			return ErrVenueNotAvailable
		}

		dayStart, dayEnd := domain.DayBounds(req.Date)

		// Внутри транзакции List берет строки дня с FOR UPDATE
		bookings, err := uc.bookingRepo.List(txCtx, domain.BookingsFilter{
			VenueID:   ptr.Ptr(req.VenueID),
			DayStart:  &dayStart,
			DayEnd:    &dayEnd,
			Occupying: true,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		blocked, err := uc.venueRepo.GetBlockedSlotsByDay(txCtx, req.VenueID, dayStart, dayEnd)
		if err != nil {
			return fmt.Errorf("%w: failed to get blocked slots: %v", ErrInternal, err)
		}

		if conflicts := countConflicts(bookings, blocked, candidate); conflicts > 0 {
			uc.logger.Warn("CreateBooking: slot %s-%s on venue=%d has %d conflicts",
				req.StartTime, req.EndTime, req.VenueID, conflicts)
			return ErrSlotConflict
		}

		created, err = uc.bookingRepo.Create(txCtx, &domain.Booking{
			UserID:         req.UserID,
			VenueID:        req.VenueID,
			VenueName:      venue.Name,
			FullName:       req.FullName,
			StudentNumber:  req.StudentNumber,
			Year:           req.Year,
			Course:         req.Course,
			Email:          req.Email,
			Date:           req.Date,
			StartTime:      req.StartTime,
			EndTime:        req.EndTime,
			Participants:   req.Participants,
			NeedsEquipment: req.NeedsEquipment,
			Notes:          req.Notes,
			Status:         domain.StatusPending,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrDuplicateSlot) {
				return ErrSlotConflict
			}
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, ErrVenueNotFound) || errors.Is(txErr, ErrVenueNotAvailable) || errors.Is(txErr, ErrSlotConflict) {
			return nil, txErr
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", txErr)
		if errors.Is(txErr, ErrInternal) {
			return nil, txErr
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, txErr)
	}

	uc.logger.Info("CreateBooking: booking id=%d created with status=%s", created.ID, created.Status)

	// 3. Публикация события после коммита, best-effort
	uc.publishCreated(ctx, created)

	return &Response{
		ID:             created.ID,
		UserID:         created.UserID,
		VenueID:        created.VenueID,
		VenueName:      created.VenueName,
		FullName:       created.FullName,
		Date:           created.Date,
		StartTime:      created.StartTime,
		EndTime:        created.EndTime,
		Participants:   created.Participants,
		NeedsEquipment: created.NeedsEquipment,
		Notes:          created.Notes,
		Status:         string(created.Status),
		CreatedAt:      created.CreatedAt,
		UpdatedAt:      created.UpdatedAt,
	}, nil
}

func (uc *UseCase) publishCreated(ctx context.Context, b *domain.Booking) {
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
		OccurredAt: b.CreatedAt,
	}
	if err := uc.publisher.Publish(ctx, events.KeyBookingCreated, event); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish booking.created for id=%d: %v", b.ID, err)
	}
}
