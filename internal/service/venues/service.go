package venues

import (
	"context"
	"errors"
	"fmt"

	"github.com/cst-sportspot/booking-service/internal/domain"
	venueRepo "github.com/cst-sportspot/booking-service/internal/infra/storage/venue"
	"github.com/cst-sportspot/booking-service/internal/service/venues/models"
)

// Service сервис для работы с площадками
type Service struct {
	venueRepo   VenueRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(venueRepo VenueRepository, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		venueRepo:   venueRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// List получает все площадки
func (s *Service) List(ctx context.Context) (*models.VenueListResponse, error) {
	s.logger.Info("List: fetching venues")

	venues, err := s.venueRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVenueList(venues), nil
}

// GetByID получает площадку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.VenueResponse, error) {
	s.logger.Info("GetByID: fetching venue id=%d", id)

	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("GetByID: venue id=%d not found", id)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("GetByID: repository error for venue id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVenue(venue), nil
}

// Create создает новую площадку. Доступно только администратору.
func (s *Service) Create(ctx context.Context, req *models.CreateVenueRequest) (*models.VenueResponse, error) {
	s.logger.Info("Create: creating venue name=%s", req.Name)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}

	venueType, err := toVenueType(req.Type)
	if err != nil {
		return nil, err
	}

	// Новая площадка по умолчанию доступна для бронирования
	status := domain.VenueAvailable
	if req.Status != "" {
		status, err = toVenueStatus(req.Status)
		if err != nil {
			return nil, err
		}
	}

	venue, err := s.venueRepo.Create(ctx, &domain.Venue{
		Name:      req.Name,
		Type:      venueType,
		Capacity:  req.Capacity,
		Status:    status,
		Equipment: req.Equipment,
		Image:     req.Image,
	})
	if err != nil {
		if errors.Is(err, venueRepo.ErrDuplicateName) {
			s.logger.Warn("Create: venue name=%s already exists", req.Name)
			return nil, ErrDuplicateName
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: venue id=%d created", venue.ID)
	return models.FromDomainVenue(venue), nil
}

// Update обновляет площадку. Nil-поля запроса не изменяются.
// Доступно только администратору.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateVenueRequest) (*models.VenueResponse, error) {
	s.logger.Info("Update: updating venue id=%d", id)

	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("Update: venue id=%d not found", id)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("Update: repository error for venue id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
		}
		venue.Name = *req.Name
	}
	if req.Type != nil {
		venueType, err := toVenueType(*req.Type)
		if err != nil {
			return nil, err
		}
		venue.Type = venueType
	}
	if req.Capacity != nil {
		if *req.Capacity <= 0 {
			return nil, fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
		}
		venue.Capacity = *req.Capacity
	}
	if req.Status != nil {
		status, err := toVenueStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		venue.Status = status
	}
	if req.Equipment != nil {
		venue.Equipment = *req.Equipment
	}
	if req.Image != nil {
		venue.Image = *req.Image
	}

	if err := s.venueRepo.Update(ctx, venue); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			return nil, ErrVenueNotFound
		}
		if errors.Is(err, venueRepo.ErrDuplicateName) {
			s.logger.Warn("Update: venue name=%s already exists", venue.Name)
			return nil, ErrDuplicateName
		}
		s.logger.Error("Update: repository error for venue id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: venue id=%d updated", id)
	return models.FromDomainVenue(venue), nil
}

// Delete удаляет площадку. Площадка с бронированиями (в любом статусе)
// не удаляется - история бронирований ссылается на неё.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting venue id=%d", id)

	inUse, err := s.bookingRepo.ExistsForVenue(ctx, id)
	if err != nil {
		s.logger.Error("Delete: failed to check bookings for venue id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - check bookings: %v", ErrInternal, err)
	}
	if inUse {
		s.logger.Warn("Delete: venue id=%d has bookings", id)
		return ErrVenueInUse
	}

	if err := s.venueRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("Delete: venue id=%d not found", id)
			return ErrVenueNotFound
		}
		s.logger.Error("Delete: repository error for venue id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: venue id=%d deleted", id)
	return nil
}

// BlockSlot блокирует слот площадки напрямую, минуя workflow бронирований.
// Заблокированный слот участвует в агрегации занятых интервалов наравне
// с активными бронированиями.
func (s *Service) BlockSlot(ctx context.Context, venueID int64, req *models.BlockSlotRequest) (*models.BlockedSlotResponse, error) {
	s.logger.Info("BlockSlot: blocking slot %s-%s on venue id=%d", req.StartTime, req.EndTime, venueID)

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := domain.NewTimeInterval(req.StartTime, req.EndTime); err != nil {
		return nil, fmt.Errorf("%w: startTime must be before endTime and both must be HH:MM", ErrInvalidInput)
	}

	// Проверяем существование площадки
	if _, err := s.venueRepo.GetByID(ctx, venueID); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("BlockSlot: venue id=%d not found", venueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("BlockSlot: repository error for venue id=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: BlockSlot - repository error: %v", ErrInternal, err)
	}

	slot, err := s.venueRepo.AddBlockedSlot(ctx, &domain.BlockedSlot{
		VenueID:   venueID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		s.logger.Error("BlockSlot: repository error for venue id=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: BlockSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("BlockSlot: slot id=%d blocked on venue id=%d", slot.ID, venueID)
	return models.FromDomainBlockedSlot(slot), nil
}

// UnblockSlot снимает блокировку слота площадки
func (s *Service) UnblockSlot(ctx context.Context, venueID, slotID int64) error {
	s.logger.Info("UnblockSlot: unblocking slot id=%d on venue id=%d", slotID, venueID)

	if err := s.venueRepo.DeleteBlockedSlot(ctx, venueID, slotID); err != nil {
		if errors.Is(err, venueRepo.ErrBlockedSlotNotFound) {
			s.logger.Warn("UnblockSlot: slot id=%d not found on venue id=%d", slotID, venueID)
			return ErrBlockedSlotNotFound
		}
		s.logger.Error("UnblockSlot: repository error for slot id=%d: %v", slotID, err)
		return fmt.Errorf("%w: UnblockSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UnblockSlot: slot id=%d unblocked on venue id=%d", slotID, venueID)
	return nil
}

// Вспомогательные функции

func toVenueType(raw string) (domain.VenueType, error) {
	switch domain.VenueType(raw) {
	case domain.VenueIndoor, domain.VenueOutdoor:
		return domain.VenueType(raw), nil
	default:
		return "", fmt.Errorf("%w: type must be Indoor or Outdoor", ErrInvalidInput)
	}
}

func toVenueStatus(raw string) (domain.VenueStatus, error) {
	switch domain.VenueStatus(raw) {
	case domain.VenueAvailable, domain.VenueBooked, domain.VenueMaintenance:
		return domain.VenueStatus(raw), nil
	default:
		return "", fmt.Errorf("%w: status must be Available, Booked or Maintenance", ErrInvalidInput)
	}
}
