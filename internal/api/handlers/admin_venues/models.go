package admin_venues

import (
	"time"

	"github.com/cst-sportspot/booking-service/internal/domain"
	"github.com/cst-sportspot/booking-service/internal/service/venues/models"
	"github.com/cst-sportspot/booking-service/pkg/types"
)

// BlockSlotRequest HTTP запрос на блокировку слота
type BlockSlotRequest struct {
	Date      string `json:"date"`      // "2026-03-15"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:00"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *BlockSlotRequest) ToServiceRequest() (*models.BlockSlotRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &models.BlockSlotRequest{
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}
