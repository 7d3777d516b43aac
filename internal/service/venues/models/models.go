package models

import (
	"time"

	"github.com/cst-sportspot/booking-service/internal/domain"
	"github.com/cst-sportspot/booking-service/pkg/types"
)

// Request модели

// CreateVenueRequest запрос на создание площадки
type CreateVenueRequest struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Capacity  int      `json:"capacity"`
	Status    string   `json:"status,omitempty"`
	Equipment []string `json:"equipment,omitempty"`
	Image     string   `json:"image,omitempty"`
}

// UpdateVenueRequest запрос на обновление площадки.
// Nil-поля не изменяются.
type UpdateVenueRequest struct {
	Name      *string   `json:"name,omitempty"`
	Type      *string   `json:"type,omitempty"`
	Capacity  *int      `json:"capacity,omitempty"`
	Status    *string   `json:"status,omitempty"`
	Equipment *[]string `json:"equipment,omitempty"`
	Image     *string   `json:"image,omitempty"`
}

// BlockSlotRequest запрос администратора на блокировку слота
type BlockSlotRequest struct {
	Date      time.Time        `json:"date"`
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
}

// Response модели

// VenueResponse ответ с данными площадки
type VenueResponse struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Capacity  int      `json:"capacity"`
	Status    string   `json:"status"`
	Equipment []string `json:"equipment"`
	Image     string   `json:"image,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VenueListResponse ответ со списком площадок
type VenueListResponse struct {
	Venues []VenueResponse `json:"venues"`
}

// BlockedSlotResponse ответ с данными заблокированного слота
type BlockedSlotResponse struct {
	ID        int64     `json:"id"`
	VenueID   int64     `json:"venueId"`
	Date      string    `json:"date"`      // "2026-03-15"
	StartTime string    `json:"startTime"` // "10:00"
	EndTime   string    `json:"endTime"`   // "11:00"
	CreatedAt time.Time `json:"createdAt"`
}

// Методы конвертации

// FromDomainVenue конвертирует domain модель в DTO
func FromDomainVenue(v *domain.Venue) *VenueResponse {
	if v == nil {
		return nil
	}

	equipment := v.Equipment
	if equipment == nil {
		equipment = []string{}
	}

	return &VenueResponse{
		ID:        v.ID,
		Name:      v.Name,
		Type:      string(v.Type),
		Capacity:  v.Capacity,
		Status:    string(v.Status),
		Equipment: equipment,
		Image:     v.Image,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

// FromDomainVenueList конвертирует список domain моделей в DTO
func FromDomainVenueList(venues []*domain.Venue) *VenueListResponse {
	resp := &VenueListResponse{
		Venues: make([]VenueResponse, 0, len(venues)),
	}

	for _, venue := range venues {
		if venueResp := FromDomainVenue(venue); venueResp != nil {
			resp.Venues = append(resp.Venues, *venueResp)
		}
	}

	return resp
}

// FromDomainBlockedSlot конвертирует domain модель в DTO
func FromDomainBlockedSlot(s *domain.BlockedSlot) *BlockedSlotResponse {
	if s == nil {
		return nil
	}

	return &BlockedSlotResponse{
		ID:        s.ID,
		VenueID:   s.VenueID,
		Date:      s.Date.Format(domain.DateFormat),
		StartTime: s.StartTime.String(),
		EndTime:   s.EndTime.String(),
		CreatedAt: s.CreatedAt,
	}
}
