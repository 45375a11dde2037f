package models

import (
	"time"

	"github.com/m04kA/SMC-CampService/internal/domain"
)

// Request модели

// CreateSectorRequest запрос на создание сектора
type CreateSectorRequest struct {
	EventID int64  `json:"eventId"`
	Name    string `json:"name"`
}

// RenameSectorRequest запрос на переименование сектора
type RenameSectorRequest struct {
	SectorID int64
	Name     string `json:"name"`
}

// CreateTentRequest запрос на создание палатки
type CreateTentRequest struct {
	SectorID int64  `json:"sectorId"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// UpdateTentRequest запрос на обновление палатки
type UpdateTentRequest struct {
	TentID   int64
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// Response модели

// SectorResponse сектор
type SectorResponse struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"eventId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// TentResponse палатка с вычисленной занятостью
type TentResponse struct {
	ID        int64     `json:"id"`
	SectorID  int64     `json:"sectorId"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	Occupancy int       `json:"occupancy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TentListResponse список палаток сектора
type TentListResponse struct {
	Tents []TentResponse `json:"tents"`
	Total int            `json:"total"`
}

// BulkDeleteResponse результат массового удаления палаток
type BulkDeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

// FromDomainSector конвертирует domain сектор в response
func FromDomainSector(s *domain.Sector) *SectorResponse {
	return &SectorResponse{
		ID:        s.ID,
		EventID:   s.EventID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
	}
}

// FromDomainTent конвертирует domain палатку в response
func FromDomainTent(t *domain.Tent, occupancy int) *TentResponse {
	return &TentResponse{
		ID:        t.ID,
		SectorID:  t.SectorID,
		Name:      t.Name,
		Capacity:  t.Capacity,
		Occupancy: occupancy,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
