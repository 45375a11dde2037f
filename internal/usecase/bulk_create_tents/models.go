package bulk_create_tents

import "github.com/m04kA/SMC-CampService/internal/domain"

// Request запрос на массовое создание палаток в секторе
type Request struct {
	SectorID    int64
	NamePrefix  string
	NamePattern string
	Quantity    int
	StartFrom   int
	Capacity    int
}

// TentResponse созданная палатка
type TentResponse struct {
	ID       int64  `json:"id"`
	SectorID int64  `json:"sectorId"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// Response результат массового создания
type Response struct {
	Created int            `json:"created"`
	Tents   []TentResponse `json:"tents"`
}

func toResponse(tents []*domain.Tent) *Response {
	out := make([]TentResponse, 0, len(tents))
	for _, t := range tents {
		out = append(out, TentResponse{
			ID:       t.ID,
			SectorID: t.SectorID,
			Name:     t.Name,
			Capacity: t.Capacity,
		})
	}
	return &Response{Created: len(out), Tents: out}
}
