package bulk_create_tents

import bulkCreateTents "github.com/m04kA/SMC-CampService/internal/usecase/bulk_create_tents"

// BulkCreateTentsRequest HTTP request model
type BulkCreateTentsRequest struct {
	NamePrefix  string `json:"namePrefix"`
	NamePattern string `json:"namePattern"` // DASH_NUMBER | SPACE_NUMBER | UNDERSCORE_NUMBER | JUST_NUMBER
	Quantity    int    `json:"quantity"`
	StartFrom   int    `json:"startFrom"`
	Capacity    int    `json:"capacity"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BulkCreateTentsRequest) ToUseCaseRequest(sectorID int64) *bulkCreateTents.Request {
	return &bulkCreateTents.Request{
		SectorID:    sectorID,
		NamePrefix:  r.NamePrefix,
		NamePattern: r.NamePattern,
		Quantity:    r.Quantity,
		StartFrom:   r.StartFrom,
		Capacity:    r.Capacity,
	}
}
