package check_capacity

// Request запрос проверки вместимости
type Request struct {
	TentID          int64 // ID палатки
	ProposedMembers int   // Предполагаемый размер новой группы
}

// Response отчет о вместимости
// Fits=false не запрещает создание бронирования: решение о переполнении
// принимает вызывающий через явное подтверждение
type Response struct {
	TentID           int64 `json:"tentId"`
	Capacity         int   `json:"capacity"`
	CurrentOccupancy int   `json:"currentOccupancy"`
	ProjectedTotal   int   `json:"projectedTotal"`
	Fits             bool  `json:"fits"`
}
