package domain

// CapacityReport результат проверки вместимости палатки
// Занятость всегда вычисляется по живым строкам бронирований и никогда не кэшируется
type CapacityReport struct {
	TentID           int64
	Capacity         int
	CurrentOccupancy int
	ProjectedTotal   int
	Fits             bool
}

// NewCapacityReport строит отчет для предполагаемого добавления proposedMembers гостей
// Fits=true тогда и только тогда, когда проектная занятость не превышает вместимость
// Проверка ничего не запрещает: превышение допускается осознанным подтверждением на стороне вызывающего
func NewCapacityReport(tentID int64, capacity, currentOccupancy, proposedMembers int) CapacityReport {
	projected := currentOccupancy + proposedMembers
	return CapacityReport{
		TentID:           tentID,
		Capacity:         capacity,
		CurrentOccupancy: currentOccupancy,
		ProjectedTotal:   projected,
		Fits:             projected <= capacity,
	}
}

// IsOverCapacity returns true if current occupancy already exceeds capacity
func (r *CapacityReport) IsOverCapacity() bool {
	return r.CurrentOccupancy > r.Capacity
}
