package create_booking

import "time"

// MemberInput участник группы в порядке следования
// Первый участник (index 0) — team head, основной контакт группы
type MemberInput struct {
	Name   string
	Age    int
	Gender string
}

// Request модель запроса на создание бронирования
// Вместимость палатки здесь не проверяется: вызывающий обязан заранее получить
// отчет check_capacity и, при fits=false, явное подтверждение переполнения
type Request struct {
	TentID       int64
	Members      []MemberInput
	Mobile       string
	Notes        *string
	IsVIP        bool
	CheckInDate  *time.Time
	CheckOutDate *time.Time
	CreatedBy    int64 // desk admin из identity-контекста запроса
}

// MemberOutput участник созданного бронирования
type MemberOutput struct {
	ID       int64  `json:"id"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64          `json:"id"`
	TentID       int64          `json:"tentId"`
	Mobile       string         `json:"mobile"`
	Notes        *string        `json:"notes,omitempty"`
	IsVIP        bool           `json:"isVip"`
	CheckInDate  *time.Time     `json:"checkInDate,omitempty"`
	CheckOutDate *time.Time     `json:"checkOutDate,omitempty"`
	Status       string         `json:"status"`
	CreatedBy    int64          `json:"createdBy"`
	Members      []MemberOutput `json:"members"`

	// Отчет о занятости после создания — для немедленного отображения на стойке
	Occupancy int `json:"occupancy"`
	Capacity  int `json:"capacity"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
