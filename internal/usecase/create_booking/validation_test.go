package create_booking

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CampService/pkg/ptr"
)

func validRequest() *Request {
	return &Request{
		TentID: 5,
		Members: []MemberInput{
			{Name: "Ivan", Age: 30, Gender: "MALE"},
			{Name: "Olga", Age: 28, Gender: "FEMALE"},
		},
		Mobile:    "9991112233",
		CreatedBy: 1,
	}
}

func TestValidateRequestOK(t *testing.T) {
	assert.NoError(t, validateRequest(validRequest()))
}

func TestValidateRequestMobile(t *testing.T) {
	tests := []struct {
		mobile string
		valid  bool
	}{
		{"9991112233", true},
		{"999111223", false},   // 9 цифр
		{"99911122334", false}, // 11 цифр
		{"999111223a", false},  // не цифра
		{"+9991112233", false}, // плюс не допускается
		{"", false},
	}

	for _, tt := range tests {
		req := validRequest()
		req.Mobile = tt.mobile
		err := validateRequest(req)
		if tt.valid {
			assert.NoError(t, err, "mobile %q", tt.mobile)
		} else {
			assert.ErrorIs(t, err, ErrInvalidMobile, "mobile %q", tt.mobile)
		}
	}
}

func TestValidateRequestMembers(t *testing.T) {
	req := validRequest()
	req.Members = nil
	assert.ErrorIs(t, validateRequest(req), ErrNoMembers)

	req = validRequest()
	req.Members[0].Name = ""
	assert.ErrorIs(t, validateRequest(req), ErrInvalidMember)

	req = validRequest()
	req.Members[1].Age = 0
	assert.ErrorIs(t, validateRequest(req), ErrInvalidMember)

	req = validRequest()
	req.Members[1].Age = 121
	assert.ErrorIs(t, validateRequest(req), ErrInvalidMember)

	req = validRequest()
	req.Members[0].Gender = "UNKNOWN"
	assert.ErrorIs(t, validateRequest(req), ErrInvalidMember)
}

func TestValidateRequestDates(t *testing.T) {
	checkIn := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, -1)

	req := validRequest()
	req.CheckInDate = &checkIn
	req.CheckOutDate = &checkOut
	assert.ErrorIs(t, validateRequest(req), ErrInvalidDates)

	// Выезд в день заезда допустим
	sameDay := checkIn
	req.CheckOutDate = &sameDay
	assert.NoError(t, validateRequest(req))
}

func TestValidateRequestNotesLength(t *testing.T) {
	req := validRequest()
	req.Notes = ptr.Ptr(strings.Repeat("x", 501))
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}
