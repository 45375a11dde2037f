package domain

import "time"

// Sector represents a named zone within an event, grouping tents
type Sector struct {
	ID        int64
	EventID   int64
	Name      string
	CreatedAt time.Time
}

// Tent represents a physical tent inside a sector
// Name уникально в пределах сектора; capacity — положительное число мест
type Tent struct {
	ID        int64
	SectorID  int64
	Name      string
	Capacity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TentNamePattern схема генерации имен при массовом создании палаток
type TentNamePattern string

const (
	PatternDashNumber       TentNamePattern = "DASH_NUMBER"       // "PREFIX-N"
	PatternSpaceNumber      TentNamePattern = "SPACE_NUMBER"      // "PREFIX N"
	PatternUnderscoreNumber TentNamePattern = "UNDERSCORE_NUMBER" // "PREFIX_N"
	PatternJustNumber       TentNamePattern = "JUST_NUMBER"       // "N"
)

// IsValidTentNamePattern проверяет допустимость схемы именования
func IsValidTentNamePattern(p TentNamePattern) bool {
	switch p {
	case PatternDashNumber, PatternSpaceNumber, PatternUnderscoreNumber, PatternJustNumber:
		return true
	default:
		return false
	}
}
