package booking

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CampService/internal/domain"
)

// Схема обязана принимать все значения, которые пропускает доменная валидация,
// иначе корректный запрос падает на CHECK-констрейнте пятисоткой
func TestSchemaCoversDomainEnums(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "..", "..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)
	schema := string(raw)

	genderCheck := checkConstraintLine(t, schema, "gender")
	for _, g := range []domain.Gender{domain.GenderMale, domain.GenderFemale, domain.GenderOther} {
		require.True(t, domain.IsValidGender(g))
		assert.Contains(t, genderCheck, "'"+string(g)+"'")
	}

	statusCheck := checkConstraintLine(t, schema, "status")
	for _, s := range []domain.BookingStatus{
		domain.StatusConfirmed, domain.StatusCheckedIn, domain.StatusCheckedOut, domain.StatusCancelled,
	} {
		assert.Contains(t, statusCheck, "'"+string(s)+"'")
	}

	typeCheck := checkConstraintLine(t, schema, "type")
	for _, n := range []domain.NotificationType{
		domain.NotificationInfo, domain.NotificationWarning, domain.NotificationAlert,
	} {
		require.True(t, domain.IsValidNotificationType(n))
		assert.Contains(t, typeCheck, "'"+string(n)+"'")
	}
}

// checkConstraintLine возвращает фрагмент схемы с CHECK-констрейнтом колонки
func checkConstraintLine(t *testing.T, schema, column string) string {
	t.Helper()
	idx := strings.Index(schema, column+" ")
	require.GreaterOrEqual(t, idx, 0, "column %s not found in schema", column)

	rest := schema[idx:]
	checkIdx := strings.Index(rest, "CHECK")
	require.GreaterOrEqual(t, checkIdx, 0, "no CHECK constraint near column %s", column)

	end := strings.Index(rest[checkIdx:], ")")
	require.GreaterOrEqual(t, end, 0)
	return rest[checkIdx : checkIdx+end+1]
}
