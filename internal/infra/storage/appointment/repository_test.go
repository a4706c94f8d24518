package appointment

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Колонки, на которые ссылаются запросы, должны существовать в схеме -
// расхождение имён ломает Create и GetByDoctorAndDate на живой базе
func TestQueryColumnsMatchSchema(t *testing.T) {
	ddl := appointmentsDDL(t)

	for _, col := range insertColumns {
		assertColumnInDDL(t, ddl, col)
	}
	for _, col := range selectColumns {
		assertColumnInDDL(t, ddl, col)
	}
}

// appointmentsDDL вырезает блок CREATE TABLE appointments из миграции
func appointmentsDDL(t *testing.T) string {
	t.Helper()

	raw, err := os.ReadFile(filepath.Join("..", "..", "..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)

	migration := string(raw)
	start := strings.Index(migration, "CREATE TABLE IF NOT EXISTS appointments")
	require.GreaterOrEqual(t, start, 0, "appointments table not found in migration")

	end := strings.Index(migration[start:], ");")
	require.GreaterOrEqual(t, end, 0)

	return migration[start : start+end]
}

func assertColumnInDDL(t *testing.T, ddl, column string) {
	t.Helper()

	re := regexp.MustCompile(`(?m)^\s+` + regexp.QuoteMeta(column) + `\s`)
	assert.True(t, re.MatchString(ddl), "column %q not found in appointments DDL", column)
}
