package database

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationNames_SortedSQLOnly(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/0002_b.sql":   {Data: []byte("SELECT 2")},
		"migrations/0001_a.sql":   {Data: []byte("SELECT 1")},
		"migrations/README.md":    {Data: []byte("notes")},
		"migrations/0010_c.sql":   {Data: []byte("SELECT 10")},
		"migrations/nested/x.sql": {Data: []byte("SELECT 0")},
	}

	names, err := migrationNames(fsys)

	require.NoError(t, err)
	assert.Equal(t, []string{"0001_a.sql", "0002_b.sql", "0010_c.sql"}, names)
}

func TestMigrationNames_Embedded(t *testing.T) {
	names, err := migrationNames(migrationFiles)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"0001_employees.sql",
		"0002_payroll.sql",
		"0003_leave.sql",
		"0004_claims.sql",
	}, names)
}
