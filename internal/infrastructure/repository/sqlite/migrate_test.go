package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateUp_Idempotent(t *testing.T) {
	t.Parallel()

	db := openTestDB(t, StoreLeague)
	require.NoError(t, MigrateUp(db.DB, StoreLeague))

	var tables int
	require.NoError(t, db.Get(&tables, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'player_actions'`))
	assert.Equal(t, 1, tables)
}

func TestStore_UnknownSource(t *testing.T) {
	t.Parallel()

	_, _, err := Store("archive").source()
	assert.Error(t, err)
}
