package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/louvor-app/worship-planner/internal/repository"
)

func newTestSlot(t *testing.T) *repository.SQLiteSlot {
	db, err := sqlx.Connect("sqlite", filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	slot, err := repository.NewSQLiteSlot(db, "worship-planner-storage")
	require.NoError(t, err)
	return slot
}

func TestLoadEmptySlot(t *testing.T) {
	slot := newTestSlot(t)

	_, err := slot.Load(context.Background())
	assert.ErrorIs(t, err, repository.ErrSlotEmpty)
}

func TestSaveAndLoad(t *testing.T) {
	slot := newTestSlot(t)
	ctx := context.Background()

	payload := []byte(`{"songs":[{"id":"1","title":"Reckless Love"}]}`)
	require.NoError(t, slot.Save(ctx, payload))

	loaded, err := slot.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, payload, loaded)
}

func TestSaveOverwrites(t *testing.T) {
	slot := newTestSlot(t)
	ctx := context.Background()

	require.NoError(t, slot.Save(ctx, []byte(`{"v":1}`)))
	require.NoError(t, slot.Save(ctx, []byte(`{"v":2}`)))

	loaded, err := slot.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":2}`), loaded)

	// repeated saves upsert the single row rather than accumulating
	var rows int
	require.NoError(t, slot.GetDB().Get(&rows, `SELECT COUNT(*) FROM state_slots`))
	assert.Equal(t, 1, rows)
}

func TestSlotsAreIndependentPerKey(t *testing.T) {
	db, err := sqlx.Connect("sqlite", filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	ctx := context.Background()

	first, err := repository.NewSQLiteSlot(db, "slot-a")
	require.NoError(t, err)
	second, err := repository.NewSQLiteSlot(db, "slot-b")
	require.NoError(t, err)

	require.NoError(t, first.Save(ctx, []byte(`"a"`)))

	_, err = second.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrSlotEmpty)
}
