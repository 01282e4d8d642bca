package docstore

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Document{}))
	return New(db)
}

func TestSetAndGetOne(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "news", "1", map[string]any{"title": "hello"}))

	raw, err := s.GetOne(ctx, "news", "1")
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "hello", body["title"])
}

func TestGetOneMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetOne(context.Background(), "news", "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetOverwritesWholeDocument(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "events", "1", map[string]any{"title": "a", "img": "x.jpg"}))
	require.NoError(t, s.Set(ctx, "events", "1", map[string]any{"title": "b"}))

	raw, err := s.GetOne(ctx, "events", "1")
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "b", body["title"])
	// full overwrite: fields absent from the new body are gone
	_, kept := body["img"]
	assert.False(t, kept)
}

func TestGetAllReturnsCollectionOnly(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "events", "1", map[string]any{"title": "a"}))
	require.NoError(t, s.Set(ctx, "events", "2", map[string]any{"title": "b"}))
	require.NoError(t, s.Set(ctx, "news", "3", map[string]any{"title": "c"}))

	records, err := s.GetAll(ctx, "events")
	require.NoError(t, err)
	require.Len(t, records, 2)

	ids := []string{records[0].ID, records[1].ID}
	assert.ElementsMatch(t, []string{"1", "2"}, ids)
}

func TestGetFirstSingleton(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, _, err := s.GetFirst(ctx, "aboutUs")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "aboutUs", "main", map[string]any{"title": "union"}))

	id, raw, err := s.GetFirst(ctx, "aboutUs")
	require.NoError(t, err)
	assert.Equal(t, "main", id)
	assert.JSONEq(t, `{"title":"union"}`, string(raw))
}

func TestUpdateFieldsMergesTopLevelKeys(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "Message", "1", map[string]any{
		"name":   "Ali",
		"status": "new",
	}))

	require.NoError(t, s.UpdateFields(ctx, "Message", "1", map[string]any{"status": "read"}))

	raw, err := s.GetOne(ctx, "Message", "1")
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "read", body["status"])
	assert.Equal(t, "Ali", body["name"])
}

func TestUpdateFieldsMissingDocument(t *testing.T) {
	s := newTestStore(t)

	err := s.UpdateFields(context.Background(), "Message", "nope", map[string]any{"status": "read"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRemovesOnlyTarget(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "events", "1", map[string]any{"title": "a"}))
	require.NoError(t, s.Set(ctx, "events", "2", map[string]any{"title": "b"}))

	require.NoError(t, s.Delete(ctx, "events", "1"))

	records, err := s.GetAll(ctx, "events")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2", records[0].ID)

	// deleting a missing document is not an error
	assert.NoError(t, s.Delete(ctx, "events", "1"))
}

func TestCount(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "news", "1", map[string]any{}))
	require.NoError(t, s.Set(ctx, "news", "2", map[string]any{}))

	n, err := s.Count(ctx, "news")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestNewIDIsNumericTimestamp(t *testing.T) {
	id := NewID()
	assert.Regexp(t, `^\d{13,}$`, id)
}
