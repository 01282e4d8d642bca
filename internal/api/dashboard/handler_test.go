package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"union-admin/internal/domain/content"
	"union-admin/internal/infra/docstore"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *docstore.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&docstore.Document{}))

	docs := docstore.New(db)
	h := NewHandler(docs)

	r := gin.New()
	r.GET("/dashboard/stats", h.GetStats)
	return r, docs
}

func TestGetStats(t *testing.T) {
	r, docs := newTestRouter(t)
	ctx := context.Background()

	day := time.Date(2025, 6, 14, 18, 0, 0, 0, time.UTC)
	require.NoError(t, docs.Set(ctx, content.EventsCollection, "1", content.Event{
		Title: content.LocalizedText{En: "a"}, EventTime: day,
	}))
	require.NoError(t, docs.Set(ctx, content.EventsCollection, "2", content.Event{
		Title: content.LocalizedText{En: "b"}, EventTime: day.Add(2 * time.Hour),
	}))
	require.NoError(t, docs.Set(ctx, content.EventsCollection, "3", content.Event{
		Title: content.LocalizedText{En: "c"}, EventTime: day.AddDate(0, 0, 1),
	}))

	require.NoError(t, docs.Set(ctx, content.NewsCollection, "10", content.News{
		Title: content.LocalizedText{En: "n1"}, CreatedAt: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, docs.Set(ctx, content.NewsCollection, "11", content.News{
		Title: content.LocalizedText{En: "n2"}, CreatedAt: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, docs.Set(ctx, content.NewsCollection, "12", content.News{
		Title: content.LocalizedText{En: "n3"}, CreatedAt: time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC),
	}))

	require.NoError(t, docs.Set(ctx, content.MessagesCollection, "20", content.Message{
		Name: "Sara", Status: content.MessageStatusNew,
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var stats Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))

	assert.EqualValues(t, 3, stats.TotalEvents)
	assert.EqualValues(t, 3, stats.TotalNews)
	assert.EqualValues(t, 1, stats.TotalMessages)

	assert.Equal(t, 2, stats.EventsByDate["2025-06-14"])
	assert.Equal(t, 1, stats.EventsByDate["2025-06-15"])

	assert.Equal(t, 2, stats.NewsPerMonth[0])  // January
	assert.Equal(t, 1, stats.NewsPerMonth[11]) // December
	assert.Equal(t, 0, stats.NewsPerMonth[5])
}

func TestGetStatsEmptyStore(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var stats Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Zero(t, stats.TotalEvents)
	assert.Empty(t, stats.EventsByDate)
}
