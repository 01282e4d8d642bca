package dashboard

import (
	"encoding/json"
	"net/http"

	"union-admin/internal/domain/content"
	"union-admin/internal/infra/docstore"

	"github.com/gin-gonic/gin"
)

type Stats struct {
	TotalEvents   int64          `json:"total_events"`
	TotalNews     int64          `json:"total_news"`
	TotalMessages int64          `json:"total_messages"`
	EventsByDate  map[string]int `json:"events_by_date"`
	NewsPerMonth  [12]int        `json:"news_per_month"`
}

type Handler struct {
	docs *docstore.Store
}

func NewHandler(docs *docstore.Store) *Handler {
	return &Handler{docs: docs}
}

// GetStats feeds the home page: three counters plus the two chart datasets,
// events grouped by calendar date and news counted per month of creation.
func (h *Handler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()
	var stats Stats
	var err error

	if stats.TotalEvents, err = h.docs.Count(ctx, content.EventsCollection); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count events"})
		return
	}
	if stats.TotalNews, err = h.docs.Count(ctx, content.NewsCollection); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count news"})
		return
	}
	if stats.TotalMessages, err = h.docs.Count(ctx, content.MessagesCollection); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count messages"})
		return
	}

	stats.EventsByDate = map[string]int{}
	eventRecords, err := h.docs.GetAll(ctx, content.EventsCollection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load events"})
		return
	}
	for _, r := range eventRecords {
		var ev content.Event
		if err := json.Unmarshal(r.Body, &ev); err != nil || ev.EventTime.IsZero() {
			continue
		}
		stats.EventsByDate[ev.EventTime.Format("2006-01-02")]++
	}

	newsRecords, err := h.docs.GetAll(ctx, content.NewsCollection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load news"})
		return
	}
	for _, r := range newsRecords {
		var item content.News
		if err := json.Unmarshal(r.Body, &item); err != nil || item.CreatedAt.IsZero() {
			continue
		}
		stats.NewsPerMonth[int(item.CreatedAt.Month())-1]++
	}

	c.JSON(http.StatusOK, stats)
}
