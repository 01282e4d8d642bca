package events

import (
	"encoding/json"
	"net/http"

	"union-admin/internal/domain/content"
	"union-admin/internal/infra/docstore"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// richText allows the markup the rich-text editor produces in descriptions.
var richText = bluemonday.UGCPolicy()

type Record struct {
	ID   string        `json:"id"`
	Data content.Event `json:"data"`
}

type Handler struct {
	docs *docstore.Store
}

func NewHandler(docs *docstore.Store) *Handler {
	return &Handler{docs: docs}
}

// List returns all events in store order.
func (h *Handler) List(c *gin.Context) {
	raws, err := h.docs.GetAll(c.Request.Context(), content.EventsCollection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load events"})
		return
	}

	records := make([]Record, 0, len(raws))
	for _, r := range raws {
		var ev content.Event
		if err := json.Unmarshal(r.Body, &ev); err != nil {
			continue // skip malformed rows rather than failing the page
		}
		records = append(records, Record{ID: r.ID, Data: ev})
	}
	c.JSON(http.StatusOK, records)
}

func bindEvent(c *gin.Context) (content.Event, bool) {
	var ev content.Event
	if err := c.ShouldBindJSON(&ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return ev, false
	}
	// Presence checks only, matching the form's required attributes.
	if ev.Title.En == "" && ev.Title.Ar == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return ev, false
	}
	if ev.EventTime.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event time is required"})
		return ev, false
	}
	ev.Description.En = richText.Sanitize(ev.Description.En)
	ev.Description.Ar = richText.Sanitize(ev.Description.Ar)
	return ev, true
}

func (h *Handler) Create(c *gin.Context) {
	ev, ok := bindEvent(c)
	if !ok {
		return
	}

	id := docstore.NewID()
	if err := h.docs.Set(c.Request.Context(), content.EventsCollection, id, ev); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save event"})
		return
	}
	c.JSON(http.StatusCreated, Record{ID: id, Data: ev})
}

// Update overwrites the whole record under the edited id.
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.docs.GetOne(c.Request.Context(), content.EventsCollection, id); err == docstore.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load event"})
		return
	}

	ev, ok := bindEvent(c)
	if !ok {
		return
	}

	if err := h.docs.Set(c.Request.Context(), content.EventsCollection, id, ev); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save event"})
		return
	}
	c.JSON(http.StatusOK, Record{ID: id, Data: ev})
}

// Delete removes one event. No confirmation step; the list view already fired.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.docs.Delete(c.Request.Context(), content.EventsCollection, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}
