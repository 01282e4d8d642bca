package messages

import (
	"encoding/json"
	"net/http"
	"time"

	"union-admin/internal/domain/content"
	"union-admin/internal/infra/docstore"

	"github.com/gin-gonic/gin"
)

type Record struct {
	ID   string          `json:"id"`
	Data content.Message `json:"data"`
}

type Handler struct {
	docs *docstore.Store
}

func NewHandler(docs *docstore.Store) *Handler {
	return &Handler{docs: docs}
}

// List returns inbound messages, optionally filtered by ?status=. The filter
// is a projection over the fetched list, not a store query.
func (h *Handler) List(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !content.ValidMessageStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	}

	raws, err := h.docs.GetAll(c.Request.Context(), content.MessagesCollection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load messages"})
		return
	}

	records := make([]Record, 0, len(raws))
	for _, r := range raws {
		var msg content.Message
		if err := json.Unmarshal(r.Body, &msg); err != nil {
			continue
		}
		if status != "" && msg.Status != status {
			continue
		}
		records = append(records, Record{ID: r.ID, Data: msg})
	}
	c.JSON(http.StatusOK, records)
}

// MarkRead patches only the status field and returns the record as the store
// now holds it.
func (h *Handler) MarkRead(c *gin.Context) {
	h.setStatus(c, content.MessageStatusRead)
}

func (h *Handler) MarkResponded(c *gin.Context) {
	h.setStatus(c, content.MessageStatusResponded)
}

func (h *Handler) setStatus(c *gin.Context, status string) {
	id := c.Param("id")
	err := h.docs.UpdateFields(c.Request.Context(), content.MessagesCollection, id,
		map[string]any{"status": status})
	if err == docstore.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update message"})
		return
	}

	raw, err := h.docs.GetOne(c.Request.Context(), content.MessagesCollection, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload message"})
		return
	}
	var msg content.Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stored message is corrupt"})
		return
	}
	c.JSON(http.StatusOK, Record{ID: id, Data: msg})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.docs.Delete(c.Request.Context(), content.MessagesCollection, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}

// Submit is the public contact form: the producing side of the Message
// collection. New messages always start out as "new".
func (h *Handler) Submit(c *gin.Context) {
	var input struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Phone   string `json:"phone"`
		Title   string `json:"title" binding:"required"`
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg := content.Message{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Title:     input.Title,
		Content:   input.Content,
		Timestamp: time.Now(),
		Status:    content.MessageStatusNew,
	}

	id := docstore.NewID()
	if err := h.docs.Set(c.Request.Context(), content.MessagesCollection, id, msg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Message sent"})
}
