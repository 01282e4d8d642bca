package news

import (
	"encoding/json"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"path"
	"time"

	"union-admin/internal/domain/content"
	"union-admin/internal/infra/blobstore"
	"union-admin/internal/infra/docstore"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

var richText = bluemonday.UGCPolicy()

type Record struct {
	ID   string       `json:"id"`
	Data content.News `json:"data"`
}

type Handler struct {
	docs  *docstore.Store
	blobs *blobstore.Store
}

func NewHandler(docs *docstore.Store, blobs *blobstore.Store) *Handler {
	return &Handler{docs: docs, blobs: blobs}
}

func (h *Handler) List(c *gin.Context) {
	raws, err := h.docs.GetAll(c.Request.Context(), content.NewsCollection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load news"})
		return
	}

	records := make([]Record, 0, len(raws))
	for _, r := range raws {
		var item content.News
		if err := json.Unmarshal(r.Body, &item); err != nil {
			continue
		}
		records = append(records, Record{ID: r.ID, Data: item})
	}
	c.JSON(http.StatusOK, records)
}

// bindNews decodes the multipart "data" part and applies presence checks and
// rich-text sanitization.
func bindNews(c *gin.Context) (content.News, bool) {
	var item content.News
	if err := json.Unmarshal([]byte(c.PostForm("data")), &item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid news record"})
		return item, false
	}
	if item.Title.En == "" && item.Title.Ar == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return item, false
	}
	if item.Date.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date is required"})
		return item, false
	}
	item.Content.En = richText.Sanitize(item.Content.En)
	item.Content.Ar = richText.Sanitize(item.Content.Ar)
	return item, true
}

func (h *Handler) uploadImage(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	name := fmt.Sprintf("images/%s_%s", docstore.NewID(), path.Base(file.Filename))
	return h.blobs.Upload(name, src)
}

func (h *Handler) Create(c *gin.Context) {
	item, ok := bindNews(c)
	if !ok {
		return
	}

	if file, err := c.FormFile("image"); err == nil {
		url, err := h.uploadImage(file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}
		item.Img = url
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	id := docstore.NewID()
	if err := h.docs.Set(c.Request.Context(), content.NewsCollection, id, item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save news"})
		return
	}
	c.JSON(http.StatusCreated, Record{ID: id, Data: item})
}

// Update overwrites the record. When the image is replaced, the previous one
// is deleted exactly once before the new URL lands in the record, and only if
// it lives in our own storage. Externally hosted URLs are left alone.
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	raw, err := h.docs.GetOne(c.Request.Context(), content.NewsCollection, id)
	if err == docstore.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load news"})
		return
	}
	var existing content.News
	if err := json.Unmarshal(raw, &existing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stored news record is corrupt"})
		return
	}

	item, ok := bindNews(c)
	if !ok {
		return
	}
	// createdAt survives edits; the chart on the dashboard depends on it.
	if item.CreatedAt.IsZero() {
		item.CreatedAt = existing.CreatedAt
	}

	if file, err := c.FormFile("image"); err == nil {
		if existing.Img != "" && h.blobs.Owns(existing.Img) {
			if err := h.blobs.Delete(existing.Img); err != nil {
				log.Println("Error deleting old news image:", err)
			}
		}
		url, err := h.uploadImage(file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}
		item.Img = url
	}

	if err := h.docs.Set(c.Request.Context(), content.NewsCollection, id, item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save news"})
		return
	}
	c.JSON(http.StatusOK, Record{ID: id, Data: item})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.docs.Delete(c.Request.Context(), content.NewsCollection, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete news"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "News deleted"})
}
