package about

import (
	"encoding/json"
	"log"
	"mime/multipart"
	"net/http"
	"path"

	"union-admin/internal/domain/content"
	"union-admin/internal/infra/blobstore"
	"union-admin/internal/infra/docstore"

	"github.com/gin-gonic/gin"
)

// Handler serves the About Union singleton. The document lives in the
// aboutUs collection and is only ever saved as a whole; two editors racing
// to save means last write wins.
type Handler struct {
	docs  *docstore.Store
	blobs *blobstore.Store
}

func NewHandler(docs *docstore.Store, blobs *blobstore.Store) *Handler {
	return &Handler{docs: docs, blobs: blobs}
}

// Get returns the singleton document and its id.
func (h *Handler) Get(c *gin.Context) {
	id, raw, err := h.docs.GetFirst(c.Request.Context(), content.AboutCollection)
	if err == docstore.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "About document not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load about document"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "data": raw})
}

// Update overwrites the singleton with the submitted draft. The request is
// multipart: a "data" JSON part plus optional "image" and "pdf" file parts.
// Staged files replace the stored assets: the previous asset is deleted
// best-effort, the new one uploaded, and its URL substituted into the draft
// before the document write. With no staged files the blob store is never
// touched.
func (h *Handler) Update(c *gin.Context) {
	id, _, err := h.docs.GetFirst(c.Request.Context(), content.AboutCollection)
	if err == docstore.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "About document not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load about document"})
		return
	}

	var draft content.AboutUs
	if err := json.Unmarshal([]byte(c.PostForm("data")), &draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid about document"})
		return
	}

	if file, err := c.FormFile("image"); err == nil {
		url, err := h.replaceAsset(draft.Img, "images/"+path.Base(file.Filename), file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}
		draft.Img = url
	}

	if file, err := c.FormFile("pdf"); err == nil {
		url, err := h.replaceAsset(draft.Pdf, "pdfs/"+path.Base(file.Filename), file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload PDF"})
			return
		}
		draft.Pdf = url
	}

	if err := h.docs.Set(c.Request.Context(), content.AboutCollection, id, draft); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save about document"})
		return
	}

	// Respond with the canonical document, the way the page refetches after save.
	raw, err := h.docs.GetOne(c.Request.Context(), content.AboutCollection, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload about document"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "data": raw, "message": "About union has been updated successfully"})
}

// replaceAsset deletes the previous asset (logged, never surfaced; external
// or already-gone files are not the editor's problem) and uploads the new one.
func (h *Handler) replaceAsset(oldURL, name string, file *multipart.FileHeader) (string, error) {
	if oldURL != "" {
		if err := h.blobs.Delete(oldURL); err != nil {
			log.Println("Error deleting file:", err)
		}
	}
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	return h.blobs.Upload(name, src)
}
