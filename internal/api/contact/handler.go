package contact

import (
	"net/http"
	"regexp"

	"union-admin/internal/domain/content"
	"union-admin/internal/infra/docstore"

	"github.com/gin-gonic/gin"
)

// Handler serves the Headquarter singleton (contact information).
type Handler struct {
	docs *docstore.Store
}

func NewHandler(docs *docstore.Store) *Handler {
	return &Handler{docs: docs}
}

func (h *Handler) Get(c *gin.Context) {
	id, raw, err := h.docs.GetFirst(c.Request.Context(), content.ContactCollection)
	if err == docstore.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact info not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load contact info"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "data": raw})
}

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// validate mirrors the contact form's required-field checks, one message per
// offending field.
func validate(info content.ContactInfo) map[string]string {
	errs := map[string]string{}
	switch {
	case info.Email == "":
		errs["email"] = "Email is required."
	case !emailPattern.MatchString(info.Email):
		errs["email"] = "Email is invalid."
	}
	if info.Phone == "" {
		errs["phone"] = "Phone number is required."
	}
	if info.LocationLink == "" {
		errs["locationLink"] = "Location link is required."
	}
	if info.EmbedLocation == "" {
		errs["embedLocation"] = "Embed location is required."
	}
	if info.WorkingTimes.Days.En == "" {
		errs["workingTimes.days.en"] = "Working days (EN) are required."
	}
	if info.WorkingTimes.Days.Ar == "" {
		errs["workingTimes.days.ar"] = "Working days (AR) are required."
	}
	if info.WorkingTimes.Time.En == "" {
		errs["workingTimes.time.en"] = "Working time (EN) is required."
	}
	if info.WorkingTimes.Time.Ar == "" {
		errs["workingTimes.time.ar"] = "Working time (AR) is required."
	}
	return errs
}

// Update validates the draft and overwrites the whole document.
func (h *Handler) Update(c *gin.Context) {
	id, _, err := h.docs.GetFirst(c.Request.Context(), content.ContactCollection)
	if err == docstore.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact info not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load contact info"})
		return
	}

	var draft content.ContactInfo
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := validate(draft); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	if err := h.docs.Set(c.Request.Context(), content.ContactCollection, id, draft); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save contact info"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "data": draft, "message": "Contact info updated successfully"})
}
