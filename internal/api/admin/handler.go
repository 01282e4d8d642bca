package admin

import (
	"net/http"
	"strconv"

	"union-admin/internal/domain/staff"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Handler manages staff accounts. Only admins reach these routes; editors
// are provisioned here, never through self-signup.
type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

func (h *Handler) ListStaff(c *gin.Context) {
	var accounts []staff.Staff
	if err := h.db.Find(&accounts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load staff"})
		return
	}
	c.JSON(http.StatusOK, accounts)
}

func (h *Handler) CreateStaff(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := input.Role
	if role == "" {
		role = "editor"
	}
	if role != "admin" && role != "editor" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be admin or editor"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	pw := string(hashed)

	account := staff.Staff{
		Name:         input.Name,
		Email:        input.Email,
		Password:     &pw,
		AuthProvider: "local",
		Role:         role,
	}
	if err := h.db.Create(&account).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email may already exist"})
		return
	}

	c.JSON(http.StatusCreated, account)
}

func (h *Handler) DeleteStaff(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid staff id"})
		return
	}

	var target staff.Staff
	if err := h.db.First(&target, "id = ?", uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff account not found"})
		return
	}

	// an admin cannot remove their own account
	if target.ID == c.GetUint("staff_id") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot delete your own account"})
		return
	}

	if err := h.db.Delete(&staff.Staff{}, "id = ?", target.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete staff account"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff account deleted"})
}
