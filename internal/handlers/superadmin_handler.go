package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/agendabarber/agenda-api/internal/audit"
	"github.com/agendabarber/agenda-api/internal/middleware"
	"github.com/agendabarber/agenda-api/internal/models"
)

// ======================================================
// HANDLER (provisionamento explícito de tenants)
// ======================================================
//
// Substitui o bootstrap implícito de admin do app de referência: criar
// donos e barbearias é uma operação autenticada do super admin, nunca
// um efeito colateral de carregamento de página.

type SuperAdminHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewSuperAdminHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *SuperAdminHandler {
	return &SuperAdminHandler{
		db:    db,
		audit: auditDispatcher,
	}
}

// --------- Requests ---------

type CreateOwnerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`

	// Opcional: já cria o tenant junto com a conta
	BarbershopName string `json:"barbershop_name"`
}

// --------- Handlers ---------

func (h *SuperAdminHandler) CreateOwner(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	owner := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         middleware.RoleOwner,
	}

	if err := h.db.Create(&owner).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_owner"})
		return
	}

	var shop *models.Barbershop
	if strings.TrimSpace(req.BarbershopName) != "" {
		s := models.Barbershop{
			OwnerID: owner.ID,
			Name:    req.BarbershopName,
			Slug:    GenerateSlug(req.BarbershopName),
			Active:  true,
		}

		if err := h.db.Create(&s).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_barbershop"})
			return
		}

		owner.BarbershopID = &s.ID
		h.db.Save(&owner)
		shop = &s

		h.audit.Dispatch(audit.Event{
			BarbershopID: s.ID,
			UserID:       &adminID,
			Action:       audit.ActionOwnerProvisioned,
			Entity:       "user",
			EntityID:     &owner.ID,
		})
	}

	resp := gin.H{
		"owner": gin.H{
			"id":    owner.ID,
			"name":  owner.Name,
			"email": owner.Email,
			"role":  owner.Role,
		},
	}
	if shop != nil {
		resp["barbershop"] = gin.H{
			"id":   shop.ID,
			"name": shop.Name,
			"slug": shop.Slug,
		}
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *SuperAdminHandler) ListOwners(c *gin.Context) {
	var owners []models.User
	if err := h.db.
		Where("role = ?", middleware.RoleOwner).
		Order("created_at DESC").
		Find(&owners).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_owners"})
		return
	}

	type ownerWithShop struct {
		models.User
		Barbershop *models.Barbershop `json:"barbershop"`
	}

	result := make([]ownerWithShop, 0, len(owners))
	for _, o := range owners {
		entry := ownerWithShop{User: o}
		if o.BarbershopID != nil {
			var shop models.Barbershop
			if err := h.db.First(&shop, *o.BarbershopID).Error; err == nil {
				entry.Barbershop = &shop
			}
		}
		result = append(result, entry)
	}

	c.JSON(http.StatusOK, gin.H{
		"owners": result,
		"total":  len(result),
	})
}
