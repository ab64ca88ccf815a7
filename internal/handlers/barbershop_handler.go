package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendabarber/agenda-api/internal/httperr"
	"github.com/agendabarber/agenda-api/internal/middleware"
	"github.com/agendabarber/agenda-api/internal/models"
	"github.com/agendabarber/agenda-api/internal/timezone"
)

type BarbershopHandler struct {
	db *gorm.DB
}

func NewBarbershopHandler(db *gorm.DB) *BarbershopHandler {
	return &BarbershopHandler{db: db}
}

type UpdateBarbershopConfigRequest struct {
	Phone   *string `json:"phone"`
	Address *string `json:"address"`

	Timezone *string `json:"timezone"`

	OpenHour    *int `json:"open_hour"`
	CloseHour   *int `json:"close_hour"`
	SlotMinutes *int `json:"slot_minutes"`

	MinAdvanceMinutes *int `json:"min_advance_minutes"`
}

func (h *BarbershopHandler) GetMeBarbershop(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_barbershop", "Erro ao buscar dados da barbearia.")
		return
	}

	c.JSON(http.StatusOK, shop)
}

func (h *BarbershopHandler) UpdateMeBarbershop(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_barbershop", "Erro ao buscar dados da barbearia.")
		return
	}

	var req UpdateBarbershopConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	if req.Phone != nil {
		shop.Phone = *req.Phone
	}
	if req.Address != nil {
		shop.Address = *req.Address
	}

	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Timezone inválido.")
			return
		}
		shop.Timezone = *req.Timezone
	}

	if req.OpenHour != nil {
		shop.OpenHour = *req.OpenHour
	}
	if req.CloseHour != nil {
		shop.CloseHour = *req.CloseHour
	}
	if shop.OpenHour < 0 || shop.CloseHour > 24 || shop.OpenHour >= shop.CloseHour {
		httperr.BadRequest(c, "invalid_hours", "Horário de funcionamento inválido.")
		return
	}

	if req.SlotMinutes != nil {
		if *req.SlotMinutes <= 0 || 60%*req.SlotMinutes != 0 {
			httperr.BadRequest(c, "invalid_slot_minutes", "O passo dos horários deve dividir 60 minutos.")
			return
		}
		shop.SlotMinutes = *req.SlotMinutes
	}

	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			httperr.BadRequest(c, "invalid_min_advance", "Antecedência mínima deve ser zero ou positiva (em minutos).")
			return
		}
		shop.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barbershop", "Erro ao salvar as configurações da barbearia.")
		return
	}

	c.JSON(http.StatusOK, shop)
}
