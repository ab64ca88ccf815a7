package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/agendabarber/agenda-api/internal/dto"
	"github.com/agendabarber/agenda-api/internal/httperr"
	"github.com/agendabarber/agenda-api/internal/httpresp"
	"github.com/agendabarber/agenda-api/internal/middleware"
	ucBooking "github.com/agendabarber/agenda-api/internal/usecase/booking"
)

// ======================================================
// HANDLER (painel do dono)
// ======================================================

type AppointmentHandler struct {
	listByDate *ucBooking.ListBookingsByDate
	confirmUC  *ucBooking.ConfirmBooking
	cancelUC   *ucBooking.CancelBooking
	completeUC *ucBooking.CompleteBooking
}

func NewAppointmentHandler(
	listByDate *ucBooking.ListBookingsByDate,
	confirmUC *ucBooking.ConfirmBooking,
	cancelUC *ucBooking.CancelBooking,
	completeUC *ucBooking.CompleteBooking,
) *AppointmentHandler {
	return &AppointmentHandler{
		listByDate: listByDate,
		confirmUC:  confirmUC,
		cancelUC:   cancelUC,
		completeUC: completeUC,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	aps, err := h.listByDate.Execute(c.Request.Context(), barbershopID, dateStr)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, dto.FromAppointments(aps))
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.changeState(c, func(barbershopID, userID, apID uint) (any, error) {
		return h.confirmUC.Execute(c.Request.Context(), barbershopID, userID, apID)
	})
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.changeState(c, func(barbershopID, userID, apID uint) (any, error) {
		return h.cancelUC.Execute(c.Request.Context(), barbershopID, userID, apID)
	})
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.changeState(c, func(barbershopID, userID, apID uint) (any, error) {
		return h.completeUC.Execute(c.Request.Context(), barbershopID, userID, apID)
	})
}

func (h *AppointmentHandler) changeState(
	c *gin.Context,
	exec func(barbershopID, userID, apID uint) (any, error),
) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := exec(barbershopID, userID, uint(id))
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Transição de status inválida.")
		default:
			httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		}
		return
	}

	c.JSON(200, ap)
}
