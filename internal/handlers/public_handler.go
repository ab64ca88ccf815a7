package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/agendabarber/agenda-api/internal/domain/booking"
	"github.com/agendabarber/agenda-api/internal/httperr"
	ucBooking "github.com/agendabarber/agenda-api/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	repo         domain.Repository
	availability *ucBooking.GetAvailability
	createUC     *ucBooking.CreatePublicBooking
}

func NewPublicHandler(
	repo domain.Repository,
	availability *ucBooking.GetAvailability,
	createUC *ucBooking.CreatePublicBooking,
) *PublicHandler {
	return &PublicHandler{
		repo:         repo,
		availability: availability,
		createUC:     createUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`
	CustomerCPF   string `json:"customer_cpf"`

	BarberID  uint   `json:"barber_id"`
	ServiceID uint   `json:"service_id"`
	Date      string `json:"date"` // YYYY-MM-DD
	Time      string `json:"time"` // HH:MM

	Notes string `json:"notes"`
}

////////////////////////////////////////////////////////
// BOOKING PAGE (barbearia + barbeiros + serviços)
////////////////////////////////////////////////////////

func (h *PublicHandler) GetBookingPage(c *gin.Context) {
	slug := c.Param("slug")
	ctx := c.Request.Context()

	shop, err := h.repo.GetBarbershopBySlug(ctx, slug)
	if err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	barbers, err := h.repo.ListBarbers(ctx, shop.ID, true)
	if err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	services, err := h.repo.ListServices(ctx, shop.ID, true)
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"barbershop": shop,
		"barbers":    barbers,
		"services":   services,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY (grade de slots do dia)
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	slug := c.Param("slug")
	dateStr := c.Query("date")
	barberIDStr := c.Query("barber_id")

	if dateStr == "" || barberIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e barbeiro obrigatórios.")
		return
	}

	barberID, err := strconv.ParseUint(barberIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	slots, err := h.availability.Execute(
		c.Request.Context(),
		ucBooking.AvailabilityInput{
			Slug:     slug,
			BarberID: uint(barberID),
			Date:     dateStr,
		},
	)

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
		case httperr.IsBusiness(err, "barber_not_found"):
			httperr.BadRequest(c, "barber_not_found", "Barbeiro não encontrado.")
		default:
			httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	slug := c.Param("slug")

	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		ucBooking.CreatePublicBookingInput{
			Slug: slug,
			Submission: domain.SubmissionInput{
				CustomerName:  req.CustomerName,
				CustomerPhone: req.CustomerPhone,
				CustomerEmail: req.CustomerEmail,
				CustomerCPF:   req.CustomerCPF,
				BarberID:      req.BarberID,
				ServiceID:     req.ServiceID,
				Date:          req.Date,
				StartTime:     req.Time,
				Notes:         req.Notes,
			},
		},
	)

	if err != nil {
		mapCreateBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// mapCreateBookingError traduz a taxonomia do domínio para a borda HTTP.
func mapCreateBookingError(c *gin.Context, err error) {
	if field, ok := domain.IsMissingField(err); ok {
		httperr.BadRequest(c, "missing_field", "Campo obrigatório: "+field+".")
		return
	}

	if domain.IsInvalidCPF(err) {
		httperr.BadRequest(c, "invalid_cpf", "Por favor, informe um CPF válido.")
		return
	}

	var pe domain.PersistenceError
	if errors.As(err, &pe) {
		httperr.Internal(c, "persistence_error", pe.Error())
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
	case errors.Is(err, domain.ErrSlotTaken):
		httperr.Conflict(c, "time_conflict", "Horário acabou de ser reservado. Escolha outro.")
	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
	case httperr.IsBusiness(err, "too_soon"):
		httperr.BadRequest(c, "too_soon", "Horário inválido.")
	case httperr.IsBusiness(err, "barber_not_found"):
		httperr.BadRequest(c, "barber_not_found", "Barbeiro não encontrado.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Serviço não encontrado.")
	default:
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
	}
}
