package booking

import (
	"strings"

	"github.com/agendabarber/agenda-api/internal/validators"
)

// ======================================================
// SUBMISSÃO DE AGENDAMENTO (cliente final)
// ======================================================

type SubmissionInput struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	CustomerCPF   string

	BarberID  uint
	ServiceID uint
	Date      string // YYYY-MM-DD
	StartTime string // HH:MM

	Notes string

	// RequireCPF liga a coleta de CPF (fluxo de confirmação avulso).
	RequireCPF bool
}

// BookingRequest é o registro validado entregue à persistência.
// Este componente nunca muda o status depois da entrega.
type BookingRequest struct {
	BarbershopID uint
	BarberID     uint
	ServiceID    uint

	Date      string
	StartTime string

	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	CustomerCPF   string

	Notes string
}

// ValidateAndBuild valida os campos na ordem fixa (nome, telefone, seleção
// de data/barbeiro/serviço/horário, CPF quando coletado) e monta o
// BookingRequest. O primeiro campo ausente interrompe com MissingFieldError.
func ValidateAndBuild(barbershopID uint, in SubmissionInput) (*BookingRequest, error) {

	if strings.TrimSpace(in.CustomerName) == "" {
		return nil, MissingFieldError{Field: "name"}
	}

	if strings.TrimSpace(in.CustomerPhone) == "" {
		return nil, MissingFieldError{Field: "phone"}
	}

	// Seleção de agendamento (grupo)
	if strings.TrimSpace(in.Date) == "" {
		return nil, MissingFieldError{Field: "date"}
	}
	if in.BarberID == 0 {
		return nil, MissingFieldError{Field: "barber"}
	}
	if in.ServiceID == 0 {
		return nil, MissingFieldError{Field: "service"}
	}
	if strings.TrimSpace(in.StartTime) == "" {
		return nil, MissingFieldError{Field: "time"}
	}

	cpf := strings.TrimSpace(in.CustomerCPF)
	if in.RequireCPF && cpf == "" {
		return nil, MissingFieldError{Field: "cpf"}
	}
	if cpf != "" {
		if err := validators.ValidateCPF(cpf); err != nil {
			return nil, InvalidCPFError{Reason: err.Error()}
		}
		cpf = validators.FormatCPF(cpf)
	}

	return &BookingRequest{
		BarbershopID: barbershopID,
		BarberID:     in.BarberID,
		ServiceID:    in.ServiceID,

		Date:      strings.TrimSpace(in.Date),
		StartTime: strings.TrimSpace(in.StartTime),

		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerPhone: validators.FormatPhone(in.CustomerPhone),
		CustomerEmail: strings.TrimSpace(in.CustomerEmail),
		CustomerCPF:   cpf,

		Notes: in.Notes,
	}, nil
}
