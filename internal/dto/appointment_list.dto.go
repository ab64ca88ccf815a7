package dto

import "github.com/agendabarber/agenda-api/internal/models"

// Item de listagem do painel: agendamento achatado com barbeiro e serviço.
type AppointmentListItem struct {
	ID         uint   `json:"id"`
	PublicCode string `json:"public_code"`

	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`

	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	Status    string `json:"status"`

	BarberName   string  `json:"barber_name"`
	ServiceName  string  `json:"service_name"`
	DurationMin  int     `json:"duration_min"`
	ServicePrice float64 `json:"service_price"`

	Notes string `json:"notes"`
}

func FromAppointment(ap models.Appointment) AppointmentListItem {
	return AppointmentListItem{
		ID:         ap.ID,
		PublicCode: ap.PublicCode,

		CustomerName:  ap.CustomerName,
		CustomerPhone: ap.CustomerPhone,

		Date:      ap.Date,
		StartTime: ap.StartTime,
		Status:    ap.Status,

		BarberName:   ap.Barber.Name,
		ServiceName:  ap.Service.Name,
		DurationMin:  ap.Service.DurationMin,
		ServicePrice: ap.Service.Price,

		Notes: ap.Notes,
	}
}

func FromAppointments(aps []models.Appointment) []AppointmentListItem {
	items := make([]AppointmentListItem, 0, len(aps))
	for _, ap := range aps {
		items = append(items, FromAppointment(ap))
	}
	return items
}
