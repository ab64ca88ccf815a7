package booking

import (
	"context"

	"github.com/agendabarber/agenda-api/internal/models"
)

type Repository interface {
	// -------- Barbershop --------
	GetBarbershopBySlug(
		ctx context.Context,
		slug string,
	) (*models.Barbershop, error)

	GetBarbershopByID(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	// -------- Barber --------
	GetBarber(
		ctx context.Context,
		barbershopID uint,
		barberID uint,
	) (*models.Barber, error)

	ListBarbers(
		ctx context.Context,
		barbershopID uint,
		activeOnly bool,
	) ([]models.Barber, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		barbershopID uint,
		serviceID uint,
	) (*models.Service, error)

	ListServices(
		ctx context.Context,
		barbershopID uint,
		activeOnly bool,
	) ([]models.Service, error)

	// -------- Appointment (availability) --------
	ListBookedStartTimes(
		ctx context.Context,
		barbershopID uint,
		barberID uint,
		date string,
		statusIn []string,
	) ([]string, error)

	// -------- Appointment (create / conflict) --------
	// InsertAppointment reconfere a colisão exata de slot dentro da
	// transação e devolve ErrSlotTaken quando o horário já foi tomado.
	InsertAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForShop(
		ctx context.Context,
		appointmentID uint,
		barbershopID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsByDate(
		ctx context.Context,
		barbershopID uint,
		date string,
	) ([]models.Appointment, error)
}
