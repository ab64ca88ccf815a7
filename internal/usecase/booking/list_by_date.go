package booking

import (
	"context"

	domain "github.com/agendabarber/agenda-api/internal/domain/booking"
	"github.com/agendabarber/agenda-api/internal/httperr"
	"github.com/agendabarber/agenda-api/internal/models"
	"github.com/agendabarber/agenda-api/internal/timezone"
)

type ListBookingsByDate struct {
	repo domain.Repository
}

func NewListBookingsByDate(repo domain.Repository) *ListBookingsByDate {
	return &ListBookingsByDate{repo: repo}
}

func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	barbershopID uint,
	date string,
) ([]models.Appointment, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	if _, err := timezone.ParseDate(shop.Timezone, date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	return uc.repo.ListAppointmentsByDate(ctx, barbershopID, date)
}
