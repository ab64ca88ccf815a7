package booking

import (
	"context"

	"github.com/agendabarber/agenda-api/internal/audit"
	"github.com/agendabarber/agenda-api/internal/cache"
	domain "github.com/agendabarber/agenda-api/internal/domain/booking"
	"github.com/agendabarber/agenda-api/internal/httperr"
	"github.com/agendabarber/agenda-api/internal/models"
	"github.com/agendabarber/agenda-api/internal/timezone"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
}

func NewCancelBooking(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	availCache *cache.Availability,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: auditDispatcher,
		cache: availCache,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	barbershopID uint,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForShop(ctx, appointmentID, barbershopID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(shop.Timezone)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// cancelamento libera o slot na grade pública
	uc.cache.Invalidate(ctx, barbershopID, ap.BarberID, ap.Date)

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &userID,
		Action:       audit.ActionBookingCanceled,
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
