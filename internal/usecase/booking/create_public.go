package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/agendabarber/agenda-api/internal/audit"
	"github.com/agendabarber/agenda-api/internal/cache"
	domain "github.com/agendabarber/agenda-api/internal/domain/booking"
	"github.com/agendabarber/agenda-api/internal/httperr"
	"github.com/agendabarber/agenda-api/internal/metrics"
	"github.com/agendabarber/agenda-api/internal/models"
	"github.com/agendabarber/agenda-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreatePublicBookingInput struct {
	Slug       string
	Submission domain.SubmissionInput
}

// ======================================================
// USE CASE
// ======================================================

type CreatePublicBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
}

func NewCreatePublicBooking(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	availCache *cache.Availability,
) *CreatePublicBooking {
	return &CreatePublicBooking{
		repo:  repo,
		audit: auditDispatcher,
		cache: availCache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreatePublicBooking) Execute(
	ctx context.Context,
	in CreatePublicBookingInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Barbearia pelo slug
	// --------------------------------------------------
	shop, err := uc.repo.GetBarbershopBySlug(ctx, in.Slug)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Validação de campos + CPF → BookingRequest
	// --------------------------------------------------
	req, err := domain.ValidateAndBuild(shop.ID, in.Submission)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Data/hora no timezone da barbearia
	// --------------------------------------------------
	start, err := timezone.ParseDateTime(shop.Timezone, req.Date, req.StartTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	minAdvance := shop.MinAdvanceMinutes
	if minAdvance < 0 {
		minAdvance = 0
	}

	now := timezone.NowIn(shop.Timezone)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	// --------------------------------------------------
	// 4. Barbeiro e serviço do tenant
	// --------------------------------------------------
	barber, err := uc.repo.GetBarber(ctx, shop.ID, req.BarberID)
	if err != nil || !barber.Active {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	service, err := uc.repo.GetService(ctx, shop.ID, req.ServiceID)
	if err != nil || !service.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// --------------------------------------------------
	// 5. Inserção única e condicional (conflito exato de slot)
	// --------------------------------------------------
	ap := &models.Appointment{
		PublicCode:   uuid.NewString(),
		BarbershopID: req.BarbershopID,
		BarberID:     req.BarberID,
		ServiceID:    req.ServiceID,

		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		CustomerCPF:   req.CustomerCPF,

		Date:      req.Date,
		StartTime: req.StartTime,
		Notes:     req.Notes,

		Status: string(domain.InitialStatus()),
	}

	if err := uc.repo.InsertAppointment(ctx, ap); err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			metrics.IncBookingConflict()

			uc.audit.Dispatch(audit.Event{
				BarbershopID: shop.ID,
				Action:       audit.ActionBookingConflict,
				Entity:       "appointment",
				Metadata: map[string]any{
					"barber_id": req.BarberID,
					"date":      req.Date,
					"time":      req.StartTime,
				},
			})

			return nil, err
		}

		return nil, domain.PersistenceError{Err: err}
	}

	metrics.IncBookingCreated()
	uc.cache.Invalidate(ctx, shop.ID, req.BarberID, req.Date)

	uc.audit.Dispatch(audit.Event{
		BarbershopID: shop.ID,
		Action:       audit.ActionBookingRequested,
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
