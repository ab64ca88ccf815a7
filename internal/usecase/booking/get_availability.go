package booking

import (
	"context"

	"github.com/agendabarber/agenda-api/internal/cache"
	domain "github.com/agendabarber/agenda-api/internal/domain/booking"
	"github.com/agendabarber/agenda-api/internal/httperr"
	"github.com/agendabarber/agenda-api/internal/metrics"
	"github.com/agendabarber/agenda-api/internal/timezone"
)

type AvailabilityInput struct {
	Slug     string
	BarberID uint
	Date     string // YYYY-MM-DD
}

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.Availability
}

func NewGetAvailability(repo domain.Repository, availCache *cache.Availability) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		cache: availCache,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]domain.TimeSlot, error) {

	shop, err := uc.repo.GetBarbershopBySlug(ctx, in.Slug)
	if err != nil {
		return nil, err
	}

	if _, err := timezone.ParseDate(shop.Timezone, in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	barber, err := uc.repo.GetBarber(ctx, shop.ID, in.BarberID)
	if err != nil || !barber.Active {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	booked, hit := uc.cache.GetBookedTimes(ctx, shop.ID, barber.ID, in.Date)
	if hit {
		metrics.IncCacheHit()
	} else {
		metrics.IncCacheMiss()

		booked, err = uc.repo.ListBookedStartTimes(
			ctx,
			shop.ID,
			barber.ID,
			in.Date,
			domain.BlockingStatuses(),
		)
		if err != nil {
			return nil, err
		}

		uc.cache.SetBookedTimes(ctx, shop.ID, barber.ID, in.Date, booked)
	}

	taken := make(map[string]bool, len(booked))
	for _, t := range booked {
		taken[t] = true
	}

	return domain.GenerateSlots(
		shop.OpenHour,
		shop.CloseHour,
		shop.SlotMinutes,
		taken,
	), nil
}
