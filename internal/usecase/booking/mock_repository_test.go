package booking

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/agendabarber/agenda-api/internal/models"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetBarbershopBySlug(ctx context.Context, slug string) (*models.Barbershop, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Barbershop), args.Error(1)
}

func (m *mockRepository) GetBarbershopByID(ctx context.Context, id uint) (*models.Barbershop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Barbershop), args.Error(1)
}

func (m *mockRepository) GetBarber(ctx context.Context, barbershopID, barberID uint) (*models.Barber, error) {
	args := m.Called(ctx, barbershopID, barberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Barber), args.Error(1)
}

func (m *mockRepository) ListBarbers(ctx context.Context, barbershopID uint, activeOnly bool) ([]models.Barber, error) {
	args := m.Called(ctx, barbershopID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Barber), args.Error(1)
}

func (m *mockRepository) GetService(ctx context.Context, barbershopID, serviceID uint) (*models.Service, error) {
	args := m.Called(ctx, barbershopID, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *mockRepository) ListServices(ctx context.Context, barbershopID uint, activeOnly bool) ([]models.Service, error) {
	args := m.Called(ctx, barbershopID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *mockRepository) ListBookedStartTimes(ctx context.Context, barbershopID, barberID uint, date string, statusIn []string) ([]string, error) {
	args := m.Called(ctx, barbershopID, barberID, date, statusIn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockRepository) InsertAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *mockRepository) GetAppointmentForShop(ctx context.Context, appointmentID, barbershopID uint) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID, barbershopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *mockRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *mockRepository) ListAppointmentsByDate(ctx context.Context, barbershopID uint, date string) ([]models.Appointment, error) {
	args := m.Called(ctx, barbershopID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}
