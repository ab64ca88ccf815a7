package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/agendabarber/agenda-api/internal/domain/booking"
	"github.com/agendabarber/agenda-api/internal/models"
	ucBooking "github.com/agendabarber/agenda-api/internal/usecase/booking"
)

// stubRepository mantém o estado em memória para exercitar o fluxo público
// completo (página → disponibilidade → criação) sem banco.
type stubRepository struct {
	shop     models.Barbershop
	barbers  []models.Barber
	services []models.Service

	appointments []models.Appointment
	insertErr    error
	nextID       uint
}

func newStubRepository() *stubRepository {
	return &stubRepository{
		shop: models.Barbershop{
			ID:          1,
			Name:        "Barbearia Central",
			Slug:        "barbearia-central-1700000000",
			Timezone:    "America/Sao_Paulo",
			OpenHour:    8,
			CloseHour:   18,
			SlotMinutes: 30,
			Active:      true,
		},
		barbers: []models.Barber{
			{ID: 5, BarbershopID: 1, Name: "Carlos", Active: true},
		},
		services: []models.Service{
			{ID: 7, BarbershopID: 1, Name: "Corte masculino", DurationMin: 30, Price: 50, Active: true},
		},
		nextID: 1,
	}
}

func (s *stubRepository) GetBarbershopBySlug(_ context.Context, slug string) (*models.Barbershop, error) {
	if slug != s.shop.Slug {
		return nil, domain.ErrNotFound
	}
	shop := s.shop
	return &shop, nil
}

func (s *stubRepository) GetBarbershopByID(_ context.Context, id uint) (*models.Barbershop, error) {
	if id != s.shop.ID {
		return nil, domain.ErrNotFound
	}
	shop := s.shop
	return &shop, nil
}

func (s *stubRepository) GetBarber(_ context.Context, barbershopID, barberID uint) (*models.Barber, error) {
	for _, b := range s.barbers {
		if b.BarbershopID == barbershopID && b.ID == barberID {
			barber := b
			return &barber, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubRepository) ListBarbers(_ context.Context, barbershopID uint, activeOnly bool) ([]models.Barber, error) {
	out := []models.Barber{}
	for _, b := range s.barbers {
		if b.BarbershopID == barbershopID && (!activeOnly || b.Active) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *stubRepository) GetService(_ context.Context, barbershopID, serviceID uint) (*models.Service, error) {
	for _, sv := range s.services {
		if sv.BarbershopID == barbershopID && sv.ID == serviceID {
			service := sv
			return &service, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubRepository) ListServices(_ context.Context, barbershopID uint, activeOnly bool) ([]models.Service, error) {
	out := []models.Service{}
	for _, sv := range s.services {
		if sv.BarbershopID == barbershopID && (!activeOnly || sv.Active) {
			out = append(out, sv)
		}
	}
	return out, nil
}

func (s *stubRepository) ListBookedStartTimes(_ context.Context, barbershopID, barberID uint, date string, statusIn []string) ([]string, error) {
	blocking := map[string]bool{}
	for _, st := range statusIn {
		blocking[st] = true
	}

	times := []string{}
	for _, ap := range s.appointments {
		if ap.BarbershopID == barbershopID && ap.BarberID == barberID &&
			ap.Date == date && blocking[ap.Status] {
			times = append(times, ap.StartTime)
		}
	}
	return times, nil
}

func (s *stubRepository) InsertAppointment(_ context.Context, ap *models.Appointment) error {
	if s.insertErr != nil {
		return s.insertErr
	}

	for _, existing := range s.appointments {
		if existing.BarberID == ap.BarberID &&
			existing.Date == ap.Date &&
			existing.StartTime == ap.StartTime &&
			domain.BlocksSlot(domain.Status(existing.Status)) {
			return domain.ErrSlotTaken
		}
	}

	ap.ID = s.nextID
	s.nextID++
	s.appointments = append(s.appointments, *ap)
	return nil
}

func (s *stubRepository) GetAppointmentForShop(_ context.Context, appointmentID, barbershopID uint) (*models.Appointment, error) {
	for _, ap := range s.appointments {
		if ap.ID == appointmentID && ap.BarbershopID == barbershopID {
			found := ap
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubRepository) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i := range s.appointments {
		if s.appointments[i].ID == ap.ID {
			s.appointments[i] = *ap
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *stubRepository) ListAppointmentsByDate(_ context.Context, barbershopID uint, date string) ([]models.Appointment, error) {
	out := []models.Appointment{}
	for _, ap := range s.appointments {
		if ap.BarbershopID == barbershopID && ap.Date == date {
			out = append(out, ap)
		}
	}
	return out, nil
}

var _ domain.Repository = (*stubRepository)(nil)

func publicTestRouter(repo *stubRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	availabilityUC := ucBooking.NewGetAvailability(repo, nil)
	createUC := ucBooking.NewCreatePublicBooking(repo, nil, nil)
	h := NewPublicHandler(repo, availabilityUC, createUC)

	r := gin.New()
	r.GET("/api/public/:slug", h.GetBookingPage)
	r.GET("/api/public/:slug/availability", h.Availability)
	r.POST("/api/public/:slug/appointments", h.CreateAppointment)
	return r
}

func createBody(overrides map[string]any) []byte {
	body := map[string]any{
		"customer_name":  "João Silva",
		"customer_phone": "11987654321",
		"customer_cpf":   "52998224725",
		"barber_id":      5,
		"service_id":     7,
		"date":           "2030-06-10",
		"time":           "10:30",
	}
	for k, v := range overrides {
		body[k] = v
	}
	b, _ := json.Marshal(body)
	return b
}

func TestPublicBookingPage(t *testing.T) {
	r := publicTestRouter(newStubRepository())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/public/barbearia-central-1700000000", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Barbershop models.Barbershop `json:"barbershop"`
		Barbers    []models.Barber   `json:"barbers"`
		Services   []models.Service  `json:"services"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Barbearia Central", resp.Barbershop.Name)
	assert.Len(t, resp.Barbers, 1)
	assert.Len(t, resp.Services, 1)
}

func TestPublicBookingPage_UnknownSlug(t *testing.T) {
	r := publicTestRouter(newStubRepository())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/public/nao-existe", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "barbershop_not_found")
}

func TestPublicAvailability_ReflectsBooking(t *testing.T) {
	repo := newStubRepository()
	r := publicTestRouter(repo)

	// cria um agendamento às 10:30
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost,
		"/api/public/barbearia-central-1700000000/appointments",
		bytes.NewReader(createBody(nil)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// a grade do dia passa a mostrar 10:30 ocupado
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet,
		"/api/public/barbearia-central-1700000000/availability?barber_id=5&date=2030-06-10", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Date  string            `json:"date"`
		Slots []domain.TimeSlot `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Slots, 20)

	for _, s := range resp.Slots {
		if s.Time == "10:30" {
			assert.False(t, s.Available)
		} else {
			assert.True(t, s.Available, "slot %s deveria estar livre", s.Time)
		}
	}
}

func TestPublicAvailability_MissingParams(t *testing.T) {
	r := publicTestRouter(newStubRepository())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/public/barbearia-central-1700000000/availability?date=2030-06-10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing_params")
}

func TestPublicCreateAppointment_Conflict(t *testing.T) {
	repo := newStubRepository()
	r := publicTestRouter(repo)

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost,
		"/api/public/barbearia-central-1700000000/appointments",
		bytes.NewReader(createBody(nil)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(first, req)
	require.Equal(t, http.StatusCreated, first.Code)

	// mesmo barbeiro, mesma data, mesmo horário → 409
	second := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost,
		"/api/public/barbearia-central-1700000000/appointments",
		bytes.NewReader(createBody(map[string]any{"customer_name": "Outro Cliente"})))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(second, req)

	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Contains(t, second.Body.String(), "time_conflict")
	assert.Len(t, repo.appointments, 1)
}

func TestPublicCreateAppointment_OtherSlotStillFree(t *testing.T) {
	repo := newStubRepository()
	r := publicTestRouter(repo)

	for i, slot := range []string{"10:30", "11:00"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost,
			"/api/public/barbearia-central-1700000000/appointments",
			bytes.NewReader(createBody(map[string]any{"time": slot})))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code, "criação %d falhou: %s", i+1, w.Body.String())
	}

	assert.Len(t, repo.appointments, 2)
}

func TestPublicCreateAppointment_MissingField(t *testing.T) {
	r := publicTestRouter(newStubRepository())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost,
		"/api/public/barbearia-central-1700000000/appointments",
		bytes.NewReader(createBody(map[string]any{"customer_phone": ""})))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing_field")
	assert.Contains(t, w.Body.String(), "phone")
}

func TestPublicCreateAppointment_InvalidCPF(t *testing.T) {
	r := publicTestRouter(newStubRepository())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost,
		"/api/public/barbearia-central-1700000000/appointments",
		bytes.NewReader(createBody(map[string]any{"customer_cpf": "12345678900"})))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_cpf")
}

func TestPublicCreateAppointment_PersistenceFailure(t *testing.T) {
	repo := newStubRepository()
	repo.insertErr = fmt.Errorf("connection reset")
	r := publicTestRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost,
		"/api/public/barbearia-central-1700000000/appointments",
		bytes.NewReader(createBody(nil)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "persistence_error")
}
