package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Availability guarda, por (barbearia, barbeiro, data), a lista de horários
// já tomados. TTL curto: a resposta pública só precisa ser tão fresca quanto
// a última consulta, e toda criação de agendamento invalida a chave.
type Availability struct {
	client *redis.Client
	ttl    time.Duration
}

func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func NewAvailability(client *redis.Client, ttl time.Duration) *Availability {
	return &Availability{
		client: client,
		ttl:    ttl,
	}
}

func slotKey(barbershopID, barberID uint, date string) string {
	return fmt.Sprintf("avail:%d:%d:%s", barbershopID, barberID, date)
}

// GetBookedTimes devolve (times, true) no hit; (nil, false) em miss ou erro.
func (a *Availability) GetBookedTimes(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	date string,
) ([]string, bool) {

	if a == nil || a.client == nil {
		return nil, false
	}

	val, err := a.client.Get(ctx, slotKey(barbershopID, barberID, date)).Result()
	if err != nil {
		return nil, false
	}

	var times []string
	if err := json.Unmarshal([]byte(val), &times); err != nil {
		return nil, false
	}

	return times, true
}

func (a *Availability) SetBookedTimes(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	date string,
	times []string,
) {

	if a == nil || a.client == nil {
		return
	}

	if times == nil {
		times = []string{}
	}

	b, err := json.Marshal(times)
	if err != nil {
		return
	}

	a.client.Set(ctx, slotKey(barbershopID, barberID, date), b, a.ttl)
}

func (a *Availability) Invalidate(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	date string,
) {

	if a == nil || a.client == nil {
		return
	}

	a.client.Del(ctx, slotKey(barbershopID, barberID, date))
}
