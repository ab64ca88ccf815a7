package booking

import "fmt"

type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// GenerateSlots monta a grade de horários de um dia.
//
// A grade vai de openHour:00 (inclusive) até closeHour:00 (exclusive), em
// passos de stepMinutes. Um horário fica indisponível apenas quando existe
// colisão exata de início em booked — não há detecção de sobreposição por
// duração. Função pura: mesmas entradas, mesma saída.
func GenerateSlots(openHour, closeHour, stepMinutes int, booked map[string]bool) []TimeSlot {
	if stepMinutes <= 0 || openHour >= closeHour || openHour < 0 || closeHour > 24 {
		return []TimeSlot{}
	}

	slots := make([]TimeSlot, 0, ((closeHour-openHour)*60)/stepMinutes)

	for minute := openHour * 60; minute < closeHour*60; minute += stepMinutes {
		t := fmt.Sprintf("%02d:%02d", minute/60, minute%60)
		slots = append(slots, TimeSlot{
			Time:      t,
			Available: !booked[t],
		})
	}

	return slots
}
