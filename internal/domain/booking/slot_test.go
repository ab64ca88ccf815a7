package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlots_FullDayGrid(t *testing.T) {
	slots := GenerateSlots(8, 18, 30, nil)

	require.Len(t, slots, 20)
	assert.Equal(t, "08:00", slots[0].Time)
	assert.Equal(t, "08:30", slots[1].Time)
	assert.Equal(t, "17:30", slots[len(slots)-1].Time)

	for _, s := range slots {
		assert.True(t, s.Available, "slot %s deveria estar livre", s.Time)
	}
}

func TestGenerateSlots_CloseHourExcluded(t *testing.T) {
	slots := GenerateSlots(8, 18, 30, nil)

	for _, s := range slots {
		assert.NotEqual(t, "18:00", s.Time)
	}
}

func TestGenerateSlots_BookedTimesUnavailable(t *testing.T) {
	booked := map[string]bool{
		"09:00": true,
	}

	slots := GenerateSlots(8, 10, 30, booked)

	require.Len(t, slots, 4)
	assert.Equal(t, TimeSlot{Time: "08:00", Available: true}, slots[0])
	assert.Equal(t, TimeSlot{Time: "08:30", Available: true}, slots[1])
	assert.Equal(t, TimeSlot{Time: "09:00", Available: false}, slots[2])
	assert.Equal(t, TimeSlot{Time: "09:30", Available: true}, slots[3])
}

func TestGenerateSlots_UnknownBookedTimeIgnored(t *testing.T) {
	// horário fora da grade não muda o resultado
	booked := map[string]bool{
		"07:15": true,
		"23:00": true,
	}

	slots := GenerateSlots(8, 10, 30, booked)

	require.Len(t, slots, 4)
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestGenerateSlots_CustomStep(t *testing.T) {
	slots := GenerateSlots(9, 12, 45, nil)

	times := make([]string, 0, len(slots))
	for _, s := range slots {
		times = append(times, s.Time)
	}

	assert.Equal(t, []string{"09:00", "09:45", "10:30", "11:15"}, times)
}

func TestGenerateSlots_DegenerateWindows(t *testing.T) {
	assert.Empty(t, GenerateSlots(10, 10, 30, nil))
	assert.Empty(t, GenerateSlots(12, 8, 30, nil))
	assert.Empty(t, GenerateSlots(8, 18, 0, nil))
	assert.Empty(t, GenerateSlots(-1, 18, 30, nil))
	assert.Empty(t, GenerateSlots(8, 25, 30, nil))
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	booked := map[string]bool{"10:00": true, "14:30": true}

	first := GenerateSlots(8, 18, 30, booked)
	second := GenerateSlots(8, 18, 30, booked)

	assert.Equal(t, first, second)
}
