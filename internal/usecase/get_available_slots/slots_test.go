package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	"github.com/m04kA/SMC-ClinicService/pkg/types"
)

func TestGenerateSlotGrid(t *testing.T) {
	tests := []struct {
		name      string
		workStart types.TimeString
		workEnd   types.TimeString
		duration  int
		want      []types.TimeString
	}{
		{
			name:      "even division",
			workStart: "09:00",
			workEnd:   "11:00",
			duration:  30,
			want:      []types.TimeString{"09:00", "09:30", "10:00", "10:30"},
		},
		{
			// Длительность не делит окно нацело: последний слот начинается
			// до конца окна, но выходит за его пределы
			name:      "last slot overflows window",
			workStart: "09:00",
			workEnd:   "10:00",
			duration:  45,
			want:      []types.TimeString{"09:00", "09:45"},
		},
		{
			name:      "single slot",
			workStart: "09:00",
			workEnd:   "09:30",
			duration:  30,
			want:      []types.TimeString{"09:00"},
		},
		{
			name:      "empty window",
			workStart: "09:00",
			workEnd:   "09:00",
			duration:  30,
			want:      []types.TimeString{},
		},
		{
			name:      "inverted window",
			workStart: "18:00",
			workEnd:   "09:00",
			duration:  30,
			want:      []types.TimeString{},
		},
		{
			// Окно до конца суток не должно зацикливаться
			name:      "window ending at midnight boundary",
			workStart: "23:00",
			workEnd:   "23:59",
			duration:  30,
			want:      []types.TimeString{"23:00", "23:30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := generateSlotGrid(tt.workStart, tt.workEnd, tt.duration)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateSlotGrid_InvalidDuration(t *testing.T) {
	_, err := generateSlotGrid("09:00", "10:00", 0)
	assert.Error(t, err)

	_, err = generateSlotGrid("09:00", "10:00", -15)
	assert.Error(t, err)
}

func TestFreeSlots(t *testing.T) {
	grid := []types.TimeString{"09:00", "09:30", "10:00", "10:30"}

	appt := func(start types.TimeString, duration int, status domain.AppointmentStatus) *domain.Appointment {
		return &domain.Appointment{StartTime: start, Duration: duration, Status: status}
	}

	tests := []struct {
		name         string
		appointments []*domain.Appointment
		want         []types.TimeString
	}{
		{
			name:         "no appointments",
			appointments: nil,
			want:         []types.TimeString{"09:00", "09:30", "10:00", "10:30"},
		},
		{
			name: "one busy slot",
			appointments: []*domain.Appointment{
				appt("09:30", 30, domain.StatusScheduled),
			},
			want: []types.TimeString{"09:00", "10:00", "10:30"},
		},
		{
			// Приём пересекает два слота сетки, оба заняты
			name: "off-grid appointment blocks two slots",
			appointments: []*domain.Appointment{
				appt("09:15", 30, domain.StatusScheduled),
			},
			want: []types.TimeString{"10:00", "10:30"},
		},
		{
			// Граничащие интервалы не пересекаются: приём 09:00-09:30
			// не занимает слот 09:30
			name: "adjacent appointment does not block next slot",
			appointments: []*domain.Appointment{
				appt("09:00", 30, domain.StatusScheduled),
			},
			want: []types.TimeString{"09:30", "10:00", "10:30"},
		},
		{
			// Отменённый приём освобождает слот
			name: "cancelled appointment frees its slot",
			appointments: []*domain.Appointment{
				appt("09:30", 30, domain.StatusCancelled),
			},
			want: []types.TimeString{"09:00", "09:30", "10:00", "10:30"},
		},
		{
			name: "completed appointment still occupies slot",
			appointments: []*domain.Appointment{
				appt("09:30", 30, domain.StatusCompleted),
			},
			want: []types.TimeString{"09:00", "10:00", "10:30"},
		},
		{
			name: "all slots busy",
			appointments: []*domain.Appointment{
				appt("09:00", 60, domain.StatusScheduled),
				appt("10:00", 60, domain.StatusScheduled),
			},
			want: []types.TimeString{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := freeSlots(grid, 30, tt.appointments)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOverlaps(t *testing.T) {
	// Полуинтервалы: [09:00, 09:30) и [09:30, 10:00) не пересекаются
	assert.False(t, overlaps("09:00", "09:30", "09:30", "10:00"))
	assert.False(t, overlaps("09:30", "10:00", "09:00", "09:30"))

	assert.True(t, overlaps("09:00", "09:30", "09:15", "09:45"))
	assert.True(t, overlaps("09:15", "09:45", "09:00", "09:30"))

	// Вложенный интервал
	assert.True(t, overlaps("09:00", "10:00", "09:15", "09:30"))
	// Полное совпадение
	assert.True(t, overlaps("09:00", "09:30", "09:00", "09:30"))
}
