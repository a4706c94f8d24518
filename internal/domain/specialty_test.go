package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpecialty_EffectiveDuration(t *testing.T) {
	spec := &Specialty{AppointmentDuration: 45}
	assert.Equal(t, 45, spec.EffectiveDuration())

	// Специальность без длительности получает значение по умолчанию
	empty := &Specialty{}
	assert.Equal(t, DefaultAppointmentDuration, empty.EffectiveDuration())
}

func TestActiveStatuses(t *testing.T) {
	assert.Contains(t, ActiveStatuses, StatusScheduled)
	assert.Contains(t, ActiveStatuses, StatusCompleted)
	assert.NotContains(t, ActiveStatuses, StatusCancelled)
}
