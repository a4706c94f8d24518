package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	"github.com/m04kA/SMC-ClinicService/pkg/types"
)

// generateSlotGrid генерирует сетку кандидатов-слотов для рабочего окна
// Слоты идут от workStart с шагом slotDuration, пока начало слота строго
// раньше workEnd. Последний слот может выходить за пределы рабочего окна,
// если длительность не делит окно нацело - это допустимо.
func generateSlotGrid(workStart, workEnd types.TimeString, slotDuration int) ([]types.TimeString, error) {
	if slotDuration <= 0 {
		return nil, fmt.Errorf("slot duration must be positive, got %d", slotDuration)
	}

	grid := make([]types.TimeString, 0)
	current := workStart

	for current.IsBefore(workEnd) {
		grid = append(grid, current)

		next, err := current.AddMinutes(slotDuration)
		if err != nil {
			return nil, err
		}
		current = next
	}

	return grid, nil
}

// freeSlots возвращает слоты сетки, не пересекающиеся ни с одним активным приёмом
//
// Пересечение полуинтервалов [slotStart, slotEnd) и [apptStart, apptEnd):
// слот занят, только если slotStart < apptEnd И slotEnd > apptStart.
// Слот, граничащий с приёмом (конец слота == начало приёма или наоборот),
// остаётся свободным.
func freeSlots(grid []types.TimeString, slotDuration int, appointments []*domain.Appointment) ([]types.TimeString, error) {
	free := make([]types.TimeString, 0, len(grid))

	for _, slotStart := range grid {
		slotEnd, err := slotStart.AddMinutes(slotDuration)
		if err != nil {
			return nil, err
		}

		occupied := false
		for _, appt := range appointments {
			// Отменённые приёмы освобождают свой слот
			if !appt.IsActive() {
				continue
			}

			apptEnd, err := appt.End()
			if err != nil {
				// Приём с некорректным временем не может занимать слот
				continue
			}

			if overlaps(slotStart, slotEnd, appt.StartTime, apptEnd) {
				occupied = true
				break
			}
		}

		if !occupied {
			free = append(free, slotStart)
		}
	}

	return free, nil
}

// overlaps проверяет пересечение полуинтервалов [aStart, aEnd) и [bStart, bEnd)
// Строгие неравенства: граничащие интервалы не пересекаются
func overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && aEnd.IsAfter(bStart)
}
