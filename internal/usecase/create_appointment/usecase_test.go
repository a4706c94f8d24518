package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/appointment"
	doctorRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/doctor"
	specialtyRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/specialty"
	"github.com/m04kA/SMC-ClinicService/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// inlineTxManager выполняет функцию без реальной транзакции
type inlineTxManager struct{}

func (inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeDoctorRepo struct {
	doctor *domain.Doctor
	err    error
}

func (f *fakeDoctorRepo) GetByIDDayAndSpecialty(ctx context.Context, id int64, day domain.Weekday, specialtyID int64) (*domain.Doctor, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.doctor, nil
}

type fakeSpecialtyRepo struct {
	specialty *domain.Specialty
	err       error
}

func (f *fakeSpecialtyRepo) GetByID(ctx context.Context, id int64) (*domain.Specialty, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.specialty, nil
}

type fakeAppointmentRepo struct {
	existing  []*domain.Appointment
	createErr error

	created *domain.Appointment // последний созданный приём
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *appt
	created.ID = 100
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeAppointmentRepo) GetByDoctorAndDate(ctx context.Context, doctorID int64, date time.Time, includeInactive bool) ([]*domain.Appointment, error) {
	return f.existing, nil
}

// Понедельник
var testDate = time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		DoctorID:    10,
		SpecialtyID: 1,
		PatientID:   42,
		Date:        testDate,
		StartTime:   "09:00",
	}
}

func newTestUseCase(doctors *fakeDoctorRepo, specialties *fakeSpecialtyRepo, appointments *fakeAppointmentRepo) *UseCase {
	return NewUseCase(doctors, specialties, appointments, inlineTxManager{}, noopLogger{})
}

func TestUseCase_Execute(t *testing.T) {
	doctor := &domain.Doctor{ID: 10, Name: "Dr. Levi", SpecialtyIDs: []int64{1}}
	specialty := &domain.Specialty{ID: 1, Name: "Терапевт", AppointmentDuration: 30}

	t.Run("successful creation", func(t *testing.T) {
		appointments := &fakeAppointmentRepo{}
		uc := newTestUseCase(
			&fakeDoctorRepo{doctor: doctor},
			&fakeSpecialtyRepo{specialty: specialty},
			appointments,
		)

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		assert.Equal(t, int64(100), resp.ID)
		assert.Equal(t, int64(10), resp.DoctorID)
		assert.Equal(t, int64(42), resp.PatientID)
		assert.Equal(t, types.TimeString("09:00"), resp.StartTime)
		assert.Equal(t, string(domain.StatusScheduled), resp.Status)

		// Длительность копируется из специальности, клиент её не передаёт
		assert.Equal(t, 30, resp.DurationMinutes)
		require.NotNil(t, appointments.created)
		assert.Equal(t, 30, appointments.created.Duration)
	})

	t.Run("specialty without duration falls back to default", func(t *testing.T) {
		appointments := &fakeAppointmentRepo{}
		uc := newTestUseCase(
			&fakeDoctorRepo{doctor: doctor},
			&fakeSpecialtyRepo{specialty: &domain.Specialty{ID: 1, Name: "Терапевт"}},
			appointments,
		)

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultAppointmentDuration, resp.DurationMinutes)
	})

	t.Run("overlapping appointment rejected", func(t *testing.T) {
		uc := newTestUseCase(
			&fakeDoctorRepo{doctor: doctor},
			&fakeSpecialtyRepo{specialty: specialty},
			&fakeAppointmentRepo{existing: []*domain.Appointment{
				{DoctorID: 10, StartTime: "08:45", Duration: 30, Status: domain.StatusScheduled},
			}},
		)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrAppointmentUnavailable)
	})

	t.Run("adjacent appointment allowed", func(t *testing.T) {
		// Существующий приём 08:30-09:00 граничит с запрошенным 09:00-09:30
		uc := newTestUseCase(
			&fakeDoctorRepo{doctor: doctor},
			&fakeSpecialtyRepo{specialty: specialty},
			&fakeAppointmentRepo{existing: []*domain.Appointment{
				{DoctorID: 10, StartTime: "08:30", Duration: 30, Status: domain.StatusScheduled},
			}},
		)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.NoError(t, err)
	})

	t.Run("cancelled appointment does not block slot", func(t *testing.T) {
		uc := newTestUseCase(
			&fakeDoctorRepo{doctor: doctor},
			&fakeSpecialtyRepo{specialty: specialty},
			&fakeAppointmentRepo{existing: []*domain.Appointment{
				{DoctorID: 10, StartTime: "09:00", Duration: 30, Status: domain.StatusCancelled},
			}},
		)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.NoError(t, err)
	})

	t.Run("doctor not found", func(t *testing.T) {
		uc := newTestUseCase(
			&fakeDoctorRepo{err: doctorRepo.ErrDoctorNotFound},
			&fakeSpecialtyRepo{specialty: specialty},
			&fakeAppointmentRepo{},
		)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrDoctorNotFound)
	})

	t.Run("specialty not found", func(t *testing.T) {
		uc := newTestUseCase(
			&fakeDoctorRepo{doctor: doctor},
			&fakeSpecialtyRepo{err: specialtyRepo.ErrSpecialtyNotFound},
			&fakeAppointmentRepo{},
		)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSpecialtyNotFound)
	})

	t.Run("unique index violation maps to unavailable", func(t *testing.T) {
		// Конкурентный запрос успел вставить приём между проверкой и вставкой
		uc := newTestUseCase(
			&fakeDoctorRepo{doctor: doctor},
			&fakeSpecialtyRepo{specialty: specialty},
			&fakeAppointmentRepo{createErr: appointmentRepo.ErrSlotTaken},
		)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrAppointmentUnavailable)
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := newTestUseCase(&fakeDoctorRepo{doctor: doctor}, &fakeSpecialtyRepo{specialty: specialty}, &fakeAppointmentRepo{})

		tests := []struct {
			name   string
			mutate func(r *Request)
		}{
			{name: "missing doctorID", mutate: func(r *Request) { r.DoctorID = 0 }},
			{name: "missing specialtyID", mutate: func(r *Request) { r.SpecialtyID = 0 }},
			{name: "missing patientID", mutate: func(r *Request) { r.PatientID = 0 }},
			{name: "missing date", mutate: func(r *Request) { r.Date = time.Time{} }},
			{name: "missing startTime", mutate: func(r *Request) { r.StartTime = "" }},
			{name: "malformed startTime", mutate: func(r *Request) { r.StartTime = "9am" }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := validRequest()
				tt.mutate(req)

				_, err := uc.Execute(context.Background(), req)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}
