package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/felipefpires/erp-api/internal/application/dto"
	"github.com/felipefpires/erp-api/internal/domain"
	"github.com/felipefpires/erp-api/internal/domain/entity"
	"github.com/felipefpires/erp-api/internal/domain/repository"
)

// AppointmentUseCase agenda de citas con clientes.
type AppointmentUseCase struct {
	appointmentRepo repository.AppointmentRepository
	customerRepo    repository.CustomerRepository
}

// NewAppointmentUseCase construye el caso de uso de citas.
func NewAppointmentUseCase(
	appointmentRepo repository.AppointmentRepository,
	customerRepo repository.CustomerRepository,
) *AppointmentUseCase {
	return &AppointmentUseCase{appointmentRepo: appointmentRepo, customerRepo: customerRepo}
}

// Create agenda una cita. Duración por defecto: 60 minutos.
func (uc *AppointmentUseCase) Create(actorID string, req dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if req.CustomerID == "" || req.Title == "" || req.AppointmentDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(req.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = 60
	}
	appointment := &entity.Appointment{
		ID:              uuid.New().String(),
		CustomerID:      req.CustomerID,
		UserID:          actorID,
		Title:           req.Title,
		Description:     req.Description,
		AppointmentDate: req.AppointmentDate,
		DurationMinutes: duration,
		Type:            req.Type,
		Status:          entity.AppointmentStatusScheduled,
		Location:        req.Location,
		Notes:           req.Notes,
		CreatedAt:       time.Now(),
	}
	if err := uc.appointmentRepo.Create(appointment); err != nil {
		return nil, err
	}
	resp := toAppointmentResponse(appointment)
	return &resp, nil
}

// Get devuelve una cita por ID.
func (uc *AppointmentUseCase) Get(id string) (*dto.AppointmentResponse, error) {
	appointment, err := uc.appointmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, domain.ErrNotFound
	}
	resp := toAppointmentResponse(appointment)
	return &resp, nil
}

// List devuelve citas, opcionalmente filtradas por estado.
func (uc *AppointmentUseCase) List(status string, limit, offset int) ([]dto.AppointmentResponse, error) {
	if status != "" && !validAppointmentStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	appointments, err := uc.appointmentRepo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, toAppointmentResponse(a))
	}
	return out, nil
}

// ListByRange devuelve las citas dentro de una ventana de fechas (calendario).
func (uc *AppointmentUseCase) ListByRange(from, to time.Time) ([]dto.AppointmentResponse, error) {
	if !from.Before(to) {
		return nil, domain.ErrInvalidInput
	}
	appointments, err := uc.appointmentRepo.ListByRange(from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, toAppointmentResponse(a))
	}
	return out, nil
}

// Update modifica una cita.
func (uc *AppointmentUseCase) Update(id string, req dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if req.Title == "" || req.AppointmentDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	appointment, err := uc.appointmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, domain.ErrNotFound
	}
	if req.Status != "" {
		if !validAppointmentStatus(req.Status) {
			return nil, domain.ErrInvalidInput
		}
		appointment.Status = req.Status
	}

	appointment.Title = req.Title
	appointment.Description = req.Description
	appointment.AppointmentDate = req.AppointmentDate
	if req.DurationMinutes > 0 {
		appointment.DurationMinutes = req.DurationMinutes
	}
	appointment.Type = req.Type
	appointment.Location = req.Location
	appointment.Notes = req.Notes

	if err := uc.appointmentRepo.Update(appointment); err != nil {
		return nil, err
	}
	resp := toAppointmentResponse(appointment)
	return &resp, nil
}

// Delete elimina una cita.
func (uc *AppointmentUseCase) Delete(id string) error {
	appointment, err := uc.appointmentRepo.GetByID(id)
	if err != nil {
		return err
	}
	if appointment == nil {
		return domain.ErrNotFound
	}
	return uc.appointmentRepo.Delete(id)
}

func validAppointmentStatus(s string) bool {
	switch s {
	case entity.AppointmentStatusScheduled, entity.AppointmentStatusConfirmed,
		entity.AppointmentStatusCompleted, entity.AppointmentStatusCancelled:
		return true
	}
	return false
}

func toAppointmentResponse(a *entity.Appointment) dto.AppointmentResponse {
	return dto.AppointmentResponse{
		ID:              a.ID,
		CustomerID:      a.CustomerID,
		UserID:          a.UserID,
		Title:           a.Title,
		Description:     a.Description,
		AppointmentDate: a.AppointmentDate,
		DurationMinutes: a.DurationMinutes,
		Type:            a.Type,
		Status:          a.Status,
		Location:        a.Location,
		Notes:           a.Notes,
		ReminderSent:    a.ReminderSent,
		CreatedAt:       a.CreatedAt,
	}
}
