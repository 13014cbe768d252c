package repository

import (
	"time"

	"github.com/felipefpires/erp-api/internal/domain/entity"
)

// AppointmentRepository define el puerto de persistencia para Appointment.
type AppointmentRepository interface {
	Create(appointment *entity.Appointment) error
	GetByID(id string) (*entity.Appointment, error)
	Update(appointment *entity.Appointment) error
	Delete(id string) error
	List(status string, limit, offset int) ([]*entity.Appointment, error)
	ListByRange(from, to time.Time) ([]*entity.Appointment, error)
	ListUpcoming(from time.Time, limit int) ([]*entity.Appointment, error)
	CountByCustomer(customerID string) (int, error)
}
