package repository

import (
	"time"

	"github.com/felipefpires/erp-api/internal/domain/entity"
)

// EventRepository define el puerto de persistencia para Event.
type EventRepository interface {
	Create(event *entity.Event) error
	GetByID(id string) (*entity.Event, error)
	Update(event *entity.Event) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Event, error)
	ListByRange(from, to time.Time) ([]*entity.Event, error)
}
