package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/felipefpires/erp-api/internal/application/dto"
	"github.com/felipefpires/erp-api/internal/domain"
	"github.com/felipefpires/erp-api/internal/domain/entity"
	"github.com/felipefpires/erp-api/internal/domain/repository"
)

// EventUseCase calendario interno de eventos.
type EventUseCase struct {
	eventRepo repository.EventRepository
}

// NewEventUseCase construye el caso de uso de eventos.
func NewEventUseCase(eventRepo repository.EventRepository) *EventUseCase {
	return &EventUseCase{eventRepo: eventRepo}
}

// Create registra un evento. Prioridad por defecto normal, recordatorio 15 min.
func (uc *EventUseCase) Create(actorID string, req dto.CreateEventRequest) (*dto.EventResponse, error) {
	if req.Title == "" || req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, domain.ErrInvalidInput
	}
	priority := req.Priority
	if priority == "" {
		priority = "normal"
	}
	reminder := req.ReminderMinutes
	if reminder <= 0 {
		reminder = 15
	}

	event := &entity.Event{
		ID:              uuid.New().String(),
		Title:           req.Title,
		Description:     req.Description,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Location:        req.Location,
		Type:            req.Type,
		Priority:        priority,
		Status:          "scheduled",
		IsAllDay:        req.IsAllDay,
		ReminderMinutes: reminder,
		UserID:          actorID,
		CreatedAt:       time.Now(),
	}
	if err := uc.eventRepo.Create(event); err != nil {
		return nil, err
	}
	resp := toEventResponse(event)
	return &resp, nil
}

// Get devuelve un evento por ID.
func (uc *EventUseCase) Get(id string) (*dto.EventResponse, error) {
	event, err := uc.eventRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrNotFound
	}
	resp := toEventResponse(event)
	return &resp, nil
}

// List devuelve la página de eventos.
func (uc *EventUseCase) List(limit, offset int) ([]dto.EventResponse, error) {
	events, err := uc.eventRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	return out, nil
}

// ListByRange devuelve eventos dentro de una ventana (vista calendario).
func (uc *EventUseCase) ListByRange(from, to time.Time) ([]dto.EventResponse, error) {
	if !from.Before(to) {
		return nil, domain.ErrInvalidInput
	}
	events, err := uc.eventRepo.ListByRange(from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	return out, nil
}

// Update modifica un evento.
func (uc *EventUseCase) Update(id string, req dto.CreateEventRequest) (*dto.EventResponse, error) {
	if req.Title == "" || req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, domain.ErrInvalidInput
	}
	event, err := uc.eventRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrNotFound
	}

	event.Title = req.Title
	event.Description = req.Description
	event.StartDate = req.StartDate
	event.EndDate = req.EndDate
	event.Location = req.Location
	event.Type = req.Type
	if req.Priority != "" {
		event.Priority = req.Priority
	}
	event.IsAllDay = req.IsAllDay
	if req.ReminderMinutes > 0 {
		event.ReminderMinutes = req.ReminderMinutes
	}

	if err := uc.eventRepo.Update(event); err != nil {
		return nil, err
	}
	resp := toEventResponse(event)
	return &resp, nil
}

// Delete elimina un evento.
func (uc *EventUseCase) Delete(id string) error {
	event, err := uc.eventRepo.GetByID(id)
	if err != nil {
		return err
	}
	if event == nil {
		return domain.ErrNotFound
	}
	return uc.eventRepo.Delete(id)
}

func toEventResponse(e *entity.Event) dto.EventResponse {
	return dto.EventResponse{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		StartDate:       e.StartDate,
		EndDate:         e.EndDate,
		Location:        e.Location,
		Type:            e.Type,
		Priority:        e.Priority,
		Status:          e.Status,
		IsAllDay:        e.IsAllDay,
		ReminderMinutes: e.ReminderMinutes,
		UserID:          e.UserID,
		CreatedAt:       e.CreatedAt,
	}
}
