package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/felipefpires/erp-api/internal/domain"
	"github.com/felipefpires/erp-api/internal/domain/entity"
	"github.com/felipefpires/erp-api/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepo)(nil)

const eventColumns = `id, title, description, start_date, end_date, location, type,
	priority, status, is_all_day, reminder_minutes, user_id, created_at`

// EventRepo implementación del puerto EventRepository sobre PostgreSQL.
type EventRepo struct {
	q Querier
}

// NewEventRepository construye el adaptador de eventos. Pasar pool o tx.
func NewEventRepository(q Querier) *EventRepo {
	return &EventRepo{q: q}
}

// Create persiste un evento nuevo.
func (r *EventRepo) Create(event *entity.Event) error {
	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		event.ID, event.Title, nullable(event.Description), event.StartDate, event.EndDate,
		nullable(event.Location), nullable(event.Type), event.Priority, event.Status,
		event.IsAllDay, event.ReminderMinutes, event.UserID, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// GetByID obtiene un evento por ID. Devuelve nil si no existe.
func (r *EventRepo) GetByID(id string) (*entity.Event, error) {
	var e entity.Event
	var description, location, typ *string
	err := r.q.QueryRow(context.Background(),
		`SELECT `+eventColumns+` FROM events WHERE id = $1`, id,
	).Scan(
		&e.ID, &e.Title, &description, &e.StartDate, &e.EndDate, &location, &typ,
		&e.Priority, &e.Status, &e.IsAllDay, &e.ReminderMinutes, &e.UserID, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	e.Description = deref(description)
	e.Location = deref(location)
	e.Type = deref(typ)
	return &e, nil
}

// Update actualiza un evento.
func (r *EventRepo) Update(event *entity.Event) error {
	query := `
		UPDATE events SET title = $2, description = $3, start_date = $4, end_date = $5,
			location = $6, type = $7, priority = $8, status = $9, is_all_day = $10,
			reminder_minutes = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		event.ID, event.Title, nullable(event.Description), event.StartDate, event.EndDate,
		nullable(event.Location), nullable(event.Type), event.Priority, event.Status,
		event.IsAllDay, event.ReminderMinutes,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un evento por ID.
func (r *EventRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// List lista eventos, más próximos primero.
func (r *EventRepo) List(limit, offset int) ([]*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY start_date DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListByRange devuelve eventos que se solapan con la ventana dada.
func (r *EventRepo) ListByRange(from, to time.Time) ([]*entity.Event, error) {
	query := `SELECT ` + eventColumns + `
		FROM events WHERE start_date <= $2 AND end_date >= $1
		ORDER BY start_date ASC`
	return r.list(query, from, to)
}

func (r *EventRepo) list(query string, args ...any) ([]*entity.Event, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var list []*entity.Event
	for rows.Next() {
		var e entity.Event
		var description, location, typ *string
		if err := rows.Scan(&e.ID, &e.Title, &description, &e.StartDate, &e.EndDate,
			&location, &typ, &e.Priority, &e.Status, &e.IsAllDay, &e.ReminderMinutes,
			&e.UserID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Description = deref(description)
		e.Location = deref(location)
		e.Type = deref(typ)
		list = append(list, &e)
	}
	return list, rows.Err()
}
