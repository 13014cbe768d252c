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

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

const appointmentColumns = `id, customer_id, user_id, title, description, appointment_date,
	duration_minutes, type, status, location, notes, reminder_sent, created_at`

// AppointmentRepo implementación del puerto AppointmentRepository sobre PostgreSQL.
type AppointmentRepo struct {
	q Querier
}

// NewAppointmentRepository construye el adaptador de citas. Pasar pool o tx.
func NewAppointmentRepository(q Querier) *AppointmentRepo {
	return &AppointmentRepo{q: q}
}

// Create persiste una cita nueva.
func (r *AppointmentRepo) Create(appointment *entity.Appointment) error {
	query := `
		INSERT INTO appointments (` + appointmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		appointment.ID, appointment.CustomerID, appointment.UserID, appointment.Title,
		nullable(appointment.Description), appointment.AppointmentDate, appointment.DurationMinutes,
		nullable(appointment.Type), appointment.Status, nullable(appointment.Location),
		nullable(appointment.Notes), appointment.ReminderSent, appointment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

// GetByID obtiene una cita por ID. Devuelve nil si no existe.
func (r *AppointmentRepo) GetByID(id string) (*entity.Appointment, error) {
	var a entity.Appointment
	var description, typ, location, notes *string
	err := r.q.QueryRow(context.Background(),
		`SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id,
	).Scan(
		&a.ID, &a.CustomerID, &a.UserID, &a.Title, &description, &a.AppointmentDate,
		&a.DurationMinutes, &typ, &a.Status, &location, &notes, &a.ReminderSent, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	a.Description = deref(description)
	a.Type = deref(typ)
	a.Location = deref(location)
	a.Notes = deref(notes)
	return &a, nil
}

// Update actualiza una cita.
func (r *AppointmentRepo) Update(appointment *entity.Appointment) error {
	query := `
		UPDATE appointments SET title = $2, description = $3, appointment_date = $4,
			duration_minutes = $5, type = $6, status = $7, location = $8, notes = $9,
			reminder_sent = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		appointment.ID, appointment.Title, nullable(appointment.Description),
		appointment.AppointmentDate, appointment.DurationMinutes, nullable(appointment.Type),
		appointment.Status, nullable(appointment.Location), nullable(appointment.Notes),
		appointment.ReminderSent,
	)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una cita por ID.
func (r *AppointmentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	return nil
}

// List lista citas, opcionalmente por estado, más próximas primero.
func (r *AppointmentRepo) List(status string, limit, offset int) ([]*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments`
	var args []any
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += fmt.Sprintf(" ORDER BY appointment_date DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return r.list(query, args...)
}

// ListByRange devuelve citas dentro de la ventana, en orden cronológico.
func (r *AppointmentRepo) ListByRange(from, to time.Time) ([]*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + `
		FROM appointments WHERE appointment_date >= $1 AND appointment_date <= $2
		ORDER BY appointment_date ASC`
	return r.list(query, from, to)
}

// ListUpcoming devuelve las próximas citas no canceladas a partir de from.
func (r *AppointmentRepo) ListUpcoming(from time.Time, limit int) ([]*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + `
		FROM appointments WHERE appointment_date >= $1 AND status NOT IN ('cancelled', 'completed')
		ORDER BY appointment_date ASC LIMIT $2`
	return r.list(query, from, limit)
}

func (r *AppointmentRepo) list(query string, args ...any) ([]*entity.Appointment, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	var list []*entity.Appointment
	for rows.Next() {
		var a entity.Appointment
		var description, typ, location, notes *string
		if err := rows.Scan(&a.ID, &a.CustomerID, &a.UserID, &a.Title, &description,
			&a.AppointmentDate, &a.DurationMinutes, &typ, &a.Status, &location, &notes,
			&a.ReminderSent, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		a.Description = deref(description)
		a.Type = deref(typ)
		a.Location = deref(location)
		a.Notes = deref(notes)
		list = append(list, &a)
	}
	return list, rows.Err()
}

// CountByCustomer cuenta las citas de un cliente.
func (r *AppointmentRepo) CountByCustomer(customerID string) (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM appointments WHERE customer_id = $1`, customerID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count appointments by customer: %w", err)
	}
	return total, nil
}
