package entity

import "time"

// Estados de cita.
const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

// Appointment representa una cita agendada con un cliente.
type Appointment struct {
	ID              string
	CustomerID      string
	UserID          string
	Title           string
	Description     string
	AppointmentDate time.Time
	DurationMinutes int
	Type            string // consulta, reunión, visita
	Status          string // scheduled, confirmed, completed, cancelled
	Location        string
	Notes           string
	ReminderSent    bool
	CreatedAt       time.Time
}
