package dto

import "time"

// CreateAppointmentRequest body para POST /api/schedule/appointments.
type CreateAppointmentRequest struct {
	CustomerID      string    `json:"customer_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	AppointmentDate time.Time `json:"appointment_date"`
	DurationMinutes int       `json:"duration_minutes,omitempty"` // default 60
	Type            string    `json:"type,omitempty"`
	Location        string    `json:"location,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}

// UpdateAppointmentRequest body para PUT /api/schedule/appointments/:id.
type UpdateAppointmentRequest struct {
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	AppointmentDate time.Time `json:"appointment_date"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
	Type            string    `json:"type,omitempty"`
	Status          string    `json:"status,omitempty"`
	Location        string    `json:"location,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}

// AppointmentResponse cita agendada.
type AppointmentResponse struct {
	ID              string    `json:"id"`
	CustomerID      string    `json:"customer_id"`
	UserID          string    `json:"user_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	AppointmentDate time.Time `json:"appointment_date"`
	DurationMinutes int       `json:"duration_minutes"`
	Type            string    `json:"type,omitempty"`
	Status          string    `json:"status"`
	Location        string    `json:"location,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	ReminderSent    bool      `json:"reminder_sent"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreateEventRequest body para POST /api/schedule/events.
type CreateEventRequest struct {
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Location        string    `json:"location,omitempty"`
	Type            string    `json:"type,omitempty"`     // meeting, call, task, reminder
	Priority        string    `json:"priority,omitempty"` // default normal
	IsAllDay        bool      `json:"is_all_day"`
	ReminderMinutes int       `json:"reminder_minutes,omitempty"` // default 15
}

// EventResponse evento del calendario.
type EventResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Location        string    `json:"location,omitempty"`
	Type            string    `json:"type,omitempty"`
	Priority        string    `json:"priority"`
	Status          string    `json:"status"`
	IsAllDay        bool      `json:"is_all_day"`
	ReminderMinutes int       `json:"reminder_minutes"`
	UserID          string    `json:"user_id"`
	CreatedAt       time.Time `json:"created_at"`
}
