package entity

import "time"

// Event representa un evento del calendario interno (reunión, llamada, tarea, recordatorio).
type Event struct {
	ID              string
	Title           string
	Description     string
	StartDate       time.Time
	EndDate         time.Time
	Location        string
	Type            string // meeting, call, task, reminder
	Priority        string // low, normal, high, urgent
	Status          string // scheduled, completed, cancelled
	IsAllDay        bool
	ReminderMinutes int
	UserID          string
	CreatedAt       time.Time
}
