package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/felipefpires/erp-api/internal/application/dto"
	"github.com/felipefpires/erp-api/internal/application/usecase"
)

// ScheduleHandler maneja citas con clientes y eventos del calendario.
type ScheduleHandler struct {
	appointments *usecase.AppointmentUseCase
	events       *usecase.EventUseCase
}

// NewScheduleHandler construye el handler de agenda.
func NewScheduleHandler(appointments *usecase.AppointmentUseCase, events *usecase.EventUseCase) *ScheduleHandler {
	return &ScheduleHandler{appointments: appointments, events: events}
}

// parseRange lee from/to de la query en RFC 3339.
func parseRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}

// ── Citas ────────────────────────────────────────────────────────────────────

// CreateAppointment godoc
// @Summary      Agendar cita con un cliente
// @Tags         schedule
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAppointmentRequest  true  "customer_id, title, appointment_date"
// @Success      201   {object}  dto.AppointmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/schedule/appointments [post]
func (h *ScheduleHandler) CreateAppointment(c *fiber.Ctx) error {
	var in dto.CreateAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	appointment, err := h.appointments.Create(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// ListAppointments godoc
// @Summary      Listar citas
// @Tags         schedule
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "scheduled | confirmed | completed | cancelled"
// @Param        limit   query  int     false  "default 20, max 100"
// @Param        offset  query  int     false  "default 0"
// @Success      200  {array}  dto.AppointmentResponse
// @Router       /api/schedule/appointments [get]
func (h *ScheduleHandler) ListAppointments(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	out, err := h.appointments.List(c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AppointmentsByRange godoc
// @Summary      Citas dentro de una ventana de fechas
// @Tags         schedule
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  true  "RFC 3339"
// @Param        to    query  string  true  "RFC 3339"
// @Success      200  {array}   dto.AppointmentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/schedule/appointments/range [get]
func (h *ScheduleHandler) AppointmentsByRange(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from/to inválidos (RFC 3339)"})
	}
	out, err := h.appointments.ListByRange(from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetAppointment godoc
// @Summary      Obtener cita
// @Tags         schedule
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la cita"
// @Success      200  {object}  dto.AppointmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/schedule/appointments/{id} [get]
func (h *ScheduleHandler) GetAppointment(c *fiber.Ctx) error {
	appointment, err := h.appointments.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(appointment)
}

// UpdateAppointment godoc
// @Summary      Actualizar cita
// @Tags         schedule
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID de la cita"
// @Param        body  body  dto.UpdateAppointmentRequest  true  "datos de la cita"
// @Success      200   {object}  dto.AppointmentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/schedule/appointments/{id} [put]
func (h *ScheduleHandler) UpdateAppointment(c *fiber.Ctx) error {
	var in dto.UpdateAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	appointment, err := h.appointments.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(appointment)
}

// DeleteAppointment godoc
// @Summary      Eliminar cita
// @Tags         schedule
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la cita"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/schedule/appointments/{id} [delete]
func (h *ScheduleHandler) DeleteAppointment(c *fiber.Ctx) error {
	if err := h.appointments.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cita eliminada"})
}

// ── Eventos ──────────────────────────────────────────────────────────────────

// CreateEvent godoc
// @Summary      Crear evento de calendario
// @Tags         schedule
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEventRequest  true  "title, start_date, end_date"
// @Success      201   {object}  dto.EventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/schedule/events [post]
func (h *ScheduleHandler) CreateEvent(c *fiber.Ctx) error {
	var in dto.CreateEventRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	event, err := h.events.Create(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

// ListEvents godoc
// @Summary      Listar eventos
// @Tags         schedule
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "default 20, max 100"
// @Param        offset  query  int  false  "default 0"
// @Success      200  {array}  dto.EventResponse
// @Router       /api/schedule/events [get]
func (h *ScheduleHandler) ListEvents(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	out, err := h.events.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// EventsByRange godoc
// @Summary      Eventos dentro de una ventana de fechas
// @Tags         schedule
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  true  "RFC 3339"
// @Param        to    query  string  true  "RFC 3339"
// @Success      200  {array}   dto.EventResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/schedule/events/range [get]
func (h *ScheduleHandler) EventsByRange(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from/to inválidos (RFC 3339)"})
	}
	out, err := h.events.ListByRange(from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetEvent godoc
// @Summary      Obtener evento
// @Tags         schedule
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del evento"
// @Success      200  {object}  dto.EventResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/schedule/events/{id} [get]
func (h *ScheduleHandler) GetEvent(c *fiber.Ctx) error {
	event, err := h.events.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(event)
}

// UpdateEvent godoc
// @Summary      Actualizar evento
// @Tags         schedule
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del evento"
// @Param        body  body  dto.CreateEventRequest  true  "datos del evento"
// @Success      200   {object}  dto.EventResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/schedule/events/{id} [put]
func (h *ScheduleHandler) UpdateEvent(c *fiber.Ctx) error {
	var in dto.CreateEventRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	event, err := h.events.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(event)
}

// DeleteEvent godoc
// @Summary      Eliminar evento
// @Tags         schedule
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del evento"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/schedule/events/{id} [delete]
func (h *ScheduleHandler) DeleteEvent(c *fiber.Ctx) error {
	if err := h.events.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "evento eliminado"})
}
