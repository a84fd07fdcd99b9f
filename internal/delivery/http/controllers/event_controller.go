package controllers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"eventoslisting/internal/delivery/http/helpers"
	"eventoslisting/internal/domain"
)

// maxImageMemory bounds how much of a multipart body is held in memory
// before spilling to a temp file. The whole image is still buffered before
// it reaches the blob store.
const maxImageMemory = 10 << 20

// CreateEventResponse is the response body for POST /api/eventos.
// swagger:model CreateEventResponse
type CreateEventResponse struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

// EventController handles the event catalog endpoints.
type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

// NewEventController creates an EventController with the given logger and service.
func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// eventForm holds the scalar multipart fields plus the optional image part.
type eventForm struct {
	event     domain.Event
	image     []byte
	imageName string
}

// parseEventForm reads the multipart body. Omitted scalar fields decode to
// their zero values; a malformed price or an unreadable image part is a 400.
func parseEventForm(w http.ResponseWriter, r *http.Request) (*eventForm, bool) {
	if err := r.ParseMultipartForm(maxImageMemory); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "invalid multipart form")
		return nil, false
	}
	form := &eventForm{
		event: domain.Event{
			Title:    r.FormValue("title"),
			Provider: r.FormValue("provider"),
			Date:     r.FormValue("date"),
			Category: r.FormValue("category"),
		},
	}
	if raw := strings.TrimSpace(r.FormValue("price")); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, "price must be a number")
			return nil, false
		}
		form.event.Price = price
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return form, true
		}
		helpers.WriteJSONError(w, http.StatusBadRequest, "invalid image upload")
		return nil, false
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "failed to read image upload")
		return nil, false
	}
	form.image = data
	form.imageName = header.Filename
	return form, true
}

// List godoc
// @Summary List events
// @Description Returns every event in the catalog, unpaginated.
// @Tags eventos
// @Produce json
// @Success 200 {array} domain.Event
// @Failure 500 {object} helpers.MessageResponse
// @Router /api/eventos [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "failed to list events")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// Create godoc
// @Summary Create an event
// @Description Creates an event from multipart fields (title, provider, date, price, category) with an optional image file.
// @Tags eventos
// @Accept mpfd
// @Produce json
// @Param title formData string false "Title"
// @Param provider formData string false "Provider"
// @Param date formData string false "Free-form date text"
// @Param price formData number false "Price"
// @Param category formData string false "Category"
// @Param image formData file false "Image"
// @Success 200 {object} controllers.CreateEventResponse
// @Failure 400 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.MessageResponse
// @Router /api/eventos [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	form, ok := parseEventForm(w, r)
	if !ok {
		return
	}
	url, err := c.Service.Create(r.Context(), &form.event, form.image, form.imageName)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "failed to save event")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, CreateEventResponse{Message: "event saved", URL: url})
}

// Update godoc
// @Summary Update an event
// @Description Overwrites all scalar fields of the event; an optional new image replaces the previous one.
// @Tags eventos
// @Accept mpfd
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.MessageResponse
// @Failure 404 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.MessageResponse
// @Router /api/eventos/{id} [put]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "missing event id")
		return
	}
	form, ok := parseEventForm(w, r)
	if !ok {
		return
	}
	form.event.ID = id
	err := c.Service.Update(r.Context(), &form.event, form.image, form.imageName)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "failed to update event")
		return
	}
	helpers.WriteJSONMessage(w, http.StatusOK, "event updated")
}

// Delete godoc
// @Summary Delete an event
// @Description Removes the event and, best-effort, its stored image.
// @Tags eventos
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} helpers.MessageResponse
// @Failure 404 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.MessageResponse
// @Router /api/eventos/{id} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "missing event id")
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "failed to delete event")
		return
	}
	helpers.WriteJSONMessage(w, http.StatusOK, "event deleted")
}
