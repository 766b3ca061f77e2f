package handlers

import (
	"errors"
	"log"
	"net/http"
	"travelpins/internal/adapters/navigation"
	"travelpins/internal/api/dto"
	"travelpins/internal/domain"
	"travelpins/internal/ports"
	"travelpins/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// PinHandler exposes pin creation and lookup. Every store call goes
// through the PinService worker.
type PinHandler struct {
	Pins *services.PinService
}

// POST /pins
func (h *PinHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePinRequest
	if err := decodeJSON(w, r, &req); err != nil {
		if errors.Is(err, errTrailingData) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.Latitude == nil || req.Longitude == nil {
		writeError(w, r, http.StatusBadRequest, "latitude and longitude are required")
		return
	}

	draft := services.PinDraft{
		Title:       req.Title,
		Note:        req.Note,
		Coordinates: domain.Coordinates{Lat: *req.Latitude, Lon: *req.Longitude},
	}

	var res services.PinResult
	select {
	case res = <-h.Pins.Save(r.Context(), draft):
	case <-r.Context().Done():
		return
	}

	if res.Err != nil {
		switch {
		case errors.Is(res.Err, domain.ErrEmptyTitle):
			writeError(w, r, http.StatusBadRequest, "title is required")
		case errors.Is(res.Err, domain.ErrInvalidCoordinates):
			writeError(w, r, http.StatusBadRequest, "latitude must be within [-90, 90] and longitude within [-180, 180]")
		default:
			log.Printf("create pin failed: %v", res.Err)
			writeError(w, r, http.StatusInternalServerError, "save failed, try again")
		}
		return
	}

	w.Header().Set("Location", "/pins/"+res.Pin.ID.String())
	writeJSON(w, r, http.StatusCreated, toPinResponse(res.Pin))
}

// GET /pins
func (h *PinHandler) List(w http.ResponseWriter, r *http.Request) {
	var res services.ListResult
	select {
	case res = <-h.Pins.List(r.Context()):
	case <-r.Context().Done():
		return
	}

	if res.Err != nil {
		log.Printf("list pins failed: %v", res.Err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	out := dto.ListPinsResponse{Pins: make([]dto.PinResponse, 0, len(res.Pins))}
	for _, p := range res.Pins {
		out.Pins = append(out.Pins, toPinResponse(p))
	}

	writeJSON(w, r, http.StatusOK, out)
}

// GET /pins/{pinID}
func (h *PinHandler) Get(w http.ResponseWriter, r *http.Request) {
	pin, ok := h.findPin(w, r)
	if !ok {
		return
	}

	writeJSON(w, r, http.StatusOK, toPinResponse(pin))
}

// GET /pins/{pinID}/navigation
func (h *PinHandler) Navigation(w http.ResponseWriter, r *http.Request) {
	pin, ok := h.findPin(w, r)
	if !ok {
		return
	}

	u, err := navigation.DirectionsURL(pin.Coordinates, pin.Title)
	if err != nil {
		log.Printf("build navigation url failed: id=%s err=%v", pin.ID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NavigationResponse{URL: u})
}

// findPin resolves the {pinID} path parameter and writes the error
// response itself when it returns false.
func (h *PinHandler) findPin(w http.ResponseWriter, r *http.Request) (*domain.Pin, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "pinID"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid pin id")
		return nil, false
	}

	var res services.PinResult
	select {
	case res = <-h.Pins.Find(r.Context(), id):
	case <-r.Context().Done():
		return nil, false
	}

	if res.Err != nil {
		if errors.Is(res.Err, ports.ErrPinNotFound) {
			writeError(w, r, http.StatusNotFound, "pin not found")
			return nil, false
		}
		log.Printf("find pin failed: id=%s err=%v", id, res.Err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return nil, false
	}

	return res.Pin, true
}

func toPinResponse(p *domain.Pin) dto.PinResponse {
	return dto.PinResponse{
		ID:        p.ID,
		Title:     p.Title,
		Note:      p.Note,
		Latitude:  p.Coordinates.Lat,
		Longitude: p.Coordinates.Lon,
		CreatedAt: p.CreatedAt,
	}
}
