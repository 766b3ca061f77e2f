package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePinRequest struct {
	Title     string   `json:"title"`
	Note      string   `json:"note"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type PinResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Note      string    `json:"note"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}

type ListPinsResponse struct {
	Pins []PinResponse `json:"pins"`
}

type NavigationResponse struct {
	URL string `json:"url"`
}
