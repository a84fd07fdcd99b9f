package domain

import (
	"context"
	"errors"
)

// ErrEventNotFound is returned when an event id does not exist.
var ErrEventNotFound = errors.New("event not found")

// Event represents a ticketed listing in the catalog
// swagger:model Event
type Event struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Provider  string  `json:"provider"`
	Date      string  `json:"date"`
	ImagePath string  `json:"imagePath"`
	Price     float64 `json:"price"`
	Category  string  `json:"category"`
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	List(ctx context.Context) ([]*Event, error)
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
}

// EventService defines the business logic for the event catalog.
// Image bytes are optional on create and update; when present they are
// stored through the blob store before the record is written, and the
// previous image is removed best-effort on replace and delete.
type EventService interface {
	List(ctx context.Context) ([]*Event, error)
	Create(ctx context.Context, event *Event, image []byte, imageName string) (url string, err error)
	Update(ctx context.Context, event *Event, image []byte, imageName string) error
	Delete(ctx context.Context, id string) error
}
