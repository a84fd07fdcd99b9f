package services

import (
	"context"
	"fmt"
	"log/slog"

	"eventoslisting/internal/domain"
)

type eventService struct {
	eventRepo domain.EventRepository
	blobStore domain.BlobStore
	logger    *slog.Logger
}

// NewEventService creates an EventService backed by the given repository and blob store.
func NewEventService(eventRepo domain.EventRepository, blobStore domain.BlobStore, logger *slog.Logger) domain.EventService {
	return &eventService{
		eventRepo: eventRepo,
		blobStore: blobStore,
		logger:    logger,
	}
}

func (s *eventService) List(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *eventService) Create(ctx context.Context, event *domain.Event, image []byte, imageName string) (string, error) {
	if len(image) > 0 {
		url, err := s.blobStore.Store(ctx, imageName, image)
		if err != nil {
			return "", fmt.Errorf("failed to store image: %w", err)
		}
		event.ImagePath = url
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return "", fmt.Errorf("failed to create event: %w", err)
	}
	return event.ImagePath, nil
}

// Update replaces every scalar field with the supplied values. When new image
// bytes are given the old blob is removed best-effort after the new one is
// stored; without new bytes the previous image path is preserved.
func (s *eventService) Update(ctx context.Context, event *domain.Event, image []byte, imageName string) error {
	existing, err := s.eventRepo.GetByID(ctx, event.ID)
	if err != nil {
		return err
	}
	event.ImagePath = existing.ImagePath
	if len(image) > 0 {
		url, err := s.blobStore.Store(ctx, imageName, image)
		if err != nil {
			return fmt.Errorf("failed to store image: %w", err)
		}
		if existing.ImagePath != "" {
			if err := s.blobStore.Remove(ctx, existing.ImagePath); err != nil {
				s.logger.Warn("failed to remove replaced image", "path", existing.ImagePath, "err", err)
			}
		}
		event.ImagePath = url
	}
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	return nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event.ImagePath != "" {
		if err := s.blobStore.Remove(ctx, event.ImagePath); err != nil {
			s.logger.Warn("failed to remove event image", "path", event.ImagePath, "err", err)
		}
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
