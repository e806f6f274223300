package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ATClus/psa-api-sub000/internal/models"
	"github.com/ATClus/psa-api-sub000/internal/repository"

	"github.com/sirupsen/logrus"
)

func occurrenceCacheKey(id uint) string {
	return fmt.Sprintf("occurrence:%d", id)
}

// CreateOccurrence resolves the referenced address and user, then
// persists a new occurrence wired to both. Either reference failing to
// resolve aborts the creation with nothing persisted.
func (s *service) CreateOccurrence(ctx context.Context, req *models.CreateOccurrenceRequest) (*models.Occurrence, error) {
	if !req.Intensity.Valid() {
		return nil, fmt.Errorf("%w: intensity %q", ErrInvalidValue, req.Intensity)
	}
	address, err := s.addresses.FindByID(ctx, req.AddressID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: address %d", ErrParentNotFound, req.AddressID)
		}
		return nil, err
	}

	user, err := s.users.FindByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrParentNotFound, req.UserID)
		}
		return nil, err
	}

	occurrence := &models.Occurrence{
		Name:        req.Name,
		Description: req.Description,
		DateStart:   req.DateStart,
		DateEnd:     req.DateEnd,
		Active:      req.Active,
		Intensity:   req.Intensity,
		Address:     address,
		AddressID:   address.ID,
		User:        user,
		UserID:      user.ID,
	}
	if err := s.occurrences.Create(ctx, occurrence); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"occurrence_id": occurrence.ID,
		"address_id":    occurrence.AddressID,
		"user_id":       occurrence.UserID,
		"intensity":     occurrence.Intensity,
	}).Info("Occurrence reported")
	return occurrence, nil
}

// GetOccurrence retrieves an occurrence by id, consulting the cache first
func (s *service) GetOccurrence(ctx context.Context, id uint) (*models.Occurrence, error) {
	var cached models.Occurrence
	if s.cacheGet(ctx, occurrenceCacheKey(id), &cached) {
		return &cached, nil
	}
	occurrence, err := s.occurrences.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, occurrenceCacheKey(id), occurrence)
	return occurrence, nil
}

// ListOccurrences returns all occurrences
func (s *service) ListOccurrences(ctx context.Context) ([]*models.Occurrence, error) {
	return s.occurrences.List(ctx)
}

// ListOccurrencesByActive returns occurrences filtered by the active flag
func (s *service) ListOccurrencesByActive(ctx context.Context, active bool) ([]*models.Occurrence, error) {
	return s.occurrences.ListByActive(ctx, active)
}

// ListOccurrencesByUser returns occurrences filtered by the reporting user
func (s *service) ListOccurrencesByUser(ctx context.Context, userID uint) ([]*models.Occurrence, error) {
	return s.occurrences.ListByUser(ctx, userID)
}

// UpdateOccurrence replaces all mutable fields of an occurrence and
// stamps the update time. The address and user references are
// re-resolved only when the update changes them.
func (s *service) UpdateOccurrence(ctx context.Context, occurrence *models.Occurrence) (*models.Occurrence, error) {
	if !occurrence.Intensity.Valid() {
		return nil, fmt.Errorf("%w: intensity %q", ErrInvalidValue, occurrence.Intensity)
	}
	existing, err := s.occurrences.FindByID(ctx, occurrence.ID)
	if err != nil {
		return nil, err
	}
	if occurrence.AddressID != existing.AddressID {
		address, err := s.addresses.FindByID(ctx, occurrence.AddressID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%w: address %d", ErrParentNotFound, occurrence.AddressID)
			}
			return nil, err
		}
		occurrence.Address = address
	}
	if occurrence.UserID != existing.UserID {
		user, err := s.users.FindByID(ctx, occurrence.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%w: user %d", ErrParentNotFound, occurrence.UserID)
			}
			return nil, err
		}
		occurrence.User = user
	}

	now := time.Now().UTC()
	occurrence.DateUpdate = &now

	if err := s.occurrences.Update(ctx, occurrence); err != nil {
		return nil, err
	}
	s.cacheDelete(ctx, occurrenceCacheKey(occurrence.ID))
	return occurrence, nil
}

// DeleteOccurrence removes an occurrence and returns the deleted snapshot
func (s *service) DeleteOccurrence(ctx context.Context, id uint) (*models.Occurrence, error) {
	occurrence, err := s.occurrences.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cacheDelete(ctx, occurrenceCacheKey(id))
	return occurrence, nil
}
