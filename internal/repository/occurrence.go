package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ATClus/psa-api-sub000/internal/database"
	"github.com/ATClus/psa-api-sub000/internal/models"
)

// OccurrenceRepository defines the data access contract for occurrences.
// Occurrences have no secondary key but can be filtered by the active
// flag or by the owning user, one dimension at a time.
type OccurrenceRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Occurrence, error)
	List(ctx context.Context) ([]*models.Occurrence, error)
	ListByActive(ctx context.Context, active bool) ([]*models.Occurrence, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Occurrence, error)
	Create(ctx context.Context, occurrence *models.Occurrence) error
	Update(ctx context.Context, occurrence *models.Occurrence) error
	Delete(ctx context.Context, id uint) (*models.Occurrence, error)
}

// occurrenceRepository implements OccurrenceRepository
type occurrenceRepository struct {
	db *gorm.DB
}

// NewOccurrenceRepository creates a new occurrence repository
func NewOccurrenceRepository(db *gorm.DB) OccurrenceRepository {
	return &occurrenceRepository{db: db}
}

// FindByID finds an occurrence by its id, with its address and user loaded
func (r *occurrenceRepository) FindByID(ctx context.Context, id uint) (*models.Occurrence, error) {
	var occurrence models.Occurrence
	err := r.db.WithContext(ctx).Preload("Address.City.State.Country").Preload("User").First(&occurrence, id).Error
	if err != nil {
		if database.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &occurrence, nil
}

// List returns all occurrences. Ordering is not guaranteed.
func (r *occurrenceRepository) List(ctx context.Context) ([]*models.Occurrence, error) {
	var occurrences []*models.Occurrence
	if err := r.db.WithContext(ctx).Preload("Address.City.State.Country").Preload("User").Find(&occurrences).Error; err != nil {
		return nil, err
	}
	return occurrences, nil
}

// ListByActive returns the occurrences whose active flag matches
func (r *occurrenceRepository) ListByActive(ctx context.Context, active bool) ([]*models.Occurrence, error) {
	var occurrences []*models.Occurrence
	err := r.db.WithContext(ctx).Preload("Address.City.State.Country").Preload("User").
		Where("active = ?", active).Find(&occurrences).Error
	if err != nil {
		return nil, err
	}
	return occurrences, nil
}

// ListByUser returns the occurrences reported by the given user
func (r *occurrenceRepository) ListByUser(ctx context.Context, userID uint) ([]*models.Occurrence, error) {
	var occurrences []*models.Occurrence
	err := r.db.WithContext(ctx).Preload("Address.City.State.Country").Preload("User").
		Where("user_id = ?", userID).Find(&occurrences).Error
	if err != nil {
		return nil, err
	}
	return occurrences, nil
}

// Create persists a new occurrence and assigns its id
func (r *occurrenceRepository) Create(ctx context.Context, occurrence *models.Occurrence) error {
	err := r.db.WithContext(ctx).Create(occurrence).Error
	if database.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	return err
}

// Update replaces all mutable fields of an existing occurrence
func (r *occurrenceRepository) Update(ctx context.Context, occurrence *models.Occurrence) error {
	return updateOutcome(r.db.WithContext(ctx).Save(occurrence))
}

// Delete removes an occurrence by id and returns the deleted snapshot
func (r *occurrenceRepository) Delete(ctx context.Context, id uint) (*models.Occurrence, error) {
	var occurrence models.Occurrence
	if err := r.db.WithContext(ctx).Preload("Address.City.State.Country").Preload("User").First(&occurrence, id).Error; err != nil {
		if database.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	res := r.db.WithContext(ctx).Delete(&models.Occurrence{}, id)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &occurrence, nil
}
