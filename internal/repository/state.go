package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ATClus/psa-api-sub000/internal/database"
	"github.com/ATClus/psa-api-sub000/internal/models"
)

// StateRepository defines the data access contract for states
type StateRepository interface {
	FindByID(ctx context.Context, id uint) (*models.State, error)
	FindByIbgeCode(ctx context.Context, ibgeCode int64) (*models.State, error)
	List(ctx context.Context) ([]*models.State, error)
	Create(ctx context.Context, state *models.State) error
	Update(ctx context.Context, state *models.State) error
	Delete(ctx context.Context, id uint) (*models.State, error)
}

// stateRepository implements StateRepository
type stateRepository struct {
	db *gorm.DB
}

// NewStateRepository creates a new state repository
func NewStateRepository(db *gorm.DB) StateRepository {
	return &stateRepository{db: db}
}

// FindByID finds a state by its id, with its country loaded
func (r *stateRepository) FindByID(ctx context.Context, id uint) (*models.State, error) {
	var state models.State
	err := r.db.WithContext(ctx).Preload("Country").First(&state, id).Error
	if err != nil {
		if database.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &state, nil
}

// FindByIbgeCode finds a state by its IBGE code
func (r *stateRepository) FindByIbgeCode(ctx context.Context, ibgeCode int64) (*models.State, error) {
	var state models.State
	err := r.db.WithContext(ctx).Preload("Country").Where("ibge_code = ?", ibgeCode).First(&state).Error
	if err != nil {
		if database.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &state, nil
}

// List returns all states with their countries loaded
func (r *stateRepository) List(ctx context.Context) ([]*models.State, error) {
	var states []*models.State
	if err := r.db.WithContext(ctx).Preload("Country").Find(&states).Error; err != nil {
		return nil, err
	}
	return states, nil
}

// Create persists a new state and assigns its id
func (r *stateRepository) Create(ctx context.Context, state *models.State) error {
	err := r.db.WithContext(ctx).Create(state).Error
	if database.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	return err
}

// Update replaces all mutable fields of an existing state
func (r *stateRepository) Update(ctx context.Context, state *models.State) error {
	return updateOutcome(r.db.WithContext(ctx).Save(state))
}

// Delete removes a state by id and returns the deleted snapshot
func (r *stateRepository) Delete(ctx context.Context, id uint) (*models.State, error) {
	var state models.State
	if err := r.db.WithContext(ctx).Preload("Country").First(&state, id).Error; err != nil {
		if database.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	res := r.db.WithContext(ctx).Delete(&models.State{}, id)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &state, nil
}
