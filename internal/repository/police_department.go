package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ATClus/psa-api-sub000/internal/database"
	"github.com/ATClus/psa-api-sub000/internal/models"
)

// PoliceDepartmentRepository defines the data access contract for police departments
type PoliceDepartmentRepository interface {
	FindByID(ctx context.Context, id uint) (*models.PoliceDepartment, error)
	FindByOverpassID(ctx context.Context, overpassID int64) (*models.PoliceDepartment, error)
	List(ctx context.Context) ([]*models.PoliceDepartment, error)
	Create(ctx context.Context, department *models.PoliceDepartment) error
	Update(ctx context.Context, department *models.PoliceDepartment) error
	Delete(ctx context.Context, id uint) (*models.PoliceDepartment, error)
}

// policeDepartmentRepository implements PoliceDepartmentRepository
type policeDepartmentRepository struct {
	db *gorm.DB
}

// NewPoliceDepartmentRepository creates a new police department repository
func NewPoliceDepartmentRepository(db *gorm.DB) PoliceDepartmentRepository {
	return &policeDepartmentRepository{db: db}
}

// FindByID finds a police department by its id, with its address loaded
func (r *policeDepartmentRepository) FindByID(ctx context.Context, id uint) (*models.PoliceDepartment, error) {
	var department models.PoliceDepartment
	err := r.db.WithContext(ctx).Preload("Address.City.State.Country").First(&department, id).Error
	if err != nil {
		if database.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &department, nil
}

// FindByOverpassID finds a police department by its Overpass id
func (r *policeDepartmentRepository) FindByOverpassID(ctx context.Context, overpassID int64) (*models.PoliceDepartment, error) {
	var department models.PoliceDepartment
	err := r.db.WithContext(ctx).Preload("Address.City.State.Country").Where("overpass_id = ?", overpassID).First(&department).Error
	if err != nil {
		if database.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &department, nil
}

// List returns all police departments with their addresses loaded
func (r *policeDepartmentRepository) List(ctx context.Context) ([]*models.PoliceDepartment, error) {
	var departments []*models.PoliceDepartment
	if err := r.db.WithContext(ctx).Preload("Address.City.State.Country").Find(&departments).Error; err != nil {
		return nil, err
	}
	return departments, nil
}

// Create persists a new police department and assigns its id
func (r *policeDepartmentRepository) Create(ctx context.Context, department *models.PoliceDepartment) error {
	err := r.db.WithContext(ctx).Create(department).Error
	if database.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	return err
}

// Update replaces all mutable fields of an existing police department
func (r *policeDepartmentRepository) Update(ctx context.Context, department *models.PoliceDepartment) error {
	return updateOutcome(r.db.WithContext(ctx).Save(department))
}

// Delete removes a police department by id and returns the deleted snapshot
func (r *policeDepartmentRepository) Delete(ctx context.Context, id uint) (*models.PoliceDepartment, error) {
	var department models.PoliceDepartment
	if err := r.db.WithContext(ctx).Preload("Address.City.State.Country").First(&department, id).Error; err != nil {
		if database.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	res := r.db.WithContext(ctx).Delete(&models.PoliceDepartment{}, id)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &department, nil
}
