package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ATClus/psa-api-sub000/internal/database"
	"github.com/ATClus/psa-api-sub000/internal/models"
)

// CityRepository defines the data access contract for cities
type CityRepository interface {
	FindByID(ctx context.Context, id uint) (*models.City, error)
	FindByIbgeCode(ctx context.Context, ibgeCode int64) (*models.City, error)
	List(ctx context.Context) ([]*models.City, error)
	Create(ctx context.Context, city *models.City) error
	Update(ctx context.Context, city *models.City) error
	Delete(ctx context.Context, id uint) (*models.City, error)
}

// cityRepository implements CityRepository
type cityRepository struct {
	db *gorm.DB
}

// NewCityRepository creates a new city repository
func NewCityRepository(db *gorm.DB) CityRepository {
	return &cityRepository{db: db}
}

// FindByID finds a city by its id, with its state and country loaded
func (r *cityRepository) FindByID(ctx context.Context, id uint) (*models.City, error) {
	var city models.City
	err := r.db.WithContext(ctx).Preload("State.Country").First(&city, id).Error
	if err != nil {
		if database.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &city, nil
}

// FindByIbgeCode finds a city by its IBGE code
func (r *cityRepository) FindByIbgeCode(ctx context.Context, ibgeCode int64) (*models.City, error) {
	var city models.City
	err := r.db.WithContext(ctx).Preload("State.Country").Where("ibge_code = ?", ibgeCode).First(&city).Error
	if err != nil {
		if database.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &city, nil
}

// List returns all cities with their state chains loaded
func (r *cityRepository) List(ctx context.Context) ([]*models.City, error) {
	var cities []*models.City
	if err := r.db.WithContext(ctx).Preload("State.Country").Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

// Create persists a new city and assigns its id
func (r *cityRepository) Create(ctx context.Context, city *models.City) error {
	err := r.db.WithContext(ctx).Create(city).Error
	if database.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	return err
}

// Update replaces all mutable fields of an existing city
func (r *cityRepository) Update(ctx context.Context, city *models.City) error {
	return updateOutcome(r.db.WithContext(ctx).Save(city))
}

// Delete removes a city by id and returns the deleted snapshot
func (r *cityRepository) Delete(ctx context.Context, id uint) (*models.City, error) {
	var city models.City
	if err := r.db.WithContext(ctx).Preload("State.Country").First(&city, id).Error; err != nil {
		if database.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	res := r.db.WithContext(ctx).Delete(&models.City{}, id)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &city, nil
}
