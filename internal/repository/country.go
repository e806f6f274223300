package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ATClus/psa-api-sub000/internal/database"
	"github.com/ATClus/psa-api-sub000/internal/models"
)

// CountryRepository defines the data access contract for countries
type CountryRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Country, error)
	FindByIsoCode(ctx context.Context, isoCode string) (*models.Country, error)
	List(ctx context.Context) ([]*models.Country, error)
	Create(ctx context.Context, country *models.Country) error
	Update(ctx context.Context, country *models.Country) error
	Delete(ctx context.Context, id uint) (*models.Country, error)
}

// countryRepository implements CountryRepository
type countryRepository struct {
	db *gorm.DB
}

// NewCountryRepository creates a new country repository
func NewCountryRepository(db *gorm.DB) CountryRepository {
	return &countryRepository{db: db}
}

// FindByID finds a country by its id
func (r *countryRepository) FindByID(ctx context.Context, id uint) (*models.Country, error) {
	var country models.Country
	err := r.db.WithContext(ctx).First(&country, id).Error
	if err != nil {
		if database.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &country, nil
}

// FindByIsoCode finds a country by its ISO code
func (r *countryRepository) FindByIsoCode(ctx context.Context, isoCode string) (*models.Country, error) {
	var country models.Country
	err := r.db.WithContext(ctx).Where("iso_code = ?", isoCode).First(&country).Error
	if err != nil {
		if database.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &country, nil
}

// List returns all countries
func (r *countryRepository) List(ctx context.Context) ([]*models.Country, error) {
	var countries []*models.Country
	if err := r.db.WithContext(ctx).Find(&countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}

// Create persists a new country and assigns its id
func (r *countryRepository) Create(ctx context.Context, country *models.Country) error {
	err := r.db.WithContext(ctx).Create(country).Error
	if database.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	return err
}

// Update replaces all mutable fields of an existing country
func (r *countryRepository) Update(ctx context.Context, country *models.Country) error {
	return updateOutcome(r.db.WithContext(ctx).Save(country))
}

// Delete removes a country by id and returns the deleted snapshot.
// Lookup and delete are two statements; a racing delete loses with ErrNotFound.
func (r *countryRepository) Delete(ctx context.Context, id uint) (*models.Country, error) {
	var country models.Country
	if err := r.db.WithContext(ctx).First(&country, id).Error; err != nil {
		if database.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	res := r.db.WithContext(ctx).Delete(&models.Country{}, id)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &country, nil
}
