package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ATClus/psa-api-sub000/internal/database"
	"github.com/ATClus/psa-api-sub000/internal/models"
)

// AddressRepository defines the data access contract for addresses.
// Addresses have no secondary lookup key; id is the only point lookup.
type AddressRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Address, error)
	List(ctx context.Context) ([]*models.Address, error)
	Create(ctx context.Context, address *models.Address) error
	Update(ctx context.Context, address *models.Address) error
	Delete(ctx context.Context, id uint) (*models.Address, error)
}

// addressRepository implements AddressRepository
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository creates a new address repository
func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepository{db: db}
}

// FindByID finds an address by its id, with its city chain loaded
func (r *addressRepository) FindByID(ctx context.Context, id uint) (*models.Address, error) {
	var address models.Address
	err := r.db.WithContext(ctx).Preload("City.State.Country").First(&address, id).Error
	if err != nil {
		if database.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &address, nil
}

// List returns all addresses with their city chains loaded
func (r *addressRepository) List(ctx context.Context) ([]*models.Address, error) {
	var addresses []*models.Address
	if err := r.db.WithContext(ctx).Preload("City.State.Country").Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

// Create persists a new address and assigns its id
func (r *addressRepository) Create(ctx context.Context, address *models.Address) error {
	err := r.db.WithContext(ctx).Create(address).Error
	if database.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	return err
}

// Update replaces all mutable fields of an existing address
func (r *addressRepository) Update(ctx context.Context, address *models.Address) error {
	return updateOutcome(r.db.WithContext(ctx).Save(address))
}

// Delete removes an address by id and returns the deleted snapshot
func (r *addressRepository) Delete(ctx context.Context, id uint) (*models.Address, error) {
	var address models.Address
	if err := r.db.WithContext(ctx).Preload("City.State.Country").First(&address, id).Error; err != nil {
		if database.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	res := r.db.WithContext(ctx).Delete(&models.Address{}, id)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &address, nil
}
