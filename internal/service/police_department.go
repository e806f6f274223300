package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ATClus/psa-api-sub000/internal/models"
	"github.com/ATClus/psa-api-sub000/internal/repository"
)

// CreatePoliceDepartment resolves the referenced address and persists a
// new police department wired to it
func (s *service) CreatePoliceDepartment(ctx context.Context, req *models.CreatePoliceDepartmentRequest) (*models.PoliceDepartment, error) {
	address, err := s.addresses.FindByID(ctx, req.AddressID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: address %d", ErrParentNotFound, req.AddressID)
		}
		return nil, err
	}

	department := &models.PoliceDepartment{
		OverpassID: req.OverpassID,
		Name:       req.Name,
		ShortName:  req.ShortName,
		Operator:   req.Operator,
		Ownership:  req.Ownership,
		Phone:      req.Phone,
		Email:      req.Email,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Address:    address,
		AddressID:  address.ID,
	}
	if err := s.departments.Create(ctx, department); err != nil {
		return nil, err
	}
	s.log.WithFields(map[string]interface{}{
		"police_department_id": department.ID,
		"overpass_id":          department.OverpassID,
	}).Info("Police department created")
	return department, nil
}

// GetPoliceDepartment retrieves a police department by id
func (s *service) GetPoliceDepartment(ctx context.Context, id uint) (*models.PoliceDepartment, error) {
	return s.departments.FindByID(ctx, id)
}

// GetPoliceDepartmentByOverpassID retrieves a police department by its
// mapping-data identifier
func (s *service) GetPoliceDepartmentByOverpassID(ctx context.Context, overpassID int64) (*models.PoliceDepartment, error) {
	return s.departments.FindByOverpassID(ctx, overpassID)
}

// ListPoliceDepartments returns all police departments
func (s *service) ListPoliceDepartments(ctx context.Context) ([]*models.PoliceDepartment, error) {
	return s.departments.List(ctx)
}

// UpdatePoliceDepartment replaces all mutable fields of a police
// department, re-resolving the address reference only when it changes
func (s *service) UpdatePoliceDepartment(ctx context.Context, department *models.PoliceDepartment) (*models.PoliceDepartment, error) {
	existing, err := s.departments.FindByID(ctx, department.ID)
	if err != nil {
		return nil, err
	}
	if department.AddressID != existing.AddressID {
		address, err := s.addresses.FindByID(ctx, department.AddressID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%w: address %d", ErrParentNotFound, department.AddressID)
			}
			return nil, err
		}
		department.Address = address
	}
	if err := s.departments.Update(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

// DeletePoliceDepartment removes a police department and returns the
// deleted snapshot
func (s *service) DeletePoliceDepartment(ctx context.Context, id uint) (*models.PoliceDepartment, error) {
	return s.departments.Delete(ctx, id)
}
