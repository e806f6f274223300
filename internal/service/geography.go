package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ATClus/psa-api-sub000/internal/models"
	"github.com/ATClus/psa-api-sub000/internal/repository"
)

func countryIsoCacheKey(isoCode string) string {
	return fmt.Sprintf("country:iso:%s", isoCode)
}

// CreateCountry persists a new country. Countries have no parent, so
// there is nothing to resolve.
func (s *service) CreateCountry(ctx context.Context, req *models.CreateCountryRequest) (*models.Country, error) {
	country := &models.Country{
		Name:      req.Name,
		ShortName: req.ShortName,
		IsoCode:   req.IsoCode,
	}
	if err := s.countries.Create(ctx, country); err != nil {
		return nil, err
	}
	s.log.WithField("country_id", country.ID).Info("Country created")
	return country, nil
}

// GetCountry retrieves a country by id
func (s *service) GetCountry(ctx context.Context, id uint) (*models.Country, error) {
	return s.countries.FindByID(ctx, id)
}

// GetCountryByIsoCode retrieves a country by ISO code, consulting the
// cache first
func (s *service) GetCountryByIsoCode(ctx context.Context, isoCode string) (*models.Country, error) {
	var cached models.Country
	if s.cacheGet(ctx, countryIsoCacheKey(isoCode), &cached) {
		return &cached, nil
	}
	country, err := s.countries.FindByIsoCode(ctx, isoCode)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, countryIsoCacheKey(isoCode), country)
	return country, nil
}

// ListCountries returns all countries
func (s *service) ListCountries(ctx context.Context) ([]*models.Country, error) {
	return s.countries.List(ctx)
}

// UpdateCountry replaces all mutable fields of a country
func (s *service) UpdateCountry(ctx context.Context, country *models.Country) (*models.Country, error) {
	existing, err := s.countries.FindByID(ctx, country.ID)
	if err != nil {
		return nil, err
	}
	if err := s.countries.Update(ctx, country); err != nil {
		return nil, err
	}
	// Drop the entry under the ISO code the row was cached with, which
	// may differ from the one being written.
	s.cacheDelete(ctx, countryIsoCacheKey(existing.IsoCode))
	if country.IsoCode != existing.IsoCode {
		s.cacheDelete(ctx, countryIsoCacheKey(country.IsoCode))
	}
	return country, nil
}

// DeleteCountry removes a country and returns the deleted snapshot
func (s *service) DeleteCountry(ctx context.Context, id uint) (*models.Country, error) {
	country, err := s.countries.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cacheDelete(ctx, countryIsoCacheKey(country.IsoCode))
	return country, nil
}

// CreateState resolves the referenced country and persists a new state
// wired to it. A missing country aborts the creation with nothing persisted.
func (s *service) CreateState(ctx context.Context, req *models.CreateStateRequest) (*models.State, error) {
	if !req.Region.Valid() {
		return nil, fmt.Errorf("%w: region %q", ErrInvalidValue, req.Region)
	}
	country, err := s.countries.FindByID(ctx, req.CountryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: country %d", ErrParentNotFound, req.CountryID)
		}
		return nil, err
	}

	state := &models.State{
		Name:      req.Name,
		ShortName: req.ShortName,
		Region:    req.Region,
		IbgeCode:  req.IbgeCode,
		Country:   country,
		CountryID: country.ID,
	}
	if err := s.states.Create(ctx, state); err != nil {
		return nil, err
	}
	s.log.WithField("state_id", state.ID).Info("State created")
	return state, nil
}

// GetState retrieves a state by id
func (s *service) GetState(ctx context.Context, id uint) (*models.State, error) {
	return s.states.FindByID(ctx, id)
}

// GetStateByIbgeCode retrieves a state by IBGE code
func (s *service) GetStateByIbgeCode(ctx context.Context, ibgeCode int64) (*models.State, error) {
	return s.states.FindByIbgeCode(ctx, ibgeCode)
}

// ListStates returns all states
func (s *service) ListStates(ctx context.Context) ([]*models.State, error) {
	return s.states.List(ctx)
}

// UpdateState replaces all mutable fields of a state. The country
// reference is re-resolved only when the update changes it.
func (s *service) UpdateState(ctx context.Context, state *models.State) (*models.State, error) {
	if !state.Region.Valid() {
		return nil, fmt.Errorf("%w: region %q", ErrInvalidValue, state.Region)
	}
	existing, err := s.states.FindByID(ctx, state.ID)
	if err != nil {
		return nil, err
	}
	if state.CountryID != existing.CountryID {
		country, err := s.countries.FindByID(ctx, state.CountryID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%w: country %d", ErrParentNotFound, state.CountryID)
			}
			return nil, err
		}
		state.Country = country
	}
	if err := s.states.Update(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// DeleteState removes a state and returns the deleted snapshot
func (s *service) DeleteState(ctx context.Context, id uint) (*models.State, error) {
	return s.states.Delete(ctx, id)
}

// CreateCity resolves the referenced state and persists a new city wired to it
func (s *service) CreateCity(ctx context.Context, req *models.CreateCityRequest) (*models.City, error) {
	state, err := s.states.FindByID(ctx, req.StateID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: state %d", ErrParentNotFound, req.StateID)
		}
		return nil, err
	}

	city := &models.City{
		Name:      req.Name,
		ShortName: req.ShortName,
		IbgeCode:  req.IbgeCode,
		State:     state,
		StateID:   state.ID,
	}
	if err := s.cities.Create(ctx, city); err != nil {
		return nil, err
	}
	s.log.WithField("city_id", city.ID).Info("City created")
	return city, nil
}

// GetCity retrieves a city by id
func (s *service) GetCity(ctx context.Context, id uint) (*models.City, error) {
	return s.cities.FindByID(ctx, id)
}

// GetCityByIbgeCode retrieves a city by IBGE code
func (s *service) GetCityByIbgeCode(ctx context.Context, ibgeCode int64) (*models.City, error) {
	return s.cities.FindByIbgeCode(ctx, ibgeCode)
}

// ListCities returns all cities
func (s *service) ListCities(ctx context.Context) ([]*models.City, error) {
	return s.cities.List(ctx)
}

// UpdateCity replaces all mutable fields of a city, re-resolving the
// state reference only when it changes
func (s *service) UpdateCity(ctx context.Context, city *models.City) (*models.City, error) {
	existing, err := s.cities.FindByID(ctx, city.ID)
	if err != nil {
		return nil, err
	}
	if city.StateID != existing.StateID {
		state, err := s.states.FindByID(ctx, city.StateID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%w: state %d", ErrParentNotFound, city.StateID)
			}
			return nil, err
		}
		city.State = state
	}
	if err := s.cities.Update(ctx, city); err != nil {
		return nil, err
	}
	return city, nil
}

// DeleteCity removes a city and returns the deleted snapshot
func (s *service) DeleteCity(ctx context.Context, id uint) (*models.City, error) {
	return s.cities.Delete(ctx, id)
}

// CreateAddress resolves the referenced city and persists a new address
// wired to it
func (s *service) CreateAddress(ctx context.Context, req *models.CreateAddressRequest) (*models.Address, error) {
	city, err := s.cities.FindByID(ctx, req.CityID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: city %d", ErrParentNotFound, req.CityID)
		}
		return nil, err
	}

	address := &models.Address{
		Street:       req.Street,
		Number:       req.Number,
		Complement:   req.Complement,
		Neighborhood: req.Neighborhood,
		City:         city,
		CityID:       city.ID,
	}
	if err := s.addresses.Create(ctx, address); err != nil {
		return nil, err
	}
	s.log.WithField("address_id", address.ID).Info("Address created")
	return address, nil
}

// GetAddress retrieves an address by id
func (s *service) GetAddress(ctx context.Context, id uint) (*models.Address, error) {
	return s.addresses.FindByID(ctx, id)
}

// ListAddresses returns all addresses
func (s *service) ListAddresses(ctx context.Context) ([]*models.Address, error) {
	return s.addresses.List(ctx)
}

// UpdateAddress replaces all mutable fields of an address, re-resolving
// the city reference only when it changes
func (s *service) UpdateAddress(ctx context.Context, address *models.Address) (*models.Address, error) {
	existing, err := s.addresses.FindByID(ctx, address.ID)
	if err != nil {
		return nil, err
	}
	if address.CityID != existing.CityID {
		city, err := s.cities.FindByID(ctx, address.CityID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%w: city %d", ErrParentNotFound, address.CityID)
			}
			return nil, err
		}
		address.City = city
	}
	if err := s.addresses.Update(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

// DeleteAddress removes an address and returns the deleted snapshot
func (s *service) DeleteAddress(ctx context.Context, id uint) (*models.Address, error) {
	return s.addresses.Delete(ctx, id)
}
