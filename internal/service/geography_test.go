package service

import (
	"context"
	"testing"

	"github.com/ATClus/psa-api-sub000/internal/models"
	"github.com/ATClus/psa-api-sub000/internal/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCountry(t *testing.T) {
	svc, repos := newTestService()

	repos.countries.On("Create", mock.Anything, mock.AnythingOfType("*models.Country")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Country).ID = 1
		}).Return(nil)

	country, err := svc.CreateCountry(context.Background(), &models.CreateCountryRequest{
		Name:      "Brasil",
		ShortName: "BR",
		IsoCode:   "BRA",
	})

	require.NoError(t, err)
	require.Equal(t, uint(1), country.ID)
	require.Equal(t, "BRA", country.IsoCode)
	repos.countries.AssertExpectations(t)
}

func TestCreateCountryDuplicateIsoCode(t *testing.T) {
	svc, repos := newTestService()

	repos.countries.On("Create", mock.Anything, mock.AnythingOfType("*models.Country")).
		Return(repository.ErrDuplicateKey)

	_, err := svc.CreateCountry(context.Background(), &models.CreateCountryRequest{
		Name:      "Brasil",
		ShortName: "BR",
		IsoCode:   "BRA",
	})

	require.ErrorIs(t, err, repository.ErrDuplicateKey)
}

func TestCreateStateResolvesCountry(t *testing.T) {
	svc, repos := newTestService()

	country := &models.Country{Model: models.Model{ID: 7}, Name: "Brasil", IsoCode: "BRA"}
	repos.countries.On("FindByID", mock.Anything, uint(7)).Return(country, nil)
	repos.states.On("Create", mock.Anything, mock.AnythingOfType("*models.State")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.State).ID = 3
		}).Return(nil)

	state, err := svc.CreateState(context.Background(), &models.CreateStateRequest{
		Name:      "São Paulo",
		ShortName: "SP",
		Region:    models.RegionSudeste,
		IbgeCode:  35,
		CountryID: 7,
	})

	require.NoError(t, err)
	require.Equal(t, uint(3), state.ID)
	require.NotNil(t, state.Country)
	require.Equal(t, uint(7), state.Country.ID)
	require.Equal(t, uint(7), state.CountryID)
	repos.countries.AssertExpectations(t)
	repos.states.AssertExpectations(t)
}

func TestCreateStateCountryNotFound(t *testing.T) {
	svc, repos := newTestService()

	repos.countries.On("FindByID", mock.Anything, uint(99)).Return(nil, repository.ErrNotFound)

	_, err := svc.CreateState(context.Background(), &models.CreateStateRequest{
		Name:      "São Paulo",
		ShortName: "SP",
		Region:    models.RegionSudeste,
		IbgeCode:  35,
		CountryID: 99,
	})

	require.ErrorIs(t, err, ErrParentNotFound)
	repos.states.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateCityResolvesState(t *testing.T) {
	svc, repos := newTestService()

	state := &models.State{Model: models.Model{ID: 3}, Name: "São Paulo", Region: models.RegionSudeste}
	repos.states.On("FindByID", mock.Anything, uint(3)).Return(state, nil)
	repos.cities.On("Create", mock.Anything, mock.AnythingOfType("*models.City")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.City).ID = 12
		}).Return(nil)

	city, err := svc.CreateCity(context.Background(), &models.CreateCityRequest{
		Name:      "Campinas",
		ShortName: "Campinas",
		IbgeCode:  3509502,
		StateID:   3,
	})

	require.NoError(t, err)
	require.Equal(t, uint(12), city.ID)
	require.Equal(t, uint(3), city.StateID)
	require.NotNil(t, city.State)
}

func TestCreateCityStateNotFound(t *testing.T) {
	svc, repos := newTestService()

	repos.states.On("FindByID", mock.Anything, uint(40)).Return(nil, repository.ErrNotFound)

	_, err := svc.CreateCity(context.Background(), &models.CreateCityRequest{
		Name:     "Campinas",
		IbgeCode: 3509502,
		StateID:  40,
	})

	require.ErrorIs(t, err, ErrParentNotFound)
	repos.cities.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateAddressResolvesCity(t *testing.T) {
	svc, repos := newTestService()

	city := &models.City{Model: models.Model{ID: 12}, Name: "Campinas"}
	repos.cities.On("FindByID", mock.Anything, uint(12)).Return(city, nil)
	repos.addresses.On("Create", mock.Anything, mock.AnythingOfType("*models.Address")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Address).ID = 30
		}).Return(nil)

	address, err := svc.CreateAddress(context.Background(), &models.CreateAddressRequest{
		Street:       "Avenida Norte-Sul",
		Number:       "1000",
		Neighborhood: "Centro",
		CityID:       12,
	})

	require.NoError(t, err)
	require.Equal(t, uint(30), address.ID)
	require.Equal(t, uint(12), address.CityID)
}

func TestUpdateStateKeepsUnchangedCountry(t *testing.T) {
	svc, repos := newTestService()

	existing := &models.State{Model: models.Model{ID: 3}, Name: "São Paulo", CountryID: 7}
	repos.states.On("FindByID", mock.Anything, uint(3)).Return(existing, nil)
	repos.states.On("Update", mock.Anything, mock.AnythingOfType("*models.State")).Return(nil)

	updated, err := svc.UpdateState(context.Background(), &models.State{
		Model:     models.Model{ID: 3},
		Name:      "Sao Paulo",
		ShortName: "SP",
		Region:    models.RegionSudeste,
		CountryID: 7,
	})

	require.NoError(t, err)
	require.Equal(t, "Sao Paulo", updated.Name)
	// Unchanged reference, so the country is never re-resolved
	repos.countries.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUpdateStateReresolvesChangedCountry(t *testing.T) {
	svc, repos := newTestService()

	existing := &models.State{Model: models.Model{ID: 3}, CountryID: 7}
	repos.states.On("FindByID", mock.Anything, uint(3)).Return(existing, nil)
	repos.countries.On("FindByID", mock.Anything, uint(8)).Return(nil, repository.ErrNotFound)

	_, err := svc.UpdateState(context.Background(), &models.State{
		Model:     models.Model{ID: 3},
		Region:    models.RegionSudeste,
		CountryID: 8,
	})

	require.ErrorIs(t, err, ErrParentNotFound)
	repos.states.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateStateRejectsUnknownRegion(t *testing.T) {
	svc, repos := newTestService()

	_, err := svc.UpdateState(context.Background(), &models.State{
		Model:     models.Model{ID: 3},
		Name:      "São Paulo",
		Region:    models.Region("SOUTH"),
		CountryID: 7,
	})

	require.ErrorIs(t, err, ErrInvalidValue)
	repos.states.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateCountryInvalidatesOldIsoCacheKey(t *testing.T) {
	svc, repos, cache := newTestServiceWithCache()

	existing := &models.Country{Model: models.Model{ID: 7}, Name: "Brasil", IsoCode: "BRA"}
	repos.countries.On("FindByID", mock.Anything, uint(7)).Return(existing, nil)
	repos.countries.On("Update", mock.Anything, mock.AnythingOfType("*models.Country")).Return(nil)
	cache.On("Delete", mock.Anything, "country:iso:BRA").Return(nil)
	cache.On("Delete", mock.Anything, "country:iso:BRZ").Return(nil)

	_, err := svc.UpdateCountry(context.Background(), &models.Country{
		Model:   models.Model{ID: 7},
		Name:    "Brazil",
		IsoCode: "BRZ",
	})

	require.NoError(t, err)
	// Both the ISO code the row was cached under and the new one are dropped
	cache.AssertCalled(t, "Delete", mock.Anything, "country:iso:BRA")
	cache.AssertCalled(t, "Delete", mock.Anything, "country:iso:BRZ")
}

func TestUpdateCountryUnchangedIsoInvalidatesOnce(t *testing.T) {
	svc, repos, cache := newTestServiceWithCache()

	existing := &models.Country{Model: models.Model{ID: 7}, Name: "Brasil", IsoCode: "BRA"}
	repos.countries.On("FindByID", mock.Anything, uint(7)).Return(existing, nil)
	repos.countries.On("Update", mock.Anything, mock.AnythingOfType("*models.Country")).Return(nil)
	cache.On("Delete", mock.Anything, "country:iso:BRA").Return(nil)

	_, err := svc.UpdateCountry(context.Background(), &models.Country{
		Model:   models.Model{ID: 7},
		Name:    "Brazil",
		IsoCode: "BRA",
	})

	require.NoError(t, err)
	cache.AssertNumberOfCalls(t, "Delete", 1)
}

func TestDeleteCountryReturnsSnapshot(t *testing.T) {
	svc, repos := newTestService()

	snapshot := &models.Country{Model: models.Model{ID: 7}, Name: "Brasil", IsoCode: "BRA"}
	repos.countries.On("Delete", mock.Anything, uint(7)).Return(snapshot, nil)

	country, err := svc.DeleteCountry(context.Background(), 7)

	require.NoError(t, err)
	require.Equal(t, snapshot, country)
}

func TestDeleteStateNotFound(t *testing.T) {
	svc, repos := newTestService()

	repos.states.On("Delete", mock.Anything, uint(404)).Return(nil, repository.ErrNotFound)

	_, err := svc.DeleteState(context.Background(), 404)

	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGetCountryNotFoundIsNotAServerError(t *testing.T) {
	svc, repos := newTestService()

	repos.countries.On("FindByID", mock.Anything, uint(404)).Return(nil, repository.ErrNotFound)

	country, err := svc.GetCountry(context.Background(), 404)

	require.Nil(t, country)
	require.ErrorIs(t, err, repository.ErrNotFound)
}
