package service

import (
	"context"
	"time"

	"github.com/ATClus/psa-api-sub000/internal/models"

	"github.com/stretchr/testify/mock"
)

// Mock repositories for testing

type MockCountryRepository struct {
	mock.Mock
}

func (m *MockCountryRepository) FindByID(ctx context.Context, id uint) (*models.Country, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Country), args.Error(1)
}

func (m *MockCountryRepository) FindByIsoCode(ctx context.Context, isoCode string) (*models.Country, error) {
	args := m.Called(ctx, isoCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Country), args.Error(1)
}

func (m *MockCountryRepository) List(ctx context.Context) ([]*models.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Country), args.Error(1)
}

func (m *MockCountryRepository) Create(ctx context.Context, country *models.Country) error {
	args := m.Called(ctx, country)
	return args.Error(0)
}

func (m *MockCountryRepository) Update(ctx context.Context, country *models.Country) error {
	args := m.Called(ctx, country)
	return args.Error(0)
}

func (m *MockCountryRepository) Delete(ctx context.Context, id uint) (*models.Country, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Country), args.Error(1)
}

type MockStateRepository struct {
	mock.Mock
}

func (m *MockStateRepository) FindByID(ctx context.Context, id uint) (*models.State, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.State), args.Error(1)
}

func (m *MockStateRepository) FindByIbgeCode(ctx context.Context, ibgeCode int64) (*models.State, error) {
	args := m.Called(ctx, ibgeCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.State), args.Error(1)
}

func (m *MockStateRepository) List(ctx context.Context) ([]*models.State, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.State), args.Error(1)
}

func (m *MockStateRepository) Create(ctx context.Context, state *models.State) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

func (m *MockStateRepository) Update(ctx context.Context, state *models.State) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

func (m *MockStateRepository) Delete(ctx context.Context, id uint) (*models.State, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.State), args.Error(1)
}

type MockCityRepository struct {
	mock.Mock
}

func (m *MockCityRepository) FindByID(ctx context.Context, id uint) (*models.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.City), args.Error(1)
}

func (m *MockCityRepository) FindByIbgeCode(ctx context.Context, ibgeCode int64) (*models.City, error) {
	args := m.Called(ctx, ibgeCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.City), args.Error(1)
}

func (m *MockCityRepository) List(ctx context.Context) ([]*models.City, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.City), args.Error(1)
}

func (m *MockCityRepository) Create(ctx context.Context, city *models.City) error {
	args := m.Called(ctx, city)
	return args.Error(0)
}

func (m *MockCityRepository) Update(ctx context.Context, city *models.City) error {
	args := m.Called(ctx, city)
	return args.Error(0)
}

func (m *MockCityRepository) Delete(ctx context.Context, id uint) (*models.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.City), args.Error(1)
}

type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) FindByID(ctx context.Context, id uint) (*models.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Address), args.Error(1)
}

func (m *MockAddressRepository) List(ctx context.Context) ([]*models.Address, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Address), args.Error(1)
}

func (m *MockAddressRepository) Create(ctx context.Context, address *models.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *MockAddressRepository) Update(ctx context.Context, address *models.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *MockAddressRepository) Delete(ctx context.Context, id uint) (*models.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Address), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByCognitoID(ctx context.Context, cognitoID int64) (*models.User, error) {
	args := m.Called(ctx, cognitoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockPoliceDepartmentRepository struct {
	mock.Mock
}

func (m *MockPoliceDepartmentRepository) FindByID(ctx context.Context, id uint) (*models.PoliceDepartment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PoliceDepartment), args.Error(1)
}

func (m *MockPoliceDepartmentRepository) FindByOverpassID(ctx context.Context, overpassID int64) (*models.PoliceDepartment, error) {
	args := m.Called(ctx, overpassID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PoliceDepartment), args.Error(1)
}

func (m *MockPoliceDepartmentRepository) List(ctx context.Context) ([]*models.PoliceDepartment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.PoliceDepartment), args.Error(1)
}

func (m *MockPoliceDepartmentRepository) Create(ctx context.Context, department *models.PoliceDepartment) error {
	args := m.Called(ctx, department)
	return args.Error(0)
}

func (m *MockPoliceDepartmentRepository) Update(ctx context.Context, department *models.PoliceDepartment) error {
	args := m.Called(ctx, department)
	return args.Error(0)
}

func (m *MockPoliceDepartmentRepository) Delete(ctx context.Context, id uint) (*models.PoliceDepartment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PoliceDepartment), args.Error(1)
}

type MockOccurrenceRepository struct {
	mock.Mock
}

func (m *MockOccurrenceRepository) FindByID(ctx context.Context, id uint) (*models.Occurrence, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Occurrence), args.Error(1)
}

func (m *MockOccurrenceRepository) List(ctx context.Context) ([]*models.Occurrence, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Occurrence), args.Error(1)
}

func (m *MockOccurrenceRepository) ListByActive(ctx context.Context, active bool) ([]*models.Occurrence, error) {
	args := m.Called(ctx, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Occurrence), args.Error(1)
}

func (m *MockOccurrenceRepository) ListByUser(ctx context.Context, userID uint) ([]*models.Occurrence, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Occurrence), args.Error(1)
}

func (m *MockOccurrenceRepository) Create(ctx context.Context, occurrence *models.Occurrence) error {
	args := m.Called(ctx, occurrence)
	return args.Error(0)
}

func (m *MockOccurrenceRepository) Update(ctx context.Context, occurrence *models.Occurrence) error {
	args := m.Called(ctx, occurrence)
	return args.Error(0)
}

func (m *MockOccurrenceRepository) Delete(ctx context.Context, id uint) (*models.Occurrence, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Occurrence), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Close() error {
	args := m.Called()
	return args.Error(0)
}

// testRepos bundles fresh mocks for one test case
type testRepos struct {
	countries   *MockCountryRepository
	states      *MockStateRepository
	cities      *MockCityRepository
	addresses   *MockAddressRepository
	users       *MockUserRepository
	departments *MockPoliceDepartmentRepository
	occurrences *MockOccurrenceRepository
}

func newTestService() (Service, *testRepos) {
	svc, repos, _ := buildTestService(nil)
	return svc, repos
}

func newTestServiceWithCache() (Service, *testRepos, *MockCache) {
	return buildTestService(new(MockCache))
}

func buildTestService(cache *MockCache) (Service, *testRepos, *MockCache) {
	repos := &testRepos{
		countries:   new(MockCountryRepository),
		states:      new(MockStateRepository),
		cities:      new(MockCityRepository),
		addresses:   new(MockAddressRepository),
		users:       new(MockUserRepository),
		departments: new(MockPoliceDepartmentRepository),
		occurrences: new(MockOccurrenceRepository),
	}
	cfg := ServiceConfig{
		Countries:         repos.countries,
		States:            repos.states,
		Cities:            repos.cities,
		Addresses:         repos.addresses,
		Users:             repos.users,
		PoliceDepartments: repos.departments,
		Occurrences:       repos.occurrences,
	}
	if cache != nil {
		cfg.Cache = cache
	}
	svc, err := NewService(cfg)
	if err != nil {
		panic(err)
	}
	return svc, repos, cache
}
