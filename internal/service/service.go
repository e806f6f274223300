package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ATClus/psa-api-sub000/internal/cache"
	"github.com/ATClus/psa-api-sub000/internal/models"
	"github.com/ATClus/psa-api-sub000/internal/repository"

	"github.com/sirupsen/logrus"
)

// Service defines the business logic operations. Creation always goes
// through the request-payload path so parent references are resolved
// before anything is persisted; reads, updates and deletes flow through
// to the entity repositories.
type Service interface {
	// Country operations
	CreateCountry(ctx context.Context, req *models.CreateCountryRequest) (*models.Country, error)
	GetCountry(ctx context.Context, id uint) (*models.Country, error)
	GetCountryByIsoCode(ctx context.Context, isoCode string) (*models.Country, error)
	ListCountries(ctx context.Context) ([]*models.Country, error)
	UpdateCountry(ctx context.Context, country *models.Country) (*models.Country, error)
	DeleteCountry(ctx context.Context, id uint) (*models.Country, error)

	// State operations
	CreateState(ctx context.Context, req *models.CreateStateRequest) (*models.State, error)
	GetState(ctx context.Context, id uint) (*models.State, error)
	GetStateByIbgeCode(ctx context.Context, ibgeCode int64) (*models.State, error)
	ListStates(ctx context.Context) ([]*models.State, error)
	UpdateState(ctx context.Context, state *models.State) (*models.State, error)
	DeleteState(ctx context.Context, id uint) (*models.State, error)

	// City operations
	CreateCity(ctx context.Context, req *models.CreateCityRequest) (*models.City, error)
	GetCity(ctx context.Context, id uint) (*models.City, error)
	GetCityByIbgeCode(ctx context.Context, ibgeCode int64) (*models.City, error)
	ListCities(ctx context.Context) ([]*models.City, error)
	UpdateCity(ctx context.Context, city *models.City) (*models.City, error)
	DeleteCity(ctx context.Context, id uint) (*models.City, error)

	// Address operations
	CreateAddress(ctx context.Context, req *models.CreateAddressRequest) (*models.Address, error)
	GetAddress(ctx context.Context, id uint) (*models.Address, error)
	ListAddresses(ctx context.Context) ([]*models.Address, error)
	UpdateAddress(ctx context.Context, address *models.Address) (*models.Address, error)
	DeleteAddress(ctx context.Context, id uint) (*models.Address, error)

	// User operations
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByCognitoID(ctx context.Context, cognitoID int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) (*models.User, error)
	DeleteUser(ctx context.Context, id uint) (*models.User, error)

	// PoliceDepartment operations
	CreatePoliceDepartment(ctx context.Context, req *models.CreatePoliceDepartmentRequest) (*models.PoliceDepartment, error)
	GetPoliceDepartment(ctx context.Context, id uint) (*models.PoliceDepartment, error)
	GetPoliceDepartmentByOverpassID(ctx context.Context, overpassID int64) (*models.PoliceDepartment, error)
	ListPoliceDepartments(ctx context.Context) ([]*models.PoliceDepartment, error)
	UpdatePoliceDepartment(ctx context.Context, department *models.PoliceDepartment) (*models.PoliceDepartment, error)
	DeletePoliceDepartment(ctx context.Context, id uint) (*models.PoliceDepartment, error)

	// Occurrence operations
	CreateOccurrence(ctx context.Context, req *models.CreateOccurrenceRequest) (*models.Occurrence, error)
	GetOccurrence(ctx context.Context, id uint) (*models.Occurrence, error)
	ListOccurrences(ctx context.Context) ([]*models.Occurrence, error)
	ListOccurrencesByActive(ctx context.Context, active bool) ([]*models.Occurrence, error)
	ListOccurrencesByUser(ctx context.Context, userID uint) ([]*models.Occurrence, error)
	UpdateOccurrence(ctx context.Context, occurrence *models.Occurrence) (*models.Occurrence, error)
	DeleteOccurrence(ctx context.Context, id uint) (*models.Occurrence, error)
}

// cacheTTL is how long read-path snapshots stay in redis
const cacheTTL = 5 * time.Minute

// service is an implementation of the Service interface
type service struct {
	countries   repository.CountryRepository
	states      repository.StateRepository
	cities      repository.CityRepository
	addresses   repository.AddressRepository
	users       repository.UserRepository
	departments repository.PoliceDepartmentRepository
	occurrences repository.OccurrenceRepository
	cache       cache.RedisClient
	log         *logrus.Logger
}

// ServiceConfig holds the configuration for the service
type ServiceConfig struct {
	Countries         repository.CountryRepository
	States            repository.StateRepository
	Cities            repository.CityRepository
	Addresses         repository.AddressRepository
	Users             repository.UserRepository
	PoliceDepartments repository.PoliceDepartmentRepository
	Occurrences       repository.OccurrenceRepository
	Cache             cache.RedisClient // optional, reads skip caching when nil
	Logger            *logrus.Logger
}

// NewService creates a new service instance
func NewService(config ServiceConfig) (Service, error) {
	if config.Countries == nil || config.States == nil || config.Cities == nil ||
		config.Addresses == nil || config.Users == nil ||
		config.PoliceDepartments == nil || config.Occurrences == nil {
		return nil, errors.New("all entity repositories are required")
	}
	if config.Logger == nil {
		config.Logger = logrus.New()
	}

	return &service{
		countries:   config.Countries,
		states:      config.States,
		cities:      config.Cities,
		addresses:   config.Addresses,
		users:       config.Users,
		departments: config.PoliceDepartments,
		occurrences: config.Occurrences,
		cache:       config.Cache,
		log:         config.Logger,
	}, nil
}

// cacheGet loads a cached snapshot into out. Returns false on miss,
// on unmarshal failure, or when caching is disabled.
func (s *service) cacheGet(ctx context.Context, key string, out interface{}) bool {
	if s.cache == nil {
		return false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !cache.IsCacheMiss(err) {
			s.log.WithError(err).WithField("key", key).Warn("Cache read failed")
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("Discarding unreadable cache entry")
		return false
	}
	return true
}

// cacheSet stores a snapshot. Cache failures are logged, never surfaced.
func (s *service) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Warn("Cache marshal failed")
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), cacheTTL); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("Cache write failed")
	}
}

// cacheDelete drops a snapshot after a write
func (s *service) cacheDelete(ctx context.Context, key string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, key); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("Cache invalidation failed")
	}
}
