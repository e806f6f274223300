package models

import "time"

// Creation request payloads. These are the flat shapes the API accepts:
// scalar fields plus the ids of the referenced parents. The service layer
// resolves the parent ids before constructing the entity.

// CreateCountryRequest is the payload for creating a country
type CreateCountryRequest struct {
	Name      string `json:"name" binding:"required"`
	ShortName string `json:"short_name" binding:"required"`
	IsoCode   string `json:"iso_code" binding:"required"`
}

// CreateStateRequest is the payload for creating a state
type CreateStateRequest struct {
	Name      string `json:"name" binding:"required"`
	ShortName string `json:"short_name" binding:"required"`
	Region    Region `json:"region" binding:"required,region"`
	IbgeCode  int64  `json:"ibge_code" binding:"required"`
	CountryID uint   `json:"country_id" binding:"required"`
}

// CreateCityRequest is the payload for creating a city
type CreateCityRequest struct {
	Name      string `json:"name" binding:"required"`
	ShortName string `json:"short_name" binding:"required"`
	IbgeCode  int64  `json:"ibge_code" binding:"required"`
	StateID   uint   `json:"state_id" binding:"required"`
}

// CreateAddressRequest is the payload for creating an address
type CreateAddressRequest struct {
	Street       string `json:"street" binding:"required"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	CityID       uint   `json:"city_id" binding:"required"`
}

// CreateUserRequest is the payload for registering a user
type CreateUserRequest struct {
	CognitoID int64 `json:"cognito_id" binding:"required"`
}

// CreatePoliceDepartmentRequest is the payload for creating a police department
type CreatePoliceDepartmentRequest struct {
	OverpassID int64  `json:"overpass_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	ShortName  string `json:"short_name"`
	Operator   string `json:"operator"`
	Ownership  string `json:"ownership"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Latitude   string `json:"latitude"`
	Longitude  string `json:"longitude"`
	AddressID  uint   `json:"address_id" binding:"required"`
}

// CreateOccurrenceRequest is the payload for reporting an occurrence
type CreateOccurrenceRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	DateStart   time.Time  `json:"date_start" binding:"required"`
	DateEnd     *time.Time `json:"date_end"`
	Active      bool       `json:"active"`
	Intensity   Intensity  `json:"intensity" binding:"required,intensity"`
	AddressID   uint       `json:"address_id" binding:"required"`
	UserID      uint       `json:"user_id" binding:"required"`
}
