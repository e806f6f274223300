package models

import (
	"time"
)

// Model is the base model with common fields for all database entities.
// Rows are hard-deleted, so there is no DeletedAt column.
type Model struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Region is an enum for the Brazilian macro-regions a state belongs to
type Region string

const (
	RegionNorte       Region = "NORTE"
	RegionNordeste    Region = "NORDESTE"
	RegionCentroOeste Region = "CENTRO_OESTE"
	RegionSudeste     Region = "SUDESTE"
	RegionSul         Region = "SUL"
)

// Valid reports whether the region is one of the closed set of values
func (r Region) Valid() bool {
	switch r {
	case RegionNorte, RegionNordeste, RegionCentroOeste, RegionSudeste, RegionSul:
		return true
	}
	return false
}

// Intensity is an enum for the severity level of an occurrence
type Intensity string

const (
	IntensityLow      Intensity = "LOW"
	IntensityModerate Intensity = "MODERATE"
	IntensityHigh     Intensity = "HIGH"
	IntensitySevere   Intensity = "SEVERE"
	IntensityCritical Intensity = "CRITICAL"
)

// Valid reports whether the intensity is one of the closed set of values
func (i Intensity) Valid() bool {
	switch i {
	case IntensityLow, IntensityModerate, IntensityHigh, IntensitySevere, IntensityCritical:
		return true
	}
	return false
}

// Country is the root of the geographic hierarchy
type Country struct {
	Model
	Name      string `json:"name" gorm:"Column:name"`
	ShortName string `json:"short_name" gorm:"Column:short_name"`
	IsoCode   string `json:"iso_code" gorm:"uniqueIndex;Column:iso_code"`
}

// State model represents a federative unit inside a country
type State struct {
	Model
	Name      string   `json:"name" gorm:"Column:name"`
	ShortName string   `json:"short_name" gorm:"Column:short_name"`
	Region    Region   `json:"region" gorm:"Column:region"`
	IbgeCode  int64    `json:"ibge_code" gorm:"uniqueIndex;Column:ibge_code"`
	Country   *Country `json:"country" gorm:"foreignKey:CountryID"`
	CountryID uint     `json:"country_id" gorm:"Column:country_id"`
}

// City model represents a municipality inside a state
type City struct {
	Model
	Name      string `json:"name" gorm:"Column:name"`
	ShortName string `json:"short_name" gorm:"Column:short_name"`
	IbgeCode  int64  `json:"ibge_code" gorm:"uniqueIndex;Column:ibge_code"`
	State     *State `json:"state" gorm:"foreignKey:StateID"`
	StateID   uint   `json:"state_id" gorm:"Column:state_id"`
}

// Address is the attachment point for occurrences and police departments
type Address struct {
	Model
	Street       string `json:"street" gorm:"Column:street"`
	Number       string `json:"number" gorm:"Column:number"`
	Complement   string `json:"complement" gorm:"Column:complement"`
	Neighborhood string `json:"neighborhood" gorm:"Column:neighborhood"`
	City         *City  `json:"city" gorm:"foreignKey:CityID"`
	CityID       uint   `json:"city_id" gorm:"Column:city_id"`
}

// User model represents a reporting user, identified by the subject id
// issued by the external identity provider
type User struct {
	Model
	CognitoID int64 `json:"cognito_id" gorm:"uniqueIndex;Column:cognito_id"`
}

// PoliceDepartment model represents a static police facility record
// imported from mapping data. Coordinates are kept as decimal strings
// exactly as received, never parsed.
type PoliceDepartment struct {
	Model
	OverpassID int64    `json:"overpass_id" gorm:"uniqueIndex;Column:overpass_id"`
	Name       string   `json:"name" gorm:"Column:name"`
	ShortName  string   `json:"short_name" gorm:"Column:short_name"`
	Operator   string   `json:"operator" gorm:"Column:operator"`
	Ownership  string   `json:"ownership" gorm:"Column:ownership"`
	Phone      string   `json:"phone" gorm:"Column:phone"`
	Email      string   `json:"email" gorm:"Column:email"`
	Latitude   string   `json:"latitude" gorm:"Column:latitude"`
	Longitude  string   `json:"longitude" gorm:"Column:longitude"`
	Address    *Address `json:"address" gorm:"foreignKey:AddressID"`
	AddressID  uint     `json:"address_id" gorm:"Column:address_id"`
}

// Occurrence model represents a reported incident with a time window,
// an activity flag and a severity level, attached to one address and
// authored by one user
type Occurrence struct {
	Model
	Name        string     `json:"name" gorm:"Column:name"`
	Description string     `json:"description" gorm:"Column:description"`
	DateStart   time.Time  `json:"date_start" gorm:"Column:date_start"`
	DateEnd     *time.Time `json:"date_end" gorm:"Column:date_end"`
	DateUpdate  *time.Time `json:"date_update" gorm:"Column:date_update"`
	Active      bool       `json:"active" gorm:"Column:active"`
	Intensity   Intensity  `json:"intensity" gorm:"Column:intensity"`
	Address     *Address   `json:"address" gorm:"foreignKey:AddressID"`
	AddressID   uint       `json:"address_id" gorm:"Column:address_id"`
	User        *User      `json:"user" gorm:"foreignKey:UserID"`
	UserID      uint       `json:"user_id" gorm:"Column:user_id"`
}
