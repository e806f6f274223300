package routes

import (
	"github.com/ATClus/psa-api-sub000/api/handlers"
	"github.com/ATClus/psa-api-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SetupRoutes sets up all the routes for the server
func SetupRoutes(r *gin.Engine, svc service.Service, log *logrus.Logger) {
	// Health check
	r.GET("/health", handlers.HealthCheck)

	// API routes
	api := r.Group("/api/v1")

	// Country routes
	countryHandler := handlers.NewCountryHandler(svc, log)
	countries := api.Group("/countries")
	{
		countries.POST("", countryHandler.CreateCountry)
		countries.GET("", countryHandler.ListCountries)
		countries.GET("/:id", countryHandler.GetCountry)
		countries.GET("/iso/:code", countryHandler.GetCountryByIsoCode)
		countries.PUT("/:id", countryHandler.UpdateCountry)
		countries.DELETE("/:id", countryHandler.DeleteCountry)
	}

	// State routes
	stateHandler := handlers.NewStateHandler(svc, log)
	states := api.Group("/states")
	{
		states.POST("", stateHandler.CreateState)
		states.GET("", stateHandler.ListStates)
		states.GET("/:id", stateHandler.GetState)
		states.GET("/ibge/:code", stateHandler.GetStateByIbgeCode)
		states.PUT("/:id", stateHandler.UpdateState)
		states.DELETE("/:id", stateHandler.DeleteState)
	}

	// City routes
	cityHandler := handlers.NewCityHandler(svc, log)
	cities := api.Group("/cities")
	{
		cities.POST("", cityHandler.CreateCity)
		cities.GET("", cityHandler.ListCities)
		cities.GET("/:id", cityHandler.GetCity)
		cities.GET("/ibge/:code", cityHandler.GetCityByIbgeCode)
		cities.PUT("/:id", cityHandler.UpdateCity)
		cities.DELETE("/:id", cityHandler.DeleteCity)
	}

	// Address routes
	addressHandler := handlers.NewAddressHandler(svc, log)
	addresses := api.Group("/addresses")
	{
		addresses.POST("", addressHandler.CreateAddress)
		addresses.GET("", addressHandler.ListAddresses)
		addresses.GET("/:id", addressHandler.GetAddress)
		addresses.PUT("/:id", addressHandler.UpdateAddress)
		addresses.DELETE("/:id", addressHandler.DeleteAddress)
	}

	// User routes
	userHandler := handlers.NewUserHandler(svc, log)
	users := api.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.GET("/cognito/:id", userHandler.GetUserByCognitoID)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	// Police department routes
	departmentHandler := handlers.NewPoliceDepartmentHandler(svc, log)
	departments := api.Group("/police-departments")
	{
		departments.POST("", departmentHandler.CreatePoliceDepartment)
		departments.GET("", departmentHandler.ListPoliceDepartments)
		departments.GET("/:id", departmentHandler.GetPoliceDepartment)
		departments.GET("/overpass/:id", departmentHandler.GetPoliceDepartmentByOverpassID)
		departments.PUT("/:id", departmentHandler.UpdatePoliceDepartment)
		departments.DELETE("/:id", departmentHandler.DeletePoliceDepartment)
	}

	// Occurrence routes
	occurrenceHandler := handlers.NewOccurrenceHandler(svc, log)
	occurrences := api.Group("/occurrences")
	{
		occurrences.POST("", occurrenceHandler.CreateOccurrence)
		occurrences.GET("", occurrenceHandler.ListOccurrences)
		occurrences.GET("/:id", occurrenceHandler.GetOccurrence)
		occurrences.PUT("/:id", occurrenceHandler.UpdateOccurrence)
		occurrences.DELETE("/:id", occurrenceHandler.DeleteOccurrence)
	}
}
