// Package api exposes the weather-card service over HTTP
package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weathercards.app/config"
	carderr "weathercards.app/errors"
	"weathercards.app/models"
	"weathercards.app/ratelimit"
	"weathercards.app/service"
)

// Server represents the HTTP server and API handler
type Server struct {
	router          *gin.Engine
	config          *config.Config
	weatherService  service.WeatherServiceInterface
	timezoneService service.TimezoneServiceInterface
	moonService     service.MoonServiceInterface
	cardService     service.CardServiceInterface
	limiter         *ratelimit.Limiter
}

// NewServer creates and configures a new HTTP server
func NewServer(
	config *config.Config,
	weatherService service.WeatherServiceInterface,
	timezoneService service.TimezoneServiceInterface,
	moonService service.MoonServiceInterface,
	cardService service.CardServiceInterface,
	limiter *ratelimit.Limiter,
) *Server {
	router := gin.Default()

	server := &Server{
		router:          router,
		config:          config,
		weatherService:  weatherService,
		timezoneService: timezoneService,
		moonService:     moonService,
		cardService:     cardService,
		limiter:         limiter,
	}

	server.setupRoutes()
	return server
}

func (s *Server) setupRoutes() {
	s.router.Use(RequestID())
	s.router.Use(ClientIP(s.config.RateLimit.TrustedProxies))

	v1 := s.router.Group("/v1")
	v1.Use(s.rateLimit)
	{
		v1.GET("/card", s.getCard)
		v1.GET("/weather", s.getWeather)
		v1.GET("/timezone", s.getTimezone)
		v1.GET("/moon", s.getMoon)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Start begins the HTTP server
func (s *Server) Start() error {
	return s.router.Run(fmt.Sprintf(":%d", s.config.Server.Port))
}

// GetRouter returns the router for testing purposes
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

func (s *Server) rateLimit(c *gin.Context) {
	clientKey := effectiveClientIP(c)

	if !s.limiter.Allow(c.Request.Context(), clientKey) {
		slog.Warn("Rate limit exceeded", "client", clientKey, "path", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusTooManyRequests,
			models.ErrorResponse{Error: "rate limit exceeded"})
		return
	}

	c.Next()
}

func (s *Server) getCard(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		s.handleError(c, carderr.NewValidationError("location parameter is required"))
		return
	}

	data, err := s.cardService.GetCard(c.Request.Context(), location)
	if err != nil {
		slog.Error("Card service error", "error", err, "location", location)
		s.handleError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", data)
}

func (s *Server) getWeather(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		s.handleError(c, carderr.NewValidationError("location parameter is required"))
		return
	}

	slog.Debug("Getting weather for location", "location", location)
	observation, err := s.weatherService.GetWeather(c.Request.Context(), location)
	if err != nil {
		slog.Error("Weather service error", "error", err, "location", location)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, observation)
}

// coordinateQuery binds lat/lon query parameters. Pointer fields keep zero
// coordinates distinguishable from absent ones.
type coordinateQuery struct {
	Lat *float64 `form:"lat" binding:"required"`
	Lon *float64 `form:"lon" binding:"required"`
}

func (s *Server) getTimezone(c *gin.Context) {
	var query coordinateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, carderr.NewValidationError("lat and lon parameters are required"))
		return
	}

	info, err := s.timezoneService.GetTimezone(c.Request.Context(), *query.Lat, *query.Lon)
	if err != nil {
		slog.Error("Timezone service error", "error", err, "lat", *query.Lat, "lon", *query.Lon)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

func (s *Server) getMoon(c *gin.Context) {
	var query coordinateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, carderr.NewValidationError("lat and lon parameters are required"))
		return
	}

	info, err := s.moonService.GetMoon(c.Request.Context(), *query.Lat, *query.Lon)
	if err != nil {
		slog.Error("Moon service error", "error", err, "lat", *query.Lat, "lon", *query.Lon)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

// handleError maps application errors to HTTP status codes
func (s *Server) handleError(c *gin.Context, err error) {
	var appErr *carderr.AppError
	var statusCode int
	var message string

	if errors.As(err, &appErr) {
		switch appErr.Type {
		case carderr.ValidationError:
			statusCode = http.StatusBadRequest
			message = appErr.Message
		case carderr.NotFoundError:
			statusCode = http.StatusNotFound
			message = appErr.Message
		case carderr.TimezoneUnavailableError:
			if appErr.Message == models.TimezoneStatusZeroResults {
				statusCode = http.StatusUnprocessableEntity
			} else {
				statusCode = http.StatusInternalServerError
			}
			message = appErr.Message
		case carderr.ExternalAPIError:
			statusCode = http.StatusBadGateway
			message = "External service unavailable"
		case carderr.MissingAssetError:
			statusCode = http.StatusInternalServerError
			message = "Internal server error"
		default:
			statusCode = http.StatusInternalServerError
			message = "Internal server error"
		}
	} else {
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	c.JSON(statusCode, models.ErrorResponse{Error: message})
}
