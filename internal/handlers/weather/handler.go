package weather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/handlers"
	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/locations"
	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/models"
	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/repository"
	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/services/filter"
)

// addressMarkers force the address search method when found in a location
// query, matching the input misclassification rules of the original UI.
var addressMarkers = []string{"#", "n°", "cl.", "calle", "carrera", "avenida", "av.", "km", "no."}

type WeatherServicer interface {
	FetchYear(ctx context.Context, lat, lon float64, year int) ([]models.DayRecord, error)
}

type Geocoder interface {
	Geocode(ctx context.Context, text string) (float64, float64, error)
}

type Handler struct {
	service  WeatherServicer
	geocoder Geocoder
	registry *locations.Registry
	history  repository.HistoryRepository
}

func NewHandler(
	svc WeatherServicer,
	geocoder Geocoder,
	registry *locations.Registry,
	history repository.HistoryRepository,
) *Handler {
	return &Handler{service: svc, geocoder: geocoder, registry: registry, history: history}
}

type queryParams struct {
	Location string   `form:"location"`
	Address  string   `form:"address"`
	Lat      *float64 `form:"lat"`
	Lon      *float64 `form:"lon"`
	Year     int      `form:"year" binding:"required"`

	MinTMax   *float64 `form:"min_tmax"`
	MinPrecip *float64 `form:"min_precip"`
	MinWind   *float64 `form:"min_wind"`
	Condition string   `form:"condition"`
}

// GetLocations
// @Summary List registered store locations
// @Description Returns the store registry grouped by name prefix
// @Tags locations
// @Produce json
// @Success 200 {array} locations.Group
// @Router /locations [get]
func (h *Handler) GetLocations(c *gin.Context) {
	c.JSON(http.StatusOK, h.registry.Grouped())
}

// GetWeather
// @Summary Query historical daily weather
// @Description Fetches one year of daily records for a store, coordinates or free-text address, applies the day filter and records the query in the session history
// @Tags weather
// @Produce json
// @Param location query string false "Registered store name"
// @Param address query string false "Free-text address (geocoded)"
// @Param lat query number false "Latitude"
// @Param lon query number false "Longitude"
// @Param year query int true "Year to query"
// @Param min_tmax query number false "Minimum max temperature"
// @Param min_precip query number false "Minimum precipitation (mm)"
// @Param min_wind query number false "Minimum wind (km/h)"
// @Param condition query string false "Condition label or ALL"
// @Success 200 {object} map[string]interface{}
// @Failure 400
// @Failure 502
// @Router /weather [get]
func (h *Handler) GetWeather(c *gin.Context) {
	var params queryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "params": c.Request.URL.Query()})
		return
	}

	label, lat, lon, err := h.resolve(c.Request.Context(), params)
	if err != nil {
		status := handlers.StatusFor(err)
		c.JSON(status, gin.H{"error": err.Error(), "params": c.Request.URL.Query()})
		return
	}

	days, err := h.service.FetchYear(c.Request.Context(), lat, lon, params.Year)
	if err != nil {
		c.JSON(handlers.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	criteria := models.FilterCriteria{
		MinTMax:     params.MinTMax,
		MinPrecipMM: params.MinPrecip,
		MinWindKMH:  params.MinWind,
		Condition:   params.Condition,
	}
	filtered := filter.Apply(days, criteria)

	if sessionID := handlers.SessionID(c); sessionID != "" {
		entry := models.HistoryEntry{
			Query:      label,
			Year:       params.Year,
			RecordedAt: time.Now().Format(time.RFC3339),
			Days:       filtered,
		}
		if err := h.history.Append(c.Request.Context(), sessionID, entry); err != nil {
			_ = c.Error(err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"location": label,
		"lat":      lat,
		"lon":      lon,
		"year":     params.Year,
		"days":     filtered,
	})
}

// resolve turns the search parameters into a label and coordinates, enforcing
// the method-vs-input rules.
func (h *Handler) resolve(ctx context.Context, params queryParams) (string, float64, float64, error) {
	switch {
	case params.Location != "":
		if looksLikeAddress(params.Location) {
			return "", 0, 0, errors.Join(models.ErrInvalidInput,
				errors.New("the location field looks like an address, use the address parameter"))
		}
		loc, ok := h.registry.Get(params.Location)
		if !ok {
			return "", 0, 0, errors.Join(models.ErrInvalidInput,
				errors.New("unknown store location "+params.Location))
		}
		return loc.Name, loc.Lat, loc.Lon, nil

	case params.Address != "":
		if len(strings.Fields(params.Address)) < 2 {
			return "", 0, 0, errors.Join(models.ErrInvalidInput,
				errors.New("an address needs street and number, for store names use the location parameter"))
		}
		lat, lon, err := h.geocoder.Geocode(ctx, params.Address)
		if err != nil {
			return "", 0, 0, err
		}
		return params.Address, lat, lon, nil

	case params.Lat != nil && params.Lon != nil:
		label := fmt.Sprintf("%g, %g", *params.Lat, *params.Lon)
		return label, *params.Lat, *params.Lon, nil

	default:
		return "", 0, 0, errors.Join(models.ErrInvalidInput,
			errors.New("one of location, address or lat+lon is required"))
	}
}

func looksLikeAddress(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range addressMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
