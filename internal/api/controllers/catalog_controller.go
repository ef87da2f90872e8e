package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wander/internal/services"
	"wander/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

func (cc *CatalogController) ListFlightsHandler(c *gin.Context) {
	origin := c.Query("origin")
	destination := c.Query("destination")
	if origin == "" || destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "origin and destination are required")
		return
	}

	flights, err := cc.catalogService.ListFlights(c.Request.Context(), origin, destination)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, flights, "Flights retrieved successfully")
}

func (cc *CatalogController) ListHotelsHandler(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "destination is required")
		return
	}

	hotels, err := cc.catalogService.ListHotels(c.Request.Context(), destination)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, hotels, "Hotels retrieved successfully")
}

func (cc *CatalogController) ListActivitiesHandler(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "destination is required")
		return
	}

	activities, err := cc.catalogService.ListActivities(c.Request.Context(), destination)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activities, "Activities retrieved successfully")
}
