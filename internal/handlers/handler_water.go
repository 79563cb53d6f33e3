package handlers

import (
	"net/http"

	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	portssvc "github.com/SscSPs/estate_admin_console/internal/core/ports/services"
	"github.com/SscSPs/estate_admin_console/internal/dto"
	"github.com/gin-gonic/gin"
)

// registerReadingRoutes adds the live bill preview to the readings screen.
func registerReadingRoutes(rg *gin.RouterGroup, readings portssvc.ReadingSvcFacade) {
	group := registerResourceRoutes[domain.WaterSupplyReading, dto.CreateReadingRequest, dto.UpdateReadingRequest](
		rg, "/water-supply/readings", readings, "readings", "reading")
	group.POST("/preview", previewReading(readings))
}

// registerCollectionRoutes adds the deposit transition to the collections screen.
func registerCollectionRoutes(rg *gin.RouterGroup, collections portssvc.CollectionSvcFacade) {
	group := registerResourceRoutes[domain.WaterWellCollection, dto.CreateCollectionRequest, dto.UpdateCollectionRequest](
		rg, "/water-well/collections", collections, "collections", "collection")
	group.POST("/:id/deposit", markCollectionDeposited(collections))
}

// previewReading godoc
// @Summary Preview a reading's bill
// @Description Computes previous reading, units consumed and amount due from the customer's history without saving anything
// @Tags water-supply
// @Accept  json
// @Produce  json
// @Param   reading body dto.PreviewReadingRequest true "Customer and meter reading"
// @Success 200 {object} domain.Bill
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Router /api/v1/water-supply/readings/preview [post]
func previewReading(readings portssvc.ReadingSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.PreviewReadingRequest
		if !bindJSON(c, &req) {
			return
		}
		bill, err := readings.Preview(c.Request.Context(), req)
		if err != nil {
			respondError(c, err, "Failed to compute bill")
			return
		}
		c.JSON(http.StatusOK, bill)
	}
}

// markCollectionDeposited godoc
// @Summary Mark a collection deposited
// @Description Records the deposit once. Repeating the call returns the collection unchanged.
// @Tags water-well
// @Accept  json
// @Produce  json
// @Param   id path string true "Collection ID"
// @Param   deposit body dto.MarkDepositedRequest false "Receiving bank account"
// @Success 200 {object} domain.WaterWellCollection
// @Failure 400 {object} dto.ErrorResponse "Unknown bank account"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Collection not found"
// @Router /api/v1/water-well/collections/{id}/deposit [post]
func markCollectionDeposited(collections portssvc.CollectionSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.MarkDepositedRequest
		if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
			return
		}
		rec, err := collections.MarkDeposited(c.Request.Context(), c.Param("id"), req)
		if err != nil {
			respondError(c, err, "Failed to mark collection deposited")
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}
