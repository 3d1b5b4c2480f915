// handlers/export_handlers.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tripkit/tripkit-backend/utils"
)

// ExportTrip streams the assembled itinerary as an xlsx download
func ExportTrip(c *gin.Context) {
	tripID := c.Param("tripId")
	if !ensureTripAccess(c, tripID) {
		return
	}

	f, filename, err := handlerServices.ExportService.ExportTrip(tripID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		utils.Logger.Errorw("failed to stream workbook", "tripId", tripID, "error", err)
	}
}
