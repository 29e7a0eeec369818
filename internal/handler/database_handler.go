package handler

import (
	"errors"
	"net/http"
	"strconv"

	"patients-api/internal/service"
	"patients-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DatabaseHandler struct {
	patientService *service.PatientService
}

func NewDatabaseHandler(patientService *service.PatientService) *DatabaseHandler {
	return &DatabaseHandler{
		patientService: patientService,
	}
}

// RecreateDatabase drops and recreates the PATIENTS table with the
// built-in sample records. The destructive action only runs when the
// confirmation query parameter is literally true.
func (h *DatabaseHandler) RecreateDatabase(c *gin.Context) {
	confirmed, err := strconv.ParseBool(c.DefaultQuery("confirmation", "false"))
	if err != nil {
		confirmed = false
	}

	if err := h.patientService.RecreateDatabase(confirmed); err != nil {
		if errors.Is(err, service.ErrConfirmationRequired) {
			utils.DetailErrorResponse(c, http.StatusBadRequest, "confirmation is missing", gin.H{
				"error": "check the API for how to confirm",
			})
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to recreate database")
		}
		return
	}

	utils.MessageResponse(c, "database recreated")
}
