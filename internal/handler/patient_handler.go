package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"patients-api/internal/models"
	"patients-api/internal/repository"
	"patients-api/internal/service"
	"patients-api/pkg/pagination"
	"patients-api/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type PatientHandler struct {
	patientService *service.PatientService
}

func NewPatientHandler(patientService *service.PatientService) *PatientHandler {
	return &PatientHandler{
		patientService: patientService,
	}
}

// CreatePatientRequest is the inbound payload for creating a patient.
// Boolean flags and painscale are pointers so an explicit false/0 still
// satisfies the required rule.
type CreatePatientRequest struct {
	Fname             string `json:"fname" binding:"required"`
	Lname             string `json:"lname" binding:"required"`
	Identity          string `json:"identity" binding:"required,len=13"`
	Cellnum           string `json:"cellnum" binding:"required,len=10"`
	Email             string `json:"email" binding:"required"`
	Gender            string `json:"gender" binding:"required"`
	Homeaddress       string `json:"homeaddress" binding:"required"`
	Painscale         *int   `json:"painscale" binding:"required"`
	Painnature        string `json:"painnature" binding:"required"`
	Immediate         *bool  `json:"immediate" binding:"required"`
	Trauma            string `json:"trauma" binding:"required"`
	Surgeries         string `json:"surgeries" binding:"required"`
	Fever             *bool  `json:"fever" binding:"required"`
	Weightchange      *bool  `json:"weightchange" binding:"required"`
	Breathing         *bool  `json:"breathing" binding:"required"`
	Coughing          *bool  `json:"coughing" binding:"required"`
	Descough          string `json:"descough" binding:"required"`
	Chestpain         *bool  `json:"chestpain" binding:"required"`
	Nausea            *bool  `json:"nausea" binding:"required"`
	Vomiting          *bool  `json:"vomiting" binding:"required"`
	Diarrhea          *bool  `json:"diarrhea" binding:"required"`
	Urinationissues   *bool  `json:"urinationissues" binding:"required"`
	Changesvision     *bool  `json:"changesvision" binding:"required"`
	Skinabnormalities *bool  `json:"skinabnormalities" binding:"required"`
	Functionalhistory string `json:"functionalhistory" binding:"required"`
	Allergies         string `json:"allergies" binding:"required"`
}

// toModel converts the validated request into a Patient row.
// The eid stays zero; storage assigns it on insert.
func (r *CreatePatientRequest) toModel() models.Patient {
	return models.Patient{
		Fname:             r.Fname,
		Lname:             r.Lname,
		Identity:          r.Identity,
		Cellnum:           r.Cellnum,
		Email:             r.Email,
		Gender:            r.Gender,
		Homeaddress:       r.Homeaddress,
		Painscale:         *r.Painscale,
		Painnature:        r.Painnature,
		Immediate:         *r.Immediate,
		Trauma:            r.Trauma,
		Surgeries:         r.Surgeries,
		Fever:             *r.Fever,
		Weightchange:      *r.Weightchange,
		Breathing:         *r.Breathing,
		Coughing:          *r.Coughing,
		Descough:          r.Descough,
		Chestpain:         *r.Chestpain,
		Nausea:            *r.Nausea,
		Vomiting:          *r.Vomiting,
		Diarrhea:          *r.Diarrhea,
		Urinationissues:   *r.Urinationissues,
		Changesvision:     *r.Changesvision,
		Skinabnormalities: *r.Skinabnormalities,
		Functionalhistory: r.Functionalhistory,
		Allergies:         r.Allergies,
	}
}

// ListPatientsQuery holds the pagination query parameters
type ListPatientsQuery struct {
	Page    int `form:"page,default=1" binding:"min=1"`
	PerPage int `form:"per_page,default=20" binding:"min=1,max=30"`
}

// validationDetail turns a binding error into a field -> problem map for
// the response detail object.
func validationDetail(err error) gin.H {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return gin.H{"body": err.Error()}
	}

	detail := gin.H{}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			detail[field] = "field is required"
		case "len":
			detail[field] = "must be exactly " + fe.Param() + " characters"
		case "min":
			detail[field] = "must be at least " + fe.Param()
		case "max":
			detail[field] = "must be at most " + fe.Param()
		default:
			detail[field] = "failed validation rule: " + fe.Tag()
		}
	}
	return detail
}

// GetPatientByEid retrieves a single patient record by its eid
func (h *PatientHandler) GetPatientByEid(c *gin.Context) {
	eid, err := strconv.ParseUint(c.Param("eid"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient eid")
		return
	}

	patient, err := h.patientService.GetPatientByEid(uint(eid))
	if err != nil {
		if errors.Is(err, repository.ErrPatientNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch patient")
		}
		return
	}

	utils.SuccessResponse(c, patient)
}

// GetPatientByName retrieves the first patient whose first name contains
// the given substring. Responds with a null body when nothing matches,
// mirroring the lossy first-match lookup contract.
func (h *PatientHandler) GetPatientByName(c *gin.Context) {
	fname := c.Param("fname")

	patient, err := h.patientService.FindPatientByName(fname)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch patient")
		return
	}

	utils.SuccessResponse(c, patient)
}

// ListPatients retrieves one page of patients with pagination metadata
func (h *PatientHandler) ListPatients(c *gin.Context) {
	var query ListPatientsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.DetailErrorResponse(c, http.StatusBadRequest, "Invalid pagination parameters", validationDetail(err))
		return
	}

	params := pagination.Params{Page: query.Page, PerPage: query.PerPage}
	patients, meta, err := h.patientService.ListPatients(params)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch patients")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"patients":   patients,
		"pagination": meta,
	})
}

// CreatePatient validates the payload, inserts the row and returns the
// created record including its storage-assigned eid
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.DetailErrorResponse(c, http.StatusBadRequest, "Validation failed", validationDetail(err))
		return
	}

	patient := req.toModel()
	if err := h.patientService.CreatePatient(&patient); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create patient")
		return
	}

	utils.CreatedResponse(c, patient)
}
