package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shinystarlight00/papi2/internal/app/models/dto"
	"github.com/shinystarlight00/papi2/internal/app/services"
	"github.com/shinystarlight00/papi2/internal/middleware"
)

// ExpertController handles expert-related endpoints.
type ExpertController struct {
	expertService services.ExpertService
}

// NewExpertController creates a new ExpertController.
func NewExpertController(expertService services.ExpertService) *ExpertController {
	return &ExpertController{
		expertService: expertService,
	}
}

// expertFieldsFromParams collects the optional expert attributes from
// the request. A parameter that was not sent stays nil and never
// reaches the generated SQL.
func expertFieldsFromParams(c *gin.Context) (*dto.ExpertFields, error) {
	fields := &dto.ExpertFields{
		Name:        optionalString(c, "name"),
		Description: optionalString(c, "description"),
		Schedule:    optionalString(c, "schedule"),
		Languages:   optionalString(c, "languages"),
		Online:      optionalString(c, "online"),
		Type:        optionalString(c, "type"),
		URLImage:    optionalString(c, "url_image"),
		URLVideo:    optionalString(c, "url_video"),
	}

	var err error
	if fields.UserID, err = optionalInt64(c, "userID"); err != nil {
		return nil, err
	}
	if fields.Price, err = optionalFloat64(c, "price"); err != nil {
		return nil, err
	}
	if fields.Ranking, err = optionalFloat64(c, "ranking"); err != nil {
		return nil, err
	}
	if fields.Jobs, err = optionalInt64(c, "jobs"); err != nil {
		return nil, err
	}
	if fields.Active, err = optionalBool(c, "active"); err != nil {
		return nil, err
	}

	return fields, nil
}

// ListExperts lists all experts in a chapter
// @Summary List experts for a chapter
// @Description Returns every expert record scoped to the given chapter. An empty chapter yields a status message instead of an empty array.
// @Tags experts
// @Produce json
// @Param chapterID query int true "Chapter ID"
// @Success 200 {array} models.Expert "Expert records"
// @Router /experts/list [get]
func (ec *ExpertController) ListExperts(c *gin.Context) {
	chapterID, err := requiredInt64(c, "chapterID")
	if err != nil {
		c.JSON(http.StatusOK, dto.Error(dto.StatusValidationError, err.Error()))
		return
	}

	experts, err := ec.expertService.ListExperts(c.Request.Context(), chapterID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if len(experts) == 0 {
		c.JSON(http.StatusOK, dto.Error(dto.StatusNotFound, "no experts found for the given chapter"))
		return
	}

	c.JSON(http.StatusOK, experts)
}

// ReadExpert reads a single expert record
// @Summary Read an expert
// @Description Returns the expert identified by (chapterID, recno).
// @Tags experts
// @Produce json
// @Param chapterID query int true "Chapter ID"
// @Param recno query int true "Record number within the chapter"
// @Success 200 {object} models.Expert "Expert record"
// @Router /experts/read [post]
func (ec *ExpertController) ReadExpert(c *gin.Context) {
	chapterID, err := requiredInt64(c, "chapterID")
	if err != nil {
		c.JSON(http.StatusOK, dto.Error(dto.StatusValidationError, err.Error()))
		return
	}
	recno, err := requiredInt64(c, "recno")
	if err != nil {
		c.JSON(http.StatusOK, dto.Error(dto.StatusValidationError, err.Error()))
		return
	}

	expert, err := ec.expertService.ReadExpert(c.Request.Context(), chapterID, recno)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, expert)
}

// CreateExpert creates a new expert record
// @Summary Create an expert
// @Description Inserts a new expert scoped to the chapter. Only supplied fields are stored; omitted ones take their defaults. The generated id is not echoed back.
// @Tags experts
// @Produce json
// @Param chapterID query int true "Chapter ID"
// @Param name query string true "Expert name"
// @Success 200 {object} dto.StatusResponse
// @Router /experts/create [post]
func (ec *ExpertController) CreateExpert(c *gin.Context) {
	chapterID, err := requiredInt64(c, "chapterID")
	if err != nil {
		c.JSON(http.StatusOK, dto.Error(dto.StatusValidationError, err.Error()))
		return
	}
	fields, err := expertFieldsFromParams(c)
	if err != nil {
		c.JSON(http.StatusOK, dto.Error(dto.StatusValidationError, err.Error()))
		return
	}

	if err := ec.expertService.CreateExpert(c.Request.Context(), chapterID, fields); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK())
}

// UpdateExpert partially updates an expert record
// @Summary Update an expert
// @Description Updates only the supplied fields of the expert identified by (chapterID, recno). An empty payload is a no-op and is rejected before storage.
// @Tags experts
// @Produce json
// @Param chapterID query int true "Chapter ID"
// @Param recno query int true "Record number within the chapter"
// @Success 200 {object} dto.StatusResponse
// @Router /experts/update [post]
func (ec *ExpertController) UpdateExpert(c *gin.Context) {
	chapterID, err := requiredInt64(c, "chapterID")
	if err != nil {
		c.JSON(http.StatusOK, dto.Error(dto.StatusValidationError, err.Error()))
		return
	}
	recno, err := requiredInt64(c, "recno")
	if err != nil {
		c.JSON(http.StatusOK, dto.Error(dto.StatusValidationError, err.Error()))
		return
	}
	fields, err := expertFieldsFromParams(c)
	if err != nil {
		c.JSON(http.StatusOK, dto.Error(dto.StatusValidationError, err.Error()))
		return
	}

	if err := ec.expertService.UpdateExpert(c.Request.Context(), chapterID, recno, fields); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK())
}

// DeleteExpert deletes an expert record
// @Summary Delete an expert
// @Description Deletes the expert identified by (chapterID, recno). Deleting a missing record reports not_found.
// @Tags experts
// @Produce json
// @Param chapterID query int true "Chapter ID"
// @Param recno query int true "Record number within the chapter"
// @Success 200 {object} dto.StatusResponse
// @Router /experts/delete [post]
func (ec *ExpertController) DeleteExpert(c *gin.Context) {
	chapterID, err := requiredInt64(c, "chapterID")
	if err != nil {
		c.JSON(http.StatusOK, dto.Error(dto.StatusValidationError, err.Error()))
		return
	}
	recno, err := requiredInt64(c, "recno")
	if err != nil {
		c.JSON(http.StatusOK, dto.Error(dto.StatusValidationError, err.Error()))
		return
	}

	if err := ec.expertService.DeleteExpert(c.Request.Context(), chapterID, recno); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK())
}
