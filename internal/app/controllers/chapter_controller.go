package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shinystarlight00/papi2/internal/app/models/dto"
	"github.com/shinystarlight00/papi2/internal/app/services"
	"github.com/shinystarlight00/papi2/internal/middleware"
)

// ChapterController handles chapter-related endpoints.
type ChapterController struct {
	chapterService services.ChapterService
}

// NewChapterController creates a new ChapterController.
func NewChapterController(chapterService services.ChapterService) *ChapterController {
	return &ChapterController{
		chapterService: chapterService,
	}
}

func chapterFieldsFromParams(c *gin.Context) (*dto.ChapterFields, error) {
	fields := &dto.ChapterFields{
		Title:    optionalString(c, "title"),
		Playlist: optionalString(c, "playlist"),
	}

	var err error
	if fields.DomainID, err = optionalInt64(c, "domainID"); err != nil {
		return nil, err
	}
	if fields.ParentID, err = optionalInt64(c, "parentID"); err != nil {
		return nil, err
	}
	if fields.EnableVideo, err = optionalBool(c, "enableVideo"); err != nil {
		return nil, err
	}
	if fields.EnableImage, err = optionalBool(c, "enableImage"); err != nil {
		return nil, err
	}
	if fields.EnableWiki, err = optionalBool(c, "enableWiki"); err != nil {
		return nil, err
	}
	if fields.EnableChat, err = optionalBool(c, "enableChat"); err != nil {
		return nil, err
	}
	if fields.EnableExpert, err = optionalBool(c, "enableExpert"); err != nil {
		return nil, err
	}
	if fields.EnableAdd, err = optionalBool(c, "enableAdd"); err != nil {
		return nil, err
	}
	if fields.Budget, err = optionalFloat64(c, "budget"); err != nil {
		return nil, err
	}

	return fields, nil
}

// CreateChapter creates a new chapter
// @Summary Create a chapter
// @Description Inserts a new chapter with the supplied fields and returns the assigned chapter id.
// @Tags chapters
// @Produce json
// @Param title query string false "Chapter title"
// @Param parentID query int false "Parent chapter ID"
// @Success 200 {object} dto.StatusResponse
// @Router /chapters/create [put]
func (cc *ChapterController) CreateChapter(c *gin.Context) {
	fields, err := chapterFieldsFromParams(c)
	if err != nil {
		c.JSON(http.StatusOK, dto.Error(dto.StatusValidationError, err.Error()))
		return
	}

	id, err := cc.chapterService.CreateChapter(c.Request.Context(), fields)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKWithChapterID(id))
}

// GetChapter reads a chapter by id
// @Summary Read a chapter
// @Tags chapters
// @Produce json
// @Param chapter_id query int true "Chapter ID"
// @Success 200 {object} dto.StatusResponse{data=models.Chapter}
// @Router /chapters/read [get]
func (cc *ChapterController) GetChapter(c *gin.Context) {
	chapterID, err := requiredInt64(c, "chapter_id")
	if err != nil {
		c.JSON(http.StatusOK, dto.Error(dto.StatusValidationError, err.Error()))
		return
	}

	chapter, err := cc.chapterService.GetChapter(c.Request.Context(), chapterID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKWithData(chapter))
}

// ListChapters lists chapters, optionally filtered by id
// @Summary List chapters
// @Description Returns every chapter, or a single-element list when chapter_id is given. No pagination.
// @Tags chapters
// @Produce json
// @Param chapter_id query int false "Chapter ID filter"
// @Success 200 {object} dto.StatusResponse{data=[]models.Chapter}
// @Router /chapters/list [get]
func (cc *ChapterController) ListChapters(c *gin.Context) {
	chapterID, err := optionalInt64(c, "chapter_id")
	if err != nil {
		c.JSON(http.StatusOK, dto.Error(dto.StatusValidationError, err.Error()))
		return
	}

	chapters, err := cc.chapterService.ListChapters(c.Request.Context(), chapterID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if len(chapters) == 0 {
		c.JSON(http.StatusOK, dto.Error(dto.StatusNotFound, "no chapters found"))
		return
	}

	c.JSON(http.StatusOK, dto.OKWithData(chapters))
}

// UpdateChapter partially updates a chapter
// @Summary Update a chapter
// @Description Updates only the supplied fields. An empty payload is rejected before storage.
// @Tags chapters
// @Produce json
// @Param chapter_id query int true "Chapter ID"
// @Success 200 {object} dto.StatusResponse
// @Router /chapters/update [put]
func (cc *ChapterController) UpdateChapter(c *gin.Context) {
	chapterID, err := requiredInt64(c, "chapter_id")
	if err != nil {
		c.JSON(http.StatusOK, dto.Error(dto.StatusValidationError, err.Error()))
		return
	}
	fields, err := chapterFieldsFromParams(c)
	if err != nil {
		c.JSON(http.StatusOK, dto.Error(dto.StatusValidationError, err.Error()))
		return
	}

	id, err := cc.chapterService.UpdateChapter(c.Request.Context(), chapterID, fields)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKWithChapterID(id))
}

// DeleteChapter deletes a chapter
// @Summary Delete a chapter
// @Description Deletes the chapter and returns its id. Child chapters and experts are left orphaned on purpose.
// @Tags chapters
// @Produce json
// @Param chapter_id query int true "Chapter ID"
// @Success 200 {object} dto.StatusResponse
// @Router /chapters/delete [delete]
func (cc *ChapterController) DeleteChapter(c *gin.Context) {
	chapterID, err := requiredInt64(c, "chapter_id")
	if err != nil {
		c.JSON(http.StatusOK, dto.Error(dto.StatusValidationError, err.Error()))
		return
	}

	id, err := cc.chapterService.DeleteChapter(c.Request.Context(), chapterID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKWithChapterID(id))
}
