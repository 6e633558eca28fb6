package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shinystarlight00/papi2/internal/app/controllers"
)

// SetupRouter registers all application routes. Paths and methods match
// the published wire contract and must not change without a version
// bump of the /v1 prefix.
func SetupRouter(
	router *gin.Engine,
	expertController *controllers.ExpertController,
	chapterController *controllers.ChapterController,
) {
	v1 := router.Group("/v1")

	experts := v1.Group("/experts")
	{
		experts.GET("/list", expertController.ListExperts)
		experts.POST("/read", expertController.ReadExpert)
		experts.POST("/create", expertController.CreateExpert)
		experts.POST("/update", expertController.UpdateExpert)
		experts.POST("/delete", expertController.DeleteExpert)
	}

	chapters := v1.Group("/chapters")
	{
		chapters.PUT("/create", chapterController.CreateChapter)
		chapters.GET("/read", chapterController.GetChapter)
		chapters.GET("/list", chapterController.ListChapters)
		chapters.PUT("/update", chapterController.UpdateChapter)
		chapters.DELETE("/delete", chapterController.DeleteChapter)
	}
}
