package routes

import (
	"github.com/labstack/echo/v4"

	"contract-studio/internal/controllers"
)

func runDocumentRouter(secureGroup *echo.Group, documentCtrl *controllers.DocumentController) {
	secureGroup.GET("/documents", documentCtrl.GetAll)
	secureGroup.POST("/documents", documentCtrl.Create)
	secureGroup.GET("/documents/:id/versions", documentCtrl.ListVersions)
	secureGroup.POST("/documents/:id/render", documentCtrl.Render)
	secureGroup.GET("/documents/versions/:versionId", documentCtrl.GetVersion)
	secureGroup.GET("/documents/versions/:versionId/dates", documentCtrl.VersionDates)
}
