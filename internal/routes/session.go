package routes

import (
	"github.com/labstack/echo/v4"

	"contract-studio/internal/controllers"
)

func runSessionRouter(secureGroup *echo.Group, sessionCtrl *controllers.ContractSessionController, exportCtrl *controllers.ExportController) {
	secureGroup.GET("/placeholders", sessionCtrl.Placeholders)

	secureGroup.POST("/sessions", sessionCtrl.Create)
	secureGroup.GET("/sessions/:id", sessionCtrl.Get)
	secureGroup.DELETE("/sessions/:id", sessionCtrl.Delete)
	secureGroup.PATCH("/sessions/:id/fields", sessionCtrl.UpdateField)
	secureGroup.POST("/sessions/:id/merge", sessionCtrl.Merge)
	secureGroup.POST("/sessions/:id/reset", sessionCtrl.Reset)
	secureGroup.GET("/sessions/:id/preview", sessionCtrl.Preview)
	secureGroup.POST("/sessions/:id/render", sessionCtrl.Render)
	secureGroup.GET("/sessions/:id/export", exportCtrl.ExportXLSX)
}
