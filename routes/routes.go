// SPDX-License-Identifier: GPL-3.0-only

package routes

import (
	"dialcodes-server/commons"
	"dialcodes-server/handlers"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes wires the API, the HTML pages and static assets. The dev
// shutdown endpoint only exists in debug mode.
func RegisterRoutes(e *echo.Echo, api *handlers.API, debug bool) {
	commons.Logger.Debug("Registering routes")

	apiGroup := e.Group("/api")
	apiGroup.GET("/countries", api.GetCountriesHandler)
	apiGroup.GET("/question", api.GetQuestionHandler)
	apiGroup.POST("/answer", api.AnswerHandler)
	apiGroup.POST("/lookup", api.LookupHandler)
	if debug {
		apiGroup.POST("/dev/shutdown", api.DevShutdownHandler)
	}

	e.GET("/", api.PageHandler("lookup.html"))
	e.GET("/quiz", api.PageHandler("quiz.html"))
	e.GET("/pinpoint", api.PageHandler("pinpoint.html"))
	e.GET("/static/*", api.ServeStaticFile)

	commons.Logger.Info("Routes registered successfully")
}
