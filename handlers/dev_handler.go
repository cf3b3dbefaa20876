// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DevShutdownHandler stops the server after the response is written.
func (a *API) DevShutdownHandler(c echo.Context) error {
	if a.Shutdown == nil {
		return &echo.HTTPError{
			Code:    http.StatusInternalServerError,
			Message: "Server cannot be stopped automatically",
		}
	}
	c.Logger().Warn("Shutdown requested through the dev endpoint")
	go a.Shutdown()
	return c.JSON(http.StatusOK, GenericResponse{Status: "stopping"})
}
