// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"

	"dialcodes-server/datasets"

	"github.com/labstack/echo/v4"
)

func (a *API) GetCountriesHandler(c echo.Context) error {
	infos, err := datasets.AvailableCountries(a.Store.Dir())
	if err != nil {
		c.Logger().Errorf("Failed to list datasets: %v", err)
		return echo.ErrInternalServerError
	}
	return c.JSON(http.StatusOK, infos)
}
