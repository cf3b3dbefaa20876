// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"fmt"
	"net/http"

	"dialcodes-server/commons/dialcode"

	"github.com/labstack/echo/v4"
)

// LookupHandler resolves a typed code. "+7 843" is accepted for a +7
// dataset; ranges such as "843-845" resolve to their first known key.
func (a *API) LookupHandler(c echo.Context) error {
	var req LookupRequest
	if err := c.Bind(&req); err != nil {
		c.Logger().Error("Invalid lookup request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}
	if dialcode.DigitsOnly(req.Code) == "" {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Please enter a dial code",
		}
	}

	country := a.country(req.Country)
	bundle, err := a.loadBundle(c, country)
	if err != nil {
		return err
	}

	ds := bundle.Dataset
	query := dialcode.TrimCountryCode(req.Code, ds.CountryCode)
	if dialcode.DigitsOnly(query) == "" {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Please enter a dial code",
		}
	}
	key, entry := bundle.Index.Resolve(query)
	if entry == nil {
		return c.JSON(http.StatusNotFound, LookupResponse{
			Found:   false,
			Code:    key,
			Message: fmt.Sprintf("Code %s not found in %s", key, country),
		})
	}

	return c.JSON(http.StatusOK, LookupResponse{
		Found:          true,
		Code:           key,
		Country:        ds.Country,
		CountryCode:    ds.CountryCode,
		Codes:          entry.Codes,
		PrimaryCities:  entry.PrimaryCities,
		Regions:        entry.Regions,
		Notes:          entry.Notes,
		Difficulty:     entry.Difficulty,
		RegionGroup:    entry.RegionGroup,
		PopulationRank: entry.PopulationRank,
		Images:         entry.ImageFiles(),
	})
}
