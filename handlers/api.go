// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"dialcodes-server/datasets"
	"dialcodes-server/quiz"

	"github.com/labstack/echo/v4"
)

// API holds what the dial-code endpoints share.
type API struct {
	Store          *datasets.Store
	Picker         *quiz.Picker
	Matcher        quiz.AnswerMatcher
	DefaultCountry string
	StaticDir      string
	// Shutdown stops the server. The dev shutdown endpoint fails without it.
	Shutdown func()
}

func (a *API) country(name string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return a.DefaultCountry
}

// loadBundle maps store failures to HTTP errors.
func (a *API) loadBundle(c echo.Context, country string) (*datasets.Bundle, error) {
	bundle, err := a.Store.Load(country)
	if err == nil {
		return bundle, nil
	}
	if errors.Is(err, datasets.ErrDatasetNotFound) {
		c.Logger().Warnf("Dataset requested but not found: %s", country)
		return nil, &echo.HTTPError{
			Code:    http.StatusNotFound,
			Message: fmt.Sprintf("Country %s not found in the data directory", country),
		}
	}
	c.Logger().Errorf("Failed to load dataset %s: %v", country, err)
	return nil, echo.ErrInternalServerError
}
