// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"dialcodes-server/quiz"

	"github.com/labstack/echo/v4"
)

func (a *API) GetQuestionHandler(c echo.Context) error {
	country := a.country(c.QueryParam("country"))
	bundle, err := a.loadBundle(c, country)
	if err != nil {
		return err
	}

	filter := quiz.Filter{
		Difficulty:  c.QueryParam("difficulty"),
		RegionGroup: c.QueryParam("region_group"),
	}
	question, err := a.Picker.Pick(bundle.Index, filter)
	if err != nil {
		if errors.Is(err, quiz.ErrNoQuestions) {
			return &echo.HTTPError{
				Code:    http.StatusNotFound,
				Message: "No questions match the selected difficulty and region group",
			}
		}
		c.Logger().Errorf("Failed to pick question: %v", err)
		return echo.ErrInternalServerError
	}
	return c.JSON(http.StatusOK, question)
}

func (a *API) AnswerHandler(c echo.Context) error {
	logger := c.Logger()

	var req AnswerRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid answer request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}

	code := strings.TrimSpace(req.Code)
	if code == "" {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Body must contain 'code'",
		}
	}

	country := a.country(req.Country)
	bundle, err := a.loadBundle(c, country)
	if err != nil {
		return err
	}

	result, err := quiz.Evaluate(bundle.Index, code, strings.TrimSpace(req.Guess), a.Matcher)
	if err != nil {
		if errors.Is(err, quiz.ErrCodeNotFound) {
			return &echo.HTTPError{
				Code:    http.StatusNotFound,
				Message: "Code " + code + " not found for " + country,
			}
		}
		logger.Errorf("Failed to evaluate answer: %v", err)
		return echo.ErrInternalServerError
	}
	return c.JSON(http.StatusOK, result)
}
