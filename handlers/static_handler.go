// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
)

var allowedExtensions = map[string]bool{
	".html": true,
	".js":   true,
	".css":  true,
	".json": true,
	".svg":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

func (a *API) ServeStaticFile(c echo.Context) error {
	return a.serveFile(c, c.Param("*"))
}

// PageHandler serves one of the HTML pages from the static directory.
func (a *API) PageHandler(page string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return a.serveFile(c, page)
	}
}

func (a *API) serveFile(c echo.Context, requestedPath string) error {
	cleanPath := filepath.Clean(requestedPath)
	if strings.Contains(cleanPath, "..") || strings.HasPrefix(cleanPath, "/") {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid file path")
	}

	fullPath := filepath.Join(a.StaticDir, cleanPath)

	absStaticDir, err := filepath.Abs(a.StaticDir)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Unable to resolve static directory")
	}

	absFullPath, err := filepath.Abs(fullPath)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid file path")
	}

	if !strings.HasPrefix(absFullPath, absStaticDir+string(os.PathSeparator)) {
		return echo.NewHTTPError(http.StatusForbidden, "Access denied")
	}

	fileInfo, err := os.Stat(absFullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return echo.NewHTTPError(http.StatusNotFound, "File not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Unable to access file")
	}

	if fileInfo.IsDir() {
		return echo.NewHTTPError(http.StatusForbidden, "Directory listing not allowed")
	}

	ext := strings.ToLower(filepath.Ext(absFullPath))
	if !allowedExtensions[ext] {
		return echo.NewHTTPError(http.StatusForbidden, "File type not allowed")
	}

	c.Response().Header().Set("X-Content-Type-Options", "nosniff")
	c.Response().Header().Set("X-Frame-Options", "DENY")
	if ext != ".html" {
		c.Response().Header().Set("Cache-Control", "public, max-age=3600")
	}

	return c.File(absFullPath)
}
