package controllers

import (
	"net/http"
	"slices"
	"strings"

	"crush-hub/internal/logger"
	"crush-hub/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	errNotFound         = "Not Found"
	errMethodNotAllowed = "Method Not Allowed"
	errInternal         = "Internal Server Error"
)

func respondError(c *gin.Context, status int, title, message string) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{Error: title, Message: message})
}

/**
 * Build the 405 handler for a router whose routes are all registered
 * @param {gin.RoutesInfo} routes - result of engine.Routes()
 * @returns {gin.HandlerFunc} handler naming the methods the path does accept
 * @description
 * - Sets the Allow header to the methods registered for the request path
 * - The message names the same methods, e.g. "Use POST instead."
 */
func MethodNotAllowed(routes gin.RoutesInfo) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed := allowedMethods(routes, c.Request.URL.Path)
		use := "GET"
		if len(allowed) > 0 {
			use = strings.Join(allowed, ", ")
			c.Header("Allow", use)
		}
		respondError(c, http.StatusMethodNotAllowed, errMethodNotAllowed,
			c.Request.Method+" method is not supported for this endpoint. Use "+use+" instead.")
	}
}

func allowedMethods(routes gin.RoutesInfo, path string) []string {
	var methods []string
	for _, route := range routes {
		if matchRoute(route.Path, path) && !slices.Contains(methods, route.Method) {
			methods = append(methods, route.Method)
		}
	}
	return methods
}

// matchRoute matches a request path against a gin route pattern,
// ":name" covering one segment and "*name" the rest of the path.
func matchRoute(pattern, path string) bool {
	ps := strings.Split(strings.Trim(pattern, "/"), "/")
	segs := strings.Split(strings.Trim(path, "/"), "/")
	for i, p := range ps {
		if strings.HasPrefix(p, "*") {
			return true
		}
		if i >= len(segs) {
			return false
		}
		if strings.HasPrefix(p, ":") {
			if segs[i] == "" {
				return false
			}
			continue
		}
		if p != segs[i] {
			return false
		}
	}
	return len(ps) == len(segs)
}

// NotFound answers unknown routes.
func NotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound, errNotFound,
		"The requested resource "+c.Request.URL.Path+" was not found.")
}

// Recovery turns a panic into a 500 with the uniform error body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		logger.Errorf("panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		respondError(c, http.StatusInternalServerError, errInternal, "An unexpected error occurred.")
	})
}
