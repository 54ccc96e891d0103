package response

import (
	"github.com/gin-gonic/gin"
)

// Error is the JSON error body: {"error": "..."}. Success payloads are
// written directly by handlers because the public frontend consumes the
// flat shapes (hero object, sections array, page-data object) as-is.
type Error struct {
	Message string `json:"error"`
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Error{Message: message})
}

func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, 400, message)
}

func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, 401, message)
}

func Forbidden(c *gin.Context, message string) {
	ErrorResponse(c, 403, message)
}

func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, 404, message)
}

func TooManyRequests(c *gin.Context, message string) {
	ErrorResponse(c, 429, message)
}

func InternalServerError(c *gin.Context, message string) {
	ErrorResponse(c, 500, message)
}
