package response

import "github.com/gin-gonic/gin"

// Error codes shared by every handler.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeCapacityExceeded   = "CAPACITY_EXCEEDED"
	CodeDuplicateBooking   = "DUPLICATE_BOOKING"
	CodeAgeNotEligible     = "AGE_NOT_ELIGIBLE"
	CodeInternal           = "INTERNAL_ERROR"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// ErrorWithData is an error envelope that still carries a (usually empty)
// data payload, for screens that render an empty result alongside the error.
func ErrorWithData(c *gin.Context, statusCode int, code string, message string, data any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"data":    data,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
