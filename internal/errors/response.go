package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse স্ট্যান্ডার্ড এরর রেসপন্স
type ErrorResponse struct {
	Error   string `json:"error"`   // এরর কোড (ফ্রন্টএন্ড ম্যাপিংয়ের জন্য)
	Message string `json:"message"` // ব্যবহারকারীর জন্য বাংলা বার্তা
}

// RespondWithError এরর রেসপন্স হেল্পার
func RespondWithError(c *gin.Context, statusCode int, errorCode string, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   errorCode,
		Message: message,
	})
}

// ঘনঘন ব্যবহৃত শর্টকাট ফাংশন

func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "লগইন করা প্রয়োজন"
	}
	RespondWithError(c, http.StatusUnauthorized, AuthUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "এই কাজের অনুমতি আপনার নেই"
	}
	RespondWithError(c, http.StatusForbidden, AuthzForbidden, message)
}

func BadRequest(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusBadRequest, errorCode, message)
}

func NotFound(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusNotFound, errorCode, message)
}

func Conflict(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusConflict, errorCode, message)
}

func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "সার্ভারে সমস্যা হয়েছে। কিছুক্ষণ পর আবার চেষ্টা করুন"
	}
	RespondWithError(c, http.StatusInternalServerError, InternalServerError, message)
}

// ValidationError একাধিক ঘরের ভ্যালিডেশন এরর
type ValidationError struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func RespondWithValidationError(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, ValidationError{
		Error:   ValidationInvalidInput,
		Message: "ইনপুট সঠিক নয়",
		Fields:  fields,
	})
}
