package dto

import "net/http"

// Standardized error codes returned by the API
const (
	ErrCodeInternal     = "ERR_INTERNAL"
	ErrCodeValidation   = "ERR_VALIDATION"
	ErrCodeBadRequest   = "ERR_BAD_REQUEST"
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"

	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	ErrCodeTokenMissing = "ERR_TOKEN_MISSING"
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"
	ErrCodeForbidden    = "ERR_FORBIDDEN"

	ErrCodeNotFound      = "ERR_NOT_FOUND"
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
)

var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeTokenMissing: http.StatusUnauthorized,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
}

// GetHTTPStatus maps an error code to its HTTP status, defaulting to 500.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// LegacyErrorCodeMapping translates domain-layer error codes to API codes.
var LegacyErrorCodeMapping = map[string]string{
	"NOT_FOUND":         ErrCodeNotFound,
	"INVALID_INPUT":     ErrCodeInvalidInput,
	"INVALID_USERNAME":  ErrCodeInvalidInput,
	"INVALID_EMAIL":     ErrCodeInvalidInput,
	"INVALID_PASSWORD":  ErrCodeInvalidInput,
	"INVALID_LIST_NAME": ErrCodeInvalidInput,
	"INVALID_ITEM_NAME": ErrCodeInvalidInput,
	"INVALID_OWNER":     ErrCodeInvalidInput,
	"USERNAME_EXISTS":   ErrCodeAlreadyExists,
	"EMAIL_EXISTS":      ErrCodeAlreadyExists,
	"ALREADY_EXISTS":    ErrCodeAlreadyExists,
	"UNAUTHORIZED":      ErrCodeUnauthorized,
	"FORBIDDEN":         ErrCodeForbidden,
	"INTERNAL_ERROR":    ErrCodeInternal,
}

// NormalizeErrorCode converts a domain error code to its API code, passing
// through codes that already use the ERR_ prefix.
func NormalizeErrorCode(code string) string {
	if mapped, ok := LegacyErrorCodeMapping[code]; ok {
		return mapped
	}
	if _, ok := errorCodeHTTPStatus[code]; ok {
		return code
	}
	return ErrCodeInternal
}
