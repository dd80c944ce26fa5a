package errors

import "net/http"

// Authentication-specific error types
const (
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeTokenInvalid       ErrorType = "token_invalid"
	ErrorTypeConfiguration      ErrorType = "configuration_error"
)

// NewInvalidCredentialsError returns the generic login failure.
// The message never distinguishes an unknown email from a wrong password.
func NewInvalidCredentialsError() *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidCredentials,
		Message: "Invalid credentials",
		Code:    http.StatusUnauthorized,
	}
}

// NewTokenInvalidError covers malformed, tampered and expired tokens alike.
func NewTokenInvalidError() *AppError {
	return &AppError{
		Type:    ErrorTypeTokenInvalid,
		Message: "Invalid or expired token",
		Code:    http.StatusUnauthorized,
	}
}

// NewConfigurationError reports a server misconfiguration to the client
// without exposing the internal cause.
func NewConfigurationError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeConfiguration,
		Message: message,
		Code:    http.StatusInternalServerError,
	}
}

// IsConfigurationError checks if the error is a configuration error
func IsConfigurationError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeConfiguration
}
