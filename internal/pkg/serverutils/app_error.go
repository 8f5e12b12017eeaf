package serverutils

import "github.com/gofiber/fiber/v2"

// AppError is the single error type that crosses the HTTP boundary. The
// error-handler middleware renders it as {error, message, code, timestamp}.
type AppError struct {
	Status  int
	Code    string
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewValidationError(message string) *AppError {
	return &AppError{Status: fiber.StatusBadRequest, Code: "VALIDATION_ERROR", Message: message}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Status: fiber.StatusUnauthorized, Code: "UNAUTHORIZED", Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Status: fiber.StatusNotFound, Code: "NOT_FOUND", Message: message}
}

func NewInvalidStateError(message string) *AppError {
	return &AppError{Status: fiber.StatusBadRequest, Code: "INVALID_STATE", Message: message}
}

func NewRemoteAPIError(message string) *AppError {
	return &AppError{Status: fiber.StatusInternalServerError, Code: "TAVUS_API_ERROR", Message: message}
}

func NewNotConfiguredError(message string) *AppError {
	return &AppError{Status: fiber.StatusInternalServerError, Code: "NOT_CONFIGURED", Message: message}
}

func NewPollTimeoutError(message string) *AppError {
	return &AppError{Status: fiber.StatusGatewayTimeout, Code: "POLL_TIMEOUT", Message: message}
}

func NewInternalError(message string) *AppError {
	return &AppError{Status: fiber.StatusInternalServerError, Code: "INTERNAL_ERROR", Message: message}
}
