package serverutils

import (
	"errors"

	"ai-salesclone-be/pkg/tavus"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors bubbled out of handlers into the
// shared error envelope so every route fails the same way.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			return ctx.Status(appErr.Status).JSON(ErrorResponse(appErr.Code, appErr.Message))
		}

		if appErr := mapGatewayError(err); appErr != nil {
			return ctx.Status(appErr.Status).JSON(ErrorResponse(appErr.Code, appErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse("HTTP_ERROR", fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("INTERNAL_ERROR", "internal server error"))
	}
}

// mapGatewayError folds provider errors that escape a service into their
// dedicated envelope codes. Anything else goes to the generic branch.
func mapGatewayError(err error) *AppError {
	if errors.Is(err, tavus.ErrNotConfigured) {
		return NewNotConfiguredError(err.Error())
	}

	var pollErr *tavus.PollTimeoutError
	if errors.As(err, &pollErr) {
		return NewPollTimeoutError(err.Error())
	}

	var remoteErr *tavus.RemoteAPIError
	if errors.As(err, &remoteErr) {
		return NewRemoteAPIError(err.Error())
	}

	var timeoutErr *tavus.TimeoutError
	if errors.As(err, &timeoutErr) {
		return NewRemoteAPIError(err.Error())
	}

	return nil
}
