package serverutils

import "time"

type ApiSuccessResponse[T any] struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      T      `json:"data"`
	Timestamp string `json:"timestamp"`
}

type ApiErrorResponse struct {
	Error     bool   `json:"error"`
	Message   string `json:"message"`
	Code      string `json:"code"`
	Timestamp string `json:"timestamp"`
}

func SuccessResponse[T any](message string, data T) ApiSuccessResponse[T] {
	return ApiSuccessResponse[T]{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func ErrorResponse(code string, message string) ApiErrorResponse {
	return ApiErrorResponse{
		Error:     true,
		Message:   message,
		Code:      code,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
