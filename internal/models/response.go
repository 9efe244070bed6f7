package models

// ApiResponse is the uniform result envelope every orchestrated flow
// returns. StatusCode doubles as the HTTP status the controller writes.
type ApiResponse[T any] struct {
	IsSuccessful bool   `json:"isSuccessful"`
	Message      string `json:"message"`
	StatusCode   int    `json:"statusCode"`
	Data         T      `json:"data,omitempty"`
}

func Success[T any](statusCode int, message string, data T) *ApiResponse[T] {
	return &ApiResponse[T]{
		IsSuccessful: true,
		Message:      message,
		StatusCode:   statusCode,
		Data:         data,
	}
}

func Failure[T any](statusCode int, message string) *ApiResponse[T] {
	return &ApiResponse[T]{
		IsSuccessful: false,
		Message:      message,
		StatusCode:   statusCode,
	}
}

// FailureWith carries data on a failed envelope, e.g. an empty slice on a
// no-results search so clients always see a list.
func FailureWith[T any](statusCode int, message string, data T) *ApiResponse[T] {
	resp := Failure[T](statusCode, message)
	resp.Data = data
	return resp
}
