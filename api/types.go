package api

import "time"

type Movie struct {
	Id    string `json:"id"`
	Title string `json:"title"`
	Genre string `json:"genre"`
}

type MovieInput struct {
	Title string `json:"title" validate:"notblank"`
	Genre string `json:"genre" validate:"notblank"`
}

// UpdateMovieInput accepts an optional id, which must match the path when present.
type UpdateMovieInput struct {
	Id    *string `json:"id,omitempty"`
	Title string  `json:"title" validate:"notblank"`
	Genre string  `json:"genre" validate:"notblank"`
}

type DeleteMovieResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error     string    `json:"error"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Error            string            `json:"error"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	RpcStatus  string     `json:"rpcStatus"`
	SystemInfo SystemInfo `json:"systemInfo"`
}
