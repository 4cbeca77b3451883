package app

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/metinatakli/movie-service/api"
	"github.com/metinatakli/movie-service/internal/rpc"
	appvalidator "github.com/metinatakli/movie-service/internal/validator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ErrInternalServer     = "The server encountered a problem and could not process your request"
	ErrNotFound           = "The requested resource not found"
	ErrMethodNotAllowed   = "The method is not supported for this resource"
	ErrInvalidRequest     = "The request is invalid"
	ErrServiceUnavailable = "The movie service is unavailable"
	ErrServiceTimeout     = "The movie service did not respond in time"
	ErrIdMismatch         = "id in body does not match id in path"
)

func (app *Application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.contextGetLogger(r).Error(err.Error(), "method", method, "uri", uri)
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.ErrorResponse{
		Error:     message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, ErrNotFound)
}

func (app *Application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusMethodNotAllowed, ErrMethodNotAllowed)
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *Application) validationErrorResponse(w http.ResponseWriter, r *http.Request, message string, fieldErrs []api.ValidationError) {
	resp := api.ValidationErrorResponse{
		Error:            message,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
		ValidationErrors: fieldErrs,
	}

	err := app.writeJSON(w, http.StatusBadRequest, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// failedValidationResponse reports the result of validator.Struct.
func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.validationErrorResponse(w, r, ErrInvalidRequest, toApiValidationErrors(appvalidator.FieldErrors(err)))
}

// requestSchemaErrorResponse reports a request rejected by the OpenAPI document.
func (app *Application) requestSchemaErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.validationErrorResponse(w, r, ErrInvalidRequest, openapiValidationErrors(err))
}

func (app *Application) invalidParamResponse(w http.ResponseWriter, r *http.Request, err error) {
	var paramErr *api.InvalidParamFormatError
	if errors.As(err, &paramErr) {
		app.validationErrorResponse(w, r, ErrInvalidRequest, []api.ValidationError{
			{Field: paramErr.ParamName, Issue: paramErr.Err.Error()},
		})
		return
	}

	app.badRequestResponse(w, r, err)
}

// rpcErrorResponse maps a failed movie service call onto an HTTP status.
func (app *Application) rpcErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	st := status.Convert(err)

	switch st.Code() {
	case codes.NotFound:
		app.errorResponse(w, r, http.StatusNotFound, st.Message())
	case codes.InvalidArgument:
		fieldErrs := rpc.FieldViolations(st)
		if len(fieldErrs) == 0 {
			app.errorResponse(w, r, http.StatusBadRequest, st.Message())
			return
		}
		app.validationErrorResponse(w, r, st.Message(), toApiValidationErrors(fieldErrs))
	case codes.Unavailable:
		app.logError(r, err)
		app.errorResponse(w, r, http.StatusServiceUnavailable, ErrServiceUnavailable)
	case codes.DeadlineExceeded:
		app.logError(r, err)
		app.errorResponse(w, r, http.StatusGatewayTimeout, ErrServiceTimeout)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

func toApiValidationErrors(fieldErrs []appvalidator.FieldError) []api.ValidationError {
	validationErrs := make([]api.ValidationError, len(fieldErrs))

	for i, fe := range fieldErrs {
		validationErrs[i] = api.ValidationError{Field: fe.Field, Issue: fe.Issue}
	}

	return validationErrs
}

// openapiValidationErrors flattens the errors returned by
// openapi3filter.ValidateRequest into one entry per offending field.
func openapiValidationErrors(err error) []api.ValidationError {
	var multiErr openapi3.MultiError
	if errors.As(err, &multiErr) {
		var validationErrs []api.ValidationError
		for _, e := range multiErr {
			validationErrs = append(validationErrs, openapiValidationErrors(e)...)
		}
		return validationErrs
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		return []api.ValidationError{{
			Field: strings.Join(schemaErr.JSONPointer(), "."),
			Issue: schemaErr.Reason,
		}}
	}

	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) {
		field := ""
		if requestErr.Parameter != nil {
			field = requestErr.Parameter.Name
		}

		issue := requestErr.Reason
		if issue == "" && requestErr.Err != nil {
			issue = requestErr.Err.Error()
		}

		return []api.ValidationError{{Field: field, Issue: issue}}
	}

	return []api.ValidationError{{Issue: err.Error()}}
}
