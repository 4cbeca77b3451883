package rpc

import (
	"errors"
	"strings"

	"github.com/metinatakli/movie-service/internal/domain"
	appvalidator "github.com/metinatakli/movie-service/internal/validator"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ErrMovieNotFound  = "movie not found"
	ErrInternalServer = "internal error"
)

// validate returns an InvalidArgument status carrying one BadRequest field
// violation per failed rule.
func (s *MovieService) validate(input any) error {
	err := s.validator.Struct(input)
	if err == nil {
		return nil
	}

	fieldErrs := appvalidator.FieldErrors(err)

	violations := make([]*errdetails.BadRequest_FieldViolation, 0, len(fieldErrs))
	issues := make([]string, 0, len(fieldErrs))

	for _, fe := range fieldErrs {
		violations = append(violations, &errdetails.BadRequest_FieldViolation{
			Field:       fe.Field,
			Description: fe.Issue,
		})
		issues = append(issues, fe.Field+" "+fe.Issue)
	}

	st := status.New(codes.InvalidArgument, "invalid movie: "+strings.Join(issues, ", "))

	detailed, detailErr := st.WithDetails(&errdetails.BadRequest{FieldViolations: violations})
	if detailErr != nil {
		return st.Err()
	}

	return detailed.Err()
}

// storeError maps repository failures onto gRPC codes. Only ErrRecordNotFound
// is expected; anything else is an internal error whose cause stays in the logs.
func storeError(err error) error {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		return status.Error(codes.NotFound, ErrMovieNotFound)
	default:
		return &internalError{cause: err}
	}
}

// internalError hides its cause from callers while keeping it for logging.
type internalError struct {
	cause error
}

func (e *internalError) Error() string {
	return e.cause.Error()
}

func (e *internalError) Unwrap() error {
	return e.cause
}

func (e *internalError) GRPCStatus() *status.Status {
	return status.New(codes.Internal, ErrInternalServer)
}

// FieldViolations extracts the BadRequest details attached by the service.
func FieldViolations(st *status.Status) []appvalidator.FieldError {
	var fieldErrs []appvalidator.FieldError

	for _, detail := range st.Details() {
		badRequest, ok := detail.(*errdetails.BadRequest)
		if !ok {
			continue
		}

		for _, v := range badRequest.GetFieldViolations() {
			fieldErrs = append(fieldErrs, appvalidator.FieldError{
				Field: v.GetField(),
				Issue: v.GetDescription(),
			})
		}
	}

	return fieldErrs
}
