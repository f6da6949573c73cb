package rpc

import (
	"context"
	"errors"

	"github.com/Domenick1991/airseats/internal/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func Code(err error) codes.Code {
	switch {
	case err == nil:
		return codes.OK
	case errors.Is(err, domain.ErrValidation):
		return codes.InvalidArgument
	case errors.Is(err, domain.ErrSeatAlreadyReserved):
		return codes.AlreadyExists
	case errors.Is(err, domain.ErrSeatNotFound),
		errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrFlightNotFound):
		return codes.NotFound
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	default:
		return codes.Internal
	}
}

// Error converts a service error into a gRPC status error. Internal errors
// keep their detail out of the response.
func Error(err error) error {
	if err == nil {
		return nil
	}
	code := Code(err)
	if code == codes.Internal {
		return status.Error(code, "internal error")
	}
	return status.Error(code, err.Error())
}
