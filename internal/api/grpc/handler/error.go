package handler

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Jack-Berry/UMC-Back/internal/model"
)

func handleError(err error) error {
	switch {
	case errors.Is(err, model.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, model.ErrForbidden):
		return status.Error(codes.PermissionDenied, "forbidden")
	case errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, model.ErrIntegrity):
		return status.Error(codes.DataLoss, "message integrity check failed")
	case errors.Is(err, model.ErrTransientStore):
		return status.Error(codes.Unavailable, "store temporarily unavailable")
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
