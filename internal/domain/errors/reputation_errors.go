package errors

import (
	apperrors "github.com/ecologicaleaving/wikigaialab/pkg/errors"
)

var (
	ErrZeroPointsChange = apperrors.InvalidArgument("Points change must not be zero", nil)
	ErrEmptyReason      = apperrors.InvalidArgument("Reason is required", nil)
)
