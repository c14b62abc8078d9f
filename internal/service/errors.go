package service

import (
	apperrors "github.com/ecodive/backoffice-server-go/internal/errors"
	"github.com/ecodive/backoffice-server-go/internal/model"
	"github.com/ecodive/backoffice-server-go/internal/util"
)

// validationFailed reports the first violation as the message and all of
// them as details.
func validationFailed(violations []util.FieldViolation) error {
	return apperrors.ValidationError(violations[0].Message).WithDetails(violations)
}

func validate(v any) error {
	if violations := util.ValidateStruct(v); len(violations) > 0 {
		return validationFailed(violations)
	}
	return nil
}

func requireActor(actor *model.SanitizedAccount) error {
	if actor == nil {
		return apperrors.Unauthorized("Authentication required")
	}
	return nil
}
