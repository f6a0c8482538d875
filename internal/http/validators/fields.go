package validators

import (
	"fmt"
	"unicode/utf8"

	dto "taskflow.com/taskflow/internal/data_models"
	apperrors "taskflow.com/taskflow/internal/errors"
)

func notNull(field string, o dto.Optional[string]) error {
	if o.IsNull() {
		return apperrors.Validation(fmt.Sprintf("%s may not be null", field))
	}
	return nil
}

func maxLength(field string, o dto.Optional[string], limit int) error {
	if o.Value != nil && utf8.RuneCountInString(*o.Value) > limit {
		return apperrors.Validation(fmt.Sprintf("%s must be at most %d characters", field, limit))
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
