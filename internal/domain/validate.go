package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks that every required business field of the showtime is
// present. The returned error matches ErrValidation under errors.Is.
func (s Showtime) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
