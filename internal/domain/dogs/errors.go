package dogs

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
)

const (
	msgNameType  = "name must be a string"
	msgBreed     = "breed must be one of the approved breeds"
	msgBreedType = "breed must be a string"
)

// FieldError describe qué campo falló la validación.
// errors.Is(err, ErrInvalidArgument) siempre es true.
type FieldError struct {
	Field   Field
	Message string
}

func (e *FieldError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidArgument, e.Field)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidArgument, e.Message)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidArgument
}
