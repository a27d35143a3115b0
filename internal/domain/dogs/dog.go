package dogs

import (
	"errors"
	"fmt"
	"sync"

	"dog-records/internal/platform/validator"
)

const ruleApprovedBreed = "approved_breed"

// engine se construye una sola vez; después es de solo lectura.
var engine = sync.OnceValues(func() (*validator.Validator, error) {
	return validator.New(
		validator.WithRule(ruleApprovedBreed, "{0} must be one of the approved breeds", func(s string) bool {
			return IsApprovedBreed(Breed(s))
		}),
	)
})

type attrs struct {
	Name  string `field:"name" validate:"min=1,max=25"`
	Breed Breed  `field:"breed" validate:"approved_breed"`
}

// Dog es un registro con nombre y raza siempre válidos.
// No es seguro para mutación concurrente de la misma instancia.
type Dog struct {
	attrs attrs
}

type Option func(*attrs)

func WithName(name string) Option {
	return func(a *attrs) { a.Name = name }
}

func WithBreed(breed Breed) Option {
	return func(a *attrs) { a.Breed = breed }
}

// New crea un Dog; sin opciones usa DefaultName y DefaultBreed.
// Si algún valor es inválido devuelve nil y un error ErrInvalidArgument.
func New(opts ...Option) (*Dog, error) {
	a := attrs{
		Name:  DefaultName,
		Breed: DefaultBreed,
	}
	for _, opt := range opts {
		opt(&a)
	}

	if err := validate(a); err != nil {
		return nil, err
	}
	return &Dog{attrs: a}, nil
}

func (d *Dog) Name() string { return d.attrs.Name }
func (d *Dog) Breed() Breed { return d.attrs.Breed }

func (d *Dog) String() string {
	return fmt.Sprintf("%s (%s)", d.attrs.Name, d.attrs.Breed)
}

func (d *Dog) SetName(name string) error {
	next := d.attrs
	next.Name = name
	return d.commit(next)
}

func (d *Dog) SetBreed(breed Breed) error {
	next := d.attrs
	next.Breed = breed
	return d.commit(next)
}

// Set asigna un campo por nombre a partir de un valor arbitrario.
// Un tipo incorrecto (p.ej. un int para name) es ErrInvalidArgument.
func (d *Dog) Set(field Field, value any) error {
	switch field {
	case FieldName:
		name, ok := value.(string)
		if !ok {
			return &FieldError{Field: FieldName, Message: msgNameType}
		}
		return d.SetName(name)
	case FieldBreed:
		switch b := value.(type) {
		case Breed:
			return d.SetBreed(b)
		case string:
			return d.SetBreed(Breed(b))
		default:
			return &FieldError{Field: FieldBreed, Message: msgBreedType}
		}
	default:
		return &FieldError{Field: field, Message: fmt.Sprintf("unknown field %q", field)}
	}
}

// commit valida antes de escribir: si falla, el estado previo queda intacto.
func (d *Dog) commit(next attrs) error {
	if err := validate(next); err != nil {
		return err
	}
	d.attrs = next
	return nil
}

func validate(a attrs) error {
	v, err := engine()
	if err != nil {
		return err
	}

	err = v.Validate(a)
	if err == nil {
		return nil
	}

	var verr validator.ValidationError
	if !errors.As(err, &verr) {
		return err
	}

	// Orden estable: name antes que breed.
	for _, f := range []Field{FieldName, FieldBreed} {
		if msg, ok := verr[string(f)]; ok {
			return &FieldError{Field: f, Message: msg}
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidArgument, verr.Error())
}
