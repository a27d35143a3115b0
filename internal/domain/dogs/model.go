package dogs

import (
	"slices"

	"github.com/samber/lo"
)

// Breed es una raza de perro aprobada.
type Breed string

const (
	BreedMastiff       Breed = "Mastiff"
	BreedChihuahua     Breed = "Chihuahua"
	BreedCorgi         Breed = "Corgi"
	BreedSharPei       Breed = "Shar Pei"
	BreedBeagle        Breed = "Beagle"
	BreedFrenchBulldog Breed = "French Bulldog"
	BreedPug           Breed = "Pug"
	BreedPointer       Breed = "Pointer"
)

// approvedBreeds es de solo lectura; no mutar.
var approvedBreeds = []Breed{
	BreedMastiff,
	BreedChihuahua,
	BreedCorgi,
	BreedSharPei,
	BreedBeagle,
	BreedFrenchBulldog,
	BreedPug,
	BreedPointer,
}

const (
	DefaultName  = "Fido"
	DefaultBreed = BreedMastiff

	MinNameLength = 1
	MaxNameLength = 25
)

// Field identifica un atributo asignable de Dog.
type Field string

const (
	FieldName  Field = "name"
	FieldBreed Field = "breed"
)

// ApprovedBreeds devuelve una copia de la lista, en orden.
func ApprovedBreeds() []Breed {
	return slices.Clone(approvedBreeds)
}

// IsApprovedBreed compara por igualdad exacta (case-sensitive, sin normalizar).
func IsApprovedBreed(b Breed) bool {
	return lo.Contains(approvedBreeds, b)
}

func ParseBreed(s string) (Breed, error) {
	b := Breed(s)
	if !IsApprovedBreed(b) {
		return "", &FieldError{Field: FieldBreed, Message: msgBreed}
	}
	return b, nil
}
