// Package id genera los identificadores de todas las entidades del POS.
// UUIDv7 lleva el timestamp en los primeros 48 bits: los ids ordenan por creación
// y nunca se repiten dentro de una ejecución.
package id

import "github.com/google/uuid"

// New genera un UUIDv7 en formato texto.
func New() string {
	v, err := uuid.NewV7()
	if err != nil {
		// Fallback a V4 si falla la fuente de tiempo/aleatoriedad
		return uuid.NewString()
	}
	return v.String()
}

// Valid indica si s es un UUID bien formado.
func Valid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
