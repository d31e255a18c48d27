package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Cualquier otro error que llegue a la capa HTTP es un fallo del almacén (StoreFailure)
// y se propaga sin modificar.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
)
