package dto

// SearchRequest filtro de búsqueda por nombre para listados.
type SearchRequest struct {
	Search string `query:"search" validate:"omitempty,max=200"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// LookupResponse par id/nombre para catálogos simples (clientes, vendedores, formas de pago).
type LookupResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}
