package dto

import "time"

// CreateNegocioRequest alta de un negocio (tenant).
type CreateNegocioRequest struct {
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}

// NegocioResponse datos públicos del negocio.
type NegocioResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Telefono  string    `json:"telefono"`
	Direccion string    `json:"direccion"`
	CreatedAt time.Time `json:"created_at"`
}
