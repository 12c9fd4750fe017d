package dto

import "time"

// RegisterRequest alta de usuario dentro de un negocio existente.
type RegisterRequest struct {
	NegocioID string `json:"negocio_id"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Nombre    string `json:"nombre"`
}

// UsuarioResponse usuario sin campos sensibles.
type UsuarioResponse struct {
	ID        string    `json:"id"`
	NegocioID string    `json:"negocio_id"`
	Email     string    `json:"email"`
	Nombre    string    `json:"nombre"`
	Estado    string    `json:"estado"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token JWT + datos del usuario.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
