package entity

import "time"

// Negocio tenant de la aplicación: todos los registros cuelgan de un negocio.
type Negocio struct {
	ID        string
	Nombre    string
	Email     string
	Telefono  string
	Direccion string
	CreatedAt time.Time
	UpdatedAt time.Time
}
