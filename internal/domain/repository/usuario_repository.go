package repository

import "github.com/tu-usuario/gestion-pyme/internal/domain/entity"

// UsuarioRepository puerto de persistencia para Usuario.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	FindByEmail(email string) (*entity.Usuario, error)
}
