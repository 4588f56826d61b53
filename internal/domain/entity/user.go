package entity

import "time"

// Roles de usuario de la farmacia.
const (
	RoleAdmin        = "admin"
	RoleFarmaceutico = "farmaceutico"
	RoleCajero       = "cajero"
)

// User usuario del sistema. El password se guarda como hash bcrypt.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
