package entity

import "time"

// Customer representa un cliente de la óptica. El teléfono es la llave natural de búsqueda.
type Customer struct {
	ID          int64
	Name        string
	PhoneNumber string
	Address     string
	DateOfBirth *time.Time // solo fecha; nil si no se conoce
}
