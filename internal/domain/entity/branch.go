package entity

// Branch representa una sucursal física (óptica) identificada por un código corto, p. ej. "TBB".
// Dato de referencia inmutable.
type Branch struct {
	ID   int64
	Code string // único
	Name string
}
