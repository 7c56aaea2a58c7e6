package dto

// CustomerResponse cliente encontrado por teléfono.
// ID va como string y DateOfBirth en RFC3339 por compatibilidad con la app de caja.
type CustomerResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	PhoneNumber string  `json:"phoneNumber"`
	Address     string  `json:"address"`
	DateOfBirth *string `json:"dateOfBirth"`
}
