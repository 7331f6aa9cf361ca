package model

// Client is a customer invoices are issued to. Identificacion is the
// external lookup key, distinct from the generated ID.
type Client struct {
	ID             int64  `json:"id" db:"id"`
	Identificacion string `json:"identificacion" db:"identificacion"`
	Nombre         string `json:"nombre" db:"nombre"`
	Correo         string `json:"correo" db:"correo"`
	Telefono       string `json:"telefono" db:"telefono"`
}
