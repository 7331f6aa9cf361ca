package model

type Product struct {
	ID             int64   `json:"id" db:"id"`
	Codigo         string  `json:"codigo" db:"codigo"`
	Nombre         string  `json:"nombre" db:"nombre"`
	Descripcion    *string `json:"descripcion" db:"descripcion"`
	PrecioUnitario float64 `json:"precio_unitario" db:"precio_unitario"`
	Stock          int     `json:"stock" db:"stock"`
}
