package models

type Categoria struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}
