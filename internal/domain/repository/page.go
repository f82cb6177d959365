package repository

// Page ventana de paginación de un listado. Viaja al backend como los query
// params limit/offset; los valores cero se omiten.
type Page struct {
	Limit  int
	Offset int
}
