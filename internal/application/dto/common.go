package dto

// PageRequest ventana de paginación pedida por query string en los listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage normaliza la ventana: límite en (0, 100], offset no negativo.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página que acompañan a un listado. Count es la
// cantidad de elementos devueltos en esta página (el total lo conoce el
// backend, no el gateway).
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
}

// Paged envoltorio de listado paginado.
type Paged[T any] struct {
	Data []T          `json:"data"`
	Page PageResponse `json:"page"`
}

// NewPaged arma la respuesta de un listado ya consultado. Un slice nil se
// serializa como [] y no como null.
func NewPaged[T any](items []T, req PageRequest) Paged[T] {
	if items == nil {
		items = []T{}
	}
	return Paged[T]{
		Data: items,
		Page: PageResponse{Limit: req.Limit, Offset: req.Offset, Count: len(items)},
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
