package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=0,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// ListResponse página de un listado obtenido completo del backend.
type ListResponse[T any] struct {
	Items []T          `json:"items"`
	Page  PageResponse `json:"page"`
}

// Paginate recorta items a la página pedida. El backend no pagina: se corta en memoria.
func Paginate[T any](items []T, p PageRequest) ListResponse[T] {
	p.DefaultPage()
	total := len(items)
	start := p.Offset
	if start > total {
		start = total
	}
	end := start + p.Limit
	if end > total {
		end = total
	}
	page := items[start:end]
	if page == nil {
		page = []T{}
	}
	return ListResponse[T]{
		Items: page,
		Page:  PageResponse{Limit: p.Limit, Offset: p.Offset, Total: total},
	}
}

// ErrorResponse cuerpo de error HTTP. Fields lleva el mensaje de cada campo inválido;
// Redirect indica a dónde navegar (solo cuando hace falta iniciar sesión).
type ErrorResponse struct {
	Code     string            `json:"code"`
	Message  string            `json:"message"`
	Fields   map[string]string `json:"fields,omitempty"`
	Redirect string            `json:"redirect,omitempty"`
}

// MessageResponse respuesta correcta con el texto a mostrar y, opcionalmente, datos.
type MessageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
