package dto

// FilterByProperty es un filtro tal como viaja en la petición: nombre de la
// propiedad, valor sin tipar y nombre del operador (Contains, NotContains,
// Equals, GreaterThan, GreaterThanOrEqual, LessThan, LessThanOrEqual).
type FilterByProperty struct {
	Property   string `json:"property"`
	Value      any    `json:"value"`
	FilterType string `json:"filterType"`
}

// PaginationRequest paginación y filtros para el listado de productos.
// CurrentPage empieza en 1.
type PaginationRequest struct {
	ItemsPerPage int                `json:"itemsPerPage"`
	CurrentPage  int                `json:"currentPage"`
	Filters      []FilterByProperty `json:"filters"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
