package filter

import "github.com/jhoicas/productos-api/internal/domain"

// Paginate filtra la colección con keep preservando el orden relativo, salta
// las primeras (currentPage-1)*itemsPerPage coincidencias y devuelve como
// máximo itemsPerPage elementos. currentPage e itemsPerPage deben ser >= 1;
// si no, devuelve domain.ErrInvalidPage. Una página fuera de rango no es un
// error: simplemente devuelve una página vacía.
func Paginate[T any](items []T, keep func(T) bool, currentPage, itemsPerPage int) ([]T, error) {
	if currentPage < 1 || itemsPerPage < 1 {
		return nil, domain.ErrInvalidPage
	}
	skip := (currentPage - 1) * itemsPerPage
	page := make([]T, 0, itemsPerPage)
	matched := 0
	for _, it := range items {
		if !keep(it) {
			continue
		}
		matched++
		if matched <= skip {
			continue
		}
		page = append(page, it)
		if len(page) == itemsPerPage {
			break
		}
	}
	return page, nil
}
