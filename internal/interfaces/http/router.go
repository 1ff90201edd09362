package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/productos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	ProviderUC *usecase.ProviderUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products: CRUD con borrado lógico; el listado va por POST /search
	// porque la petición lleva cuerpo (paginación + filtros).
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/search", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", productHandler.AddOrUpdate)
	products.Put("/", productHandler.AddOrUpdate)
	products.Delete("/:id", productHandler.Delete)

	// Providers: solo lectura (datos de referencia).
	providers := api.Group("/providers")
	providerHandler := NewProviderHandler(deps.ProviderUC)
	providers.Get("/", providerHandler.List)
	providers.Get("/:id", providerHandler.GetByID)
}
