package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Sales-api/internal/application/sales"
	"github.com/jhoicas/Sales-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName string
	BasePath    string // prefijo de la API, p. ej. "/api"
	SalesUC     *sales.SalesUseCase
	CatalogUC   *usecase.CatalogUseCase
	DB          Pinger
	// OpenAPIDoc devuelve el documento swagger; nil deshabilita /swagger.json.
	OpenAPIDoc func() (string, error)
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", HealthHandler(deps.ServiceName, deps.DB))
	if deps.OpenAPIDoc != nil {
		app.Get("/swagger.json", func(c *fiber.Ctx) error {
			doc, err := deps.OpenAPIDoc()
			if err != nil {
				return err
			}
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
			return c.SendString(doc)
		})
	}

	api := app.Group(deps.BasePath)

	salesGroup := api.Group("/sales")
	salesHandler := NewSalesHandler(deps.SalesUC, deps.BasePath)
	salesGroup.Get("/", salesHandler.List)
	salesGroup.Post("/", salesHandler.Create)
	salesGroup.Get("/:id", salesHandler.GetByID)
	salesGroup.Put("/:id", salesHandler.Update)
	salesGroup.Delete("/:id", salesHandler.Delete)

	// Catálogo de solo lectura: claves naturales aceptadas por POST /sales
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/stores", catalogHandler.ListStores)
	api.Get("/products", catalogHandler.ListProducts)
	api.Get("/customers", catalogHandler.ListCustomers)
}
