package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/auth"
	"github.com/jhoicas/pos-api/internal/application/catalog"
	"github.com/jhoicas/pos-api/internal/application/inventory"
	"github.com/jhoicas/pos-api/internal/application/reports"
	"github.com/jhoicas/pos-api/internal/application/sales"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/domain/security"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	Catalog       *catalog.UseCase
	Carts         *sales.CartService
	History       *sales.HistoryUseCase
	AdjustStock   *inventory.AdjustStockUseCase
	Replenishment *inventory.ReplenishmentUseCase
	Reports       *reports.UseCase
	UserUC        *usecase.UserUseCase
	CategoryUC    *usecase.CategoryUseCase
	CustomerUC    *usecase.CustomerUseCase
	Policy        security.Policy
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	policy := deps.Policy
	if policy == nil {
		policy = security.DefaultPolicy()
	}
	can := func(c security.Capability) fiber.Handler { return RequireCapability(policy, c) }

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	// Catálogo
	productHandler := NewProductHandler(deps.Catalog)
	products := protected.Group("/products")
	products.Get("/", can(security.CapProductsRead), productHandler.Search)
	products.Post("/sync", can(security.CapProductsWrite), productHandler.Sync)
	products.Get("/:id", can(security.CapProductsRead), productHandler.GetByID)
	products.Post("/", can(security.CapProductsWrite), productHandler.Create)
	products.Put("/:id", can(security.CapProductsWrite), productHandler.Update)
	products.Delete("/:id", can(security.CapProductsWrite), productHandler.Delete)

	// Carrito y checkout
	cartHandler := NewCartHandler(deps.Carts)
	cart := protected.Group("/cart", can(security.CapSell))
	cart.Get("/", cartHandler.Get)
	cart.Delete("/", cartHandler.Clear)
	cart.Post("/items", cartHandler.AddItem)
	cart.Put("/items/:productId", cartHandler.SetQuantity)
	cart.Delete("/items/:productId", cartHandler.RemoveItem)
	protected.Post("/checkout", can(security.CapSell), cartHandler.Checkout)

	// Ventas
	saleHandler := NewSaleHandler(deps.History)
	salesGroup := protected.Group("/sales", can(security.CapSalesRead))
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)

	// Inventario
	inventoryHandler := NewInventoryHandler(deps.AdjustStock, deps.Replenishment)
	inv := protected.Group("/inventory")
	inv.Post("/adjustments", can(security.CapInventoryAdjust), inventoryHandler.Adjust)
	inv.Get("/movements", can(security.CapInventoryRead), inventoryHandler.Movements)
	inv.Get("/replenishment", can(security.CapInventoryRead), inventoryHandler.Replenishment)
	inv.Get("/products", can(security.CapInventoryRead), productHandler.ListAll)
	inv.Get("/low-stock", can(security.CapInventoryRead), productHandler.LowStock)

	// Reportes
	reportHandler := NewReportHandler(deps.Reports)
	rep := protected.Group("/reports", can(security.CapReportsRead))
	rep.Get("/sales-summary", reportHandler.SalesSummary)
	rep.Get("/daily-revenue", reportHandler.DailyRevenue)
	rep.Get("/top-products", reportHandler.TopProducts)
	rep.Get("/inventory", reportHandler.Inventory)

	// Clientes
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers := protected.Group("/customers")
	customers.Get("/", can(security.CapSell), customerHandler.List)
	customers.Get("/:id", can(security.CapSell), customerHandler.GetByID)
	customers.Post("/", can(security.CapCustomersManage), customerHandler.Create)

	// Categorías: lectura para cualquiera que vea el catálogo
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories := protected.Group("/categories")
	categories.Get("/", can(security.CapProductsRead), categoryHandler.List)
	categories.Post("/", can(security.CapCategoriesManage), categoryHandler.Create)
	categories.Put("/:id", can(security.CapCategoriesManage), categoryHandler.Update)

	// Usuarios (admin)
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users", can(security.CapUsersManage))
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
}
