package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/catalog"
	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// ProductHandler catálogo de productos (protegido).
type ProductHandler struct {
	uc *catalog.UseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *catalog.UseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Search godoc
// @Summary      Buscar productos activos
// @Description  Búsqueda por nombre/SKU sin distinguir acentos ni mayúsculas, o por código de barras.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "Texto de búsqueda"
// @Param        category  query  string  false  "Categoría (all = todas)"
// @Param        limit     query  int     false  "Límite"  default(20)
// @Success      200  {array}   dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	list, err := h.uc.ListActiveProducts(c.UserContext(), catalog.ProductFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Limit:    c.QueryInt("limit", catalog.DefaultSearchLimit),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToProductList(list))
}

// GetByID godoc
// @Summary      Obtener producto activo por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	p, err := h.uc.FindProduct(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToProductResponse(p))
}

// ListAll godoc
// @Summary      Catálogo completo (incluye inactivos)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/inventory/products [get]
func (h *ProductHandler) ListAll(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToProductList(list))
}

// LowStock godoc
// @Summary      Productos en o bajo su stock mínimo
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/inventory/low-stock [get]
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	list, err := h.uc.LowStock(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToProductList(list))
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	out, err := h.uc.Create(c.UserContext(), &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Cost:        in.Cost,
		SKU:         in.SKU,
		Barcode:     in.Barcode,
		Category:    in.Category,
		Stock:       in.Stock,
		MinStock:    in.MinStock,
		IsActive:    active,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToProductResponse(out))
}

// Update godoc
// @Summary      Actualizar producto (el stock solo cambia con ajustes)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in.Patch())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToProductResponse(out))
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Param        id   path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Sync godoc
// @Summary      Reemplazar el catálogo local con el del backend remoto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]int
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products/sync [post]
func (h *ProductHandler) Sync(c *fiber.Ctx) error {
	n, err := h.uc.SyncFromRemote(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"synced": n})
}
