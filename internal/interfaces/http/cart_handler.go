package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/sales"
)

// CartHandler carrito del cajero autenticado y checkout.
type CartHandler struct {
	carts *sales.CartService
}

// NewCartHandler construye el handler.
func NewCartHandler(carts *sales.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

func cartResponse(v sales.CartView) dto.CartResponse {
	return dto.ToCartResponse(v.Items, v.Totals)
}

// Get godoc
// @Summary      Carrito actual
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return c.JSON(cartResponse(h.carts.Get(GetUserID(c))))
}

// AddItem godoc
// @Summary      Agregar producto al carrito (suma 1 si ya está)
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "product_id"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	v, err := h.carts.AddItem(c.UserContext(), GetUserID(c), in.ProductID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(cartResponse(v))
}

// SetQuantity godoc
// @Summary      Fijar cantidad de una línea (0 la elimina)
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId  path  string                  true  "ID del producto"
// @Param        body       body  dto.SetQuantityRequest  true  "quantity"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/items/{productId} [put]
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	var in dto.SetQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	v, err := h.carts.SetQuantity(GetUserID(c), c.Params("productId"), in.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(cartResponse(v))
}

// RemoveItem godoc
// @Summary      Quitar una línea del carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	v, err := h.carts.RemoveItem(GetUserID(c), c.Params("productId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(cartResponse(v))
}

// Clear godoc
// @Summary      Vaciar el carrito
// @Tags         cart
// @Security     Bearer
// @Success      204
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	if err := h.carts.Clear(GetUserID(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Checkout godoc
// @Summary      Confirmar la venta del carrito
// @Description  Recalcula totales en servidor, descuenta stock y registra un movimiento por línea en una sola transacción.
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "discount, payment_method, customer_id"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/checkout [post]
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	sale, err := h.carts.Checkout(c.UserContext(), GetUserID(c), in.Discount, in.PaymentMethod, in.CustomerID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToSaleResponse(sale))
}
