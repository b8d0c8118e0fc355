package sales

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/pos"
)

// ProductFinder lookup de catálogo que necesita el carrito.
type ProductFinder interface {
	FindProduct(ctx context.Context, productID string) (*entity.Product, error)
}

// CartService un carrito por cajero (clave: id de usuario).
// Mientras un checkout está en curso el carrito de ese cajero no acepta cambios ni otro checkout.
type CartService struct {
	mu       sync.Mutex
	carts    map[string]*pos.Cart
	busy     map[string]bool
	catalog  ProductFinder
	checkout *CheckoutUseCase
}

// NewCartService construye el servicio de carritos.
func NewCartService(catalog ProductFinder, checkout *CheckoutUseCase) *CartService {
	return &CartService{
		carts:    make(map[string]*pos.Cart),
		busy:     make(map[string]bool),
		catalog:  catalog,
		checkout: checkout,
	}
}

func (s *CartService) cart(userID string) *pos.Cart {
	c, ok := s.carts[userID]
	if !ok {
		c = pos.NewCart()
		s.carts[userID] = c
	}
	return c
}

// editable carrito del usuario si no hay un cobro en curso. Llamar con s.mu tomado.
func (s *CartService) editable(userID string) (*pos.Cart, error) {
	if s.busy[userID] {
		return nil, domain.ErrCheckoutInProgress
	}
	return s.cart(userID), nil
}

// CartView líneas del carrito y sus totales sin descuento.
type CartView struct {
	Items  []entity.SaleItem
	Totals pos.Totals
}

func view(c *pos.Cart) CartView {
	t, _ := c.ComputeTotals(decimal.Zero)
	return CartView{Items: c.Items(), Totals: t}
}

// Get carrito actual del usuario.
func (s *CartService) Get(userID string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return view(s.cart(userID))
}

// AddItem agrega una unidad del producto al precio vigente. Producto inactivo = no encontrado.
func (s *CartService) AddItem(ctx context.Context, userID, productID string) (CartView, error) {
	p, err := s.catalog.FindProduct(ctx, productID)
	if err != nil {
		return CartView{}, err
	}
	if !p.IsActive {
		return CartView{}, domain.NewNotFound("producto", productID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.editable(userID)
	if err != nil {
		return CartView{}, err
	}
	c.AddItem(p)
	return view(c), nil
}

// SetQuantity fija la cantidad de una línea (0 la elimina).
func (s *CartService) SetQuantity(userID, productID string, qty int) (CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.editable(userID)
	if err != nil {
		return CartView{}, err
	}
	if err := c.SetQuantity(productID, qty); err != nil {
		return CartView{}, err
	}
	return view(c), nil
}

// RemoveItem quita la línea del producto.
func (s *CartService) RemoveItem(userID, productID string) (CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.editable(userID)
	if err != nil {
		return CartView{}, err
	}
	c.RemoveItem(productID)
	return view(c), nil
}

// Clear vacía el carrito.
func (s *CartService) Clear(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy[userID] {
		return domain.ErrCheckoutInProgress
	}
	delete(s.carts, userID)
	return nil
}

// Checkout confirma el carrito del usuario. El carrito se vacía solo si el commit fue exitoso;
// durante el commit el carrito queda bloqueado, así que lo vaciado es exactamente lo vendido.
func (s *CartService) Checkout(ctx context.Context, userID string, discount decimal.Decimal, paymentMethod, customerID string) (*entity.Sale, error) {
	s.mu.Lock()
	if s.busy[userID] {
		s.mu.Unlock()
		return nil, domain.ErrCheckoutInProgress
	}
	s.busy[userID] = true
	items := s.cart(userID).Items()
	s.mu.Unlock()

	sale, err := s.checkout.Checkout(ctx, CheckoutInput{
		Items:         items,
		Discount:      discount,
		PaymentMethod: paymentMethod,
		CashierID:     userID,
		CustomerID:    customerID,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.busy, userID)
	if err != nil {
		return nil, err
	}
	s.cart(userID).Clear()
	return sale, nil
}
