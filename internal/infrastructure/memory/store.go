// Package memory implementa el store autoritativo del POS en memoria.
//
// Un único escritor lógico: todas las lecturas y escrituras toman el mismo mutex.
// Las operaciones compuestas (venta, ajuste de stock) se ejecutan con Run/RunSale sobre
// una copia del estado que solo reemplaza al estado vivo si el callback termina sin error.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/pos-api/internal/application/inventory"
	"github.com/jhoicas/pos-api/internal/application/sales"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var (
	_ inventory.TxRunner = (*Store)(nil)
	_ sales.TxRunner     = (*Store)(nil)
)

// state colecciones en orden de alta.
type state struct {
	products   []*entity.Product
	sales      []*entity.Sale
	movements  []*entity.StockMovement
	users      []*entity.User
	categories []*entity.Category
	customers  []*entity.Customer
}

func (st *state) clone() *state {
	c := &state{
		products:   make([]*entity.Product, len(st.products)),
		sales:      make([]*entity.Sale, len(st.sales)),
		movements:  make([]*entity.StockMovement, len(st.movements)),
		users:      make([]*entity.User, len(st.users)),
		categories: make([]*entity.Category, len(st.categories)),
		customers:  make([]*entity.Customer, len(st.customers)),
	}
	for i, p := range st.products {
		c.products[i] = copyProduct(p)
	}
	// ventas y movimientos son inmutables: se comparten los punteros
	copy(c.sales, st.sales)
	copy(c.movements, st.movements)
	for i, u := range st.users {
		uu := *u
		c.users[i] = &uu
	}
	for i, cat := range st.categories {
		cc := *cat
		c.categories[i] = &cc
	}
	for i, cu := range st.customers {
		cc := *cu
		c.customers[i] = &cc
	}
	return c
}

// Store contenedor de estado. El valor cero no es usable; usar New.
type Store struct {
	mu  sync.Mutex
	st  *state
	now func() time.Time
}

// Option configura el Store.
type Option func(*Store)

// WithClock fija el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New crea un store vacío.
func New(opts ...Option) *Store {
	s := &Store{st: &state{}, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// view ata los repos al estado vivo (con bloqueo) o a la copia de una transacción.
type view struct {
	store *Store
	tx    *state // nil fuera de transacción
}

func (v view) read(fn func(st *state)) {
	if v.tx != nil {
		fn(v.tx)
		return
	}
	v.store.mu.Lock()
	defer v.store.mu.Unlock()
	fn(v.store.st)
}

func (v view) write(fn func(st *state) error) error {
	if v.tx != nil {
		return fn(v.tx)
	}
	v.store.mu.Lock()
	defer v.store.mu.Unlock()
	// escritura suelta: también todo o nada
	next := v.store.st.clone()
	if err := fn(next); err != nil {
		return err
	}
	v.store.st = next
	return nil
}

func (v view) now() time.Time {
	return v.store.now().UTC()
}

func (s *Store) live() view { return view{store: s} }

// Products repositorio de productos sobre el estado vivo.
// No usar dentro de un callback de Run/RunSale: usar los repos que recibe el callback.
func (s *Store) Products() repository.ProductRepository { return &productRepo{v: s.live()} }

// Sales repositorio de ventas sobre el estado vivo.
func (s *Store) Sales() repository.SaleRepository { return &saleRepo{v: s.live()} }

// Movements repositorio de movimientos de stock sobre el estado vivo.
func (s *Store) Movements() repository.StockMovementRepository { return &movementRepo{v: s.live()} }

// Users repositorio de usuarios sobre el estado vivo.
func (s *Store) Users() repository.UserRepository { return &userRepo{v: s.live()} }

// Categories repositorio de categorías sobre el estado vivo.
func (s *Store) Categories() repository.CategoryRepository { return &categoryRepo{v: s.live()} }

// Customers repositorio de clientes sobre el estado vivo.
func (s *Store) Customers() repository.CustomerRepository { return &customerRepo{v: s.live()} }

// commit ejecuta fn sobre una copia del estado y la publica solo si fn no falla.
func (s *Store) commit(ctx context.Context, fn func(v view) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.st.clone()
	if err := fn(view{store: s, tx: next}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.st = next
	return nil
}

// Run ejecuta un ajuste de stock (producto + movimiento) como una sola unidad.
func (s *Store) Run(ctx context.Context, fn func(
	products repository.ProductRepository,
	movements repository.StockMovementRepository,
) error) error {
	return s.commit(ctx, func(v view) error {
		return fn(&productRepo{v: v}, &movementRepo{v: v})
	})
}

// RunSale ejecuta un checkout (venta + stock + movimientos + cliente) como una sola unidad.
func (s *Store) RunSale(ctx context.Context, fn func(
	products repository.ProductRepository,
	sales repository.SaleRepository,
	movements repository.StockMovementRepository,
	customers repository.CustomerRepository,
) error) error {
	return s.commit(ctx, func(v view) error {
		return fn(&productRepo{v: v}, &saleRepo{v: v}, &movementRepo{v: v}, &customerRepo{v: v})
	})
}
