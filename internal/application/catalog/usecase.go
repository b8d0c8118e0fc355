// Package catalog resuelve productos para el carrito y administra el catálogo.
// Las escrituras se confirman localmente y luego se replican al backend remoto (si existe).
package catalog

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// DefaultSearchLimit máximo de resultados de búsqueda si no se indica otro.
const DefaultSearchLimit = 20

// ProductFilter filtro de ListActiveProducts. Category vacía o "all" = todas.
type ProductFilter struct {
	Search   string
	Category string
	Limit    int
}

// UseCase catálogo de productos.
type UseCase struct {
	repo   repository.ProductRepository
	remote ProductAPI // nil = solo local
	log    *logger.Logger
}

// NewUseCase construye el caso de uso. remote puede ser nil.
func NewUseCase(repo repository.ProductRepository, remote ProductAPI, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{repo: repo, remote: remote, log: log.Component("catalog")}
}

// FindProduct busca un producto por id. NotFoundError si no existe.
func (uc *UseCase) FindProduct(ctx context.Context, productID string) (*entity.Product, error) {
	p, err := uc.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NewNotFound("producto", productID)
	}
	return p, nil
}

// ListActiveProducts productos activos que cumplen el filtro, en orden de alta.
func (uc *UseCase) ListActiveProducts(ctx context.Context, f ProductFilter) ([]*entity.Product, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	term := strings.TrimSpace(f.Search)
	out := make([]*entity.Product, 0, limit)
	for _, p := range all {
		if !p.IsActive || !matches(p, term) {
			continue
		}
		if f.Category != "" && f.Category != "all" && p.Category != f.Category {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// List catálogo completo, incluidos inactivos (administración).
func (uc *UseCase) List(ctx context.Context) ([]*entity.Product, error) {
	return uc.repo.List(ctx)
}

// LowStock productos activos con stock en o bajo el mínimo.
func (uc *UseCase) LowStock(ctx context.Context) ([]*entity.Product, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*entity.Product
	for _, p := range all {
		if p.IsActive && p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out, nil
}

func validateProduct(p *entity.Product) error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return domain.NewValidation("name", "el nombre es obligatorio")
	case strings.TrimSpace(p.SKU) == "":
		return domain.NewValidation("sku", "el SKU es obligatorio")
	case p.Price.IsNegative():
		return domain.NewValidation("price", "el precio no puede ser negativo")
	case p.Cost.IsNegative():
		return domain.NewValidation("cost", "el costo no puede ser negativo")
	case p.Stock < 0:
		return domain.NewValidation("stock", "el stock no puede ser negativo")
	case p.MinStock < 0:
		return domain.NewValidation("min_stock", "el stock mínimo no puede ser negativo")
	}
	return nil
}

// Create valida, confirma localmente y luego replica el alta con el id local.
// Un fallo remoto solo se registra; un alta local fallida no llega al backend remoto.
func (uc *UseCase) Create(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.SKU = strings.TrimSpace(p.SKU)
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetBySKU(ctx, p.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	if uc.remote != nil {
		remoteID, err := uc.remote.CreateProduct(ctx, p)
		switch {
		case err != nil:
			uc.persistenceFailed("createProduct", err)
		case remoteID != "" && remoteID != p.ID:
			uc.log.Warn().Str("product_id", p.ID).Str("remote_id", remoteID).
				Msg("el backend remoto asignó otro id; se conserva el local")
		}
	}
	return p, nil
}

// Update aplica el patch sobre el producto vigente en una sola escritura y lo replica.
// Stock no se edita por aquí: el valor guardado es el que dejó el último checkout o ajuste.
func (uc *UseCase) Update(ctx context.Context, productID string, patch entity.ProductPatch) (*entity.Product, error) {
	patch.Stock = nil
	p, err := uc.repo.Patch(ctx, productID, func(p *entity.Product) error {
		patch.Apply(p)
		p.Name = strings.TrimSpace(p.Name)
		p.SKU = strings.TrimSpace(p.SKU)
		return validateProduct(p)
	})
	if err != nil {
		return nil, err
	}
	uc.mirror("updateProduct", func() error { return uc.remote.UpdateProduct(ctx, p) })
	return p, nil
}

// Delete baja local y luego remota.
func (uc *UseCase) Delete(ctx context.Context, productID string) error {
	if err := uc.repo.Delete(ctx, productID); err != nil {
		return err
	}
	uc.mirror("deleteProduct", func() error { return uc.remote.DeleteProduct(ctx, productID) })
	return nil
}

// SyncFromRemote reemplaza el catálogo local con el remoto. Devuelve cuántos productos cargó.
// Sin backend remoto o si falla, el catálogo local queda intacto.
func (uc *UseCase) SyncFromRemote(ctx context.Context) (int, error) {
	if uc.remote == nil {
		return 0, nil
	}
	list, err := uc.remote.ListProducts(ctx)
	if err != nil {
		uc.persistenceFailed("listProducts", err)
		return 0, &domain.PersistenceError{Op: "listProducts", Err: err}
	}
	for _, p := range list {
		if p.Stock < 0 {
			p.Stock = 0
		}
		if p.Price.IsNegative() {
			p.Price = decimal.Zero
		}
	}
	if err := uc.repo.ReplaceAll(ctx, list); err != nil {
		return 0, err
	}
	uc.log.Info().Int("products", len(list)).Msg("catálogo sincronizado desde el backend remoto")
	return len(list), nil
}

func (uc *UseCase) mirror(op string, call func() error) {
	if uc.remote == nil {
		return
	}
	if err := call(); err != nil {
		uc.persistenceFailed(op, err)
	}
}

func (uc *UseCase) persistenceFailed(op string, err error) {
	perr := &domain.PersistenceError{Op: op, Err: err}
	uc.log.Warn().Err(perr).Str("op", op).Msg("backend remoto no disponible; se conserva el cambio local")
}
