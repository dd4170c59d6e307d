package billing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/memberflow-console/internal/application/dto"
	"github.com/jhoicas/memberflow-console/internal/domain"
	"github.com/jhoicas/memberflow-console/internal/domain/entity"
	"github.com/jhoicas/memberflow-console/pkg/validation"
)

const (
	MsgProductCreated    = "Producto/servicio creado correctamente."
	MsgProductUpdated    = "Producto/servicio actualizado correctamente."
	MsgProductDeleted    = "Producto/servicio eliminado correctamente."
	MsgProductFailed     = "Error al crear el producto/servicio."
	MsgInvalidIVAType    = "Debes seleccionar un tipo de IVA válido."
	MsgInvalidPrice      = "Introduce un precio válido."
	MsgIVATypeCreated    = "Tipo de IVA creado correctamente."
	MsgIVATypeDeleted    = "Tipo de IVA eliminado correctamente."
	MsgIVATypeFailed     = "No se pudo crear el tipo de IVA."
	MsgIVATypeDelFailed  = "No se pudo eliminar el tipo de IVA."
	MsgIVATypesFailed    = "Error al obtener los tipos de IVA."
	MsgInvalidPercentage = "Introduce un porcentaje válido."
	MsgProductsFailed    = "Error al cargar los productos."
)

var maxPercentage = decimal.NewFromInt(100)

// CatalogUseCase productos/servicios y tipos de IVA.
type CatalogUseCase struct {
	backend Backend
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(backend Backend) *CatalogUseCase {
	return &CatalogUseCase{backend: backend}
}

// ProductForm tipos de IVA disponibles.
func (uc *CatalogUseCase) ProductForm(ctx context.Context, token string) (*dto.ProductFormResponse, error) {
	types, err := uc.ListIVATypes(ctx, token)
	if err != nil {
		return nil, err
	}
	return &dto.ProductFormResponse{IVATypes: types}, nil
}

// ListProducts productos y servicios.
func (uc *CatalogUseCase) ListProducts(ctx context.Context, token string) ([]entity.ProductService, error) {
	p, err := uc.backend.ListProducts(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	return p, nil
}

// validateProduct valida el formulario y que el tipo de IVA exista.
func (uc *CatalogUseCase) validateProduct(ctx context.Context, token string, in dto.ProductRequest) (entity.ProductService, error) {
	if err := validation.Struct(in); err != nil {
		return entity.ProductService{}, err
	}
	if in.Price.IsNegative() {
		return entity.ProductService{}, domain.NewValidationError(MsgInvalidPrice).With("price", "debe ser mayor o igual que 0")
	}
	types, err := uc.ListIVATypes(ctx, token)
	if err != nil {
		return entity.ProductService{}, err
	}
	found := false
	for _, t := range types {
		if t.ID == in.IVATypeID {
			found = true
			break
		}
	}
	if !found {
		return entity.ProductService{}, domain.NewValidationError(MsgInvalidIVAType).With("ivaTypeId", "tipo de IVA no encontrado")
	}
	ivaID := in.IVATypeID
	return entity.ProductService{
		IVATypeID:   &ivaID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Type:        entity.ProductType(in.Type),
		Status:      entity.Status(in.Status),
	}, nil
}

// CreateProduct alta de producto/servicio.
func (uc *CatalogUseCase) CreateProduct(ctx context.Context, token string, in dto.ProductRequest) error {
	p, err := uc.validateProduct(ctx, token, in)
	if err != nil {
		return err
	}
	if err := uc.backend.CreateProduct(ctx, token, p); err != nil {
		return fmt.Errorf("crear producto: %w", err)
	}
	return nil
}

// UpdateProduct edición de producto/servicio.
func (uc *CatalogUseCase) UpdateProduct(ctx context.Context, token string, id int, in dto.ProductRequest) error {
	p, err := uc.validateProduct(ctx, token, in)
	if err != nil {
		return err
	}
	p.ID = id
	if err := uc.backend.UpdateProduct(ctx, token, p); err != nil {
		return fmt.Errorf("actualizar producto %d: %w", id, err)
	}
	return nil
}

// DeleteProduct elimina un producto/servicio.
func (uc *CatalogUseCase) DeleteProduct(ctx context.Context, token string, id int) error {
	if err := uc.backend.DeleteProduct(ctx, token, id); err != nil {
		return fmt.Errorf("eliminar producto %d: %w", id, err)
	}
	return nil
}

// ListIVATypes tipos de IVA.
func (uc *CatalogUseCase) ListIVATypes(ctx context.Context, token string) ([]entity.IVAType, error) {
	t, err := uc.backend.ListIVATypes(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("listar tipos de IVA: %w", err)
	}
	return t, nil
}

// CreateIVAType alta de tipo de IVA; porcentaje entre 0 y 100.
func (uc *CatalogUseCase) CreateIVAType(ctx context.Context, token string, in dto.IVATypeRequest) error {
	if in.Percentage.IsNegative() || in.Percentage.GreaterThan(maxPercentage) {
		return domain.NewValidationError(MsgInvalidPercentage).With("percentage", "entre 0 y 100")
	}
	if err := validation.Struct(in); err != nil {
		return err
	}
	t := entity.IVAType{Percentage: in.Percentage, Description: in.Description}
	if err := uc.backend.CreateIVAType(ctx, token, t); err != nil {
		return fmt.Errorf("crear tipo de IVA: %w", err)
	}
	return nil
}

// DeleteIVAType elimina un tipo de IVA.
func (uc *CatalogUseCase) DeleteIVAType(ctx context.Context, token string, id int) error {
	if err := uc.backend.DeleteIVAType(ctx, token, id); err != nil {
		return fmt.Errorf("eliminar tipo de IVA %d: %w", id, err)
	}
	return nil
}
