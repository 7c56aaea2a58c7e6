package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/optica-pos/internal/application/dto"
	"github.com/jhoicas/optica-pos/internal/domain"
)

func newProductRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:        "Frame Oakley OX8046",
		ProductCode: "OX8046",
		Category:    "Frame",
		Brand:       "Oakley",
		Price:       decimal.NewFromInt(1_250_000),
		Stock:       4,
		BranchCode:  "BDG",
	}
}

func TestProductCreate_ConStockInicial(t *testing.T) {
	f := newFakeCatalog()
	uc := NewProductUseCase(fakeProducts{f}, f)

	res, err := uc.Create(context.Background(), newProductRequest())

	require.NoError(t, err)
	require.Len(t, f.products, 1)
	assert.Equal(t, res.ProductID, f.products[0].ID)
	require.NotNil(t, f.products[0].CategoryID)
	assert.Equal(t, int64(4), *f.products[0].CategoryID)
	assert.Equal(t, 4, f.stock[[2]int64{res.ProductID, 2}])
}

func TestProductCreate_CategoriaDesconocidaQuedaNula(t *testing.T) {
	f := newFakeCatalog()
	uc := NewProductUseCase(fakeProducts{f}, f)
	in := newProductRequest()
	in.Category = "Aksesoris"
	in.Stock = 0

	_, err := uc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.Nil(t, f.products[0].CategoryID)
	assert.Empty(t, f.stock)
}

func TestProductCreate_SucursalDesconocidaRevierte(t *testing.T) {
	f := newFakeCatalog()
	uc := NewProductUseCase(fakeProducts{f}, f)
	in := newProductRequest()
	in.BranchCode = "XXX"

	_, err := uc.Create(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.products)
	assert.Equal(t, 1, f.rollbacks)
}

func TestProductCreate_CodigoDuplicado(t *testing.T) {
	f := newFakeCatalog()
	uc := NewProductUseCase(fakeProducts{f}, f)
	_, err := uc.Create(context.Background(), newProductRequest())
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), newProductRequest())

	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, f.products, 1)
	assert.Equal(t, 4, f.stock[[2]int64{f.products[0].ID, 2}])
}

func TestProductCreate_Validaciones(t *testing.T) {
	f := newFakeCatalog()
	uc := NewProductUseCase(fakeProducts{f}, f)

	in := newProductRequest()
	in.Price = decimal.Zero
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = newProductRequest()
	in.ProductCode = " "
	_, err = uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Zero(t, f.rollbacks)
	assert.Empty(t, f.products)
}

func TestProductList_CategoriaPorDefectoYStockDeSucursal(t *testing.T) {
	f := newFakeCatalog()
	uc := NewProductUseCase(fakeProducts{f}, f)
	in := newProductRequest()
	in.Category = ""
	in.BranchCode = "TBB"
	_, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	tbb, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, tbb, 1)
	assert.Equal(t, "Lainnya", tbb[0].Category)
	assert.Equal(t, 4, tbb[0].Stock)

	bdg, err := uc.List(context.Background(), "BDG")
	require.NoError(t, err)
	assert.Equal(t, 0, bdg[0].Stock)
}
