package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felipefpires/erp-api/internal/application/dto"
	"github.com/felipefpires/erp-api/internal/domain"
	"github.com/felipefpires/erp-api/internal/domain/entity"
)

// fakeCategoryRepo repositorio en memoria para los tests del caso de uso.
type fakeCategoryRepo struct {
	categories map[string]*entity.Category
	products   map[string]int // categoría → cantidad de productos asociados
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories: make(map[string]*entity.Category),
		products:   make(map[string]int),
	}
}

func (f *fakeCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	f.categories[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategoryRepo) Update(c *entity.Category) error {
	cp := *c
	f.categories[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) Delete(id string) error {
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryRepo) List() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(f.categories))
	for _, c := range f.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeCategoryRepo) CountProducts(categoryID string) (int, error) {
	return f.products[categoryID], nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Slugify
// ──────────────────────────────────────────────────────────────────────────────

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"minusculas y guiones", "Cuidado Facial", "cuidado-facial"},
		{"acentos removidos", "Maquillaje Profissional Avançado", "maquillaje-profissional-avancado"},
		{"enie normalizada", "Artículos de Baño", "articulos-de-bano"},
		{"simbolos colapsan a un guion", "Crema  &  Locion!!", "crema-locion"},
		{"numeros se conservan", "Kit 3 en 1", "kit-3-en-1"},
		{"sin guiones en los extremos", "  ¡Ofertas!  ", "ofertas"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CategoryUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryCreate_DerivaSlugDelNombre(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := NewCategoryUseCase(repo)

	resp, err := uc.Create(dto.CreateCategoryRequest{Name: "Cuidado Facial"})
	require.NoError(t, err)
	assert.Equal(t, "cuidado-facial", resp.Slug, "el slug debe derivarse del nombre")
	assert.True(t, resp.IsActive, "las categorías nacen activas por defecto")
}

func TestCategoryCreate_RespetaSlugExplicito(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := NewCategoryUseCase(repo)

	resp, err := uc.Create(dto.CreateCategoryRequest{Name: "Cuidado Facial", Slug: "skincare"})
	require.NoError(t, err)
	assert.Equal(t, "skincare", resp.Slug)
}

func TestCategoryCreate_NombreVacio(t *testing.T) {
	uc := NewCategoryUseCase(newFakeCategoryRepo())

	_, err := uc.Create(dto.CreateCategoryRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryDelete_ConProductosAsociados(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := NewCategoryUseCase(repo)

	resp, err := uc.Create(dto.CreateCategoryRequest{Name: "Accesorios"})
	require.NoError(t, err)
	repo.products[resp.ID] = 3

	err = uc.Delete(resp.ID)
	assert.ErrorIs(t, err, domain.ErrConflict,
		"no debe borrarse una categoría con productos asociados")

	got, err := uc.Get(resp.ID)
	require.NoError(t, err)
	assert.NotNil(t, got, "la categoría debe seguir existiendo")
}

func TestCategoryDelete_SinProductos(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := NewCategoryUseCase(repo)

	resp, err := uc.Create(dto.CreateCategoryRequest{Name: "Accesorios"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(resp.ID))

	_, err = uc.Get(resp.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
