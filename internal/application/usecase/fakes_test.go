package usecase

import (
	"context"
	"sort"

	"github.com/jhoicas/optica-pos/internal/domain"
	"github.com/jhoicas/optica-pos/internal/domain/entity"
	"github.com/jhoicas/optica-pos/internal/domain/repository"
)

type fakeCatalog struct {
	branches  []*entity.Branch
	cats      map[string]*entity.Category
	products  []*entity.Product
	stock     map[[2]int64]int
	users     map[int64]*entity.User
	nextID    int64
	rollbacks int
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		branches: []*entity.Branch{{ID: 1, Code: "TBB", Name: "Tebet"}, {ID: 2, Code: "BDG", Name: "Bandung"}},
		cats:     map[string]*entity.Category{"Frame": {ID: 4, Name: "Frame"}},
		stock:    map[[2]int64]int{},
		users:    map[int64]*entity.User{},
		nextID:   10,
	}
}

func (f *fakeCatalog) RunCatalog(_ context.Context, fn func(
	repository.ProductRepository,
	repository.CategoryRepository,
	repository.BranchRepository,
	repository.InventoryRepository,
) error) error {
	products := append([]*entity.Product(nil), f.products...)
	stock := make(map[[2]int64]int, len(f.stock))
	for k, v := range f.stock {
		stock[k] = v
	}
	if err := fn(fakeProducts{f}, fakeCategories{f}, fakeBranches{f}, fakeInventory{f}); err != nil {
		f.products, f.stock = products, stock
		f.rollbacks++
		return err
	}
	return nil
}

type fakeProducts struct{ f *fakeCatalog }

func (r fakeProducts) Create(_ context.Context, p *entity.Product) error {
	for _, existing := range r.f.products {
		if existing.Code == p.Code {
			return domain.ErrDuplicate
		}
	}
	r.f.nextID++
	p.ID = r.f.nextID
	r.f.products = append(r.f.products, p)
	return nil
}

func (r fakeProducts) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	for _, p := range r.f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r fakeProducts) GetByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Product, error) {
	out := map[int64]*entity.Product{}
	for _, id := range ids {
		if p, _ := r.GetByID(ctx, id); p != nil {
			out[id] = p
		}
	}
	return out, nil
}

func (r fakeProducts) ListWithStock(_ context.Context, branchCode string) ([]*entity.ProductWithStock, error) {
	var branchID int64
	for _, b := range r.f.branches {
		if b.Code == branchCode {
			branchID = b.ID
		}
	}
	out := make([]*entity.ProductWithStock, 0, len(r.f.products))
	for _, p := range r.f.products {
		out = append(out, &entity.ProductWithStock{Product: *p, Stock: r.f.stock[[2]int64{p.ID, branchID}]})
	}
	return out, nil
}

type fakeCategories struct{ f *fakeCatalog }

func (r fakeCategories) GetByName(_ context.Context, name string) (*entity.Category, error) {
	return r.f.cats[name], nil
}

type fakeBranches struct{ f *fakeCatalog }

func (r fakeBranches) GetByCode(_ context.Context, code string) (*entity.Branch, error) {
	for _, b := range r.f.branches {
		if b.Code == code {
			return b, nil
		}
	}
	return nil, nil
}

func (r fakeBranches) GetByID(_ context.Context, id int64) (*entity.Branch, error) {
	for _, b := range r.f.branches {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (r fakeBranches) List(context.Context) ([]*entity.Branch, error) {
	out := append([]*entity.Branch(nil), r.f.branches...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakeInventory struct{ f *fakeCatalog }

func (r fakeInventory) GetForUpdate(_ context.Context, productID, branchID int64) (*entity.BranchInventory, error) {
	return &entity.BranchInventory{ProductID: productID, BranchID: branchID, Quantity: r.f.stock[[2]int64{productID, branchID}]}, nil
}

func (r fakeInventory) Decrement(_ context.Context, productID, branchID int64, quantity int) error {
	r.f.stock[[2]int64{productID, branchID}] -= quantity
	return nil
}

func (r fakeInventory) AddStock(_ context.Context, productID, branchID int64, quantity int) error {
	r.f.stock[[2]int64{productID, branchID}] += quantity
	return nil
}

type fakeUsers struct{ f *fakeCatalog }

func (r fakeUsers) Create(_ context.Context, u *entity.User) error {
	for _, existing := range r.f.users {
		if existing.Username == u.Username {
			return domain.ErrDuplicate
		}
	}
	r.f.nextID++
	u.ID = r.f.nextID
	r.f.users[u.ID] = u
	return nil
}

func (r fakeUsers) GetByID(_ context.Context, id int64) (*entity.User, error) {
	return r.f.users[id], nil
}

func (r fakeUsers) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r fakeUsers) List(context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.f.users))
	for _, u := range r.f.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out, nil
}

func (r fakeUsers) Update(_ context.Context, u *entity.User) error {
	existing, ok := r.f.users[u.ID]
	if !ok {
		return domain.ErrNotFound
	}
	existing.FullName, existing.Role, existing.BranchID = u.FullName, u.Role, u.BranchID
	return nil
}
