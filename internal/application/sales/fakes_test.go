package sales

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/optica-pos/internal/domain/entity"
	"github.com/jhoicas/optica-pos/internal/domain/repository"
)

type stockKey struct{ productID, branchID int64 }

// memStore base de datos en memoria con semántica de transacción: RunSales
// toma una foto del estado y la restaura si fn falla.
type memStore struct {
	branches     map[string]*entity.Branch
	products     map[int64]*entity.Product
	stock        map[stockKey]int
	customers    map[int64]*entity.Customer
	transactions map[int64]*entity.Transaction
	items        []*entity.TransactionItem
	invoiceSeq   map[string]int

	today   time.Time
	nextID  int64
	txCount int
	calls   int
	locks   []int64 // orden de los SELECT FOR UPDATE

	// fallas inyectadas por nombre de operación
	failOn map[string]error
}

func newMemStore() *memStore {
	return &memStore{
		branches:     map[string]*entity.Branch{},
		products:     map[int64]*entity.Product{},
		stock:        map[stockKey]int{},
		customers:    map[int64]*entity.Customer{},
		transactions: map[int64]*entity.Transaction{},
		invoiceSeq:   map[string]int{},
		today:        time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		nextID:       100,
		failOn:       map[string]error{},
	}
}

func (s *memStore) addBranch(id int64, code string) *entity.Branch {
	b := &entity.Branch{ID: id, Code: code, Name: "Cabang " + code}
	s.branches[code] = b
	return b
}

func (s *memStore) addProduct(id int64, name string, stock map[int64]int) {
	s.products[id] = &entity.Product{ID: id, Code: fmt.Sprintf("P-%d", id), Name: name}
	for branchID, qty := range stock {
		s.stock[stockKey{id, branchID}] = qty
	}
}

func (s *memStore) stockOf(productID, branchID int64) int {
	return s.stock[stockKey{productID, branchID}]
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) hit(op string) error {
	s.calls++
	if err, ok := s.failOn[op]; ok {
		return err
	}
	return nil
}

type memSnapshot struct {
	stock        map[stockKey]int
	customers    map[int64]*entity.Customer
	transactions map[int64]*entity.Transaction
	items        []*entity.TransactionItem
	invoiceSeq   map[string]int
}

func (s *memStore) snapshot() memSnapshot {
	snap := memSnapshot{
		stock:        make(map[stockKey]int, len(s.stock)),
		customers:    make(map[int64]*entity.Customer, len(s.customers)),
		transactions: make(map[int64]*entity.Transaction, len(s.transactions)),
		items:        append([]*entity.TransactionItem(nil), s.items...),
		invoiceSeq:   make(map[string]int, len(s.invoiceSeq)),
	}
	for k, v := range s.stock {
		snap.stock[k] = v
	}
	for k, v := range s.customers {
		snap.customers[k] = v
	}
	for k, v := range s.transactions {
		snap.transactions[k] = v
	}
	for k, v := range s.invoiceSeq {
		snap.invoiceSeq[k] = v
	}
	return snap
}

func (s *memStore) restore(snap memSnapshot) {
	s.stock = snap.stock
	s.customers = snap.customers
	s.transactions = snap.transactions
	s.items = snap.items
	s.invoiceSeq = snap.invoiceSeq
}

// RunSales implementa SalesTxRunner.
func (s *memStore) RunSales(ctx context.Context, fn func(
	repository.BranchRepository,
	repository.ProductRepository,
	repository.InventoryRepository,
	repository.CustomerRepository,
	repository.TransactionRepository,
) error) error {
	s.txCount++
	if err := s.hit("begin"); err != nil {
		return err
	}
	snap := s.snapshot()
	if err := fn(memBranches{s}, memProducts{s}, memInventory{s}, memCustomers{s}, memTransactions{s}); err != nil {
		s.restore(snap)
		return err
	}
	if err := s.hit("commit"); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

type memBranches struct{ s *memStore }

func (r memBranches) GetByCode(_ context.Context, code string) (*entity.Branch, error) {
	if err := r.s.hit("branch.get"); err != nil {
		return nil, err
	}
	return r.s.branches[code], nil
}

func (r memBranches) GetByID(_ context.Context, id int64) (*entity.Branch, error) {
	for _, b := range r.s.branches {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (r memBranches) List(context.Context) ([]*entity.Branch, error) {
	out := make([]*entity.Branch, 0, len(r.s.branches))
	for _, b := range r.s.branches {
		out = append(out, b)
	}
	return out, nil
}

type memProducts struct{ s *memStore }

func (r memProducts) Create(_ context.Context, p *entity.Product) error {
	p.ID = r.s.id()
	r.s.products[p.ID] = p
	return nil
}

func (r memProducts) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	return r.s.products[id], nil
}

func (r memProducts) GetByIDs(_ context.Context, ids []int64) (map[int64]*entity.Product, error) {
	if err := r.s.hit("product.get"); err != nil {
		return nil, err
	}
	out := make(map[int64]*entity.Product, len(ids))
	for _, id := range ids {
		if p, ok := r.s.products[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (r memProducts) ListWithStock(_ context.Context, _ string) ([]*entity.ProductWithStock, error) {
	return nil, errors.New("no usado")
}

type memInventory struct{ s *memStore }

func (r memInventory) GetForUpdate(_ context.Context, productID, branchID int64) (*entity.BranchInventory, error) {
	if err := r.s.hit("stock.lock"); err != nil {
		return nil, err
	}
	r.s.locks = append(r.s.locks, productID)
	return &entity.BranchInventory{ProductID: productID, BranchID: branchID, Quantity: r.s.stockOf(productID, branchID)}, nil
}

func (r memInventory) Decrement(_ context.Context, productID, branchID int64, quantity int) error {
	if err := r.s.hit("stock.decrement"); err != nil {
		return err
	}
	r.s.stock[stockKey{productID, branchID}] -= quantity
	return nil
}

func (r memInventory) AddStock(_ context.Context, productID, branchID int64, quantity int) error {
	r.s.stock[stockKey{productID, branchID}] += quantity
	return nil
}

type memCustomers struct{ s *memStore }

func (r memCustomers) FindByPhone(_ context.Context, phone string) (*entity.Customer, error) {
	if err := r.s.hit("customer.find"); err != nil {
		return nil, err
	}
	for _, c := range r.s.customers {
		if c.PhoneNumber == phone {
			return c, nil
		}
	}
	return nil, nil
}

func (r memCustomers) GetByID(_ context.Context, id int64) (*entity.Customer, error) {
	return r.s.customers[id], nil
}

func (r memCustomers) Create(_ context.Context, c *entity.Customer) error {
	if err := r.s.hit("customer.create"); err != nil {
		return err
	}
	c.ID = r.s.id()
	r.s.customers[c.ID] = c
	return nil
}

type memTransactions struct{ s *memStore }

func (r memTransactions) NextInvoiceSequence(_ context.Context, branchCode string) (int, time.Time, error) {
	if err := r.s.hit("invoice.next"); err != nil {
		return 0, time.Time{}, err
	}
	key := branchCode + "|" + r.s.today.Format("20060102")
	r.s.invoiceSeq[key]++
	return r.s.invoiceSeq[key], r.s.today, nil
}

func (r memTransactions) Create(_ context.Context, t *entity.Transaction) error {
	if err := r.s.hit("transaction.create"); err != nil {
		return err
	}
	for _, existing := range r.s.transactions {
		if existing.InvoiceNumber == t.InvoiceNumber {
			return fmt.Errorf("insert transaction: invoice_number duplicado")
		}
	}
	t.ID = r.s.id()
	t.TransactionDate = r.s.today.Add(10 * time.Hour)
	r.s.transactions[t.ID] = t
	return nil
}

func (r memTransactions) CreateItems(_ context.Context, items []*entity.TransactionItem) error {
	if err := r.s.hit("transaction.items"); err != nil {
		return err
	}
	for _, it := range items {
		it.ID = r.s.id()
		r.s.items = append(r.s.items, it)
	}
	return nil
}

func (r memTransactions) GetByID(_ context.Context, id int64) (*entity.Transaction, error) {
	if err := r.s.hit("transaction.get"); err != nil {
		return nil, err
	}
	return r.s.transactions[id], nil
}

func (r memTransactions) GetItems(_ context.Context, transactionID int64) ([]*entity.TransactionItem, error) {
	var out []*entity.TransactionItem
	for _, it := range r.s.items {
		if it.TransactionID == transactionID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
