package http_test

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// fakeStore backend en memoria para los tests de handlers: implementa los
// puertos de usuarios, productos, variantes y movimientos, más el TxRunner.
// Las escrituras de una transacción se aplican solo si el callback termina sin error.
type fakeStore struct {
	mu        sync.Mutex
	users     map[string]*entity.User // por email
	products  map[string]*entity.Product
	variants  map[string]*entity.Variant
	movements []entity.Movement
	nextMovID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:     make(map[string]*entity.User),
		products:  make(map[string]*entity.Product),
		variants:  make(map[string]*entity.Variant),
		nextMovID: 1,
	}
}

// ── UserRepository ────────────────────────────────────────────────────────────

func (s *fakeStore) Create(user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.Email] = user
	return nil
}

func (s *fakeStore) GetByID(id string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) GetByEmail(email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[email], nil
}

func (s *fakeStore) List() ([]*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

// ── ProductRepository / VariantRepository ────────────────────────────────────

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.products[id], nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, p)
	}
	return out, nil
}

type fakeVariantRepo struct{ s *fakeStore }

func (r *fakeVariantRepo) Create(v *entity.Variant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.variants[v.ID] = v
	return nil
}

func (r *fakeVariantRepo) GetByID(id string) (*entity.Variant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.variants[id], nil
}

func (r *fakeVariantRepo) GetForUpdate(id string) (*entity.Variant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v, ok := r.s.variants[id]
	if !ok {
		return nil, nil
	}
	copied := *v
	return &copied, nil
}

func (r *fakeVariantRepo) UpdateStock(id string, stockQty int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.variants[id].Stock = stockQty
	return nil
}

func (r *fakeVariantRepo) ListByProduct(productID string) ([]*entity.Variant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Variant
	for _, v := range r.s.variants {
		if v.ProductID == productID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVariantRepo) ListWithProduct() ([]*entity.VariantWithProduct, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.VariantWithProduct
	for _, v := range r.s.variants {
		name := ""
		if p, ok := r.s.products[v.ProductID]; ok {
			name = p.Name
		}
		out = append(out, &entity.VariantWithProduct{Variant: *v, ProductName: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ── MovementRepository ───────────────────────────────────────────────────────

type fakeMovementRepo struct{ s *fakeStore }

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m.ID = r.s.nextMovID
	r.s.nextMovID++
	r.s.movements = append(r.s.movements, *m)
	return nil
}

func (r *fakeMovementRepo) ListRecent(limit int) ([]*entity.MovementDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	movs := make([]entity.Movement, len(r.s.movements))
	copy(movs, r.s.movements)
	sort.Slice(movs, func(i, j int) bool {
		if !movs[i].CreatedAt.Equal(movs[j].CreatedAt) {
			return movs[i].CreatedAt.After(movs[j].CreatedAt)
		}
		return movs[i].ID > movs[j].ID
	})
	if len(movs) > limit {
		movs = movs[:limit]
	}
	out := make([]*entity.MovementDetail, 0, len(movs))
	for _, m := range movs {
		d := &entity.MovementDetail{Movement: m}
		if v, ok := r.s.variants[m.VariantID]; ok {
			d.SKU = v.SKU
			d.Color = v.Color
			d.Size = v.Size
			if p, okP := r.s.products[v.ProductID]; okP {
				d.ProductName = p.Name
			}
		}
		out = append(out, d)
	}
	return out, nil
}

// ── TxRunner ─────────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta el callback sobre un snapshot y aplica los cambios solo
// si no hubo error (visibilidad todo-o-nada).
type fakeTxRunner struct{ s *fakeStore }

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	variantRepo repository.VariantRepository,
	movementRepo repository.MovementRepository,
) error) error {
	tx := &fakeTx{s: r.s, stagedStock: make(map[string]int)}
	if err := fn(&fakeTxVariantRepo{tx: tx}, &fakeTxMovementRepo{tx: tx}); err != nil {
		return err
	}
	tx.commit()
	return nil
}

type fakeTx struct {
	s           *fakeStore
	stagedStock map[string]int
	stagedMovs  []entity.Movement
}

func (t *fakeTx) commit() {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for _, m := range t.stagedMovs {
		m.ID = t.s.nextMovID
		t.s.nextMovID++
		t.s.movements = append(t.s.movements, m)
	}
	for id, stockQty := range t.stagedStock {
		t.s.variants[id].Stock = stockQty
	}
}

type fakeTxVariantRepo struct{ tx *fakeTx }

func (r *fakeTxVariantRepo) GetForUpdate(id string) (*entity.Variant, error) {
	return (&fakeVariantRepo{s: r.tx.s}).GetForUpdate(id)
}

func (r *fakeTxVariantRepo) UpdateStock(id string, stockQty int) error {
	r.tx.stagedStock[id] = stockQty
	return nil
}

func (r *fakeTxVariantRepo) Create(v *entity.Variant) error { return nil }
func (r *fakeTxVariantRepo) GetByID(id string) (*entity.Variant, error) {
	return (&fakeVariantRepo{s: r.tx.s}).GetByID(id)
}
func (r *fakeTxVariantRepo) ListByProduct(productID string) ([]*entity.Variant, error) {
	return nil, nil
}
func (r *fakeTxVariantRepo) ListWithProduct() ([]*entity.VariantWithProduct, error) {
	return nil, nil
}

type fakeTxMovementRepo struct{ tx *fakeTx }

func (r *fakeTxMovementRepo) Create(m *entity.Movement) error {
	r.tx.stagedMovs = append(r.tx.stagedMovs, *m)
	return nil
}

func (r *fakeTxMovementRepo) ListRecent(limit int) ([]*entity.MovementDetail, error) {
	return (&fakeMovementRepo{s: r.tx.s}).ListRecent(limit)
}
