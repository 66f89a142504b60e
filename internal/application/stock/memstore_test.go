package stock_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// errStorage simula una caída del almacenamiento a mitad de transacción.
var errStorage = errors.New("storage caído")

// memStore simula la semántica que la capa de Postgres da al motor de stock:
// bloqueo de fila por variante (FOR UPDATE) y escrituras que solo se hacen
// visibles en el Commit. Un Rollback descarta todo y suelta los bloqueos.
type memStore struct {
	mu        sync.Mutex
	variants  map[string]*memVariant
	movements []entity.Movement
	nextID    int64
}

// memVariant fila de variante; su mutex representa el bloqueo FOR UPDATE.
type memVariant struct {
	mu      sync.Mutex
	variant entity.Variant
}

func newMemStore() *memStore {
	return &memStore{variants: make(map[string]*memVariant), nextID: 1}
}

func (s *memStore) addVariant(id string, stockQty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.variants[id] = &memVariant{variant: entity.Variant{ID: id, Stock: stockQty, Active: true}}
}

func (s *memStore) stockOf(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.variants[id].variant.Stock
}

func (s *memStore) ledgerLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.movements)
}

func (s *memStore) lastMovement() entity.Movement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.movements[len(s.movements)-1]
}

// memTxRunner implementación en memoria de stock.TxRunner.
// failOnCreate fuerza el fallo del INSERT del asiento para probar el rollback;
// onCreate (si está definido) se invoca durante el INSERT, lo que permite
// mantener una transacción "en vuelo" desde los tests de concurrencia.
type memTxRunner struct {
	store        *memStore
	failOnCreate bool
	onCreate     func()

	mu           sync.Mutex
	lockAcquires int
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	variantRepo repository.VariantRepository,
	movementRepo repository.MovementRepository,
) error) error {
	tx := &memTx{runner: r, store: r.store, stagedStock: make(map[string]int)}
	// Rollback por defecto: cualquier salida sin commit descarta y desbloquea
	defer tx.release()

	if err := fn(&txVariantRepo{tx: tx}, &txMovementRepo{tx: tx}); err != nil {
		return err
	}
	tx.commit()
	return nil
}

func (r *memTxRunner) lockCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lockAcquires
}

// memTx transacción en curso: filas bloqueadas + escrituras pendientes.
type memTx struct {
	runner      *memTxRunner
	store       *memStore
	locked      []*memVariant
	stagedStock map[string]int
	stagedMovs  []entity.Movement
	done        bool
}

func (t *memTx) lockVariant(id string) *memVariant {
	t.store.mu.Lock()
	row, ok := t.store.variants[id]
	t.store.mu.Unlock()
	if !ok {
		return nil
	}
	// Bloqueo de fila: se espera aquí si otra transacción la tiene tomada
	row.mu.Lock()
	t.locked = append(t.locked, row)
	t.runner.mu.Lock()
	t.runner.lockAcquires++
	t.runner.mu.Unlock()
	return row
}

func (t *memTx) commit() {
	t.store.mu.Lock()
	for _, mov := range t.stagedMovs {
		mov.ID = t.store.nextID
		t.store.nextID++
		t.store.movements = append(t.store.movements, mov)
	}
	for id, stockQty := range t.stagedStock {
		t.store.variants[id].variant.Stock = stockQty
	}
	t.store.mu.Unlock()
	t.release()
}

// release suelta los bloqueos de fila; sin commit previo, equivale a rollback.
func (t *memTx) release() {
	if t.done {
		return
	}
	t.done = true
	for _, row := range t.locked {
		row.mu.Unlock()
	}
	t.locked = nil
	t.stagedMovs = nil
}

// txVariantRepo repositorio de variantes atado a la transacción.
type txVariantRepo struct {
	tx *memTx
}

func (r *txVariantRepo) GetForUpdate(id string) (*entity.Variant, error) {
	row := r.tx.lockVariant(id)
	if row == nil {
		return nil, nil
	}
	v := row.variant
	if staged, ok := r.tx.stagedStock[id]; ok {
		v.Stock = staged
	}
	return &v, nil
}

func (r *txVariantRepo) UpdateStock(id string, stockQty int) error {
	r.tx.stagedStock[id] = stockQty
	return nil
}

func (r *txVariantRepo) Create(*entity.Variant) error { return errors.New("no usado") }
func (r *txVariantRepo) GetByID(string) (*entity.Variant, error) {
	return nil, errors.New("no usado")
}
func (r *txVariantRepo) ListByProduct(string) ([]*entity.Variant, error) {
	return nil, errors.New("no usado")
}
func (r *txVariantRepo) ListWithProduct() ([]*entity.VariantWithProduct, error) {
	return nil, errors.New("no usado")
}

// txMovementRepo repositorio del libro atado a la transacción.
type txMovementRepo struct {
	tx *memTx
}

func (r *txMovementRepo) Create(movement *entity.Movement) error {
	if r.tx.runner.onCreate != nil {
		r.tx.runner.onCreate()
	}
	if r.tx.runner.failOnCreate {
		return errStorage
	}
	r.tx.stagedMovs = append(r.tx.stagedMovs, *movement)
	return nil
}

func (r *txMovementRepo) ListRecent(limit int) ([]*entity.MovementDetail, error) {
	return r.tx.store.listRecent(limit)
}

// listRecent replica el ORDER BY created_at DESC, id DESC LIMIT $1 del adaptador real.
func (s *memStore) listRecent(limit int) ([]*entity.MovementDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	movs := make([]entity.Movement, len(s.movements))
	copy(movs, s.movements)
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
		out = append(out, &entity.MovementDetail{Movement: m})
	}
	return out, nil
}
