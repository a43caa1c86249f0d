package batch

import (
	"context"
	"encoding/json"
	"testing"

	"FreshStock-Backend/domain"
	"FreshStock-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeBatchRepo keeps everything in maps (products by SKU, the rest by ID).
// Transaction clones the state, runs fn against the clone and swaps it back
// only on success, which gives the same all-or-nothing behaviour the gorm
// implementation has.
type fakeBatchRepo struct {
	products      map[string]*entities.Product
	batches       map[uuid.UUID]*entities.Batch
	sessions      map[uuid.UUID]*entities.InventorySession
	sessionsByKey map[string]uuid.UUID
	audits        []*entities.AuditLog
}

func newFakeBatchRepo() *fakeBatchRepo {
	return &fakeBatchRepo{
		products:      map[string]*entities.Product{},
		batches:       map[uuid.UUID]*entities.Batch{},
		sessions:      map[uuid.UUID]*entities.InventorySession{},
		sessionsByKey: map[string]uuid.UUID{},
	}
}

func (r *fakeBatchRepo) clone() *fakeBatchRepo {
	next := newFakeBatchRepo()
	for k, v := range r.products {
		p := *v
		next.products[k] = &p
	}
	for k, v := range r.batches {
		b := *v
		next.batches[k] = &b
	}
	for k, v := range r.sessions {
		s := *v
		next.sessions[k] = &s
	}
	for k, v := range r.sessionsByKey {
		next.sessionsByKey[k] = v
	}
	next.audits = append(next.audits, r.audits...)
	return next
}

func (r *fakeBatchRepo) Transaction(ctx context.Context, fn func(repo BatchRepository) error) error {
	tx := r.clone()
	if err := fn(tx); err != nil {
		return err
	}
	*r = *tx
	return nil
}

func (r *fakeBatchRepo) GetBatchByID(ctx context.Context, id string) (*entities.Batch, error) {
	batchID, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	b, ok := r.batches[batchID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *b
	for _, p := range r.products {
		if p.ID == out.ProductID {
			product := *p
			out.Product = &product
			break
		}
	}
	return &out, nil
}

func (r *fakeBatchRepo) CreateBatch(ctx context.Context, batch *entities.Batch) error {
	stored := *batch
	r.batches[batch.ID] = &stored
	return nil
}

func (r *fakeBatchRepo) SaveBatch(ctx context.Context, batch *entities.Batch) error {
	stored := *batch
	r.batches[batch.ID] = &stored
	return nil
}

func (r *fakeBatchRepo) DeleteBatch(ctx context.Context, batch *entities.Batch) error {
	delete(r.batches, batch.ID)
	return nil
}

func (r *fakeBatchRepo) GetProductBySKU(ctx context.Context, sku string) (*entities.Product, error) {
	p, ok := r.products[sku]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *p
	return &out, nil
}

func (r *fakeBatchRepo) CreateProduct(ctx context.Context, product *entities.Product) error {
	stored := *product
	r.products[product.SKU] = &stored
	return nil
}

func (r *fakeBatchRepo) GetSessionByID(ctx context.Context, id uuid.UUID) (*entities.InventorySession, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *s
	return &out, nil
}

func (r *fakeBatchRepo) GetSessionByKey(ctx context.Context, key string) (*entities.InventorySession, error) {
	id, ok := r.sessionsByKey[key]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetSessionByID(ctx, id)
}

func (r *fakeBatchRepo) CreateSession(ctx context.Context, session *entities.InventorySession) error {
	stored := *session
	r.sessions[session.ID] = &stored
	r.sessionsByKey[session.SessionKey] = session.ID
	return nil
}

func (r *fakeBatchRepo) AddSessionItems(ctx context.Context, sessionID uuid.UUID, delta int) error {
	s, ok := r.sessions[sessionID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.ItemCount += delta
	return nil
}

func (r *fakeBatchRepo) CreateAuditEntry(ctx context.Context, entry *entities.AuditLog) error {
	stored := *entry
	r.audits = append(r.audits, &stored)
	return nil
}

func seedOwnerAndSession(repo *fakeBatchRepo) (domain.Actor, *entities.InventorySession) {
	owner := uuid.New()
	session := &entities.InventorySession{
		ID:         uuid.New(),
		SessionKey: "stocktake-2026-03-10",
		UserID:     owner,
	}
	repo.sessions[session.ID] = session
	repo.sessionsByKey[session.SessionKey] = session.ID
	return domain.Actor{UserID: owner.String()}, session
}

func seedProduct(repo *fakeBatchRepo, sku string) *entities.Product {
	product := &entities.Product{ID: uuid.New(), SKU: sku, Name: sku}
	repo.products[sku] = product
	return product
}

func seedBatch(repo *fakeBatchRepo, product *entities.Product, session *entities.InventorySession, quantity int) *entities.Batch {
	b := &entities.Batch{
		ID:        uuid.New(),
		ProductID: product.ID,
		Quantity:  quantity,
		SessionID: &session.ID,
	}
	b.ExpiryDate, _ = parseExpiry("2026-06-01")
	repo.batches[b.ID] = b
	return b
}

func TestAddBatchesWritesBatchAndAuditPerItem(t *testing.T) {
	repo := newFakeBatchRepo()
	actor, session := seedOwnerAndSession(repo)
	seedProduct(repo, "KOPI-001")

	service := NewBatchMutationService(repo)
	res, err := service.AddBatches(context.Background(), actor, domain.AddBatchesRequest{
		SessionID: session.ID.String(),
		SKU:       "KOPI-001",
		Batches: []domain.BatchItemRequest{
			{ExpiryDate: "2026-04-01", Quantity: 12},
			{ExpiryDate: "2026-05-01", Quantity: 8},
		},
	})

	require.NoError(t, err)
	assert.Len(t, res.Batches, 2)
	assert.Len(t, repo.batches, 2)
	require.Len(t, repo.audits, 2)
	assert.Equal(t, 2, repo.sessions[session.ID].ItemCount)

	for _, entry := range repo.audits {
		assert.Equal(t, ActionAdd, entry.Action)
		assert.Equal(t, actor.UserID, entry.UserID.String())
		assert.Nil(t, entry.OldValue)

		var snap domain.BatchSnapshot
		require.NoError(t, json.Unmarshal(entry.NewValue, &snap))
		assert.Equal(t, "KOPI-001", snap.SKU)
	}
}

func TestAddBatchesRollsBackOnInvalidQuantity(t *testing.T) {
	repo := newFakeBatchRepo()
	actor, session := seedOwnerAndSession(repo)
	seedProduct(repo, "KOPI-001")

	service := NewBatchMutationService(repo)
	_, err := service.AddBatches(context.Background(), actor, domain.AddBatchesRequest{
		SessionID: session.ID.String(),
		SKU:       "KOPI-001",
		Batches: []domain.BatchItemRequest{
			{ExpiryDate: "2026-04-01", Quantity: 12},
			{ExpiryDate: "2026-05-01", Quantity: 0},
		},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Empty(t, repo.batches)
	assert.Empty(t, repo.audits)
	assert.Equal(t, 0, repo.sessions[session.ID].ItemCount)
}

func TestAddBatchesRejectsUnknownSKU(t *testing.T) {
	repo := newFakeBatchRepo()
	actor, session := seedOwnerAndSession(repo)

	service := NewBatchMutationService(repo)
	_, err := service.AddBatches(context.Background(), actor, domain.AddBatchesRequest{
		SessionID: session.ID.String(),
		SKU:       "UNREGISTERED-SKU",
		Batches:   []domain.BatchItemRequest{{ExpiryDate: "2026-04-01", Quantity: 5}},
	})

	assert.ErrorIs(t, err, domain.ErrProductNotRegistered)
	assert.Empty(t, repo.products)
	assert.Empty(t, repo.batches)
}

func TestAddBatchesRejectsEmptySet(t *testing.T) {
	repo := newFakeBatchRepo()
	actor, session := seedOwnerAndSession(repo)

	service := NewBatchMutationService(repo)
	_, err := service.AddBatches(context.Background(), actor, domain.AddBatchesRequest{
		SessionID: session.ID.String(),
		SKU:       "KOPI-001",
	})

	assert.ErrorIs(t, err, domain.ErrEmptyBatchSet)
}

func TestUpdateBatchForbiddenForNonOwner(t *testing.T) {
	repo := newFakeBatchRepo()
	_, session := seedOwnerAndSession(repo)
	product := seedProduct(repo, "SNCK-002")
	existing := seedBatch(repo, product, session, 5)

	stranger := domain.Actor{UserID: uuid.NewString()}
	service := NewBatchMutationService(repo)
	_, err := service.UpdateBatch(context.Background(), stranger, existing.ID.String(), domain.UpdateBatchRequest{
		ExpiryDate: "2026-07-01",
		Quantity:   9,
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, 5, repo.batches[existing.ID].Quantity)
	assert.Empty(t, repo.audits)
}

func TestUpdateBatchAuditsOldAndNewValues(t *testing.T) {
	repo := newFakeBatchRepo()
	actor, session := seedOwnerAndSession(repo)
	product := seedProduct(repo, "SNCK-002")
	existing := seedBatch(repo, product, session, 5)

	service := NewBatchMutationService(repo)
	res, err := service.UpdateBatch(context.Background(), actor, existing.ID.String(), domain.UpdateBatchRequest{
		ExpiryDate: "2026-07-01",
		Quantity:   9,
	})

	require.NoError(t, err)
	assert.Equal(t, 9, res.Quantity)
	assert.Equal(t, 9, repo.batches[existing.ID].Quantity)

	require.Len(t, repo.audits, 1)
	entry := repo.audits[0]
	assert.Equal(t, ActionUpdate, entry.Action)

	var oldSnap, newSnap domain.BatchSnapshot
	require.NoError(t, json.Unmarshal(entry.OldValue, &oldSnap))
	require.NoError(t, json.Unmarshal(entry.NewValue, &newSnap))
	assert.Equal(t, 5, oldSnap.Quantity)
	assert.Equal(t, "2026-06-01", oldSnap.ExpiryDate)
	assert.Equal(t, 9, newSnap.Quantity)
	assert.Equal(t, "2026-07-01", newSnap.ExpiryDate)
}

func TestUpdateBatchErrorPrecedence(t *testing.T) {
	repo := newFakeBatchRepo()
	actor, session := seedOwnerAndSession(repo)
	product := seedProduct(repo, "SNCK-002")
	existing := seedBatch(repo, product, session, 5)

	badInput := domain.UpdateBatchRequest{ExpiryDate: "01-04-2026", Quantity: -3}
	service := NewBatchMutationService(repo)

	// an unknown batch reports not-found even when the payload is also bad
	_, err := service.UpdateBatch(context.Background(), actor, uuid.NewString(), badInput)
	assert.ErrorIs(t, err, domain.ErrBatchNotFound)

	// a foreign actor is rejected before the payload is inspected
	stranger := domain.Actor{UserID: uuid.NewString()}
	_, err = service.UpdateBatch(context.Background(), stranger, existing.ID.String(), badInput)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// only then the payload checks fire
	_, err = service.UpdateBatch(context.Background(), actor, existing.ID.String(), domain.UpdateBatchRequest{
		ExpiryDate: "01-04-2026",
		Quantity:   9,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)

	_, err = service.UpdateBatch(context.Background(), actor, existing.ID.String(), domain.UpdateBatchRequest{
		ExpiryDate: "2026-04-01",
		Quantity:   -3,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	assert.Equal(t, 5, repo.batches[existing.ID].Quantity)
	assert.Empty(t, repo.audits)
}

func TestDeleteBatchAdminOverride(t *testing.T) {
	repo := newFakeBatchRepo()
	_, session := seedOwnerAndSession(repo)
	product := seedProduct(repo, "MTRL-003")
	existing := seedBatch(repo, product, session, 7)

	admin := domain.Actor{UserID: uuid.NewString(), IsAdmin: true}
	service := NewBatchMutationService(repo)
	err := service.DeleteBatch(context.Background(), admin, existing.ID.String())

	require.NoError(t, err)
	assert.Empty(t, repo.batches)

	require.Len(t, repo.audits, 1)
	entry := repo.audits[0]
	assert.Equal(t, ActionDelete, entry.Action)
	// the trail records who deleted, not the session owner
	assert.Equal(t, admin.UserID, entry.UserID.String())
	assert.Nil(t, entry.NewValue)

	var snap domain.BatchSnapshot
	require.NoError(t, json.Unmarshal(entry.OldValue, &snap))
	assert.Equal(t, 7, snap.Quantity)
}

func TestDeleteBatchNotFound(t *testing.T) {
	repo := newFakeBatchRepo()
	actor, _ := seedOwnerAndSession(repo)

	service := NewBatchMutationService(repo)
	err := service.DeleteBatch(context.Background(), actor, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrBatchNotFound)
}

func TestOpenSessionRejectsTakenKey(t *testing.T) {
	repo := newFakeBatchRepo()
	actor, session := seedOwnerAndSession(repo)

	service := NewBatchMutationService(repo)
	_, err := service.OpenSession(context.Background(), actor, domain.OpenSessionRequest{
		SessionKey: session.SessionKey,
	})

	assert.ErrorIs(t, err, domain.ErrSessionKeyTaken)
}

func TestAddToSessionRegistersUnknownProducts(t *testing.T) {
	repo := newFakeBatchRepo()
	actor := domain.Actor{UserID: uuid.NewString()}

	service := NewBatchMutationService(repo)
	res, err := service.AddToSession(context.Background(), actor, domain.AddToSessionRequest{
		SessionKey: "opname-gudang-1",
		Entries: []domain.SessionEntryRequest{
			{SKU: "NEW-SKU-9", Name: "Keripik Singkong", ExpiryDate: "2026-04-20", Quantity: 24},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, res.ItemCount)
	require.Len(t, res.Batches, 1)
	assert.Equal(t, "NEW-SKU-9", res.Batches[0].SKU)

	created, ok := repo.products["NEW-SKU-9"]
	require.True(t, ok)
	assert.Equal(t, "Keripik Singkong", created.Name)

	require.Len(t, repo.sessions, 1)
	for _, s := range repo.sessions {
		assert.Equal(t, 1, s.ItemCount)
	}
	assert.Len(t, repo.audits, 1)
}

func TestAddToSessionReusesExistingSession(t *testing.T) {
	repo := newFakeBatchRepo()
	actor, session := seedOwnerAndSession(repo)
	seedProduct(repo, "KOPI-001")

	service := NewBatchMutationService(repo)
	res, err := service.AddToSession(context.Background(), actor, domain.AddToSessionRequest{
		SessionKey: session.SessionKey,
		Entries: []domain.SessionEntryRequest{
			{SKU: "KOPI-001", ExpiryDate: "2026-04-20", Quantity: 6},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, session.ID.String(), res.SessionID)
	assert.Len(t, repo.sessions, 1)
	assert.Len(t, repo.products, 1) // known SKU is not re-registered
}

func TestAddToSessionForbiddenForForeignSession(t *testing.T) {
	repo := newFakeBatchRepo()
	_, session := seedOwnerAndSession(repo)
	seedProduct(repo, "KOPI-001")

	stranger := domain.Actor{UserID: uuid.NewString()}
	service := NewBatchMutationService(repo)
	_, err := service.AddToSession(context.Background(), stranger, domain.AddToSessionRequest{
		SessionKey: session.SessionKey,
		Entries: []domain.SessionEntryRequest{
			{SKU: "KOPI-001", ExpiryDate: "2026-04-20", Quantity: 6},
		},
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, repo.batches)
}
