package cart

import (
	"context"
	"testing"

	"github.com/checkout-next/internal/models"
	"github.com/checkout-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type fakeDeliveryCatalog struct {
	options map[string]models.DeliveryOption
}

func newFakeDeliveryCatalog() *fakeDeliveryCatalog {
	return &fakeDeliveryCatalog{
		options: map[string]models.DeliveryOption{
			"1": {ID: "1", DeliveryDays: 7, PriceCents: 0},
			"2": {ID: "2", DeliveryDays: 3, PriceCents: 499},
			"3": {ID: "3", DeliveryDays: 1, PriceCents: 999},
		},
	}
}

func (c *fakeDeliveryCatalog) GetDeliveryOption(id string) (*models.DeliveryOption, bool) {
	option, ok := c.options[id]
	if !ok {
		return nil, false
	}
	return &option, true
}

func (c *fakeDeliveryCatalog) ValidDeliveryOption(id string) bool {
	_, ok := c.options[id]
	return ok
}

func (c *fakeDeliveryCatalog) ListDeliveryOptions() []models.DeliveryOption {
	return []models.DeliveryOption{c.options["1"], c.options["2"], c.options["3"]}
}

type memoryStorage struct {
	values map[string]string
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{values: make(map[string]string)}
}

func (s *memoryStorage) Read(ctx context.Context, key string) (string, bool, error) {
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *memoryStorage) Write(ctx context.Context, key string, itemsJSON string) error {
	s.values[key] = itemsJSON
	return nil
}

func newTestStore(t *testing.T, storage SnapshotStorage) *Store {
	t.Helper()
	store := NewStore("cart-test", storage, newFakeDeliveryCatalog())
	store.Load(context.Background())
	return store
}

func newSQLiteStorage(t *testing.T) *DatabaseStorage {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.CartSnapshot{}); err != nil {
		t.Fatalf("auto migrate cart snapshot failed: %v", err)
	}
	return NewDatabaseStorage(repository.NewCartSnapshotRepository(db))
}

func TestLoadSeedsDefaultItems(t *testing.T) {
	store := newTestStore(t, newMemoryStorage())

	items := store.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 seeded items, got %d", len(items))
	}
	if items[0].ProductID != "e43638ce-6aa0-4b85-b27f-e1d07eb678c6" || items[0].Quantity != 2 || items[0].DeliveryOptionID != "1" {
		t.Fatalf("unexpected first seed item: %+v", items[0])
	}
	if items[1].ProductID != "15b6fc6f-327a-4ec4-896f-486349e85a3d" || items[1].Quantity != 1 || items[1].DeliveryOptionID != "2" {
		t.Fatalf("unexpected second seed item: %+v", items[1])
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	store := newTestStore(t, newMemoryStorage())
	first := store.Items()

	store.Load(context.Background())
	second := store.Items()

	if len(first) != len(second) {
		t.Fatalf("load not idempotent: %d vs %d items", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("load not idempotent at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestLoadFallsBackOnMalformedSnapshot(t *testing.T) {
	storage := newMemoryStorage()
	storage.values["cart-test"] = `{"not":"an array"`

	store := newTestStore(t, storage)
	if len(store.Items()) != 2 {
		t.Fatalf("expected seed fallback on malformed snapshot, got %d items", len(store.Items()))
	}
}

func TestAddMergesByProductID(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, newMemoryStorage())

	if _, err := store.Add(ctx, "p-100", 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := store.Add(ctx, "p-100", 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := store.Add(ctx, "p-100", 4); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	count := 0
	for _, item := range store.Items() {
		if item.ProductID != "p-100" {
			continue
		}
		count++
		if item.Quantity != 7 {
			t.Fatalf("expected merged quantity 7, got %d", item.Quantity)
		}
		if item.DeliveryOptionID != "1" {
			t.Fatalf("expected baseline delivery option, got %s", item.DeliveryOptionID)
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one line item for p-100, got %d", count)
	}
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, newMemoryStorage())
	before := store.Items()

	if _, err := store.Add(ctx, "p-100", 0); err != ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := store.Add(ctx, "p-100", -3); err != ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if len(store.Items()) != len(before) {
		t.Fatalf("cart changed after rejected add")
	}
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, newMemoryStorage())

	result, err := store.Remove(ctx, "e43638ce-6aa0-4b85-b27f-e1d07eb678c6")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if result != Applied {
		t.Fatalf("expected Applied, got %v", result)
	}
	for _, item := range store.Items() {
		if item.ProductID == "e43638ce-6aa0-4b85-b27f-e1d07eb678c6" {
			t.Fatalf("removed item still present")
		}
	}

	before := store.Items()
	result, err = store.Remove(ctx, "no-such-product")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if result != NotFound {
		t.Fatalf("expected NotFound, got %v", result)
	}
	after := store.Items()
	if len(before) != len(after) {
		t.Fatalf("cart changed after removing non-existent item")
	}
}

func TestSetQuantityNotFound(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, newMemoryStorage())

	result, err := store.SetQuantity(ctx, "no-such-product", 5)
	if err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}
	if result != NotFound {
		t.Fatalf("expected NotFound, got %v", result)
	}
}

func TestSetDeliveryOptionValidation(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, newMemoryStorage())

	result, err := store.SetDeliveryOption(ctx, "e43638ce-6aa0-4b85-b27f-e1d07eb678c6", "nonexistent")
	if err != nil {
		t.Fatalf("set delivery option failed: %v", err)
	}
	if result != InvalidOption {
		t.Fatalf("expected InvalidOption, got %v", result)
	}
	if store.Items()[0].DeliveryOptionID != "1" {
		t.Fatalf("delivery option changed after invalid update")
	}

	result, err = store.SetDeliveryOption(ctx, "e43638ce-6aa0-4b85-b27f-e1d07eb678c6", "3")
	if err != nil {
		t.Fatalf("set delivery option failed: %v", err)
	}
	if result != Applied {
		t.Fatalf("expected Applied, got %v", result)
	}
	if store.Items()[0].DeliveryOptionID != "3" {
		t.Fatalf("delivery option not applied")
	}
}

func TestTotalQuantity(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, newMemoryStorage())

	// 种子数据 2 + 1
	if got := store.TotalQuantity(); got != 3 {
		t.Fatalf("expected total quantity 3, got %d", got)
	}
	if _, err := store.Add(ctx, "p-100", 5); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if got := store.TotalQuantity(); got != 8 {
		t.Fatalf("expected total quantity 8, got %d", got)
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := newSQLiteStorage(t)
	delivery := newFakeDeliveryCatalog()

	store := NewStore("cart-roundtrip", storage, delivery)
	store.Load(ctx)
	if _, err := store.Add(ctx, "p-100", 5); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := store.SetQuantity(ctx, "15b6fc6f-327a-4ec4-896f-486349e85a3d", 9); err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}
	if _, err := store.Remove(ctx, "e43638ce-6aa0-4b85-b27f-e1d07eb678c6"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	expected := store.Items()

	reloaded := NewStore("cart-roundtrip", storage, delivery)
	reloaded.Load(ctx)
	got := reloaded.Items()

	if len(got) != len(expected) {
		t.Fatalf("round trip mismatch: %d vs %d items", len(got), len(expected))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("round trip mismatch at %d: %+v vs %+v", i, got[i], expected[i])
		}
	}
}

func TestManagerIsolatesCartKeys(t *testing.T) {
	ctx := context.Background()
	manager := NewManager(newMemoryStorage(), newFakeDeliveryCatalog())

	defaultCart := manager.Get(ctx, "cart-default")
	businessCart := manager.Get(ctx, "cart-business")

	if _, err := defaultCart.Add(ctx, "p-100", 3); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	for _, item := range businessCart.Items() {
		if item.ProductID == "p-100" {
			t.Fatalf("mutation leaked across cart keys")
		}
	}

	if manager.Get(ctx, "cart-default") != defaultCart {
		t.Fatalf("expected same store instance for same key")
	}
}
