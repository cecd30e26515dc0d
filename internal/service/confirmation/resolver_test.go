package confirmation

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"panelstore/internal/domain"
)

type stubOrders struct {
	rec   *domain.OrderRecord
	err   error
	calls int
}

func (s *stubOrders) GetByID(_ context.Context, _ string) (*domain.OrderRecord, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.rec, nil
}

type stubSnapshots struct {
	lines []domain.CartLine
	err   error
}

func (s *stubSnapshots) LoadLast(_ context.Context, _ string) ([]domain.CartLine, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.lines, nil
}

func testResolver(orders *stubOrders, snaps *stubSnapshots) *Resolver {
	return NewResolver(orders, snaps, log.New(io.Discard, "", 0))
}

func itemsFixture() []domain.CartLine {
	return []domain.CartLine{{Offering: domain.Offering{ID: 1, Title: "Basic Panel", Price: 10000}, Quantity: 1}}
}

func TestResolvePrefersHandoff(t *testing.T) {
	orders := &stubOrders{err: domain.ErrNotFound}
	r := testResolver(orders, &stubSnapshots{})

	rec := &domain.OrderRecord{OrderID: "ORDER-1-2", Items: itemsFixture()}
	r.Remember(rec)

	got, items, err := r.Resolve(context.Background(), "s1", "ORDER-1-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != rec || len(items) != 1 {
		t.Fatalf("expected hand-off record, got %+v", got)
	}
	if orders.calls != 0 {
		t.Fatalf("persisted store must not be consulted when the hand-off hits")
	}
}

func TestResolveFallsBackToPersistedRecord(t *testing.T) {
	rec := &domain.OrderRecord{OrderID: "ORDER-1-2", Items: itemsFixture()}
	r := testResolver(&stubOrders{rec: rec}, &stubSnapshots{})

	got, items, err := r.Resolve(context.Background(), "s1", "ORDER-1-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.OrderID != "ORDER-1-2" || len(items) != 1 {
		t.Fatalf("unexpected resolution %+v %+v", got, items)
	}
}

func TestResolveFillsItemsFromLastCart(t *testing.T) {
	rec := &domain.OrderRecord{OrderID: "ORDER-1-2"}
	r := testResolver(&stubOrders{rec: rec}, &stubSnapshots{lines: itemsFixture()})

	got, items, err := r.Resolve(context.Background(), "s1", "ORDER-1-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.OrderID != "ORDER-1-2" {
		t.Fatalf("unexpected record %+v", got)
	}
	if len(items) != 1 || items[0].Title != "Basic Panel" {
		t.Fatalf("expected items from last-cart snapshot, got %+v", items)
	}
}

func TestResolveTerminalNotFound(t *testing.T) {
	r := testResolver(&stubOrders{err: domain.ErrNotFound}, &stubSnapshots{err: domain.ErrNotFound})

	_, _, err := r.Resolve(context.Background(), "s1", "ORDER-9-9")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResolveRecordWithoutAnyItems(t *testing.T) {
	rec := &domain.OrderRecord{OrderID: "ORDER-1-2"}
	r := testResolver(&stubOrders{rec: rec}, &stubSnapshots{err: domain.ErrNotFound})

	_, _, err := r.Resolve(context.Background(), "s1", "ORDER-1-2")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("a record with no recoverable items is the terminal state, got %v", err)
	}
}

func TestResolveMissingOrderID(t *testing.T) {
	r := testResolver(&stubOrders{}, &stubSnapshots{})

	_, _, err := r.Resolve(context.Background(), "s1", "")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResolveStorageErrorDegradesToNotFound(t *testing.T) {
	r := testResolver(&stubOrders{err: errors.New("db down")}, &stubSnapshots{})

	_, _, err := r.Resolve(context.Background(), "s1", "ORDER-1-2")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("storage failure must degrade to not-found, got %v", err)
	}
}
