package inMemory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	ddd "github.com/dddkit/ddd-go"
)

type booking struct {
	ddd.AggregateBase[string]
	guest  string
	nights int
}

func newBooking(id, guest string, nights int) *booking {
	return &booking{AggregateBase: ddd.NewAggregateBase(id), guest: guest, nights: nights}
}

func (b *booking) Clone() *booking {
	clone := *b
	clone.AggregateBase = b.AggregateBase.CloneBase()
	return &clone
}

func TestRepository_AddGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[string, *booking]()

	_, err := repo.Add(ctx, newBooking("B1", "Ada", 2))
	assert.NoError(t, err)

	got, ok, err := repo.GetByID(ctx, "B1")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "B1", got.ID())
	assert.Equal(t, "Ada", got.guest)
	assert.Equal(t, 2, got.nights)
}

func TestRepository_GetAbsent(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[string, *booking]()

	got, ok, err := repo.GetByID(ctx, "missing")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestRepository_UpdateReplacesEntirely(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[string, *booking]()

	_, err := repo.Add(ctx, newBooking("B1", "Ada", 2))
	assert.NoError(t, err)

	_, err = repo.Update(ctx, newBooking("B1", "Grace", 7))
	assert.NoError(t, err)

	got, ok, err := repo.GetByID(ctx, "B1")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Grace", got.guest)
	assert.Equal(t, 7, got.nights)

	n, err := repo.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRepository_AddIsUpsert(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[string, *booking]()

	_, err := repo.Add(ctx, newBooking("B1", "Ada", 2))
	assert.NoError(t, err)
	_, err = repo.Add(ctx, newBooking("B1", "Grace", 3))
	assert.NoError(t, err)

	got, _, err := repo.GetByID(ctx, "B1")
	assert.NoError(t, err)
	assert.Equal(t, "Grace", got.guest)
}

func TestRepository_DeleteAbsentIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[string, *booking]()

	assert.NoError(t, repo.Delete(ctx, newBooking("never-added", "Ada", 1)))
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[string, *booking]()

	b := newBooking("B1", "Ada", 2)
	_, err := repo.Add(ctx, b)
	assert.NoError(t, err)
	assert.NoError(t, repo.Delete(ctx, b))

	ok, err := ddd.Exists[string, *booking](ctx, repo, "B1")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestRepository_ListPaging(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[string, *booking]()

	_, err := ddd.AddRange[string, *booking](ctx, repo, []*booking{
		newBooking("B1", "Ada", 1),
		newBooking("B2", "Grace", 2),
		newBooking("B3", "Edsger", 3),
	})
	assert.NoError(t, err)

	page, err := repo.List(ctx, 1, 1)
	assert.NoError(t, err)
	assert.Len(t, page, 1)

	full, err := repo.List(ctx, 0, 3)
	assert.NoError(t, err)
	assert.Len(t, full, 3)

	// Go map iteration order is randomized per iteration, so the page can
	// only be checked for membership, not for a stable position.
	ids := []string{full[0].ID(), full[1].ID(), full[2].ID()}
	assert.Contains(t, ids, page[0].ID())

	rest, err := repo.List(ctx, 3, 10)
	assert.NoError(t, err)
	assert.Empty(t, rest)

	none, err := repo.List(ctx, 0, 0)
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestRepository_CountAndIsEmpty(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[string, *booking]()

	empty, err := ddd.IsEmpty[string, *booking](ctx, repo)
	assert.NoError(t, err)
	assert.True(t, empty)

	_, err = repo.Add(ctx, newBooking("B1", "Ada", 2))
	assert.NoError(t, err)

	n, err := repo.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRepository_CallersNeverAliasStoreState(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[string, *booking]()

	original := newBooking("B1", "Ada", 2)
	_, err := repo.Add(ctx, original)
	assert.NoError(t, err)

	// Mutating the caller's copy after Add must not affect the store.
	original.guest = "changed"

	stored, _, err := repo.GetByID(ctx, "B1")
	assert.NoError(t, err)
	assert.Equal(t, "Ada", stored.guest)

	// Mutating a read copy must not affect later reads.
	stored.guest = "changed again"
	fresh, _, err := repo.GetByID(ctx, "B1")
	assert.NoError(t, err)
	assert.Equal(t, "Ada", fresh.guest)
}

func TestRepository_WithDomainDecorator(t *testing.T) {
	ctx := context.Background()
	var handled []ddd.DomainEvent
	repo := ddd.NewDomainRepository[string, *booking](
		NewRepository[string, *booking](),
		ddd.DomainEventHandlerFunc(func(_ context.Context, event ddd.DomainEvent) error {
			handled = append(handled, event)
			return nil
		}),
	)

	b := newBooking("B1", "Ada", 2)
	b.RegisterDomainEvent(ddd.NewEventBase())
	b.RegisterDomainEvent(ddd.NewEventBase())

	_, err := repo.Add(ctx, b)
	assert.NoError(t, err)
	assert.Len(t, handled, 2)

	got, ok, err := repo.GetByID(ctx, "B1")
	assert.NoError(t, err)
	assert.True(t, ok)
	// The stored snapshot carries no pending events.
	assert.Empty(t, got.DrainDomainEvents())
}
