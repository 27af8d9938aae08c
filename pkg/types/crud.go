package types

import (
	"iter"

	"github.com/google/uuid"
)

// Store persists one entity type in a backend.
type Store[I Item] interface {
	// Create persists a new record derived from item and returns the
	// backend's canonical stored form, so that the Create package function
	// can verify it against the caller's intent. Must not mutate item.
	Create(item I) (I, error)

	// Get fetches an item by identifier. Returns a NotFoundError when no
	// record exists.
	Get(id uuid.UUID) (I, error)
}

// Relate persists and queries one (Left, Right) relationship kind.
type Relate[L ContainerOf[R], R Item] interface {
	// CreateLinkedItem persists the Right item and its association to Left
	// as a single logical operation, returning a relationship that reflects
	// backend-confirmed state for both sides. Both slots of link must
	// already be resolved; enforcing that is the caller's job (see
	// CreateLinked), not this operation's.
	CreateLinkedItem(link Contains[L, R]) (Contains[L, R], error)

	// GetLinkedItems yields the relationships whose Left matches left,
	// ordered by sort-order token then backend insertion order. Returns a
	// NotFoundError when left itself does not exist. The sequence is
	// finite and single-use.
	GetLinkedItems(left L) (iter.Seq[Contains[L, R]], error)
}

// Create persists item in backend and verifies the write. The backend's
// returned record is structurally compared against item: equality confirms
// the create, while divergence fails with a MismatchError carrying both
// values. Backend failures propagate verbatim. Comparison is the only way
// to detect silent divergence without trusting the backend blindly, which
// keeps the protocol backend-agnostic.
func Create[I Item](backend Store[I], item I) error {
	created, err := backend.Create(item)
	if err != nil {
		return err
	}
	if created != item {
		return &MismatchError[I]{Expected: item, Actual: created}
	}
	return nil
}

// Get fetches an item by id. A pure pass-through to Store.Get: there is no
// intended value to verify against.
func Get[I Item](backend Store[I], id uuid.UUID) (I, error) {
	return backend.Get(id)
}

// CreateLinked persists a relationship whose Right side is a new item.
// A broken pair short-circuits into a RelationshipError before any backend
// call. Once continuable, the backend's returned Right side is verified
// against the intended Right with the same equality rule as Create; the
// returned Left is consumed but not re-verified, since Left pre-existed and
// is only referenced.
func CreateLinked[L ContainerOf[R], R Item](backend Relate[L, R], link Contains[L, R]) error {
	_, want, err := link.Resolve()
	if err != nil {
		return err
	}
	created, err := backend.CreateLinkedItem(link)
	if err != nil {
		return err
	}
	got, err := created.Right.Item()
	if err != nil {
		return err
	}
	if got != want {
		return &MismatchError[R]{Expected: want, Actual: got}
	}
	return nil
}

// GetLinked yields the relationships whose Left matches left. A pure
// pass-through to Relate.GetLinkedItems.
func GetLinked[L ContainerOf[R], R Item](backend Relate[L, R], left L) (iter.Seq[Contains[L, R]], error) {
	return backend.GetLinkedItems(left)
}
