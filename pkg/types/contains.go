package types

import "fmt"

// DefaultSortOrder is the sort-order token assigned by Link. The token is
// opaque to the core; backends order lexicographically.
const DefaultSortOrder = "a"

// Slot holds one endpoint of a relationship: either the resolved item or
// the error explaining why it could not be resolved. Endpoints arrive this
// way because the left side is typically fetched by id and the right side
// freshly constructed, either of which can fail before the relationship is
// ever touched.
type Slot[I Item] struct {
	item I
	err  error
}

// Resolved returns a slot holding item.
func Resolved[I Item](item I) Slot[I] {
	return Slot[I]{item: item}
}

// Unresolved returns a slot holding the resolution failure.
func Unresolved[I Item](err error) Slot[I] {
	return Slot[I]{err: err}
}

// OK reports whether the slot holds a resolved item.
func (s Slot[I]) OK() bool { return s.err == nil }

// Item returns the resolved item, or the resolution error.
func (s Slot[I]) Item() (I, error) { return s.item, s.err }

// Err returns the resolution error, nil if the slot is resolved.
func (s Slot[I]) Err() error { return s.err }

// ContainerOf restricts which (left, right) pairings may form a Contains
// value. Only sanctioned containers implement the CanContain marker for a
// given member type, so an illegal pairing fails to compile.
type ContainerOf[R Item] interface {
	Item
	CanContain(R)
}

// Contains is an ordered pairing of a container entity and one of its
// members, with independently fallible endpoints and an opaque sort-order
// token. A relationship is only valid when both slots are simultaneously
// resolved; any other combination is a terminal failure state that must
// never be partially consumed. Relationships are built on demand and live
// only for the duration of a create or query call.
type Contains[L ContainerOf[R], R Item] struct {
	Left      Slot[L]
	SortOrder string
	Right     Slot[R]
}

// Resolve returns both endpoints when both slots are resolved. Otherwise it
// returns a RelationshipError carrying both slots verbatim, even though
// only one side may have failed; no backend call may be attempted on such a
// pair.
func (c Contains[L, R]) Resolve() (L, R, error) {
	if c.Left.OK() && c.Right.OK() {
		return c.Left.item, c.Right.item, nil
	}
	var left L
	var right R
	return left, right, &RelationshipError[L, R]{Left: c.Left, Right: c.Right}
}

// RelationshipError aggregates a broken relationship into one error value.
// Both slots are preserved so a caller can inspect which side(s) failed and
// why, rather than collapsing to "something about this relationship
// failed".
type RelationshipError[L ContainerOf[R], R Item] struct {
	Left  Slot[L]
	Right Slot[R]
}

func (e *RelationshipError[L, R]) Error() string {
	left, right := "ok", "ok"
	if e.Left.err != nil {
		left = e.Left.err.Error()
	}
	if e.Right.err != nil {
		right = e.Right.err.Error()
	}
	return fmt.Sprintf("relationship contains errors: left: %s, right: %s", left, right)
}

func (e *RelationshipError[L, R]) Is(target error) bool { return target == ErrRelationship }
