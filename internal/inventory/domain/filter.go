package domain

// Optional holds a value that is either present or absent. The zero value is
// absent.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a present Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether a value is present.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Ptr returns a pointer to a copy of the value, or nil when absent.
func (o Optional[T]) Ptr() *T {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}

// OrderFilter narrows order reads and bulk deletes. Every present field must
// match; an empty filter matches all orders.
type OrderFilter struct {
	Month     Optional[int]
	Year      Optional[int]
	Status    Optional[OrderStatus]
	ProductID Optional[int64]
}

// IsEmpty reports whether no predicate is present.
func (f OrderFilter) IsEmpty() bool {
	return !f.Month.IsSet() && !f.Year.IsSet() && !f.Status.IsSet() && !f.ProductID.IsSet()
}

// Matches reports whether the order satisfies every present predicate.
// Month and year are taken from CreatedDate.
func (f OrderFilter) Matches(o Order) bool {
	if month, ok := f.Month.Get(); ok && int(o.CreatedDate.Month()) != month {
		return false
	}
	if year, ok := f.Year.Get(); ok && o.CreatedDate.Year() != year {
		return false
	}
	if status, ok := f.Status.Get(); ok && o.Status != status {
		return false
	}
	if productID, ok := f.ProductID.Get(); ok && o.ProductID != productID {
		return false
	}
	return true
}
