package filing

// one accumulates a field that may be assigned at most once during a child
// scan. It replaces restating the duplicate/missing discipline in every
// decoder.
type one[T any] struct {
	entity string
	field  string
	val    *T
}

func newOne[T any](entity, field string) one[T] {
	return one[T]{entity: entity, field: field}
}

// set records a value, failing on a second assignment.
func (o *one[T]) set(v T) error {
	if o.val != nil {
		return &CardinalityError{Entity: o.entity, Field: o.field, Dup: true}
	}
	o.val = &v
	return nil
}

// setParsed converts then records, short-circuiting on either error.
func setParsed[T any](o *one[T], raw string, parse func(string) (T, error)) error {
	v, err := parse(raw)
	if err != nil {
		return err
	}
	return o.set(v)
}

// required finalizes an exactly-one field.
func (o *one[T]) required() (T, error) {
	if o.val == nil {
		var zero T
		return zero, &CardinalityError{Entity: o.entity, Field: o.field}
	}
	return *o.val, nil
}

// optional finalizes an at-most-one field; nil means absent.
func (o *one[T]) optional() *T {
	return o.val
}
