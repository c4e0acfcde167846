package filing

import "fmt"

// CardinalityError reports an exactly-one field assigned more than once, or a
// mandatory field missing when its record is finalized.
type CardinalityError struct {
	Entity string // container being decoded
	Field  string // offending child tag
	Dup    bool   // true for a duplicate, false for a missing mandatory field
}

func (e *CardinalityError) Error() string {
	if e.Dup {
		return fmt.Sprintf("%s: field <%s> appears more than once", e.Entity, e.Field)
	}
	return fmt.Sprintf("%s: mandatory field <%s> is missing", e.Entity, e.Field)
}

// UnrecognizedChildError reports a child tag outside an entity's closed
// legal-children set.
type UnrecognizedChildError struct {
	Entity string
	Child  string
}

func (e *UnrecognizedChildError) Error() string {
	return fmt.Sprintf("%s: unrecognized child <%s>", e.Entity, e.Child)
}

// DocumentCountError reports a submission whose declared public document
// count does not match the number of parsed documents; the archive is
// incomplete or corrupt.
type DocumentCountError struct {
	Declared int
	Parsed   int
}

func (e *DocumentCountError) Error() string {
	return fmt.Sprintf("declared document count %d but parsed %d documents", e.Declared, e.Parsed)
}
