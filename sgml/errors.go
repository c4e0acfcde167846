package sgml

import "fmt"

// TagClass distinguishes the two closed vocabularies in error reports.
type TagClass string

const (
	TagClassContainer TagClass = "container"
	TagClassValue     TagClass = "value"
)

// UnknownTagError reports a tag name that is not in the expected vocabulary.
type UnknownTagError struct {
	Name  string
	Class TagClass
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("unknown %s tag <%s>", e.Class, e.Name)
}

// MalformedLineError reports a line that does not have the <NAME> shape the
// format requires.
type MalformedLineError struct {
	Line   string
	Reason string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed line %q: %s", e.Line, e.Reason)
}

// UnexpectedEOFError reports input that ended while a container was still open.
type UnexpectedEOFError struct {
	Open ContainerTag
}

func (e *UnexpectedEOFError) Error() string {
	return fmt.Sprintf("unexpected end of input: <%s> was never closed", e.Open)
}

// UnexpectedCloseTagError reports a close tag that appeared where an open or
// value token was expected, or that did not match the innermost open tag.
type UnexpectedCloseTagError struct {
	Got  ContainerTag
	Want ContainerTag // empty when no container was open
}

func (e *UnexpectedCloseTagError) Error() string {
	if e.Want == "" {
		return fmt.Sprintf("unexpected close tag </%s>", e.Got)
	}
	return fmt.Sprintf("unexpected close tag </%s> while <%s> is open", e.Got, e.Want)
}
