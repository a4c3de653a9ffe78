package bridge

import "fmt"

// BuildError is returned when a caller-supplied event stream does not
// follow the grammar Build expects.
type BuildError struct {
	StackEmpty       bool
	NotSupported     string
	MisplacedEnd     TagKind
	MisplacedHasTag  bool
	NoChildren       TagKind
	NoChildrenHasTag bool
}

func (e *BuildError) Error() string {
	switch {
	case e.StackEmpty:
		return "bridge: event stack underflow"
	case e.NotSupported != "":
		return fmt.Sprintf("bridge: not supported: %s", e.NotSupported)
	case e.MisplacedHasTag:
		return fmt.Sprintf("bridge: misplaced end tag for %s", e.MisplacedEnd)
	case e.NoChildrenHasTag:
		return fmt.Sprintf("bridge: %s allows no children", e.NoChildren)
	default:
		return "bridge: build error"
	}
}
