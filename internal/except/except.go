// Package except implements the evaluator's single runtime-exception
// type and the fixed built-in exception taxonomy. Kind is a closed
// enum rather than a free-form message: the taxonomy is part of the
// wire contract with the shell, whose uncaught-exception message names
// the ML-standard structure, e.g. "General.Subscript".
package except

import (
	"fmt"

	"github.com/hydromatic/morel-core/internal/pos"
)

// Kind is one of the built-in exception variants, exact for
// compatibility with ML's basis library.
type Kind int

const (
	Empty Kind = iota
	Bind
	Chr
	Div
	Domain
	Option
	Overflow
	Error
	Size
	Subscript
	UnequalLengths
	Unordered
)

// structure returns the ML basis structure that declares this
// exception, used to format "uncaught exception General.Subscript".
func (k Kind) structure() string {
	switch k {
	case Empty:
		return "List"
	case Option:
		return "Option"
	case Error:
		return "Interact"
	case UnequalLengths:
		return "ListPair"
	case Unordered:
		return "IEEEReal"
	default:
		return "General"
	}
}

func (k Kind) name() string {
	switch k {
	case Empty:
		return "Empty"
	case Bind:
		return "Bind"
	case Chr:
		return "Chr"
	case Div:
		return "Div"
	case Domain:
		return "Domain"
	case Option:
		return "Option"
	case Overflow:
		return "Overflow"
	case Error:
		return "Error"
	case Size:
		return "Size"
	case Subscript:
		return "Subscript"
	case UnequalLengths:
		return "UnequalLengths"
	case Unordered:
		return "Unordered"
	default:
		return "Unknown"
	}
}

// QualifiedName renders e.g. "General.Subscript", "List.Empty".
func (k Kind) QualifiedName() string {
	return k.structure() + "." + k.name()
}

// Exception is the evaluator's single runtime-exception type: a kind
// plus the source position of the expression that raised it.
type Exception struct {
	Kind    Kind
	Pos     pos.Position
	Message string // extra detail, e.g. "subscript out of bounds"
}

func New(k Kind, p pos.Position, format string, args ...interface{}) *Exception {
	return &Exception{Kind: k, Pos: p, Message: fmt.Sprintf(format, args...)}
}

func (e *Exception) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("uncaught exception %s: %s", e.Kind.QualifiedName(), e.Message)
	}
	return fmt.Sprintf("uncaught exception %s", e.Kind.QualifiedName())
}

// UserMessage is the format the top-level shell prints: "uncaught
// exception <Name>" plus position.
func (e *Exception) UserMessage() string {
	return fmt.Sprintf("uncaught exception %s at %s", e.Kind.QualifiedName(), e.Pos)
}

// SubscriptOutOfBounds is part of the REPL's observable output; the
// exact text must not drift.
const SubscriptOutOfBounds = "subscript out of bounds"
