package except

import (
	"testing"

	"github.com/hydromatic/morel-core/internal/pos"
)

func TestQualifiedNames(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{Subscript, "General.Subscript"},
		{Bind, "General.Bind"},
		{Chr, "General.Chr"},
		{Div, "General.Div"},
		{Domain, "General.Domain"},
		{Overflow, "General.Overflow"},
		{Size, "General.Size"},
		{Empty, "List.Empty"},
		{Option, "Option.Option"},
		{Error, "Interact.Error"},
		{UnequalLengths, "ListPair.UnequalLengths"},
		{Unordered, "IEEEReal.Unordered"},
	}
	for _, c := range cases {
		if got := c.kind.QualifiedName(); got != c.want {
			t.Errorf("QualifiedName(%v) = %q, want %q", c.kind, got, c.want)
		}
	}
}

func TestUserMessageIncludesNameAndPosition(t *testing.T) {
	e := New(Subscript, pos.Position{Line: 4, Column: 11}, "")
	got := e.UserMessage()
	want := "uncaught exception General.Subscript at 4.11"
	if got != want {
		t.Fatalf("UserMessage() = %q, want %q", got, want)
	}
}

func TestErrorIncludesDetailMessage(t *testing.T) {
	e := New(Subscript, pos.None, SubscriptOutOfBounds)
	got := e.Error()
	want := "uncaught exception General.Subscript: subscript out of bounds"
	if got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}
