// File: buffer_test.go
// Title: Buffer Tests
// Description: Tests for the null-terminated buffer invariant across all
//              mutating operations, and for interop with string views.

package zstr

import (
	"testing"

	"github.com/stdx-go/stdx/core/strview"
)

// terminated checks the backing invariant through the public surface:
// the unit at position Len must be the terminator
func terminated[C strview.Char](t *testing.T, b *Buffer[C]) {
	t.Helper()
	if u := b.Unit(b.Len()); u != 0 {
		t.Errorf("unit at Len() = %v, want terminator", u)
	}
}

func TestZeroValue(t *testing.T) {
	var b String

	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
	if !b.IsEmpty() {
		t.Error("IsEmpty() = false")
	}
	if b.String() != "" {
		t.Errorf("String() = %q, want empty", b.String())
	}
	if b.Data() == nil {
		t.Error("Data() = nil, want terminator pointer")
	}
}

func TestNew(t *testing.T) {
	b := New[byte]()
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
	terminated(t, b)
}

func TestNewCap(t *testing.T) {
	b := NewCap[byte](32)
	if b.Cap() < 32 {
		t.Errorf("Cap() = %d, want >= 32", b.Cap())
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
}

func TestFrom(t *testing.T) {
	b := From("hello")
	if b.Len() != 5 {
		t.Errorf("Len() = %d, want 5", b.Len())
	}
	if b.String() != "hello" {
		t.Errorf("String() = %q, want hello", b.String())
	}
	terminated(t, b)
}

func TestSprintf(t *testing.T) {
	b := Sprintf("%d items, %s", 42, "sorted")
	if b.String() != "42 items, sorted" {
		t.Errorf("String() = %q", b.String())
	}
	terminated(t, b)
}

func TestAppend(t *testing.T) {
	b := New[byte]()
	b.Append('h').Append('i')

	if b.String() != "hi" {
		t.Errorf("String() = %q, want hi", b.String())
	}
	terminated(t, b)
}

func TestAppendSlice(t *testing.T) {
	b := From("he")
	b.AppendSlice([]byte("llo"))

	if b.String() != "hello" {
		t.Errorf("String() = %q, want hello", b.String())
	}
	terminated(t, b)
}

func TestAppendGoString(t *testing.T) {
	b := From("hello").AppendGoString(", world")
	if b.String() != "hello, world" {
		t.Errorf("String() = %q", b.String())
	}

	w := New[uint16]().AppendGoString("héllo")
	if w.Len() != 5 {
		t.Errorf("uint16 Len() = %d, want 5", w.Len())
	}
	if w.String() != "héllo" {
		t.Errorf("uint16 String() = %q, want héllo", w.String())
	}
	terminated(t, w)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want string
	}{
		{"shorter", 3, "hel"},
		{"zero", 0, ""},
		{"negative clears", -1, ""},
		{"beyond length is no-op", 10, "hello"},
		{"exact length is no-op", 5, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := From("hello").Truncate(tt.n)
			if b.String() != tt.want {
				t.Errorf("Truncate(%d) = %q, want %q", tt.n, b.String(), tt.want)
			}
			terminated(t, b)
		})
	}
}

func TestReset(t *testing.T) {
	b := From("hello")
	oldCap := b.Cap()
	b.Reset()

	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
	if b.Cap() != oldCap {
		t.Errorf("Reset changed capacity: %d -> %d", oldCap, b.Cap())
	}
	terminated(t, b)
}

func TestGrow(t *testing.T) {
	b := From("hi")
	b.Grow(64)

	if b.Cap()-b.Len() < 64 {
		t.Errorf("free capacity = %d, want >= 64", b.Cap()-b.Len())
	}
	if b.String() != "hi" {
		t.Errorf("Grow changed content: %q", b.String())
	}
}

func TestUnitsReturnsCopy(t *testing.T) {
	b := From("abc")
	units := b.Units()

	if string(units) != "abc" {
		t.Errorf("Units() = %q, want abc", units)
	}

	units[0] = 'X'
	if b.String() != "abc" {
		t.Errorf("mutating Units() result changed the buffer: %q", b.String())
	}
}

func TestClone(t *testing.T) {
	b := From("hello")
	c := b.Clone()

	c.AppendGoString("!")

	if b.String() != "hello" {
		t.Errorf("clone mutation affected original: %q", b.String())
	}
	if c.String() != "hello!" {
		t.Errorf("clone = %q, want hello!", c.String())
	}
}

func TestBufferAsViewOwner(t *testing.T) {
	b := From("hello world")
	v := strview.Of(b)

	if v.Len() != b.Len() {
		t.Errorf("view Len() = %d, want %d", v.Len(), b.Len())
	}
	if v.String() != "hello world" {
		t.Errorf("view String() = %q", v.String())
	}
	if v.Data() != b.Data() {
		t.Error("view must alias the buffer, not copy it")
	}
}

func TestFromViewRoundTrip(t *testing.T) {
	original := strview.Lit("round trip")
	owned := FromView(original)
	again := strview.Of(owned)

	if original.Compare(again) != 0 {
		t.Errorf("round trip: %q != %q", original.String(), again.String())
	}
	terminated(t, owned)
}

func TestFromViewWide(t *testing.T) {
	v := strview.Lit32("héllo")
	owned := FromView(v)

	if owned.Len() != 5 {
		t.Errorf("Len() = %d, want 5", owned.Len())
	}
	if owned.String() != "héllo" {
		t.Errorf("String() = %q, want héllo", owned.String())
	}
	terminated(t, owned)
}
