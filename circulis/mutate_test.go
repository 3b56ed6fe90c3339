package circulis_test

import (
	"errors"
	"testing"

	"github.com/kevin-panoptic-dev/circulis/circulis"
)

func TestRemoveContiguous(t *testing.T) {
	l := nums(10, 20, 30, 40, 50)
	if err := l.Remove(1, 3, 1); err != nil {
		t.Fatal(err)
	}
	assertAny(t, l.Elements(), 10, 50)
}

func TestRemoveStepped(t *testing.T) {
	l := nums(10, 20, 30, 40, 50)
	if err := l.Remove(0, 4, 2); err != nil {
		t.Fatal(err)
	}
	assertAny(t, l.Elements(), 20, 40)
}

func TestRemoveAt(t *testing.T) {
	l := nums(1, 2, 3)
	if err := l.RemoveAt(1); err != nil {
		t.Fatal(err)
	}
	assertAny(t, l.Elements(), 1, 3)
}

func TestRemoveValidation(t *testing.T) {
	empty := circulis.Empty[any]()
	if err := empty.Remove(0, 0, 1); !errors.Is(err, circulis.ErrInvalidOperation) {
		t.Fatalf("empty: %v", err)
	}
	l := nums(1, 2, 3)
	if err := l.Remove(0, 2, 0); !errors.Is(err, circulis.ErrInvalidOperation) {
		t.Fatalf("zero step: %v", err)
	}
	if err := l.Remove(3, 3, 1); !errors.Is(err, circulis.ErrIndexOutOfRange) {
		t.Fatalf("start past end: %v", err)
	}
	if err := l.Remove(0, 1, 5); !errors.Is(err, circulis.ErrIndexOutOfRange) {
		t.Fatalf("oversized step: %v", err)
	}
	assertAny(t, l.Elements(), 1, 2, 3) // untouched after failed validation
}

func TestInsertRange(t *testing.T) {
	l := nums(1, 2, 3)
	if err := l.Insert(0, 1, 1, 1); err != nil {
		t.Fatal(err)
	}
	assertAny(t, l.Elements(), 1, 0, 2, 3)
}

func TestInsertValidation(t *testing.T) {
	empty := circulis.Empty[any]()
	if err := empty.Insert(1, 0, 0, 1); !errors.Is(err, circulis.ErrInvalidOperation) {
		t.Fatalf("empty: %v", err)
	}
	l := nums(1, 2)
	if err := l.Insert(0, 0, 1, 0); !errors.Is(err, circulis.ErrInvalidOperation) {
		t.Fatalf("zero step: %v", err)
	}
}

func TestDiscard(t *testing.T) {
	l := nums(1, 2, 1)
	if err := l.Discard(1); err != nil {
		t.Fatal(err)
	}
	assertAny(t, l.Elements(), 2, 1)
	if err := l.Discard(9); !errors.Is(err, circulis.ErrInvalidOperation) {
		t.Fatalf("missing element: %v", err)
	}
	empty := circulis.Empty[any]()
	if err := empty.Discard(1); !errors.Is(err, circulis.ErrInvalidOperation) {
		t.Fatalf("empty: %v", err)
	}
}
