package circulis_test

import (
	"errors"
	"testing"

	"github.com/kevin-panoptic-dev/circulis/circulis"
)

func TestCompareNumericBySum(t *testing.T) {
	c, err := nums(1, 2, 3).Compare(nums(10))
	if err != nil || c != -1 {
		t.Fatalf("got %d/%v", c, err)
	}
	c, err = nums(5, 5).Compare([]int{1, 2, 3})
	if err != nil || c != 1 {
		t.Fatalf("got %d/%v", c, err)
	}
	c, err = nums(2, 2).Compare([]int{4})
	if err != nil || c != 0 {
		t.Fatalf("got %d/%v", c, err)
	}
}

func TestCompareMixedByTruthyCount(t *testing.T) {
	// "a" and 0 break the numeric path, so both sides count truthy
	// elements instead: left has 2, right has 3
	l := circulis.New[any](1, "a", 0)
	c, err := l.Compare([]any{1, 2, 3})
	if err != nil || c != -1 {
		t.Fatalf("got %d/%v", c, err)
	}
}

func TestCompareRejectsNonSequence(t *testing.T) {
	_, err := nums(1).Compare(42)
	if !errors.Is(err, circulis.ErrTypeMismatch) {
		t.Fatalf("got %v", err)
	}
}

func TestOrderingWrappers(t *testing.T) {
	l := nums(1, 2)
	if ok, _ := l.Less([]int{10}); !ok {
		t.Fatal("Less failed")
	}
	if ok, _ := l.Greater([]int{1}); !ok {
		t.Fatal("Greater failed")
	}
	if ok, _ := l.AtMost([]int{3}); !ok {
		t.Fatal("AtMost failed")
	}
	if ok, _ := l.AtLeast([]int{3}); !ok {
		t.Fatal("AtLeast failed")
	}
}

func TestEqual(t *testing.T) {
	l := nums(1, 2, 3)
	if !l.Equal([]int{1, 2, 3}) {
		t.Fatal("equal slices reported unequal")
	}
	if !l.Equal(circulis.New[any](1.0, 2, 3)) {
		t.Fatal("numeric types should not break equality")
	}
	if l.Equal([]int{3, 2, 1}) {
		t.Fatal("order must matter")
	}
	if l.Equal([]int{1, 2}) {
		t.Fatal("length must matter")
	}
	if l.Equal("not a sequence") {
		t.Fatal("non-sequence should be unequal")
	}
}

func TestConcat(t *testing.T) {
	got, err := nums(1, 2).Concat([]any{3, 4})
	if err != nil {
		t.Fatal(err)
	}
	assertAny(t, got.Elements(), 1, 2, 3, 4)
}

func TestConcatTypeMismatch(t *testing.T) {
	l := circulis.New(1, 2)
	_, err := l.Concat([]string{"x"})
	if !errors.Is(err, circulis.ErrTypeMismatch) {
		t.Fatalf("got %v", err)
	}
}

func TestExtend(t *testing.T) {
	l := nums(1)
	if err := l.Extend(nums(2, 3)); err != nil {
		t.Fatal(err)
	}
	assertAny(t, l.Elements(), 1, 2, 3)
}

func TestSubtract(t *testing.T) {
	l := nums(1, 2, 1, 3)
	if err := l.Subtract([]any{1, 3, 9}); err != nil {
		t.Fatal(err)
	}
	// first occurrence of each subtrahend element removed; 9 skipped
	assertAny(t, l.Elements(), 2, 1)
}

func TestRepeat(t *testing.T) {
	got, err := nums(1, 2).Repeat(3)
	if err != nil {
		t.Fatal(err)
	}
	assertAny(t, got.Elements(), 1, 2, 1, 2, 1, 2)

	got, err = nums(1).Repeat(0)
	if err != nil || got.Len() != 0 {
		t.Fatalf("Repeat(0): %v/%v", got.Len(), err)
	}
	if _, err := nums(1).Repeat(-1); !errors.Is(err, circulis.ErrInvalidOperation) {
		t.Fatalf("Repeat(-1): %v", err)
	}
}
