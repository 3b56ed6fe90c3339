package circulis_test

import (
	"testing"

	"github.com/kevin-panoptic-dev/circulis/circulis"
)

func benchList(n int) *circulis.List[any] {
	l := circulis.Empty[any]()
	for i := 0; i < n; i++ {
		_ = l.Append(i)
	}
	return l
}

func BenchmarkAppend(b *testing.B) {
	l := circulis.Empty[any]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = l.Append(i)
	}
}

func BenchmarkRotate(b *testing.B) {
	l := benchList(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Rotate(3)
	}
}

func BenchmarkRemoveStepped(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		l := benchList(256)
		b.StartTimer()
		_ = l.Remove(0, 200, 2)
	}
}

func BenchmarkHash(b *testing.B) {
	l := benchList(512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = l.Hash()
	}
}
