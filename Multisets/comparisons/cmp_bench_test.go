package comparisons

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/g-m-twostay/go-multisets/Multisets"
)

const (
	benchmarkItemCount = 1024
	repeats            = 2 // every value is held this many times
)

// compares membership and multiplicity lookups against frequency tables
// built on https://github.com/cornelk/hashmap and
// https://github.com/alphadose/haxmap. A hash frequency table answers
// count-of in O(1) but gives up the sorted order, positional access and
// algebra the tree buys; these numbers show what that trade costs on the
// lookup path. The read benchmarks run parallel like the hash map ones:
// TreeMultiset reads don't mutate, so that's fair game.

func setupMSet(b *testing.B) *Multisets.TreeMultiset[uintptr, uint32] {
	b.Helper()
	m := Multisets.New[uintptr, uint32]()
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		for j := 0; j < repeats; j++ {
			m.Insert(i)
		}
	}
	return m
}

func setupHashMap(b *testing.B) *hashmap.Map[uintptr, uintptr] {
	b.Helper()
	m := hashmap.New[uintptr, uintptr]()
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Set(i, repeats)
	}
	return m
}

func setupHaxMap(b *testing.B) *haxmap.Map[uintptr, uintptr] {
	b.Helper()
	m := haxmap.New[uintptr, uintptr]()
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Set(i, repeats)
	}
	return m
}

func Benchmark1ReadMSetUint(b *testing.B) {
	m := setupMSet(b)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for i := uintptr(0); i < benchmarkItemCount; i++ {
				if m.CountOf(i) != repeats {
					b.Fail()
				}
			}
		}
	})
}

func Benchmark1ReadHashMapUint(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for i := uintptr(0); i < benchmarkItemCount; i++ {
				j, _ := m.Get(i)
				if j != repeats {
					b.Fail()
				}
			}
		}
	})
}

func Benchmark1ReadHaxMapUint(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for i := uintptr(0); i < benchmarkItemCount; i++ {
				j, _ := m.Get(i)
				if j != repeats {
					b.Fail()
				}
			}
		}
	})
}

func Benchmark1HasMSetUint(b *testing.B) {
	m := setupMSet(b)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for i := uintptr(0); i < benchmarkItemCount; i++ {
				if !m.Contains(i) {
					b.Fail()
				}
			}
		}
	})
}

func Benchmark1HasHashMapUint(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for i := uintptr(0); i < benchmarkItemCount; i++ {
				if _, in := m.Get(i); !in {
					b.Fail()
				}
			}
		}
	})
}

func Benchmark1HasHaxMapUint(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for i := uintptr(0); i < benchmarkItemCount; i++ {
				if _, in := m.Get(i); !in {
					b.Fail()
				}
			}
		}
	})
}

func Benchmark1WriteMSetUint(b *testing.B) {
	m := Multisets.New[uintptr, uint32]()
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Insert(i)
		}
	}
}

func Benchmark1WriteHashMapUint(b *testing.B) {
	m := hashmap.New[uintptr, uintptr]()
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Set(i, i)
		}
	}
}

func Benchmark1WriteHaxMapUint(b *testing.B) {
	m := haxmap.New[uintptr, uintptr]()
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Set(i, i)
		}
	}
}
