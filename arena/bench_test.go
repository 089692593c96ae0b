package arena

import "testing"

func BenchmarkAllocObject(b *testing.B) {
	r := New(&Options{NoCleanup: true})
	defer r.Close()

	b.ReportAllocs()
	for range b.N {
		if _, err := AllocObject[widget](r, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAllocArray(b *testing.B) {
	r := New(&Options{NoCleanup: true})
	defer r.Close()

	b.ReportAllocs()
	for range b.N {
		if _, err := AllocArray[int64](r, 64); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAllocAndReleaseCycle(b *testing.B) {
	r := New(&Options{NoCleanup: true, InitialCapacity: 16})
	defer r.Close()

	b.ReportAllocs()
	for range b.N {
		for range 16 {
			if _, err := AllocArray[int64](r, 64); err != nil {
				b.Fatal(err)
			}
		}
		if err := r.ReleaseAll(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSafeAllocArray(b *testing.B) {
	s := NewSafe(&Options{NoCleanup: true})
	defer s.Close()

	b.ReportAllocs()
	for range b.N {
		if _, err := SafeAllocArray[int64](s, 64); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHandleResolve(b *testing.B) {
	r := New(&Options{NoCleanup: true})
	defer r.Close()

	h, err := AllocArrayHandle[int64](r, 64)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for range b.N {
		if _, err := h.Resolve(); err != nil {
			b.Fatal(err)
		}
	}
}
