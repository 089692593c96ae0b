package arena_test

import (
	"fmt"

	"github.com/joshuapare/arenakit/arena"
)

// sensor is a composite value with teardown logic.
type sensor struct {
	id       int
	gain     float64
	shutdown func()
}

func (s *sensor) Destroy() {
	if s.shutdown != nil {
		s.shutdown()
	}
}

func ExampleRegistry() {
	r := arena.New(nil)
	defer r.Close()

	// A typed scalar array, owned by the registry.
	samples, err := arena.AllocArray[int](r, 100)
	if err != nil {
		panic(err)
	}
	for i := range samples {
		samples[i] = i
	}

	// A composite object with constructor-style initialization.
	s, err := arena.AllocObject(r, func(s *sensor) error {
		s.id = 42
		s.gain = 3.14
		s.shutdown = func() { fmt.Println("sensor shut down") }
		return nil
	})
	if err != nil {
		panic(err)
	}

	sum := 0
	for _, v := range samples {
		sum += v
	}
	fmt.Printf("sensor %d gain %.2f, sample sum %d\n", s.id, s.gain, sum)
	fmt.Println("live entries:", r.Len())

	// One call tears down everything in reverse allocation order.
	if err := r.ReleaseAll(); err != nil {
		panic(err)
	}
	fmt.Println("live entries after release:", r.Len())

	// Output:
	// sensor 42 gain 3.14, sample sum 4950
	// live entries: 2
	// sensor shut down
	// live entries after release: 0
}

func ExampleAllocObjectHandle() {
	r := arena.New(nil)
	defer r.Close()

	h, err := arena.AllocObjectHandle(r, func(s *sensor) error {
		s.id = 7
		return nil
	})
	if err != nil {
		panic(err)
	}

	if s, err := h.Resolve(); err == nil {
		fmt.Println("live sensor:", s.id)
	}

	if err := r.ReleaseAll(); err != nil {
		panic(err)
	}

	if _, err := h.Resolve(); err != nil {
		fmt.Println("after release:", err)
	}

	// Output:
	// live sensor: 7
	// after release: arena: stale handle
}

func ExampleRegistry_reuse() {
	r := arena.New(nil)
	defer r.Close()

	for cycle := 1; cycle <= 2; cycle++ {
		buf, err := arena.AllocArray[byte](r, 1024)
		if err != nil {
			panic(err)
		}
		copy(buf, "scratch")

		fmt.Printf("cycle %d: %d entries\n", cycle, r.Len())
		if err := r.ReleaseAll(); err != nil {
			panic(err)
		}
	}

	// Output:
	// cycle 1: 1 entries
	// cycle 2: 1 entries
}
