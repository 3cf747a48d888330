package bfs_test

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/katalvlaran/trajinfer/bfs"
	"github.com/katalvlaran/trajinfer/core"
)

// TestReach_Errors verifies that invalid inputs are rejected.
func TestReach_Errors(t *testing.T) {
	if _, err := bfs.Reach(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph(core.WithVertices(1))
	if _, err := bfs.Reach(g, 7); !errors.Is(err, bfs.ErrRootNotFound) {
		t.Errorf("missing root: want ErrRootNotFound, got %v", err)
	}
}

// TestReach_Singleton covers an isolated root.
func TestReach_Singleton(t *testing.T) {
	g := core.NewGraph(core.WithVertices(3))
	_, _ = g.AddEdge(1, 2, 0.5)
	r, err := bfs.Reach(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0}; !reflect.DeepEqual(r.Order, want) {
		t.Errorf("Order = %v; want %v", r.Order, want)
	}
	if r.Depth() != 0 {
		t.Errorf("Depth = %d; want 0", r.Depth())
	}
}

// TestReach_Square covers the cycle 0–1–2–3–0.
func TestReach_Square(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(0, 1, 0.5)
	_, _ = g.AddEdge(1, 2, 0.5)
	_, _ = g.AddEdge(2, 3, 0.5)
	_, _ = g.AddEdge(3, 0, 0.5)

	r, err := bfs.Reach(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0, 1, 3, 2}; !reflect.DeepEqual(r.Order, want) {
		t.Errorf("Order = %v; want %v", r.Order, want)
	}
	if want := map[int]int{0: 0, 1: 1, 3: 1, 2: 2}; !reflect.DeepEqual(r.Hops, want) {
		t.Errorf("Hops = %v; want %v", r.Hops, want)
	}
	if r.Depth() != 2 {
		t.Errorf("Depth = %d; want 2", r.Depth())
	}
}

// TestReach_Component checks that only the root's component is reached.
func TestReach_Component(t *testing.T) {
	g := core.NewGraph(core.WithVertices(6))
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(4, 5, 1)

	r, err := bfs.Reach(g, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := map[int]bool{0: true, 1: true, 2: true}; !reflect.DeepEqual(r.Set(), want) {
		t.Errorf("Set = %v; want %v", r.Set(), want)
	}
	r, _ = bfs.Reach(g, 5)
	if want := map[int]bool{4: true, 5: true}; !reflect.DeepEqual(r.Set(), want) {
		t.Errorf("Set = %v; want %v", r.Set(), want)
	}
}

// TestReach_Concurrent runs Reach from several roots in parallel on one graph.
func TestReach_Concurrent(t *testing.T) {
	g := core.NewGraph(core.WithVertices(50))
	for i := 1; i < 50; i++ {
		_, _ = g.AddEdge(i-1, i, 1)
	}
	var wg sync.WaitGroup
	for start := 0; start < 50; start += 7 {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			r, err := bfs.Reach(g, start)
			if err != nil {
				t.Errorf("start %d: %v", start, err)
				return
			}
			if len(r.Order) != 50 {
				t.Errorf("start %d: reached %d, want 50", start, len(r.Order))
			}
		}(start)
	}
	wg.Wait()
}
