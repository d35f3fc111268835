package collection_test

import (
	"testing"

	"github.com/shashiranjanraj/cartinhas/pkg/collection"
)

type line struct {
	ID    uint
	Price float64
	Qty   int
}

var lines = []line{
	{ID: 1, Price: 10, Qty: 2},
	{ID: 2, Price: 20, Qty: 1},
	{ID: 3, Price: 5, Qty: 4},
}

func TestMap(t *testing.T) {
	ids := collection.Map(lines, func(l line) uint { return l.ID })
	if len(ids) != 3 || ids[0] != 1 || ids[2] != 3 {
		t.Errorf("unexpected ids: %v", ids)
	}
}

func TestFilter(t *testing.T) {
	cheap := collection.Filter(lines, func(l line) bool { return l.Price < 15 })
	if len(cheap) != 2 {
		t.Errorf("expected 2 cheap lines, got %d", len(cheap))
	}
}

func TestFirst(t *testing.T) {
	l, ok := collection.First(lines, func(l line) bool { return l.ID == 2 })
	if !ok || l.Price != 20 {
		t.Errorf("unexpected result: %+v ok=%v", l, ok)
	}

	if _, ok := collection.First(lines, func(l line) bool { return l.ID == 99 }); ok {
		t.Error("expected no match")
	}
}

func TestSum(t *testing.T) {
	total := collection.Sum(lines, func(l line) float64 { return l.Price * float64(l.Qty) })
	if total != 60 {
		t.Errorf("expected 60, got %v", total)
	}
}

func TestKeyBy(t *testing.T) {
	byID := collection.KeyBy(lines, func(l line) uint { return l.ID })
	if len(byID) != 3 || byID[3].Qty != 4 {
		t.Errorf("unexpected map: %v", byID)
	}
}

func TestTake(t *testing.T) {
	if got := collection.Take(lines, 2); len(got) != 2 {
		t.Errorf("expected 2, got %d", len(got))
	}
	if got := collection.Take(lines, 10); len(got) != 3 {
		t.Errorf("expected all 3, got %d", len(got))
	}
	if got := collection.Take(lines, 0); len(got) != 0 {
		t.Errorf("expected none, got %d", len(got))
	}
}
