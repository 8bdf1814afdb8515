package types

import (
	"reflect"
	"testing"
)

func TestFieldDictOrderAndIndex(t *testing.T) {
	d := NewFieldDict([]string{"SweepNum", "TimeStamp", "EntrySourceType"})

	if d.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", d.Len())
	}
	want := []string{"SweepNum", "TimeStamp", "EntrySourceType"}
	if !reflect.DeepEqual(d.Names(), want) {
		t.Errorf("Names() = %v, want %v", d.Names(), want)
	}
	if i, ok := d.Index("TimeStamp"); !ok || i != 1 {
		t.Errorf("Index(TimeStamp) = %d, %v", i, ok)
	}
	if _, ok := d.Index("missing"); ok {
		t.Error("Index(missing) reported ok")
	}
}

func TestFieldDictDuplicateKeepsFirstOrderLastIndex(t *testing.T) {
	d := NewFieldDict([]string{"A", "B", "A"})

	if !reflect.DeepEqual(d.Names(), []string{"A", "B"}) {
		t.Errorf("Names() = %v, want [A B]", d.Names())
	}
	if i, _ := d.Index("A"); i != 2 {
		t.Errorf("Index(A) = %d, want 2 (last occurrence)", i)
	}
}

func TestFieldDictNamesIsACopy(t *testing.T) {
	d := NewFieldDict([]string{"A", "B"})
	names := d.Names()
	names[0] = "mutated"
	if got := d.Names()[0]; got != "A" {
		t.Errorf("internal order mutated through Names(): %q", got)
	}
}

func TestFieldDictEmpty(t *testing.T) {
	d := NewFieldDict(nil)
	if d.Len() != 0 {
		t.Errorf("Len() = %d, want 0", d.Len())
	}
	if len(d.Names()) != 0 {
		t.Errorf("Names() = %v, want empty", d.Names())
	}
}
