package fetch

import (
	"errors"
	"reflect"
	"testing"
)

func TestResolveRemote(t *testing.T) {
	items := []string{"a", "b"}
	fallback := []string{"x"}

	got, source := Resolve(items, nil, fallback)
	if source != SourceRemote {
		t.Errorf("source = %q, want %q", source, SourceRemote)
	}
	if !reflect.DeepEqual(got, items) {
		t.Errorf("items = %v, want %v", got, items)
	}
}

func TestResolveEmptyUsesFallback(t *testing.T) {
	fallback := []string{"x"}

	got, source := Resolve(nil, nil, fallback)
	if source != SourceFallback {
		t.Errorf("source = %q, want %q", source, SourceFallback)
	}
	if !reflect.DeepEqual(got, fallback) {
		t.Errorf("items = %v, want fallback %v", got, fallback)
	}
}

func TestResolveErrorUsesFallback(t *testing.T) {
	// A failed fetch and an empty collection serve the same list; only the
	// source tag differs.
	items := []string{"stale"}
	fallback := []string{"x"}

	got, source := Resolve(items, errors.New("boom"), fallback)
	if source != SourceError {
		t.Errorf("source = %q, want %q", source, SourceError)
	}
	if !reflect.DeepEqual(got, fallback) {
		t.Errorf("items = %v, want fallback %v", got, fallback)
	}
}

func TestResolveNeverMerges(t *testing.T) {
	got, _ := Resolve([]int{1, 2}, nil, []int{9})
	if len(got) != 2 {
		t.Errorf("len = %d, want 2 (fallback must not be merged)", len(got))
	}
}
