package priority

import "testing"

func TestOrderAscendingTiesByIndex(t *testing.T) {
	got := Order([]float64{3, 1, 1, 2})
	want := []int{1, 2, 3, 0}
	if len(got) != len(want) {
		t.Fatalf("Order() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Order() = %v, want %v", got, want)
		}
	}
}

func TestOrderDescendingViaNegation(t *testing.T) {
	keys := []float64{3, 1, 1, 2}
	neg := make([]float64, len(keys))
	for i, k := range keys {
		neg[i] = -k
	}
	got := Order(neg)
	want := []int{0, 3, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("Order() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Order() = %v, want %v", got, want)
		}
	}
}

func TestOrderEmpty(t *testing.T) {
	if got := Order(nil); len(got) != 0 {
		t.Fatalf("Order(nil) = %v, want empty", got)
	}
}
