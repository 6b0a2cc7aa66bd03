package scoring

import (
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/abhisek/mai/internal/answers"
	"github.com/abhisek/mai/internal/inventory"
)

func demoCategories() []inventory.Category {
	return []inventory.Category{
		{Label: "K", Members: []int{0}},
		{Label: "P", Members: []int{1}},
		{Label: "C", Members: []int{2}},
	}
}

// Answers [T, F, T] over three single-member categories.
func TestCompute_Demo(t *testing.T) {
	set := answers.Set{answers.True, answers.False, answers.True}
	got := Compute(set, demoCategories())
	want := []Entry{
		{Label: "K", Score: 1, Total: 1},
		{Label: "P", Score: 0, Total: 1},
		{Label: "C", Score: 1, Total: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Compute = %+v, want %+v", got, want)
	}
}

func TestCompute_SharedMembers(t *testing.T) {
	cats := []inventory.Category{
		{Label: "all", Members: []int{0, 1, 2, 3}},
		{Label: "odd", Members: []int{1, 3}},
	}
	set := answers.Set{answers.True, answers.True, answers.False, answers.True}
	got := Compute(set, cats)
	if got[0].Score != 3 || got[0].Total != 4 {
		t.Errorf("all = %+v, want 3/4", got[0])
	}
	if got[1].Score != 2 || got[1].Total != 2 {
		t.Errorf("odd = %+v, want 2/2", got[1])
	}
}

func TestCompute_MembersOutsideSetCountAsUnset(t *testing.T) {
	cats := []inventory.Category{{Label: "x", Members: []int{0, 5}}}
	got := Compute(answers.Set{answers.True}, cats)
	if got[0].Score != 1 || got[0].Total != 2 {
		t.Errorf("got %+v, want 1/2", got[0])
	}
}

func TestCompute_BoundsAndDeterminism(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 200; trial++ {
		n := 1 + r.IntN(30)
		set := answers.New(n)
		for i := range set {
			set[i] = answers.Value(r.IntN(3))
		}
		var cats []inventory.Category
		for c := 0; c < 1+r.IntN(5); c++ {
			var members []int
			for i := 0; i < n; i++ {
				if r.IntN(2) == 0 {
					members = append(members, i)
				}
			}
			if len(members) == 0 {
				members = []int{0}
			}
			cats = append(cats, inventory.Category{Label: "c", Members: members})
		}

		first := Compute(set, cats)
		second := Compute(set, cats)
		if !reflect.DeepEqual(first, second) {
			t.Fatal("Compute is not deterministic")
		}
		for i, e := range first {
			if e.Score < 0 || e.Score > e.Total {
				t.Fatalf("entry %d score %d outside [0,%d]", i, e.Score, e.Total)
			}
			if e.Total != len(cats[i].Members) {
				t.Fatalf("entry %d total %d, want %d", i, e.Total, len(cats[i].Members))
			}
		}
	}
}

func TestTotals(t *testing.T) {
	score, total := Totals([]Entry{{Score: 1, Total: 2}, {Score: 3, Total: 3}})
	if score != 4 || total != 5 {
		t.Errorf("Totals = %d/%d, want 4/5", score, total)
	}
	if s, tot := Totals(nil); s != 0 || tot != 0 {
		t.Errorf("Totals(nil) = %d/%d", s, tot)
	}
}

func TestPercent(t *testing.T) {
	if p := (Entry{Score: 1, Total: 4}).Percent(); p != 25 {
		t.Errorf("Percent = %v, want 25", p)
	}
	if p := (Entry{}).Percent(); p != 0 {
		t.Errorf("Percent of empty = %v, want 0", p)
	}
}
