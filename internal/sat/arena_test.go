package sat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClauseArena_AppendAndHandler(t *testing.T) {
	var a ClauseArena

	c1 := []Literal{PositiveLiteral(0), NegativeLiteral(1), PositiveLiteral(2)}
	c2 := []Literal{NegativeLiteral(3), PositiveLiteral(4)}

	r1 := a.Append(c1)
	r2 := a.Append(c2)

	if diff := cmp.Diff(c1, a.Handler(r1).Lits); diff != "" {
		t.Errorf("Handler(r1).Lits mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(c2, a.Handler(r2).Lits); diff != "" {
		t.Errorf("Handler(r2).Lits mismatch (-want +got):\n%s", diff)
	}
}

func TestClauseArena_HandlerIsMutable(t *testing.T) {
	var a ClauseArena
	ref := a.Append([]Literal{PositiveLiteral(0), PositiveLiteral(1)})

	view := a.Handler(ref)
	view.Lits[0], view.Lits[1] = view.Lits[1], view.Lits[0]

	got := a.Handler(ref).Lits
	want := []Literal{PositiveLiteral(1), PositiveLiteral(0)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mutation through Handler not visible (-want +got):\n%s", diff)
	}
}

func TestClauseArena_GrowthPreservesEarlierRefs(t *testing.T) {
	var a ClauseArena
	refs := make([]CRef, 0, 64)
	for i := 0; i < 64; i++ {
		refs = append(refs, a.Append([]Literal{Literal(i)}))
	}
	for i, ref := range refs {
		if got := a.Handler(ref).Lits[0]; got != Literal(i) {
			t.Errorf("after growth, Handler(refs[%d]).Lits[0] = %d, want %d", i, got, i)
		}
	}
}
