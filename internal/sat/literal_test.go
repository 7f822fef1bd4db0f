package sat

import "testing"

func TestLiteralEncoding(t *testing.T) {
	for v := Var(0); v < 8; v++ {
		pos := PositiveLiteral(v)
		neg := NegativeLiteral(v)

		if got := pos.Var(); got != v {
			t.Errorf("PositiveLiteral(%d).Var() = %d, want %d", v, got, v)
		}
		if got := neg.Var(); got != v {
			t.Errorf("NegativeLiteral(%d).Var() = %d, want %d", v, got, v)
		}
		if !pos.IsPositive() {
			t.Errorf("PositiveLiteral(%d).IsPositive() = false, want true", v)
		}
		if neg.IsPositive() {
			t.Errorf("NegativeLiteral(%d).IsPositive() = true, want false", v)
		}
		if got := pos.Opposite(); got != neg {
			t.Errorf("PositiveLiteral(%d).Opposite() = %d, want %d", v, got, neg)
		}
		if got := neg.Opposite(); got != pos {
			t.Errorf("NegativeLiteral(%d).Opposite() = %d, want %d", v, got, pos)
		}
		if got := pos.Opposite().Opposite(); got != pos {
			t.Errorf("double Opposite() = %d, want %d", got, pos)
		}
		if got := MakeLiteral(v, 0); got != pos {
			t.Errorf("MakeLiteral(%d, 0) = %d, want %d", v, got, pos)
		}
		if got := MakeLiteral(v, 1); got != neg {
			t.Errorf("MakeLiteral(%d, 1) = %d, want %d", v, got, neg)
		}
	}
}

func TestLiteralDistinctPerVariable(t *testing.T) {
	seen := map[Literal]Var{}
	for v := Var(0); v < 16; v++ {
		for _, l := range []Literal{PositiveLiteral(v), NegativeLiteral(v)} {
			if other, ok := seen[l]; ok {
				t.Fatalf("literal %d reused by variables %d and %d", l, other, v)
			}
			seen[l] = v
		}
	}
}
