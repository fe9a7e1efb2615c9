package position_test

import (
	"testing"

	"github.com/curryfront/curryfront/pkg/position"
)

func TestNlAdvancesLineResetsColumn(t *testing.T) {
	p := position.NewConcrete("a.curry", 3, 7)
	n := position.Nl(p)
	if n.Column() != 1 {
		t.Errorf("column(nl(p)) = %d, want 1", n.Column())
	}
	if n.Line() != p.Line()+1 {
		t.Errorf("line(nl(p)) = %d, want %d", n.Line(), p.Line()+1)
	}
}

func TestTabAdvancesToMultipleOf8Plus1(t *testing.T) {
	cases := []int{1, 2, 8, 9, 16, 17}
	for _, col := range cases {
		p := position.NewConcrete("a.curry", 1, col)
		tabbed := position.Tab(p)
		if (tabbed.Column()-1)%8 != 0 {
			t.Errorf("column(tab(%d)) = %d, not ≡ 1 (mod 8)", col, tabbed.Column())
		}
	}
}

func TestIncrIsIdentityOnNonConcrete(t *testing.T) {
	none := position.None()
	if got := position.Incr(none, 5); !got.Equal(none) {
		t.Errorf("incr on None should be identity, got %v", got)
	}
	ref := position.ASTOnly(position.NewSourceRef(1, 2))
	if got := position.Incr(ref, 5); !got.Equal(ref) {
		t.Errorf("incr on ASTOnly should be identity, got %v", got)
	}
}

func TestEqualityIgnoresSourceRef(t *testing.T) {
	a := position.NewConcrete("a.curry", 1, 1).WithRef(position.NewSourceRef(1))
	b := position.NewConcrete("a.curry", 1, 1).WithRef(position.NewSourceRef(2, 3))
	if !a.Equal(b) {
		t.Errorf("positions with equal file/line/column but different refs should be equal")
	}
	if a.Compare(b) != 0 {
		t.Errorf("positions with equal file/line/column but different refs should compare equal")
	}
}

func TestSourceRefAlwaysEqualAndEmptyString(t *testing.T) {
	r1 := position.NewSourceRef(1, 2, 3)
	r2 := position.NewSourceRef(9)
	if !r1.Equal(r2) {
		t.Errorf("SourceRef.Equal must always be true")
	}
	if r1.Compare(r2) != 0 {
		t.Errorf("SourceRef.Compare must always be 0")
	}
	if r1.String() != "" {
		t.Errorf("SourceRef.String() = %q, want empty string", r1.String())
	}
}

func TestFirstIsLine1Column1(t *testing.T) {
	p := position.First("m.curry")
	if p.Line() != 1 || p.Column() != 1 {
		t.Errorf("First() = line %d column %d, want 1,1", p.Line(), p.Column())
	}
}
