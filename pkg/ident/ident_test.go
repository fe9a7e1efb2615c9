package ident_test

import (
	"testing"

	"github.com/curryfront/curryfront/pkg/ident"
	"github.com/curryfront/curryfront/pkg/position"
)

func TestIsConstructorLike(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Cons", true},
		{"Nil", true},
		{":", true},
		{"x", false},
		{"foldr", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ident.IsConstructorLike(tt.name); got != tt.want {
			t.Errorf("IsConstructorLike(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestModuleIdentEqualityIgnoresPosition(t *testing.T) {
	a := ident.NewModuleIdent(position.First("a.curry"), "Data", "Map")
	b := ident.NewModuleIdent(position.First("b.curry"), "Data", "Map")
	if !a.Equal(b) {
		t.Errorf("module idents with same parts but different positions should be equal")
	}
	if a.String() != "Data.Map" {
		t.Errorf("String() = %q, want Data.Map", a.String())
	}
}

func TestParseModuleIdent(t *testing.T) {
	m := ident.ParseModuleIdent(position.None(), "Data.Map")
	if got := m.Parts(); len(got) != 2 || got[0] != "Data" || got[1] != "Map" {
		t.Errorf("ParseModuleIdent parts = %v", got)
	}
}

func TestQualifiedIdentUnqualifiedIsNilModule(t *testing.T) {
	q := ident.NewUnqualified(ident.NewIdent(position.None(), "bar"))
	if q.Qualified() {
		t.Errorf("unqualified ident reported as qualified")
	}
	if q.String() != "bar" {
		t.Errorf("String() = %q, want bar", q.String())
	}
}

func TestQualifiedIdentWithModule(t *testing.T) {
	mod := ident.NewModuleIdent(position.None(), "Foo")
	q := ident.NewQualified(mod, ident.NewIdent(position.None(), "bar"))
	if q.String() != "Foo.bar" {
		t.Errorf("String() = %q, want Foo.bar", q.String())
	}
	other := ident.NewModuleIdent(position.None(), "Qux")
	q2 := q.WithModule(&other)
	if q2.String() != "Qux.bar" {
		t.Errorf("String() = %q, want Qux.bar", q2.String())
	}
	unqual := q.WithModule(nil)
	if unqual.Qualified() {
		t.Errorf("WithModule(nil) should produce an unqualified ident")
	}
}
