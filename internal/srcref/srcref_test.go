package srcref_test

import (
	"testing"

	"github.com/curryfront/curryfront/internal/srcref"
	"github.com/curryfront/curryfront/pkg/ast"
	"github.com/curryfront/curryfront/pkg/ident"
	"github.com/curryfront/curryfront/pkg/position"
)

func TestInjectTagsModuleAndDecls(t *testing.T) {
	pos := position.NewConcrete("t.curry", 1, 1)
	m := &ast.Module{
		Name: ident.NewModuleIdent(pos, "M"),
		Imports: []ast.ImportDecl{
			{ImportPos: pos},
		},
		Decls: []ast.Decl{
			&ast.FuncDecl{DeclPos: pos},
			&ast.PatternDecl{DeclPos: pos},
		},
	}

	out := srcref.Inject(m)
	if out != m {
		t.Fatalf("Inject returned a different module value")
	}

	if len(m.Name.Pos().Ref().Tags()) == 0 {
		t.Error("module name position was not tagged with a SourceRef")
	}
	if len(m.Imports[0].ImportPos.Ref().Tags()) == 0 {
		t.Error("import position was not tagged with a SourceRef")
	}

	fd := m.Decls[0].(*ast.FuncDecl)
	if len(fd.DeclPos.Ref().Tags()) == 0 {
		t.Error("FuncDecl position was not tagged with a SourceRef")
	}
	pd := m.Decls[1].(*ast.PatternDecl)
	if len(pd.DeclPos.Ref().Tags()) == 0 {
		t.Error("PatternDecl position was not tagged with a SourceRef")
	}

	// Refs assigned at the module level sit one path segment shallower than
	// refs assigned to its imports/decls, reached via Descend.
	if len(m.Name.Pos().Ref().Tags()) >= len(fd.DeclPos.Ref().Tags()) {
		t.Errorf("expected decl ref path longer than module ref path: %v vs %v",
			m.Name.Pos().Ref().Tags(), fd.DeclPos.Ref().Tags())
	}
}

func TestInjectNilModule(t *testing.T) {
	if srcref.Inject(nil) != nil {
		t.Error("Inject(nil) should return nil")
	}
}
