package irutil

import (
	"github.com/curryfront/curryfront/pkg/ident"
	"github.com/curryfront/curryfront/pkg/ir"
)

// RenameProgram changes a program's module name to newName, rewriting every
// qualified name that referred to the old module so it refers to the new
// one; qualified names belonging to other modules are left untouched.
func RenameProgram(newName ident.ModuleIdent, p ir.Program) ir.Program {
	oldName := p.ModuleName
	f := func(q ident.QualifiedIdent) ident.QualifiedIdent {
		if q.Module != nil && q.Module.Equal(oldName) {
			return q.WithModule(&newName)
		}
		return q
	}
	p = UpdQNames(f, p)
	p.ModuleName = newName
	return p
}
