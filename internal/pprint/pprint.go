package pprint

import (
	"strings"

	"rsfmt/internal/ast"
)

// TyString renders a type node to its canonical single-line text.
func TyString(ty *ast.Ty) string {
	if ty == nil {
		return ""
	}
	return ty.Text
}

// LifetimeString renders a lifetime reference.
func LifetimeString(lt ast.Lifetime) string {
	return lt.Name
}

// BindingString renders an associated-type binding as "Ident = Ty".
func BindingString(b ast.TypeBinding) string {
	return b.Ident + " = " + TyString(b.Ty)
}

// LifetimeList joins lifetimes with the given separator.
func LifetimeList(lts []ast.Lifetime, sep string) string {
	parts := make([]string, 0, len(lts))
	for _, lt := range lts {
		parts = append(parts, LifetimeString(lt))
	}
	return strings.Join(parts, sep)
}
