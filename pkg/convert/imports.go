package convert

import "github.com/Sumatoshi-tech/astbridge/pkg/estree"

// importClause is an ESTree specifier list sorted by role.
type importClause struct {
	Default   *estree.ImportDefaultSpecifier
	Namespace *estree.ImportNamespaceSpecifier
	Named     []*estree.ImportSpecifier
}

// splitImportSpecifiers sorts import specifiers by role. The default
// specifier must come first, and a namespace specifier excludes named ones.
func splitImportSpecifiers(specs []estree.Node) (importClause, error) {
	var clause importClause

	for i, spec := range specs {
		if isNil(spec) {
			return importClause{}, structuralf(estree.KindImportDeclaration, "specifier %d is missing", i)
		}

		switch s := spec.(type) {
		case *estree.ImportDefaultSpecifier:
			if i != 0 {
				return importClause{}, structuralf(estree.KindImportDeclaration, "default specifier at position %d", i)
			}

			clause.Default = s
		case *estree.ImportNamespaceSpecifier:
			if clause.Namespace != nil {
				return importClause{}, structuralf(estree.KindImportDeclaration, "more than one namespace specifier")
			}

			clause.Namespace = s
		case *estree.ImportSpecifier:
			clause.Named = append(clause.Named, s)
		default:
			return importClause{}, structuralf(estree.KindImportDeclaration, "unexpected specifier kind %s", spec.Type())
		}
	}

	if clause.Namespace != nil && len(clause.Named) > 0 {
		return importClause{}, structuralf(estree.KindImportDeclaration, "namespace specifier mixed with named specifiers")
	}

	return clause, nil
}

// joinImportSpecifiers lists the specifiers of a clause in source order.
func joinImportSpecifiers(clause importClause) []estree.Node {
	var specs []estree.Node

	if clause.Default != nil {
		specs = append(specs, clause.Default)
	}

	if clause.Namespace != nil {
		specs = append(specs, clause.Namespace)
	}

	for _, s := range clause.Named {
		specs = append(specs, s)
	}

	return specs
}
