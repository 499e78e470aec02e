package diff

import "github.com/pgdiff/pgdiff/ir"

func extensionAdded(n *ir.Extension) string {
	return "create extension " + quote(n.Name) + ";\n"
}

func extensionRemoved(o *ir.Extension) string {
	return "drop extension " + quote(o.Name) + ";\n"
}

func extensionUpdated(o, n *ir.Extension) string {
	return "alter extension " + quote(n.Name) + " update to '" + n.Version + "';\n"
}
