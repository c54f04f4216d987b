/*
Package sheetdbg implements helpers to debug stylesheets.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package sheetdbg

import (
	"fmt"
	"io"

	"github.com/npillmayer/cssom"
	"github.com/xlab/treeprint"
)

// Dump outputs a diagram of stylesheets. The diagram is an indented tree
// with one branch per stylesheet, one sub-branch per rule and one leaf per
// declaration. Clients provide a Writer and the stylesheets to include.
func Dump(w io.Writer, sheets ...cssom.StyleSheet) error {
	tree := treeprint.New()
	tree.SetValue("stylesheets")
	for i, sheet := range sheets {
		branch := tree.AddBranch(fmt.Sprintf("sheet #%d (%d rules)", i, sheet.RuleCount()))
		for _, rule := range sheet.Rules() {
			dumpRule(branch, rule)
		}
	}
	_, err := io.WriteString(w, tree.String())
	return err
}

// DumpDocument outputs a diagram of all stylesheets of a document.
func DumpDocument(w io.Writer, doc cssom.Document) error {
	if doc == nil {
		return Dump(w)
	}
	return Dump(w, doc.StyleSheets()...)
}

func dumpRule(branch treeprint.Tree, rule cssom.Rule) {
	rb := branch.AddBranch(rule.Selector())
	for _, key := range rule.Properties() {
		decl := fmt.Sprintf("%s: %s", key, rule.Value(key))
		if rule.IsImportant(key) {
			decl += " !important"
		}
		rb.AddNode(decl)
	}
}
