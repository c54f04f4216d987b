package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"

	"github.com/npillmayer/cssom/style"
)

// ErrNoDocument flags rule-insertion into a document which isn't there.
// It occurs only when the target stylesheet has to be resolved from a
// document; insertion into an explicitly given stylesheet never consults
// a document and cannot fail this way.
var ErrNoDocument = errors.New("no document to resolve a stylesheet from")

// Location addresses a rule after its insertion: the stylesheet it went
// into, and its position within the stylesheet's rule collection.
type Location struct {
	Sheet StyleSheet
	Index int
}

// RuleSpec is one entry of a batch insertion: a selector together with its
// style payload. A nil Styles means the selector string is itself a
// complete, self-contained rule (e.g., an at-rule including braces).
type RuleSpec struct {
	Selector string
	Styles   style.Styler
}

// RuleSet is an ordered batch of rules. Entries are inserted in slice
// order, all into the same target stylesheet.
type RuleSet []RuleSpec

// AddRuleTo builds a rule from selector and styles and appends it to
// sheet. The rule text is
//
//	selector "{" styles.DeclarationText() "}"
//
// or, with styles == nil, the selector string used verbatim as a complete
// rule. Rules are always appended at the current tail of the stylesheet's
// rule collection.
//
// The returned flag is false—with a zero Location and a nil error—if the
// selector is empty and therefore no rule was produced. Errors from the
// stylesheet's insertion primitive are returned unchanged.
func AddRuleTo(sheet StyleSheet, selector string, styles style.Styler) (Location, bool, error) {
	if selector == "" {
		return Location{}, false, nil
	}
	rule := ruleText(selector, styles)
	tracer().Debugf("inserting rule %q at index %d", rule, sheet.RuleCount())
	inx, err := sheet.InsertRule(rule, sheet.RuleCount())
	if err != nil {
		return Location{}, false, err
	}
	return Location{Sheet: sheet, Index: inx}, true, nil
}

// AddRulesTo appends every entry of rules to sheet, in entry order, and
// returns the location of the last inserted rule. An empty or all-empty
// batch produces no rule; the returned flag then is false.
//
// Entries are not a transaction: if an entry fails to insert, entries
// before it stay inserted and the error is returned unchanged.
func AddRulesTo(sheet StyleSheet, rules RuleSet) (Location, bool, error) {
	loc, ok := Location{}, false
	for _, r := range rules {
		l, inserted, err := AddRuleTo(sheet, r.Selector, r.Styles)
		if err != nil {
			return loc, ok, err
		}
		if inserted {
			loc, ok = l, true
		}
	}
	return loc, ok, nil
}

// AddRule inserts a single rule into doc's current stylesheet: the last
// one attached to the document, or a newly created one if the document has
// none. Apart from target resolution it behaves like AddRuleTo.
func AddRule(doc Document, selector string, styles style.Styler) (Location, bool, error) {
	if selector == "" {
		return Location{}, false, nil // do not touch the document for a no-op
	}
	sheet, err := currentSheet(doc)
	if err != nil {
		return Location{}, false, err
	}
	return AddRuleTo(sheet, selector, styles)
}

// AddRules inserts a batch of rules into doc's current stylesheet, which
// is resolved once and used for every entry. Apart from target resolution
// it behaves like AddRulesTo.
func AddRules(doc Document, rules RuleSet) (Location, bool, error) {
	if len(rules) == 0 {
		return Location{}, false, nil
	}
	sheet, err := currentSheet(doc)
	if err != nil {
		return Location{}, false, err
	}
	return AddRulesTo(sheet, rules)
}

// currentSheet resolves the insertion target from a document: the last of
// the document's stylesheets, or a freshly attached one.
func currentSheet(doc Document) (StyleSheet, error) {
	if doc == nil {
		return nil, ErrNoDocument
	}
	if sheets := doc.StyleSheets(); len(sheets) > 0 {
		return sheets[len(sheets)-1], nil
	}
	tracer().Debugf("document has no stylesheet, attaching one")
	return doc.AppendStyleSheet()
}

func ruleText(selector string, styles style.Styler) string {
	if styles == nil {
		return selector
	}
	return selector + "{" + styles.DeclarationText() + "}"
}
