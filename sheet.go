package cssom

import "github.com/npillmayer/cssom/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// rule-insertion operations, we introduce an interface
// for CSS stylesheets. Clients will have to
// provide a concrete implementation of this interface (e.g., see
// package douceursheet).
//
// Having this interface imposes a performance hit. However, this
// implementation of CSS-styling will never trade modularity and
// clarity for performance. Clients in need for a production grade
// browser engine (where performance is key) should opt for headless
// versions of the main browser projects.
//
// See interface Rule.
type StyleSheet interface {
	InsertRule(rule string, index int) (int, error) // insert rule text at position index
	RuleCount() int                                 // number of rules in this stylesheet
	Rules() []Rule                                  // all the rules of a stylesheet
	Empty() bool                                    // does this stylesheet contain any rules?
	AppendRules(StyleSheet) error                   // append rules from another stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
}

// Document is a minimal view onto a host document, as far as stylesheets
// are concerned: an ordered list of the stylesheets currently attached,
// and an operation to create and attach a new empty one. Clients will
// have to provide a concrete implementation (e.g., see package htmldoc).
//
// Documents are explicit: operations in this package never consult a
// global environment.
type Document interface {
	StyleSheets() []StyleSheet             // all stylesheets of the document, in document order
	AppendStyleSheet() (StyleSheet, error) // create a new stylesheet container and attach it
}
