/*
Package douceursheet is a concrete implementation of interface cssom.StyleSheet,
backed by the douceur CSS parser.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceursheet

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/cssom"
	"github.com/npillmayer/cssom/style"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Sheet is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type Sheet struct {
	css css.Stylesheet
}

// New creates an empty stylesheet.
func New() *Sheet {
	return &Sheet{}
}

// Wrap a douceur css.Stylesheet into a Sheet.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *Sheet {
	sheet := &Sheet{*css}
	return sheet
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *Sheet) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// RuleCount returns the number of top-level rules in this stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *Sheet) RuleCount() int {
	return len(sheet.css.Rules)
}

// InsertRule parses rule text—one complete rule, e.g.
//
//	.box{color:red;margin-top:1em;}
//
// or a self-contained at-rule—and splices it into the rule collection at
// position index. Valid positions are 0…RuleCount; the rules from index
// onward move up by one. The returned position equals index.
//
// Parse errors from douceur are returned as-is. Qualified rule text
// without a declaration block (a bare selector) is rejected, as douceur
// would otherwise accept it as a prelude-only rule.
//
// Interface cssom.StyleSheet
func (sheet *Sheet) InsertRule(rule string, index int) (int, error) {
	if index < 0 || index > len(sheet.css.Rules) {
		return 0, fmt.Errorf("rule index %d out of range 0…%d", index, len(sheet.css.Rules))
	}
	parsed, err := parser.Parse(rule)
	if err != nil {
		return 0, err
	}
	if len(parsed.Rules) != 1 {
		return 0, fmt.Errorf("expected rule text to contain exactly one rule, has %d", len(parsed.Rules))
	}
	// douceur accepts block-less text like ".a" as a prelude-only rule
	if parsed.Rules[0].Kind == css.QualifiedRule && !strings.ContainsRune(rule, '{') {
		return 0, fmt.Errorf("rule text %q has no declaration block", rule)
	}
	rules := append(sheet.css.Rules, nil)
	copy(rules[index+1:], rules[index:])
	rules[index] = parsed.Rules[0]
	sheet.css.Rules = rules
	return index, nil
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *Sheet) AppendRules(other cssom.StyleSheet) error {
	othercss, ok := other.(*Sheet)
	if !ok {
		return fmt.Errorf("cannot append rules from foreign stylesheet type %T", other)
	}
	for _, r := range othercss.css.Rules { // append every rule from other
		sheet.css.Rules = append(sheet.css.Rules, r)
	}
	return nil
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *Sheet) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, len(sheet.css.Rules))
	for i := range sheet.css.Rules {
		r := sheet.css.Rules[i]
		rules[i] = Rule(*r)
	}
	return rules
}

// CSSText serializes the stylesheet, rule by rule.
func (sheet *Sheet) CSSText() string {
	return sheet.css.String()
}

var _ cssom.StyleSheet = &Sheet{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule. For at-rules this
// includes the at-keyword, e.g. "@media screen".
func (r Rule) Selector() string {
	if r.Kind == css.AtRule {
		return strings.TrimSpace(r.Name + " " + r.Prelude)
	}
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px"
func (r Rule) Value(key string) style.Property {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return style.Property(d.Value)
		}
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

var _ cssom.Rule = &Rule{}

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets.
func ExtractStyleElements(htmldoc *html.Node) []*Sheet {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	css := extractStyles(head)
	css2 := extractStyles(body)
	for _, c := range css2 {
		css = append(css, c)
	}
	return css
}

func extractStyles(h *html.Node) []*Sheet {
	var css []*Sheet
	if h == nil {
		return nil
	}
	ch := h.FirstChild
	for ch != nil {
		if ch.DataAtom == atom.Style && ch.FirstChild != nil {
			c, err := parser.Parse(ch.FirstChild.Data)
			if err != nil {
				break
			}
			css = append(css, Wrap(c))
		}
		ch = ch.NextSibling
	}
	return css
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	ch := h.FirstChild
	for ch != nil {
		r := findElement(a, ch)
		if r != nil && r.DataAtom == a {
			return r
		}
		ch = ch.NextSibling
	}
	return nil
}
