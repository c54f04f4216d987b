package htmldoc

import (
	"errors"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/cssom"
	"github.com/npillmayer/cssom/douceursheet"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document wraps an HTML parse tree and exposes its <style> elements as
// stylesheets. Wrappers for style elements are cached, thus repeated calls
// to StyleSheets return identical stylesheet handles.
type Document struct {
	root   *html.Node
	sheets map[*html.Node]*sheet
}

// FromNode wraps an HTML parse tree. The tree is now managed by the
// wrapper; clients should not rearrange <style> elements behind its back.
func FromNode(root *html.Node) *Document {
	return &Document{
		root:   root,
		sheets: make(map[*html.Node]*sheet),
	}
}

// Parse reads and parses an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return FromNode(root), nil
}

// HTMLNode returns the root of the wrapped HTML parse tree.
func (doc *Document) HTMLNode() *html.Node {
	return doc.root
}

// StyleSheets returns the stylesheets of the document, in document order:
// <style> elements of the head first, then those of the body. Style
// elements with unparsable content are skipped.
//
// Interface cssom.Document
func (doc *Document) StyleSheets() []cssom.StyleSheet {
	var sheets []cssom.StyleSheet
	for _, where := range []atom.Atom{atom.Head, atom.Body} {
		section := findElement(where, doc.root)
		if section == nil {
			continue
		}
		for ch := section.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.DataAtom != atom.Style {
				continue
			}
			s, err := doc.sheetFor(ch)
			if err != nil {
				tracer().Infof("skipping unparsable <style> element: %v", err)
				continue
			}
			sheets = append(sheets, s)
		}
	}
	return sheets
}

// AppendStyleSheet creates a new empty <style type="text/css"> element,
// appends it to the document's head, and returns its stylesheet. A head
// element is attached to the document first if the tree has none.
//
// Interface cssom.Document
func (doc *Document) AppendStyleSheet() (cssom.StyleSheet, error) {
	head := findElement(atom.Head, doc.root)
	if head == nil {
		htm := findElement(atom.Html, doc.root)
		if htm == nil {
			return nil, errors.New("not an HTML document, cannot attach a stylesheet")
		}
		head = &html.Node{
			Type:     html.ElementNode,
			DataAtom: atom.Head,
			Data:     "head",
		}
		htm.InsertBefore(head, htm.FirstChild)
	}
	elem := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Style,
		Data:     "style",
		Attr:     []html.Attribute{{Key: "type", Val: "text/css"}},
	}
	elem.AppendChild(&html.Node{Type: html.TextNode})
	head.AppendChild(elem)
	tracer().Debugf("attached a new <style> element to document head")
	s := &sheet{Sheet: douceursheet.New(), elem: elem}
	doc.sheets[elem] = s
	return s, nil
}

// RulesFor returns the rules of all document stylesheets whose selector
// matches n, in stylesheet and rule order. At-rules and rules with
// selectors cascadia cannot compile are skipped.
func (doc *Document) RulesFor(n *html.Node) []cssom.Rule {
	var matching []cssom.Rule
	for _, s := range doc.StyleSheets() {
		for _, r := range s.Rules() {
			selector := strings.TrimSpace(r.Selector())
			if selector == "" || strings.HasPrefix(selector, "@") {
				continue
			}
			sel, err := cascadia.Compile(selector)
			if err != nil {
				tracer().Debugf("selector %q does not compile: %v", selector, err)
				continue
			}
			if sel.Match(n) {
				matching = append(matching, r)
			}
		}
	}
	return matching
}

var _ cssom.Document = &Document{}

func (doc *Document) sheetFor(elem *html.Node) (*sheet, error) {
	if s, ok := doc.sheets[elem]; ok {
		return s, nil
	}
	text := ""
	if elem.FirstChild != nil {
		text = elem.FirstChild.Data
	}
	parsed, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}
	s := &sheet{Sheet: douceursheet.Wrap(parsed), elem: elem}
	doc.sheets[elem] = s
	return s, nil
}

// sheet decorates a douceursheet.Sheet with write-back into the <style>
// element it was read from.
type sheet struct {
	*douceursheet.Sheet
	elem *html.Node
}

func (s *sheet) InsertRule(rule string, index int) (int, error) {
	inx, err := s.Sheet.InsertRule(rule, index)
	if err != nil {
		return inx, err
	}
	s.sync()
	return inx, nil
}

func (s *sheet) AppendRules(other cssom.StyleSheet) error {
	if o, ok := other.(*sheet); ok {
		other = o.Sheet
	}
	if err := s.Sheet.AppendRules(other); err != nil {
		return err
	}
	s.sync()
	return nil
}

// sync re-serializes the stylesheet into the style element's text node.
func (s *sheet) sync() {
	if s.elem.FirstChild == nil {
		s.elem.AppendChild(&html.Node{Type: html.TextNode})
	}
	s.elem.FirstChild.Data = s.Sheet.CSSText()
}

var _ cssom.StyleSheet = &sheet{}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
