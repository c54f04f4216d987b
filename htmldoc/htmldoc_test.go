package htmldoc_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/cssom"
	"github.com/npillmayer/cssom/htmldoc"
	"github.com/npillmayer/cssom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestStyleSheetsStableHandles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.dom")
	defer teardown()
	//
	doc := parseDoc(t, `<html><head><style>.x{color:red;}</style></head><body></body></html>`)
	first := doc.StyleSheets()
	second := doc.StyleSheets()
	require.Len(t, first, 1)
	require.Equal(t, first[0], second[0], "repeated calls should return identical handles")
}

func TestAppendStyleSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.dom")
	defer teardown()
	//
	doc := parseDoc(t, `<html><head></head><body></body></html>`)
	sheet, err := doc.AppendStyleSheet()
	require.NoError(t, err)
	require.True(t, sheet.Empty())
	require.Len(t, doc.StyleSheets(), 1)

	_, err = sheet.InsertRule(".box{color:red;}", 0)
	require.NoError(t, err)

	var rendered strings.Builder
	require.NoError(t, html.Render(&rendered, doc.HTMLNode()))
	require.Contains(t, rendered.String(), ".box", "inserted rule should serialize with the document")
}

func TestInsertWritesBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.dom")
	defer teardown()
	//
	doc := parseDoc(t, `<html><head><style>.x{color:red;}</style></head><body></body></html>`)
	_, ok, err := cssom.AddRule(doc, ".y", style.NewDeclarations().Add("display", "none"))
	require.NoError(t, err)
	require.True(t, ok)

	var rendered strings.Builder
	require.NoError(t, html.Render(&rendered, doc.HTMLNode()))
	require.Contains(t, rendered.String(), ".x")
	require.Contains(t, rendered.String(), ".y")
}

func TestRulesFor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.dom")
	defer teardown()
	//
	doc := parseDoc(t, `<html><head><style>
		p.note{color:red;}
		div{margin:0;}
		@media print { p { color: black; } }
	</style></head><body><p class="note">hi</p></body></html>`)
	p := findNode(doc.HTMLNode(), atom.P)
	require.NotNil(t, p)
	rules := doc.RulesFor(p)
	require.Len(t, rules, 1, "only p.note should match, at-rules and div are skipped")
	require.Equal(t, "p.note", strings.TrimSpace(rules[0].Selector()))
	require.Equal(t, style.Property("red"), rules[0].Value("color"))
}

func parseDoc(t *testing.T, input string) *htmldoc.Document {
	t.Helper()
	doc, err := htmldoc.Parse(strings.NewReader(input))
	require.NoError(t, err)
	return doc
}

func findNode(h *html.Node, a atom.Atom) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findNode(ch, a); r != nil {
			return r
		}
	}
	return nil
}
