package style_test

import (
	"testing"

	"github.com/npillmayer/cssom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.style")
	defer teardown()
	//
	d, err := style.ParseDeclarations("color:blue; margin-top : 1em;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Len() != 2 {
		t.Fatalf("expected 2 declarations, have %d", d.Len())
	}
	if text := d.DeclarationText(); text != "color:blue;margin-top:1em;" {
		t.Logf("text = %q", text)
		t.Error("expected scanning to normalize white space only, doesn't")
	}
}

func TestParseDeclarationsTrailing(t *testing.T) {
	d, err := style.ParseDeclarations("display:none") // final ';' is optional
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, ok := d.Get("display")
	if !ok || p != "none" {
		t.Logf("display = %q (%v)", p, ok)
		t.Error("expected an unterminated final declaration to be kept, isn't")
	}
}

func TestParseDeclarationsCompoundValue(t *testing.T) {
	d, err := style.ParseDeclarations("margin: 0 auto;font-family: Helvetica, sans-serif;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p, _ := d.Get("margin"); p != "0 auto" {
		t.Errorf("expected compound value to keep inner space, have %q", p)
	}
	if p, _ := d.Get("font-family"); p != "Helvetica, sans-serif" {
		t.Errorf("expected list value to survive scanning, have %q", p)
	}
}
