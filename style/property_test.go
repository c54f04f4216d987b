package style_test

import (
	"testing"

	"github.com/npillmayer/cssom/style"
)

func TestDeclarationsOrder(t *testing.T) {
	d := style.NewDeclarations().
		Add("color", "red").
		Add("margin-top", "1em")
	if text := d.DeclarationText(); text != "color:red;margin-top:1em;" {
		t.Logf("text = %q", text)
		t.Error("expected declaration text to keep entry order, doesn't")
	}
}

func TestDeclarationsSetKeepsPosition(t *testing.T) {
	d := style.NewDeclarations().
		Add("color", "red").
		Add("display", "none")
	d.Set("color", "blue")
	if text := d.DeclarationText(); text != "color:blue;display:none;" {
		t.Logf("text = %q", text)
		t.Error("expected Set to overwrite in place, doesn't")
	}
	d.Set("width", "50%")
	if d.Len() != 3 {
		t.Errorf("expected Set of a new key to append, length is %d", d.Len())
	}
}

func TestDeclarationsRepeatedKey(t *testing.T) {
	d := style.NewDeclarations().
		Add("color", "red").
		Add("color", "green")
	if d.Len() != 2 {
		t.Errorf("expected Add to keep repeated keys, length is %d", d.Len())
	}
	p, ok := d.Get("color")
	if !ok || p != "green" {
		t.Logf("color = %q (%v)", p, ok)
		t.Error("expected the last repeated declaration to win, doesn't")
	}
}

func TestRawPayload(t *testing.T) {
	var payload style.Styler = style.Raw("prop:value;")
	if payload.DeclarationText() != "prop:value;" {
		t.Error("expected raw payload to be used verbatim, isn't")
	}
}

func TestPropertyPredicates(t *testing.T) {
	if !style.Property("inherit").IsInherit() || !style.Property("initial").IsInitial() {
		t.Error("expected inheritance-type predicates to hold, don't")
	}
	if !style.NullStyle.IsEmpty() {
		t.Error("expected the null style to be empty, isn't")
	}
}
