package style_test

import (
	"image/color"
	"testing"

	"github.com/npillmayer/cssom/style"
)

func TestPropertyColor(t *testing.T) {
	if c := style.Property("default").Color(); c != nil {
		t.Errorf("expected 'default' to have no color, has %v", c)
	}
	if c := style.Property("red").Color(); c != (color.RGBA{0xff, 0, 0, 0xff}) {
		t.Errorf("expected 'red' to be pure red, is %v", c)
	}
	if c := style.Property("to-the-left").Color(); c != color.Black {
		t.Errorf("expected an unknown color name to fall back to black, is %v", c)
	}
}

func TestPropertyColorHex(t *testing.T) {
	if c := style.Property("#ff0000").Color(); c != (color.RGBA{0xff, 0, 0, 0xff}) {
		t.Errorf("expected #ff0000 to be pure red, is %v", c)
	}
	if c := style.Property("#0f0").Color(); c != (color.RGBA{0, 0xff, 0, 0xff}) {
		t.Errorf("expected short form #0f0 to be pure green, is %v", c)
	}
	if c := style.Property("#nonsense").Color(); c != color.Black {
		t.Errorf("expected an unparsable hex value to fall back to black, is %v", c)
	}
}

func TestColorString(t *testing.T) {
	if s := style.ColorString(nil); s != "powderblue" {
		t.Errorf("expected nil color to read powderblue, is %q", s)
	}
	if s := style.ColorString(color.Black); s != "black" {
		t.Errorf("expected black to read black, is %q", s)
	}
	if s := style.ColorString(color.RGBA{0xff, 0, 0, 0xff}); s != "red" {
		t.Errorf("expected pure red to read red, is %q", s)
	}
}
