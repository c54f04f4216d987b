package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cssom.style'
func tracer() tracing.Trace {
	return tracing.Select("cssom.style")
}

// Property is a raw value for a CSS property. For example, with
//
//	color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- Style payloads --------------------------------------------------------

// Styler is the style payload of a rule-insertion: the source for a rule's
// declaration text. Exactly two implementations exist, Raw and Declarations;
// clients state which one they mean instead of the implementation guessing
// from the argument's shape.
type Styler interface {
	DeclarationText() string
}

// Raw is a style payload given as literal CSS declaration text. It is used
// verbatim; no scanning, re-ordering or validation is performed.
type Raw string

// DeclarationText returns the payload unchanged.
//
// Interface Styler
func (r Raw) DeclarationText() string {
	return string(r)
}

// Declarations is a style payload given as an ordered property→value
// mapping. Entries keep their insertion order; the order of entries
// determines the order in which properties appear in the generated
// declaration text.
//
// Property keys are not checked against the set of known CSS properties,
// nor are they transformed in any way (no camelCase conversion). Clients
// supply valid CSS property names directly.
type Declarations struct {
	decls []KeyValue
}

// NewDeclarations creates an empty property→value mapping.
func NewDeclarations() *Declarations {
	return &Declarations{}
}

// Add appends a property at the end of the mapping, regardless of whether
// key is already present (CSS permits repeated declarations; the last one
// wins at cascade time). Add returns d to allow for chaining.
func (d *Declarations) Add(key string, p Property) *Declarations {
	d.decls = append(d.decls, KeyValue{Key: key, Value: p})
	return d
}

// Set overwrites the value for key, keeping the entry's position, or
// appends the property if key is not present.
func (d *Declarations) Set(key string, p Property) *Declarations {
	for i := range d.decls {
		if d.decls[i].Key == key {
			d.decls[i].Value = p
			return d
		}
	}
	return d.Add(key, p)
}

// Get returns the value set for key. For repeated keys the last value
// wins, mirroring CSS semantics.
func (d *Declarations) Get(key string) (Property, bool) {
	p, ok := NullStyle, false
	for _, kv := range d.decls {
		if kv.Key == key {
			p, ok = kv.Value, true
		}
	}
	return p, ok
}

// Properties returns all property keys, in entry order.
func (d *Declarations) Properties() []string {
	keys := make([]string, len(d.decls))
	for i, kv := range d.decls {
		keys[i] = kv.Key
	}
	return keys
}

// Len returns the number of entries.
func (d *Declarations) Len() int {
	if d == nil {
		return 0
	}
	return len(d.decls)
}

// DeclarationText builds the declaration text for the mapping: the
// concatenation of "property:value;" for each entry, in entry order.
//
// Interface Styler
func (d *Declarations) DeclarationText() string {
	var bld strings.Builder
	for _, kv := range d.decls {
		bld.WriteString(kv.Key)
		bld.WriteByte(':')
		bld.WriteString(kv.Value.String())
		bld.WriteByte(';')
	}
	return bld.String()
}

var _ Styler = Raw("")
var _ Styler = &Declarations{}
