/*
Package cssom provides runtime insertion of CSS rules into stylesheets.

# Status

Working draft—API may still change in details. Please stay patient.

# Overview

Styling engines and document tooling sometimes need to add CSS rules to a
stylesheet after the stylesheet has been created, e.g. for themes computed
at runtime or for styles derived from document content. This package offers
a small set of operations to do that: build rule text from a selector and a
style payload, and append it to a target stylesheet.

CSS handling is de-coupled by interfaces StyleSheet, Rule and Document.
Concrete implementations may be found in sub-packages (e.g., package
douceursheet for stylesheets backed by the douceur CSS parser, and package
htmldoc for documents backed by an HTML parse tree).

There is not very much open source Go code around for supporting us
in implementing a styling engine, except the great work of
https://godoc.org/github.com/andybalholm/cascadia.
Therefore we will have to compromise
on many features in order to complete this in a realistic time frame.

This package performs no validation of CSS property names or values.
Callers supply valid CSS property names directly; malformed rule text is
handed to the stylesheet implementation, whose error is returned unchanged.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cssom.rules'
func tracer() tracing.Trace {
	return tracing.Select("cssom.rules")
}
