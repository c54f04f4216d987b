/*
Package htmldoc makes an HTML parse tree usable as a cssom.Document.

Stylesheets correspond to <style> elements in the head and body of the
document. Rules inserted through this package are written back into the
backing <style> element, i.e. serializing the HTML tree reflects them.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package htmldoc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cssom.dom'
func tracer() tracing.Trace {
	return tracing.Select("cssom.dom")
}
