package style

import (
	"fmt"
	"strings"

	"github.com/gorilla/css/scanner"
)

// ParseDeclarations scans raw CSS declaration text, e.g.
//
//	color:blue; margin-top : 1em;
//
// into an ordered Declarations mapping. Scanning keeps the order of the
// declarations and the verbatim value text (with surrounding white space
// trimmed); it does not check property names or values for CSS validity.
//
// ParseDeclarations exists for clients which receive style payloads as
// text but want to inspect or amend single properties before building a
// rule. Payloads used as-is should stay Raw instead.
func ParseDeclarations(text string) (*Declarations, error) {
	decls := NewDeclarations()
	s := scanner.New(text)
	var key string
	var value strings.Builder
	inValue := false
	flush := func() {
		if key != "" {
			decls.Add(key, Property(strings.TrimSpace(value.String())))
		}
		key = ""
		value.Reset()
		inValue = false
	}
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			flush()
			return decls, nil
		case scanner.TokenError:
			return nil, fmt.Errorf("declaration scan error at %d:%d: %s",
				tok.Line, tok.Column, tok.Value)
		case scanner.TokenChar:
			switch tok.Value {
			case ":":
				if !inValue {
					inValue = true
					continue
				}
				value.WriteString(tok.Value)
			case ";":
				flush()
			default:
				if inValue {
					value.WriteString(tok.Value)
				}
			}
		case scanner.TokenS:
			if inValue {
				value.WriteString(tok.Value)
			}
		default:
			if inValue {
				value.WriteString(tok.Value)
			} else if key == "" {
				key = tok.Value
			} else {
				key += tok.Value // degenerate input, keep scanning
			}
		}
	}
}
