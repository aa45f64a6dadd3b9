package svgcheck

import (
	"bytes"
	"encoding/xml"
	"io"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/tdewolff/parse/v2"
	"golang.org/x/net/html/charset"
)

// SVGNamespace is the namespace of the svg root and style elements.
const SVGNamespace = "http://www.w3.org/2000/svg"

const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

// entityDecl matches general internal entity declarations of a DOCTYPE
// internal subset. Parameter and external entities are not matched.
var entityDecl = regexp.MustCompile(`<!ENTITY\s+([^\s%"'>]+)\s+(?:"([^"]*)"|'([^']*)')\s*>`)

// Document holds what the rules need from one parsed SVG file.
// It is built by ParseDocument and discarded after the file is checked.
type Document struct {
	Root       xml.Name          // Root element name, namespace resolved
	Attrs      map[string]string // Un-namespaced attributes of the root element
	RootOffset int64             // Byte offset of the root start tag

	// Style is the text of the first descendant style element, nil when the
	// document has none.
	Style       *string
	StyleOffset int64

	src []byte
}

// Attr returns an un-namespaced root attribute.
func (d *Document) Attr(name string) (string, bool) {
	v, ok := d.Attrs[name]
	return v, ok
}

// RootTag renders the root name the way it appears in violation texts:
// "{namespace}local" when namespaced, "local" otherwise.
func (d *Document) RootTag() string {
	if d.Root.Space == "" {
		return d.Root.Local
	}
	return "{" + d.Root.Space + "}" + d.Root.Local
}

// Position converts a byte offset of the source into a 1-based line and column.
func (d *Document) Position(offset int64) (line, col int) {
	line, col, _ = parse.Position(bytes.NewReader(d.src), int(offset))
	return line, col
}

// isSVGElement reports whether name is the given element in the SVG namespace.
// Documents that omit the xmlns declaration are accepted as SVG too.
func isSVGElement(name xml.Name, local string) bool {
	return name.Local == local && (name.Space == SVGNamespace || name.Space == "")
}

// ParseDocument reads a whole document and extracts the root element and the
// first nested style element. Any well-formedness error is returned as is.
func ParseDocument(r io.Reader) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read document")
	}

	doc := &Document{src: src}
	dec := xml.NewDecoder(bytes.NewReader(src))
	dec.CharsetReader = charset.NewReaderLabel

	var (
		depth      int
		rootSeen   bool
		scopes     []map[string]bool // namespace URIs bound per open element
		styleDepth int               // depth of the style element being collected, 0 when none
		styleDone  bool
		styleText  strings.Builder
	)

	for {
		offset := dec.InputOffset()
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.Directive:
			if !rootSeen {
				if entities := parseEntities(t); len(entities) > 0 {
					dec.Entity = entities
				}
			}

		case xml.StartElement:
			scopes = append(scopes, boundNamespaces(t.Attr))
			if prefix, ok := unboundPrefix(t, scopes); ok {
				return nil, &xml.SyntaxError{Msg: "unbound prefix " + prefix, Line: lineAt(src, offset)}
			}
			depth++
			if depth == 1 {
				if rootSeen {
					return nil, &xml.SyntaxError{Msg: "junk after document element", Line: lineAt(src, offset)}
				}
				rootSeen = true
				doc.Root = t.Name
				doc.RootOffset = offset
				doc.Attrs = make(map[string]string, len(t.Attr))
				for _, a := range t.Attr {
					if a.Name.Space == "" && a.Name.Local != "xmlns" {
						doc.Attrs[a.Name.Local] = a.Value
					}
				}
				continue
			}
			if !styleDone && styleDepth == 0 && isSVGElement(t.Name, "style") {
				styleDepth = depth
				doc.StyleOffset = offset
			}

		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(t)) > 0 {
				return nil, &xml.SyntaxError{Msg: "text outside the document element", Line: lineAt(src, offset)}
			}
			if styleDepth > 0 && depth == styleDepth {
				styleText.Write(t)
			}

		case xml.EndElement:
			if styleDepth > 0 && depth == styleDepth {
				text := styleText.String()
				doc.Style = &text
				styleDepth = 0
				styleDone = true
			}
			scopes = scopes[:len(scopes)-1]
			depth--
		}
	}

	if !rootSeen {
		return nil, &xml.SyntaxError{Msg: "no element found", Line: lineAt(src, int64(len(src)))}
	}

	return doc, nil
}

// lineAt returns the 1-based line of a byte offset.
func lineAt(src []byte, offset int64) int {
	line, _, _ := parse.Position(bytes.NewReader(src), int(offset))
	return line
}

// parseEntities collects the internal entities declared by a DOCTYPE, as
// written by Illustrator for its extension namespaces.
func parseEntities(d xml.Directive) map[string]string {
	matches := entityDecl.FindAllSubmatch(d, -1)
	if len(matches) == 0 {
		return nil
	}
	entities := make(map[string]string, len(matches))
	for _, m := range matches {
		name := string(m[1])
		if _, ok := entities[name]; ok {
			continue // first declaration wins
		}
		if m[2] != nil {
			entities[name] = string(m[2])
		} else {
			entities[name] = string(m[3])
		}
	}
	return entities
}

// boundNamespaces returns the namespace URIs an element's xmlns attributes bind.
func boundNamespaces(attrs []xml.Attr) map[string]bool {
	var bound map[string]bool
	for _, a := range attrs {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			if bound == nil {
				bound = make(map[string]bool)
			}
			bound[a.Value] = true
		}
	}
	return bound
}

// unboundPrefix reports a prefix of the element or its attributes that no
// enclosing xmlns declaration binds. The decoder leaves such a prefix
// untranslated in Name.Space.
func unboundPrefix(t xml.StartElement, scopes []map[string]bool) (string, bool) {
	bound := func(space string) bool {
		if space == "" || space == "xmlns" || space == xmlNamespace {
			return true
		}
		for _, scope := range scopes {
			if scope[space] {
				return true
			}
		}
		return false
	}

	if !bound(t.Name.Space) {
		return t.Name.Space, true
	}
	for _, a := range t.Attr {
		if !bound(a.Name.Space) {
			return a.Name.Space, true
		}
	}
	return "", false
}
