package parser

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// xmlElement is a decoded element with its attributes, children and text.
type xmlElement struct {
	name     string
	attrs    []xml.Attr
	children []*xmlElement
	text     strings.Builder
}

// ParseXML parses an XML document whose root element holds a repeating
// collection of record elements, e.g. <rows><row>...</row><row>...</row></rows>.
// Each record becomes an Object keyed by its attributes and child element
// names in document order; values are the trimmed text of the first
// occurrence.
func ParseXML(data []byte) ([]any, error) {
	root, err := decodeXMLTree(data)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, ErrNoRecords
	}

	items := recordElements(root)
	if len(items) == 0 {
		return nil, ErrNoRecords
	}

	rows := make([]any, 0, len(items))
	for _, item := range items {
		rows = append(rows, xmlRecord(item))
	}
	return rows, nil
}

// decodeXMLTree decodes data into an element tree and returns the root element.
func decodeXMLTree(data []byte) (*xmlElement, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var root *xmlElement
	var stack []*xmlElement

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid XML: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			el := &xmlElement{name: t.Name.Local, attrs: t.Attr}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			} else if root == nil {
				root = el
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		}
	}

	return root, nil
}

// recordElements picks the record collection under root: the first child name
// that repeats, or the first child name when none repeats.
func recordElements(root *xmlElement) []*xmlElement {
	if len(root.children) == 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, c := range root.children {
		counts[c.name]++
	}

	name := root.children[0].name
	for _, c := range root.children {
		if counts[c.name] > 1 {
			name = c.name
			break
		}
	}

	var items []*xmlElement
	for _, c := range root.children {
		if c.name == name {
			items = append(items, c)
		}
	}
	return items
}

// xmlRecord flattens one record element.
func xmlRecord(item *xmlElement) *Object {
	obj := NewObject()
	for _, attr := range item.attrs {
		obj.Set(attr.Name.Local, attr.Value)
	}

	if len(item.children) == 0 {
		// <item>text</item> is a single-column record.
		if text := strings.TrimSpace(item.text.String()); text != "" || obj.Len() == 0 {
			obj.Set(item.name, text)
		}
		return obj
	}

	for _, c := range item.children {
		if _, ok := obj.Get(c.name); ok {
			continue
		}
		obj.Set(c.name, elementText(c))
	}
	return obj
}

// elementText returns the trimmed text of el and its descendants.
func elementText(el *xmlElement) string {
	if len(el.children) == 0 {
		return strings.TrimSpace(el.text.String())
	}
	parts := make([]string, 0, len(el.children)+1)
	if t := strings.TrimSpace(el.text.String()); t != "" {
		parts = append(parts, t)
	}
	for _, c := range el.children {
		if t := elementText(c); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
