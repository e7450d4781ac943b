// Package svg renders sketched path layers into standalone SVG
// documents.
//
// A Document implements the sketch.Renderer interface: each Draw call
// appends one <path> element, in draw order, so the layered fill and
// outline passes of the sketch engine stack the way they were issued.
package svg

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/gogpu/sketch"
)

// element is one drawn path with its attributes.
type element struct {
	pathData string
	attrs    sketch.Attrs
}

// Document accumulates drawn path layers and serializes them as a
// standalone SVG document.
type Document struct {
	width, height float64
	elems         []element
}

// NewDocument creates an empty SVG document with the given viewport
// size in user units.
func NewDocument(width, height float64) *Document {
	return &Document{width: width, height: height}
}

// Draw appends a path element. It implements sketch.Renderer and never
// fails; the error return exists to satisfy the interface.
func (d *Document) Draw(pathData string, attrs sketch.Attrs) error {
	d.elems = append(d.elems, element{pathData: pathData, attrs: attrs.Clone()})
	return nil
}

// Len returns the number of drawn path elements.
func (d *Document) Len() int {
	return len(d.elems)
}

// WriteTo serializes the document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	sb.WriteString(`<svg xmlns="http://www.w3.org/2000/svg"`)
	fmt.Fprintf(&sb, ` width="%s" height="%s" viewBox="0 0 %s %s">`,
		num(d.width), num(d.height), num(d.width), num(d.height))
	sb.WriteByte('\n')

	for _, el := range d.elems {
		sb.WriteString(`  <path d="`)
		sb.WriteString(escape(el.pathData))
		sb.WriteByte('"')

		// Attributes in sorted order so output is stable.
		keys := make([]string, 0, len(el.attrs))
		for k := range el.attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&sb, ` %s="%s"`, k, escape(el.attrs[k]))
		}
		sb.WriteString("/>\n")
	}
	sb.WriteString("</svg>\n")

	sketch.Logger().Debug("svg document serialized",
		slog.Int("paths", len(d.elems)),
		slog.Int("bytes", sb.Len()))

	n, err := io.WriteString(w, sb.String())
	if err != nil {
		return int64(n), fmt.Errorf("svg: writing document: %w", err)
	}
	return int64(n), nil
}

// String returns the serialized document.
func (d *Document) String() string {
	var sb strings.Builder
	_, _ = d.WriteTo(&sb)
	return sb.String()
}

// escaper covers the characters that must not appear raw inside a
// double-quoted attribute value.
var escaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

func escape(s string) string {
	return escaper.Replace(s)
}

// num formats a dimension without trailing noise.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
