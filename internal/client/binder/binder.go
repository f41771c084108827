// Package binder applies a resolved content document to an HTML document
// through declarative path bindings. Elements whose path is missing from
// the document are left untouched, so a partial document never blanks out
// a working page.
package binder

import (
	"fmt"
	"html"
	"net/url"
	"strconv"
	"strings"

	"livecontent/internal/client/sync"

	"github.com/PuerkitoBio/goquery"
)

// MediaResolver rewrites media storage keys to dereference URLs.
type MediaResolver func(key string) string

// DefaultMediaResolver maps "media/..." keys onto the media endpoint and
// leaves every other value as is.
func DefaultMediaResolver(key string) string {
	return "/api/media?key=" + url.QueryEscape(key)
}

// Binder renders content documents onto HTML documents according to a
// manifest.
type Binder struct {
	manifest *Manifest
	media    MediaResolver
}

func New(manifest *Manifest, media MediaResolver) *Binder {
	if media == nil {
		media = DefaultMediaResolver
	}
	return &Binder{manifest: manifest, media: media}
}

// Apply walks the manifest and renders every binding whose page anchor
// matches the HTML document. Returns the number of bindings rendered.
func (b *Binder) Apply(doc *goquery.Document, content sync.Document) int {
	applied := 0
	for _, page := range b.manifest.Pages {
		if page.Anchor != "" && doc.Find(page.Anchor).Length() == 0 {
			continue
		}
		for _, binding := range page.Bindings {
			if b.applyBinding(doc, binding, content) {
				applied++
			}
		}
	}
	return applied
}

func (b *Binder) applyBinding(doc *goquery.Document, binding Binding, content sync.Document) bool {
	value, ok := sync.Lookup(content, binding.Path)

	switch binding.Kind {
	case KindVisible:
		// Visibility distinguishes explicit falsy (hide) from missing (skip).
		if !ok {
			return false
		}
		sel := doc.Find(binding.Selector)
		if sel.Length() == 0 {
			return false
		}
		if sync.Truthy(value) {
			sel.RemoveAttr("hidden")
		} else {
			sel.SetAttr("hidden", "hidden")
		}
		return true

	case KindText:
		// Text renders present-but-empty values; only a missing path skips.
		if !ok {
			return false
		}
		sel := doc.Find(binding.Selector)
		if sel.Length() == 0 {
			return false
		}
		sel.SetText(stringify(value))
		return true

	case KindHTML:
		if !ok {
			return false
		}
		sel := doc.Find(binding.Selector)
		if sel.Length() == 0 {
			return false
		}
		markup := strings.ReplaceAll(stringify(value), "\n", "<br/>")
		sel.SetHtml(markup)
		return true

	case KindAttr:
		// Attributes skip empty values as well: an empty href or src would
		// break the element rather than reset it.
		if !ok {
			return false
		}
		s := stringify(value)
		if s == "" {
			return false
		}
		sel := doc.Find(binding.Selector)
		if sel.Length() == 0 {
			return false
		}
		if binding.Attr == "src" || binding.Attr == "href" {
			s = b.resolveMedia(s)
		}
		sel.SetAttr(binding.Attr, s)
		return true

	case KindChip:
		if !ok {
			return false
		}
		sel := doc.Find(binding.Selector)
		if sel.Length() == 0 {
			return false
		}
		marker := binding.Marker
		if marker == "" {
			marker = ".dot"
		}
		markerHTML := ""
		if m := sel.Find(marker).First(); m.Length() > 0 {
			if outer, err := goquery.OuterHtml(m); err == nil {
				markerHTML = outer
			}
		}
		sel.SetHtml(markerHTML + html.EscapeString(stringify(value)))
		return true
	}

	return false
}

func (b *Binder) resolveMedia(v string) string {
	if strings.HasPrefix(v, "media/") {
		return b.media(v)
	}
	return v
}

func stringify(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	case nil:
		return ""
	default:
		return fmt.Sprint(value)
	}
}
