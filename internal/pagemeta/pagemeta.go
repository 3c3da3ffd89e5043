// Package pagemeta composes the document head (title and meta description)
// for dashboard pages.
package pagemeta

import (
	"bytes"
	"html/template"
)

const (
	// SiteSuffix is appended to every page title.
	SiteSuffix = "React eCommerce Admin Dashboard"

	// DefaultTitle is used when a page supplies no title.
	DefaultTitle = "ClothyVS | " + SiteSuffix

	// DefaultDescription is used when a page supplies no description.
	DefaultDescription = "ClothyVS : React Grocery & Organic Food Store e-commerce Admin Dashboard"
)

// Meta is the rendered head of a page.
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Render composes page metadata. An empty title or description means the
// page did not provide one and the default is used.
func Render(title, description string) Meta {
	m := Meta{Title: DefaultTitle, Description: DefaultDescription}
	if title != "" {
		m.Title = title + " | " + SiteSuffix
	}
	if description != "" {
		// Dashboard pages have always shipped the description padded with one
		// space on each side; kept for byte-identical head output.
		m.Description = " " + description + " "
	}
	return m
}

var headTmpl = template.Must(template.New("head").Parse(
	`<title>{{.Title}}</title>` + "\n" + `<meta name="description" content="{{.Description}}">`,
))

// Head renders m as escaped head tags.
func (m Meta) Head() template.HTML {
	var buf bytes.Buffer
	// Executing into a buffer with plain string fields cannot fail.
	_ = headTmpl.Execute(&buf, m)
	return template.HTML(buf.String())
}
