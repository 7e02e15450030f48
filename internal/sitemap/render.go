// Copyright (c) 2026 NailDesigns.art. All rights reserved.

/*
Package sitemap produces the two search-engine XML documents from the
design and category collections. Rendering is pure string building; the
HTTP layer and the standalone binary both reuse it.
*/
package sitemap

import (
	"strings"
	"time"

	"github.com/naildesignsart/naildesigns-art/internal/core/category"
	"github.com/naildesignsart/naildesigns-art/internal/core/design"
)

const (
	urlsetNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"
	imageNamespace  = "http://www.google.com/schemas/sitemap-image/1.1"
)

// Renderer builds sitemap documents rooted at a public base URL.
type Renderer struct {
	baseURL string
}

// NewRenderer constructs a Renderer. A trailing slash on baseURL is
// stripped so joined paths stay single-slashed.
func NewRenderer(baseURL string) *Renderer {
	return &Renderer{baseURL: strings.TrimRight(baseURL, "/")}
}

// Sitemap renders sitemap.xml: home at priority 1.0 with today's date,
// every category at 0.8, every published design at 0.6 with its
// publication date. Drafts and slug-less entries are skipped.
func (renderer *Renderer) Sitemap(designs []*design.Design, categories []*category.Category, now time.Time) string {
	today := now.UTC().Format("2006-01-02")

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<urlset xmlns=\"" + urlsetNamespace + "\">\n")

	renderer.writeURL(&b, "/", today, "1.0")

	for _, c := range categories {
		if c.Slug == "" {
			continue
		}
		renderer.writeURL(&b, "/category/"+c.Slug, today, "0.8")
	}

	for _, d := range designs {
		if !d.IsPublished() || d.Slug == "" {
			continue
		}
		lastmod := today
		if !d.PublishedAt.IsZero() {
			lastmod = d.PublishedAt.UTC().Format("2006-01-02")
		}
		renderer.writeURL(&b, "/nail-designs/"+d.Slug, lastmod, "0.6")
	}

	b.WriteString("</urlset>")
	return b.String()
}

// ImageSitemap renders image-sitemap.xml: one image-namespaced entry per
// published design that has a main image.
func (renderer *Renderer) ImageSitemap(designs []*design.Design) string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<urlset xmlns=\"" + urlsetNamespace + "\" xmlns:image=\"" + imageNamespace + "\">\n")

	for _, d := range designs {
		if !d.IsPublished() || d.Slug == "" || d.MainImage == "" {
			continue
		}
		b.WriteString("  <url>\n")
		b.WriteString("    <loc>" + escapeXML(renderer.baseURL+"/nail-designs/"+d.Slug) + "</loc>\n")
		b.WriteString("    <image:image>\n")
		b.WriteString("      <image:loc>" + escapeXML(d.MainImage) + "</image:loc>\n")
		b.WriteString("      <image:title>" + escapeXML(d.Title) + "</image:title>\n")
		b.WriteString("    </image:image>\n")
		b.WriteString("  </url>\n")
	}

	b.WriteString("</urlset>")
	return b.String()
}

func (renderer *Renderer) writeURL(b *strings.Builder, path, lastmod, priority string) {
	b.WriteString("  <url>\n")
	b.WriteString("    <loc>" + escapeXML(renderer.baseURL+path) + "</loc>\n")
	b.WriteString("    <lastmod>" + lastmod + "</lastmod>\n")
	b.WriteString("    <priority>" + priority + "</priority>\n")
	b.WriteString("  </url>\n")
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
