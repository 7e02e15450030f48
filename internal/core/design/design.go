// Copyright (c) 2026 NailDesigns.art. All rights reserved.

/*
Package design defines the core content entity of the naildesigns.art gallery.

It manages the lifecycle of nail-art posts including imagery, taxonomy
attributes (length, shape, style), affiliate product lists, and SEO metadata.

Core Responsibility:

  - Catalogue: Defines post statuses (draft, published) and attribute enums.
  - Discovery: Listing, filtering, and related-design lookups for the
    public masonry feed.
  - Monetization: Carries the ordered affiliate product list owned by
    each design.
*/
package design

import (
	"strings"
	"time"
)

// # Domain Enums

// Status represents the publication state of a design.
type Status string

const (
	// StatusDraft keeps a design out of all public surfaces.
	StatusDraft Status = "draft"

	// StatusPublished makes a design visible on the public feed and sitemaps.
	StatusPublished Status = "published"
)

// IsValid reports whether s is a recognised [Status] value.
func (s Status) IsValid() bool {
	return s == StatusDraft || s == StatusPublished
}

// NailLength classifies the nail length shown in a design.
type NailLength string

const (
	LengthShort  NailLength = "short"
	LengthMedium NailLength = "medium"
	LengthLong   NailLength = "long"
)

// NailShape classifies the nail silhouette shown in a design.
type NailShape string

const (
	ShapeCoffin   NailShape = "coffin"
	ShapeAlmond   NailShape = "almond"
	ShapeSquare   NailShape = "square"
	ShapeStiletto NailShape = "stiletto"
	ShapeOval     NailShape = "oval"
)

// StyleType classifies the occasion/aesthetic of a design.
type StyleType string

const (
	StyleClassy  StyleType = "classy"
	StyleBold    StyleType = "bold"
	StyleBridal  StyleType = "bridal"
	StyleOffice  StyleType = "office"
	StyleCasual  StyleType = "casual"
	StyleMinimal StyleType = "minimal"
)

// ProductType classifies an affiliate product.
type ProductType string

const (
	ProductPolish  ProductType = "polish"
	ProductTool    ProductType = "tool"
	ProductPressOn ProductType = "press-on"
	ProductTopCoat ProductType = "top-coat"
)

// # Core Entities

// SEOConfig holds per-page SEO metadata overrides.
type SEOConfig struct {
	MetaTitle       string `json:"metaTitle,omitempty"`
	MetaDescription string `json:"metaDescription,omitempty"`
	CanonicalURL    string `json:"canonicalUrl,omitempty"`
	NoIndex         bool   `json:"noIndex,omitempty"`
	OGImage         string `json:"ogImage,omitempty"`
}

// AffiliateProduct is a shoppable item attached to a design.
//
// It is owned exclusively by its parent design; insertion order is display
// order and it has no independent lifecycle.
type AffiliateProduct struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Image        string      `json:"image"`
	Type         ProductType `json:"type"`
	Brand        string      `json:"brand"`
	Price        string      `json:"price,omitempty"` // free text, no currency math
	AffiliateURL string      `json:"affiliateUrl"`
	CTAText      string      `json:"ctaText,omitempty"`
}

// Design is the central aggregate of the gallery.
//
// JSON field names mirror the documents the public frontend already
// consumes, so a design round-trips byte-compatibly through the API.
type Design struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Slug   string `json:"slug"`
	Status Status `json:"status"`

	// Image system. Width and height are positive pixel values used for
	// aspect-ratio reservation in the masonry grid.
	MainImage     string   `json:"mainImage"`
	AltText       string   `json:"altText"`
	Width         int      `json:"width"`
	Height        int      `json:"height"`
	GalleryImages []string `json:"galleryImages,omitempty"`

	// Content
	ShortDescription string `json:"shortDescription"`
	LongDescription  string `json:"longDescription"`

	// Category references a category slug. The reference is NOT enforced:
	// a dangling value renders as plain text and must never crash a page.
	Category  string     `json:"category"`
	Length    NailLength `json:"length"`
	Shape     NailShape  `json:"shape"`
	StyleType StyleType  `json:"styleType"`

	// Affiliate
	AffiliateSectionEnabled bool               `json:"affiliateSectionEnabled"`
	AffiliateProducts       []AffiliateProduct `json:"affiliateProducts"`

	// SEO
	SEO           SEOConfig `json:"seo"`
	FocusKeywords string    `json:"focusKeywords,omitempty"`

	PublishedAt time.Time `json:"publishedAt"`

	// Colors is legacy data carried for old documents; it is never
	// filtered on. See the Filter note below.
	Colors []string `json:"colors"`
}

// Paragraphs splits the long description into displayable paragraphs.
//
// The long description is newline-segmented; blank segments are dropped.
func (d *Design) Paragraphs() []string {
	var out []string
	for _, p := range strings.Split(d.LongDescription, "\n") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// IsPublished reports whether the design is publicly visible.
func (d *Design) IsPublished() bool {
	return d.Status == StatusPublished
}

// # Filtering

// Filter describes the listing criteria for designs.
//
// Search is applied as an in-memory pass over the fetched page, not in SQL:
// its recall is bounded by the page the limit already fetched. Length, Shape
// and StyleType are applied in SQL. Colors intentionally has no filter — the
// field is legacy and was never queried.
type Filter struct {
	Category  string
	Search    string
	Length    NailLength
	Shape     NailShape
	StyleType StyleType

	// Colors is accepted for interface compatibility and never applied.
	Colors []string

	// Status restricts results to a publication state. Empty means all
	// states (admin listings); public surfaces always pass StatusPublished.
	Status Status
}

// # Field Identifiers (validation error keys)

const (
	FieldTitle     = "title"
	FieldSlug      = "slug"
	FieldStatus    = "status"
	FieldMainImage = "mainImage"
	FieldWidth     = "width"
	FieldHeight    = "height"
	FieldCategory  = "category"
	FieldLength    = "length"
	FieldShape     = "shape"
	FieldStyleType = "styleType"
)
