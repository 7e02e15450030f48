// Copyright (c) 2026 NailDesigns.art. All rights reserved.

/*
Package category manages the catalogue's category taxonomy.

Categories are addressed by slug everywhere outside this package: the slug
is the logical key and it is NOT unique at the storage level. Duplicate
rows sharing a slug can exist; upsert edits the first match and delete
removes every match.
*/
package category

// Category is one taxonomy entry. Designs reference it by slug without
// referential enforcement; a dangling reference degrades to an empty
// category page rather than an error.
type Category struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	Description    string `json:"description"`
	IconColor      string `json:"iconColor"`
	SEOTitle       string `json:"seoTitle"`
	SEODescription string `json:"seoDescription"`
}

// Validation field names.
const (
	FieldName = "name"
	FieldSlug = "slug"
)
