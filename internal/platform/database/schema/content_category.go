package schema

// ContentCategoryTable represents the 'content.category' table
//
// Note: slug is the logical key for upsert and delete operations, but it
// carries no unique constraint. Duplicate rows are possible and
// delete-by-slug removes all of them.
type ContentCategoryTable struct {
	Table          string
	ID             string
	Name           string
	Slug           string
	Description    string
	IconColor      string
	SEOTitle       string
	SEODescription string
}

// ContentCategory is the schema definition for content.category
var ContentCategory = ContentCategoryTable{
	Table:          "content.category",
	ID:             "id",
	Name:           "name",
	Slug:           "slug",
	Description:    "description",
	IconColor:      "iconcolor",
	SEOTitle:       "seotitle",
	SEODescription: "seodescription",
}
