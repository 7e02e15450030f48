package schema

// ContentDesignTable represents the 'content.design' table
type ContentDesignTable struct {
	Table                   string
	ID                      string
	Title                   string
	Slug                    string
	Status                  string
	MainImage               string
	AltText                 string
	Width                   string
	Height                  string
	GalleryImages           string
	ShortDescription        string
	LongDescription         string
	Category                string
	Colors                  string
	Length                  string
	Shape                   string
	StyleType               string
	AffiliateSectionEnabled string
	AffiliateProducts       string
	SEO                     string
	FocusKeywords           string
	PublishedAt             string
}

// ContentDesign is the schema definition for content.design
var ContentDesign = ContentDesignTable{
	Table:                   "content.design",
	ID:                      "id",
	Title:                   "title",
	Slug:                    "slug",
	Status:                  "status",
	MainImage:               "mainimage",
	AltText:                 "alttext",
	Width:                   "width",
	Height:                  "height",
	GalleryImages:           "galleryimages",
	ShortDescription:        "shortdescription",
	LongDescription:         "longdescription",
	Category:                "category",
	Colors:                  "colors",
	Length:                  "length",
	Shape:                   "shape",
	StyleType:               "styletype",
	AffiliateSectionEnabled: "affiliatesectionenabled",
	AffiliateProducts:       "affiliateproducts",
	SEO:                     "seo",
	FocusKeywords:           "focuskeywords",
	PublishedAt:             "publishedat",
}

func (t ContentDesignTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Slug, t.Status,
		t.MainImage, t.AltText, t.Width, t.Height, t.GalleryImages,
		t.ShortDescription, t.LongDescription,
		t.Category, t.Colors, t.Length, t.Shape, t.StyleType,
		t.AffiliateSectionEnabled, t.AffiliateProducts,
		t.SEO, t.FocusKeywords, t.PublishedAt,
	}
}
