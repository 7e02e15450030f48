// Copyright (c) 2026 NailDesigns.art. All rights reserved.

/*
Package settings persists the two site-wide configuration documents: the ad
configuration and the general site identity.

Reads merge the persisted document over compiled-in defaults field by
field, so a document written by an older build keeps sane values for every
field it never knew about. The merge recurses into nested objects such as
the social links: a persisted nested key wins, a missing one keeps its
default. Saves overwrite the whole document; a partial payload erases the
fields it omits. That asymmetry is the contract: the admin console always
submits complete documents, which also makes the nested recursion
indistinguishable from wholesale replacement in practice.
*/
package settings

// AdMode selects between live ad serving and placeholder rendering.
type AdMode string

const (
	ModeMock AdMode = "MOCK"
	ModeLive AdMode = "LIVE"
)

// AdsSettings is the full ad configuration document.
type AdsSettings struct {
	Mode        AdMode `json:"mode"`
	ShowAds     bool   `json:"showAds"`
	PublisherID string `json:"publisherId"`
	ScriptURL   string `json:"scriptUrl,omitempty"`

	// Feed grid interleaving
	GridSlotID        string `json:"gridSlotId"`
	GridCode          string `json:"gridCode"`
	GridStartAfter    int    `json:"gridStartAfter"`
	GridInterval      int    `json:"gridInterval"`
	GridMaxPerPage    int    `json:"gridMaxPerPage"`
	GridShowOnMobile  bool   `json:"gridShowOnMobile"`
	GridShowOnDesktop bool   `json:"gridShowOnDesktop"`

	// Static placements
	HeaderEnabled  bool   `json:"headerEnabled"`
	HeaderSlotID   string `json:"headerSlotId"`
	HeaderCode     string `json:"headerCode"`
	FooterEnabled  bool   `json:"footerEnabled"`
	FooterSlotID   string `json:"footerSlotId"`
	FooterCode     string `json:"footerCode"`
	SidebarEnabled bool   `json:"sidebarEnabled"`
	SidebarSlotID  string `json:"sidebarSlotId"`
	SidebarCode    string `json:"sidebarCode"`

	// Detail-page placements
	PostAfterTitleEnabled      bool   `json:"postAfterTitleEnabled"`
	PostAfterTitleCode         string `json:"postAfterTitleCode"`
	PostAfterFirstImageEnabled bool   `json:"postAfterFirstImageEnabled"`
	PostAfterFirstImageCode    string `json:"postAfterFirstImageCode"`
	PostBetweenImagesEnabled   bool   `json:"postBetweenImagesEnabled"`
	PostBetweenImagesCode      string `json:"postBetweenImagesCode"`
	PostBetweenImagesInterval  int    `json:"postBetweenImagesInterval"`
	PostMaxAds                 int    `json:"postMaxAds"`
	PostAfterContentEnabled    bool   `json:"postAfterContentEnabled"`
	PostAfterContentCode       string `json:"postAfterContentCode"`

	// Affiliate box
	AffiliateBoxEnabled bool   `json:"affiliateBoxEnabled"`
	AffiliateTitleText  string `json:"affiliateTitleText"`
	AffiliateButtonText string `json:"affiliateButtonText"`
}

// SocialLinks holds the footer social profile URLs.
type SocialLinks struct {
	Pinterest string `json:"pinterest"`
	Instagram string `json:"instagram"`
}

// GlobalSEO is the site-wide meta fallback used when a page has no SEO of
// its own.
type GlobalSEO struct {
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
}

// SiteSettings is the site identity document.
type SiteSettings struct {
	SiteName        string      `json:"siteName"`
	SiteDescription string      `json:"siteDescription"`
	LogoText        string      `json:"logoText"`
	LogoURL         string      `json:"logoUrl,omitempty"`
	FaviconURL      string      `json:"faviconUrl,omitempty"`
	FooterText      string      `json:"footerText"`
	Socials         SocialLinks `json:"socials"`
	GlobalSEO       GlobalSEO   `json:"globalSeo"`
}

// DefaultAds returns the compiled-in ad configuration. Reads merge the
// persisted document over a fresh copy of this value.
func DefaultAds() AdsSettings {
	return AdsSettings{
		Mode:        ModeLive,
		ShowAds:     true,
		PublisherID: "ca-pub-0000000000000000",

		GridSlotID:        "grid-slot-default",
		GridCode:          "<!-- Grid Ad Code -->",
		GridStartAfter:    4,
		GridInterval:      6,
		GridMaxPerPage:    8,
		GridShowOnMobile:  true,
		GridShowOnDesktop: true,

		HeaderEnabled:  true,
		HeaderSlotID:   "header-slot-default",
		HeaderCode:     "<!-- Header Ad Code -->",
		FooterEnabled:  true,
		FooterSlotID:   "footer-slot-default",
		FooterCode:     "<!-- Footer Ad Code -->",
		SidebarEnabled: true,
		SidebarSlotID:  "sidebar-slot-default",
		SidebarCode:    "<!-- Sidebar Ad Code -->",

		PostAfterTitleEnabled:      true,
		PostAfterTitleCode:         "<!-- Post Title Ad Code -->",
		PostAfterFirstImageEnabled: true,
		PostAfterFirstImageCode:    "<!-- Post After Image Ad Code -->",
		PostBetweenImagesEnabled:   true,
		PostBetweenImagesCode:      "<!-- Post Between Images Ad Code -->",
		PostBetweenImagesInterval:  1,
		PostMaxAds:                 3,
		PostAfterContentEnabled:    true,
		PostAfterContentCode:       "<!-- Post Content Ad Code -->",

		AffiliateBoxEnabled: true,
		AffiliateTitleText:  "Shop the Look",
		AffiliateButtonText: "Check Price",
	}
}

// DefaultSite returns the compiled-in site identity document.
func DefaultSite() SiteSettings {
	return SiteSettings{
		SiteName:        "naildesigns.art",
		SiteDescription: "Premium Nail Art Gallery with Pinterest-style masonry layout.",
		LogoText:        "ND.art",
		FooterText:      "© 2025 NailDesigns.art - Premium Inspiration Gallery.",
		Socials: SocialLinks{
			Pinterest: "#",
			Instagram: "#",
		},
		GlobalSEO: GlobalSEO{
			MetaTitle:       "Nail Designs Art - Top 2025 Trends",
			MetaDescription: "Discover the best nail art designs, trends, and tutorials.",
		},
	}
}
