// Package site holds the static content shown by the QualityBuilt pages.
// Everything here is literal copy; nothing carries identity or state.
package site

import "qualitybuilt/internal/nav"

// Brand is the business's contact card.
type Brand struct {
	Name     string
	Wordmark string
	Tagline  string
	Phone    string
	WhatsApp string
	Email    string
	Blurb    string
	Hours    []Hours
}

// Hours is one row of the opening-hours table.
type Hours struct {
	Days  string
	Times string
}

// Hero is the landing banner.
type Hero struct {
	Badge    string
	Headline string
	Lead     string
	QuoteCTA string
	CallCTA  string
}

// About is the "Who We Are" block.
type About struct {
	Kicker     string
	Title      string
	Body       string
	Highlights []string
	YearsBadge string
	Quote      string
}

// Service is one card in the services grid.
type Service struct {
	Title       string
	Description string
}

// Feature is a detailed block on the services page.
type Feature struct {
	Title   string
	Body    string
	Bullets []string
}

// Reason is one "Why Choose Us" entry.
type Reason struct {
	Title string
	Body  string
}

// Project is a featured project on the home page.
type Project struct {
	Title    string
	Location string
}

// GalleryItem is one entry in the full portfolio.
type GalleryItem struct {
	Title    string
	Category string
}

// NavLink is a menu entry. Anchor is only meaningful when Target is Home.
type NavLink struct {
	Label  string
	Target nav.View
	Anchor string
}

// Anchor ids mounted on the home page.
const (
	AnchorHero     = "home"
	AnchorAbout    = "about"
	AnchorServices = "services"
	AnchorWhyUs    = "why-us"
	AnchorProjects = "projects"
	AnchorContact  = "contact"
)

// HomeAnchors lists the home page sections in render order.
func HomeAnchors() []string {
	return []string{AnchorHero, AnchorAbout, AnchorServices, AnchorWhyUs, AnchorProjects, AnchorContact}
}

var brand = Brand{
	Name:     "QualityBuilt Construction",
	Wordmark: "QUALITYBUILT",
	Tagline:  "Professional Building Services",
	Phone:    "076 735 1232",
	WhatsApp: "+27 76 735 1232",
	Email:    "info@qualitybuilt.co.za",
	Blurb:    "Your local construction partner. We pride ourselves on reliability, transparency, and high-quality results for every client.",
	Hours: []Hours{
		{Days: "Mon - Fri", Times: "07:00 - 17:00"},
		{Days: "Saturday", Times: "08:00 - 13:00"},
	},
}

// BrandInfo returns the business contact card.
func BrandInfo() Brand { return brand }

// HeroContent returns the landing banner copy.
func HeroContent() Hero {
	return Hero{
		Badge:    "Professional Building Services",
		Headline: "Building Your Dreams Into Reality",
		Lead:     "Expert residential construction and home improvement in your local community. Honest pricing, quality workmanship, and reliable timelines.",
		QuoteCTA: "Get a Free Quote",
		CallCTA:  "Call Now",
	}
}

// AboutContent returns the "Who We Are" copy.
func AboutContent() About {
	return About{
		Kicker: "Who We Are",
		Title:  "A Legacy of Quality and Trust in Every Brick",
		Body:   "We are a dedicated local building team specializing in residential projects. Our mission is to provide high-quality construction services that improve our community and create safe, beautiful homes for our neighbors.",
		Highlights: []string{
			"Licensed & Insured",
			"Local Community Focus",
			"Owner-Managed Projects",
			"Sustainable Practices",
			"Transparent Quoting",
			"Post-Project Support",
		},
		YearsBadge: "15+ Years Excellence",
		Quote:      "We don't just build structures; we build trust through transparent communication and uncompromising standards.",
	}
}

// ServiceList returns the services grid.
func ServiceList() []Service {
	return []Service{
		{"New Home Construction", "Complete turn-key solutions for residential builds, ensuring structural integrity and modern finishes."},
		{"House Extensions", "Seamless room additions and vertical extensions that blend perfectly with your existing home."},
		{"Interior Renovation", "Modernizing kitchens, bathrooms, and living spaces with high-end tiling and finishes."},
		{"Roofing Solutions", "Expert roofing installation and repair using durable materials suited for local weather conditions."},
		{"Exterior Maintenance", "Quality boundary walls, professional paving, and landscaping support for better curb appeal."},
		{"Structural Repairs", "Fixing foundation cracks, damp proofing, and ensuring your home stays safe for decades."},
	}
}

// ServicesIntro is the subtitle above the services grid.
const ServicesIntro = "Whether it's a small repair or a full-scale build, we bring the same level of precision and care to every task."

// ServiceFeatures returns the detailed blocks on the services page.
func ServiceFeatures() []Feature {
	return []Feature{
		{
			Title:   "Residential New Builds",
			Body:    "We manage the entire lifecycle of your new home project. From initial site clearance and foundation laying to the final coat of paint and electrical fit-outs.",
			Bullets: []string{"Professional Site Surveys", "High-Quality Foundation Work", "Full Plumbing & Electrical Services"},
		},
		{
			Title:   "Extensions & Remodeling",
			Body:    "Grow your space without moving home. We specialize in adding rooms, second-story extensions, and modernizing outdated floor plans.",
			Bullets: []string{"Seamless Architectural Matching", "Kitchen & Bathroom Overhauls", "Structural Wall Removals"},
		},
	}
}

// Reasons returns the "Why Choose Us" entries.
func Reasons() []Reason {
	return []Reason{
		{"Guaranteed Workmanship", "We stand by every brick we lay and every pipe we fit. Quality is our standard."},
		{"Reliable Timelines", "We understand the stress of construction. We finish on time, every time."},
		{"Top-Rated Service", "Ask your neighbors - our reputation for clean, polite, and professional service precedes us."},
	}
}

// FeaturedProjects returns the home page project strip.
func FeaturedProjects() []Project {
	return []Project{
		{"Modern Estate Home", "Midrand Area"},
		{"Residential Extension", "Soweto Zone 4"},
		{"Interior Remodel", "Tembisa Ext"},
		{"Boundary & Paving", "Vosloorus"},
	}
}

// ContactIntro is the lead paragraph of the contact section.
const ContactIntro = "We provide free, no-obligation quotes for all local building work. Call us directly or fill out the form for a quick response."

// ServiceOptions returns the choices for the quote form's service field.
func ServiceOptions() []string {
	return []string{
		"Full House Build",
		"Room Extension",
		"Renovations & Repairs",
		"Roofing / Ceilings",
		"Paving & Walls",
		"Other / General Inquiry",
	}
}

// ThankYou is shown after the quote form is submitted.
const ThankYou = "Thank you for contacting QualityBuilt. We have received your project details and will call you back within 24 hours to discuss the next steps."

// NavLinks returns the main menu entries.
func NavLinks() []NavLink {
	return []NavLink{
		{Label: "Services", Target: nav.Services},
		{Label: "About Us", Target: nav.Home, Anchor: AnchorAbout},
		{Label: "Projects", Target: nav.Gallery},
		{Label: "Contact", Target: nav.Home, Anchor: AnchorContact},
	}
}

// FooterLinks returns the footer's quick and legal links.
func FooterLinks() []NavLink {
	return []NavLink{
		{Label: "Home Page", Target: nav.Home},
		{Label: "Our Portfolio", Target: nav.Gallery},
		{Label: "About Our Team", Target: nav.Home, Anchor: AnchorAbout},
		{Label: "What We Do", Target: nav.Services},
		{Label: "Privacy Policy", Target: nav.Privacy},
		{Label: "Terms of Work", Target: nav.Terms},
	}
}
