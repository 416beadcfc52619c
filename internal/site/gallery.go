package site

// GalleryIntro is the subtitle on the gallery page.
const GalleryIntro = "Browse our extensive portfolio of completed works across residential homes in the region."

var gallery = []GalleryItem{
	{"Modern Villa Build", "New Build"},
	{"Master Bedroom Extension", "Extension"},
	{"Contemporary Kitchen", "Renovation"},
	{"Boundary Wall Construction", "Outdoor"},
	{"Open Plan Living Space", "Renovation"},
	{"Foundation & Slab Work", "New Build"},
	{"Roofing & Trusses", "Roofing"},
	{"Designer Bathroom", "Renovation"},
}

// Gallery returns the full portfolio.
func Gallery() []GalleryItem {
	out := make([]GalleryItem, len(gallery))
	copy(out, gallery)
	return out
}

// Categories returns the distinct gallery categories in first-seen order.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, g := range gallery {
		if !seen[g.Category] {
			seen[g.Category] = true
			out = append(out, g.Category)
		}
	}
	return out
}

// GalleryByCategory filters the portfolio. An empty category returns everything.
func GalleryByCategory(category string) []GalleryItem {
	if category == "" {
		return Gallery()
	}
	var out []GalleryItem
	for _, g := range gallery {
		if g.Category == category {
			out = append(out, g)
		}
	}
	return out
}
