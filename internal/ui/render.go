package ui

import (
	"fmt"
	"strings"
	"time"

	"qualitybuilt/internal/nav"
	"qualitybuilt/internal/site"
	"qualitybuilt/internal/ui/textutil"
)

const defaultPageWidth = 80

// RenderOptions carries the per-render inputs besides the view itself.
type RenderOptions struct {
	Width int
	// Category filters the gallery; empty shows every project.
	Category string
}

// PageRenderer maps each nav.View to its page content.
type PageRenderer struct {
	Legal *LegalRenderer
	Now   func() time.Time
}

// NewPageRenderer creates a renderer using the wall clock for the footer year.
func NewPageRenderer() *PageRenderer {
	return &PageRenderer{Legal: NewLegalRenderer(), Now: time.Now}
}

// Render builds the page for v. Every page ends with the shared footer.
func (r *PageRenderer) Render(v nav.View, opts RenderOptions) Page {
	width := opts.Width
	if width <= 0 {
		width = defaultPageWidth
	}
	b := newPageBuilder(width)
	switch v {
	case nav.Gallery:
		renderGallery(b, opts.Category)
	case nav.Services:
		renderServicesPage(b)
	case nav.Terms, nav.Privacy:
		r.renderLegal(b, v)
	default:
		renderHome(b)
	}
	r.renderFooter(b)
	return b.build(v)
}

func renderHome(b *pageBuilder) {
	hero := site.HeroContent()
	b.anchor(site.AnchorHero)
	b.blank()
	b.add(Styles.Kicker.Render("● " + hero.Badge))
	b.blank()
	b.text(hero.Headline, Styles.Heading)
	b.blank()
	b.text(hero.Lead, Styles.Body)
	b.blank()
	b.add(Styles.CTA.Render("[f] " + hero.QuoteCTA))
	b.add(Styles.Muted.Render(hero.CallCTA + ": " + site.BrandInfo().Phone))
	b.blank()

	renderAbout(b)
	renderServicesSection(b)
	renderWhyUs(b)
	renderProjects(b)
	renderContact(b)
}

func renderAbout(b *pageBuilder) {
	about := site.AboutContent()
	b.rule()
	b.anchor(site.AnchorAbout)
	b.blank()
	b.add(Styles.Kicker.Render(about.Kicker))
	b.text(about.Title, Styles.Heading)
	b.add(Styles.Badge.Render(about.YearsBadge))
	b.blank()
	b.text(about.Body, Styles.Body)
	b.blank()
	for _, h := range about.Highlights {
		b.add(Styles.Check.Render("✔ ") + Styles.Body.Render(h))
	}
	b.blank()
	b.text(`"`+about.Quote+`"`, Styles.Quote)
	b.blank()
}

func renderServicesSection(b *pageBuilder) {
	b.rule()
	b.anchor(site.AnchorServices)
	b.blank()
	b.add(Styles.Kicker.Render("Our Services"))
	b.text("Comprehensive Building Solutions", Styles.Heading)
	b.text(site.ServicesIntro, Styles.Muted)
	b.blank()
	for _, s := range site.ServiceList() {
		b.add(Styles.Title.Render(s.Title))
		b.text(s.Description, Styles.Body)
		b.blank()
	}
}

func renderWhyUs(b *pageBuilder) {
	b.rule()
	b.anchor(site.AnchorWhyUs)
	b.blank()
	b.add(Styles.Kicker.Render("Why Choose Us"))
	b.text("Professional Excellence, Local Commitment", Styles.Heading)
	b.blank()
	for _, r := range site.Reasons() {
		b.add(Styles.Title.Render(r.Title))
		b.text(r.Body, Styles.Body)
		b.blank()
	}
}

func renderProjects(b *pageBuilder) {
	b.rule()
	b.anchor(site.AnchorProjects)
	b.blank()
	b.add(Styles.Kicker.Render("Our Work"))
	b.text("Delivering Quality Across the Region", Styles.Heading)
	b.add(Styles.CTA.Render("[SPC p] View Full Gallery ›"))
	b.blank()
	for _, p := range site.FeaturedProjects() {
		b.add(textutil.Spread(Styles.Title.Render(p.Title), Styles.Muted.Render(p.Location), b.width))
	}
	b.blank()
}

func renderContact(b *pageBuilder) {
	brand := site.BrandInfo()
	b.rule()
	b.anchor(site.AnchorContact)
	b.blank()
	b.add(Styles.Kicker.Render("Contact Us"))
	b.text("Let's Discuss Your Project", Styles.Heading)
	b.text(site.ContactIntro, Styles.Body)
	b.blank()
	b.add(Styles.Label.Render("Call or SMS  ") + Styles.Body.Render(brand.Phone))
	b.add(Styles.Label.Render("WhatsApp     ") + Styles.Body.Render(brand.WhatsApp))
	b.add(Styles.Label.Render("Email        ") + Styles.Body.Render(brand.Email))
	b.blank()
	b.add(Styles.CTA.Render("[SPC f] Request a free quote"))
	b.blank()
}

func renderGallery(b *pageBuilder, category string) {
	renderBackLink(b)
	b.text("Project Gallery", Styles.Heading)
	b.text(site.GalleryIntro, Styles.Muted)
	b.blank()
	label := category
	if label == "" {
		label = "All"
	}
	b.add(Styles.Muted.Render("Category: ") + Styles.Badge.Render(label) + Styles.Muted.Render("  [c] next"))
	b.blank()
	for _, g := range site.GalleryByCategory(category) {
		b.add(textutil.Spread(Styles.Title.Render(g.Title), Styles.Badge.Render(g.Category), b.width))
	}
	b.blank()
}

func renderServicesPage(b *pageBuilder) {
	renderBackLink(b)
	b.text("Comprehensive Building & Construction", Styles.Heading)
	b.blank()
	for _, f := range site.ServiceFeatures() {
		b.add(Styles.Title.Render(f.Title))
		b.text(f.Body, Styles.Body)
		for _, bullet := range f.Bullets {
			b.add(Styles.Check.Render("✔ ") + Styles.Body.Render(bullet))
		}
		b.blank()
	}
	renderServicesSection(b)
}

func (r *PageRenderer) renderLegal(b *pageBuilder, v nav.View) {
	renderBackLink(b)
	doc, err := site.Legal(v)
	if err != nil {
		b.text(err.Error(), Styles.Error)
		return
	}
	b.add(r.Legal.Render(doc.Markdown(), b.width))
}

func renderBackLink(b *pageBuilder) {
	b.blank()
	b.add(Styles.CTA.Render("‹ Back to Home") + Styles.Muted.Render("  [esc]"))
	b.blank()
}

func (r *PageRenderer) renderFooter(b *pageBuilder) {
	brand := site.BrandInfo()
	b.rule()
	b.add(Styles.Wordmark.Render(brand.Wordmark))
	b.text(brand.Blurb, Styles.Footer)
	b.blank()
	for _, h := range brand.Hours {
		b.add(Styles.Footer.Render(textutil.Spread(h.Days+":", h.Times, min(b.width, 32))))
	}
	b.blank()
	links := site.FooterLinks()
	labels := make([]string, 0, len(links))
	for _, l := range links {
		if seq, ok := routeSeq(l); ok {
			labels = append(labels, l.Label+" ["+seq+"]")
			continue
		}
		labels = append(labels, l.Label)
	}
	b.text(strings.Join(labels, " · "), Styles.Muted)
	b.blank()
	year := time.Now().Year()
	if r.Now != nil {
		year = r.Now().Year()
	}
	b.add(Styles.Footer.Render(fmt.Sprintf("© %d %s. All rights reserved.", year, brand.Name)))
}
