package site

import (
	"fmt"
	"strings"

	"qualitybuilt/internal/nav"
)

// LegalSection is one numbered heading of a legal document.
type LegalSection struct {
	Heading string
	Body    string
}

// LegalDoc is a terms or privacy page.
type LegalDoc struct {
	Title    string
	Sections []LegalSection
}

// Legal builds the document for nav.Terms or nav.Privacy.
// The two documents share everything except section 3 and the contact line.
func Legal(kind nav.View) (LegalDoc, error) {
	var title, third, thirdBody, queryName string
	switch kind {
	case nav.Terms:
		title = "Terms of Work"
		third = "3. Payments & Deposits"
		thirdBody = "Payments must be made according to the schedule outlined in your specific project contract. Failure to meet payment milestones may result in temporary suspension of on-site work."
		queryName = "Terms of Service"
	case nav.Privacy:
		title = "Privacy Policy"
		third = "3. Data Collection"
		thirdBody = "We only collect necessary personal information required to provide accurate quotes and manage your construction projects. This includes names, contact details, and site addresses. We do not share your data with third parties for marketing purposes."
		queryName = "Privacy Policy"
	default:
		return LegalDoc{}, fmt.Errorf("no legal document for view %s", kind)
	}
	return LegalDoc{
		Title: title,
		Sections: []LegalSection{
			{"1. Overview", "Welcome to QualityBuilt Construction. By accessing our services, you agree to comply with and be bound by the following terms. We are a local contractor committed to providing quality residential building services in South Africa."},
			{"2. Service Terms", "All construction projects are subject to a formal written quote. Work will only commence upon receipt of a signed contract and the agreed-upon initial deposit. We strive to maintain accurate timelines, but construction schedules may be impacted by weather or material availability."},
			{third, thirdBody},
			{"4. Guarantees", "We provide a standard structural guarantee on all new builds as per NHBRC guidelines. Maintenance and repair work is guaranteed for a period of 12 months from the date of completion, covering defects in workmanship."},
			{"5. Contact", fmt.Sprintf("For any queries regarding our %s, please contact us at %s or via phone at %s.", queryName, brand.Email, brand.Phone)},
		},
	}, nil
}

// Markdown renders the document as markdown for the terminal renderer.
func (d LegalDoc) Markdown() string {
	var b strings.Builder
	b.WriteString("# " + d.Title + "\n\n")
	for _, s := range d.Sections {
		b.WriteString("## " + s.Heading + "\n\n")
		b.WriteString(s.Body + "\n\n")
	}
	return b.String()
}
