package content

import (
	"mazee-site/internal/i18n"
)

// Reason is a "why choose us" card.
type Reason struct {
	Icon        string
	Metric      string
	Title       string
	Description string
}

// WhyUs returns the reasons section.
func WhyUs(t i18n.Translator) []Reason {
	reasons := []struct{ key, icon, metric string }{
		{"successfulProjects", "users", "100%"},
		{"completeSolutions", "building", "360°"},
		{"completeService", "shield", "24/7"},
		{"proTeam", "star", "7+"},
	}

	out := make([]Reason, len(reasons))
	for i, r := range reasons {
		prefix := "whyUs.reasons." + r.key
		out[i] = Reason{
			Icon:        r.icon,
			Metric:      r.metric,
			Title:       t.T(prefix + ".title"),
			Description: t.T(prefix + ".description"),
		}
	}
	return out
}

// Service is one of the offered service lines.
type Service struct {
	Key         string
	Icon        string
	Title       string
	Description string
	Features    []string
	Benefits    []string
}

var serviceKeys = []struct{ key, icon string }{
	{"digitalSignage", "monitor"},
	{"videoWalls", "eye"},
	{"itInfrastructure", "server"},
	{"roomEquipment", "home"},
}

// Services returns the services section.
func Services(t i18n.Translator) []Service {
	out := make([]Service, len(serviceKeys))
	for i, s := range serviceKeys {
		prefix := "services.items." + s.key
		out[i] = Service{
			Key:         s.key,
			Icon:        s.icon,
			Title:       t.T(prefix + ".title"),
			Description: t.T(prefix + ".description"),
			Features:    t.List(prefix + ".features"),
			Benefits:    t.List(prefix + ".benefits"),
		}
	}
	return out
}

// Figure is a small highlighted number in the about section.
type Figure struct {
	Icon  string
	Value string
	Label string
}

// AboutFigures returns the about section highlights.
func AboutFigures(t i18n.Translator) []Figure {
	return []Figure{
		{Icon: "award", Value: "15+", Label: t.T("about.yearsExperience")},
		{Icon: "globe", Value: "5+", Label: t.T("about.countriesServed")},
		{Icon: "users", Value: "50+", Label: t.T("about.expertTeam")},
		{Icon: "star", Value: "A+", Label: t.T("about.qualityRating")},
	}
}

// ContactCard groups one contact channel.
type ContactCard struct {
	Icon     string
	Title    string
	Subtitle string
	Details  []string
}

// ContactCards returns the contact section cards.
func ContactCards(t i18n.Translator) []ContactCard {
	return []ContactCard{
		{
			Icon:     "phone",
			Title:    t.T("contact.phone.title"),
			Subtitle: t.T("contact.phone.subtitle"),
			Details:  []string{t.T("contact.phone.number1"), t.T("contact.phone.number2")},
		},
		{
			Icon:     "mail",
			Title:    t.T("contact.email.title"),
			Subtitle: t.T("contact.email.subtitle"),
			Details:  []string{t.T("contact.email.address1"), t.T("contact.email.address2")},
		},
		{
			Icon:     "map-pin",
			Title:    t.T("contact.office.title"),
			Subtitle: t.T("contact.office.subtitle"),
			Details:  []string{t.T("contact.office.location1"), t.T("contact.office.location2")},
		},
	}
}

// NavItem is a link in the main navigation.
type NavItem struct {
	ID    string
	Label string
	Href  string
}

var navSections = []string{"home", "services", "projects", "catalog", "about", "contact"}

// Navigation returns the main navigation. Links are in-page anchors on the
// home page and point back to the home page elsewhere.
func Navigation(t i18n.Translator, onHome bool) []NavItem {
	prefix := "/"
	if onHome {
		prefix = ""
	}

	items := make([]NavItem, len(navSections))
	for i, id := range navSections {
		items[i] = NavItem{
			ID:    id,
			Label: t.T("navigation." + id),
			Href:  prefix + "#" + id,
		}
	}
	return items
}
