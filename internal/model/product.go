package model

// Product represents a piece of equipment in the catalogue.
type Product struct {
	ID             int               `json:"id"`
	Name           string            `json:"name"`
	Category       string            `json:"category"`
	Price          string            `json:"price"`
	Image          string            `json:"image"`
	Images         []string          `json:"images"`
	Description    string            `json:"description"`
	Specs          map[string]string `json:"specs"`
	Applications   []string          `json:"applications"`
	Certifications []string          `json:"certifications"`
	Dimensions     string            `json:"dimensions"`
	PDFLink        string            `json:"pdfLink,omitempty"`
}

// HasApplication reports whether the product lists the given application.
func (p Product) HasApplication(application string) bool {
	for _, a := range p.Applications {
		if a == application {
			return true
		}
	}
	return false
}
