package model

// Project represents a completed installation shown in the portfolio.
type Project struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Client       string   `json:"client"`
	Category     string   `json:"category"`
	Image        string   `json:"image"`
	Images       []string `json:"images"`
	Video        string   `json:"video,omitempty"`
	Description  string   `json:"description"`
	Details      string   `json:"details"`
	Timeline     string   `json:"timeline"`
	Budget       string   `json:"budget"`
	TeamSize     string   `json:"teamSize"`
	Technologies []string `json:"technologies"`
	Challenges   string   `json:"challenges"`
	Solutions    string   `json:"solutions"`
	Results      string   `json:"results"`
}
