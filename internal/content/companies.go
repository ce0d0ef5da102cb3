package content

// Company is a client logo on the partners marquee.
type Company struct {
	Name  string
	Image string
}

// Companies lists client logos in display order.
var Companies = []Company{
	{Name: "Silk Road Group", Image: "/static/images/companies/silk-road-group.webp"},
	{Name: "Wyndham", Image: "/static/images/companies/wyndham.webp"},
	{Name: "Ministry of Georgia", Image: "/static/images/companies/ministry-of-georgia.webp"},
	{Name: "GT Group", Image: "/static/images/companies/gt-group.webp"},
	{Name: "Swiss Hotel", Image: "/static/images/companies/swiss-hotel.webp"},
	{Name: "Sheraton", Image: "/static/images/companies/sheraton.webp"},
	{Name: "LIBS", Image: "/static/images/companies/libs.webp"},
	{Name: "Lopota", Image: "/static/images/companies/lopota.webp"},
	{Name: "Marriott", Image: "/static/images/companies/marriott.webp"},
	{Name: "Tour Invest Group", Image: "/static/images/companies/tour-invest-group.webp"},
	{Name: "GCF", Image: "/static/images/companies/gcf.webp"},
	{Name: "Hilton", Image: "/static/images/companies/hilton.webp"},
	{Name: "Mövenpick", Image: "/static/images/companies/movenpick.webp"},
	{Name: "LW", Image: "/static/images/companies/lw.webp"},
}

// CompanyRowSize is the number of logos per marquee row.
const CompanyRowSize = 5

// CompanyRows splits companies into marquee rows of CompanyRowSize.
func CompanyRows(companies []Company) [][]Company {
	var rows [][]Company
	for start := 0; start < len(companies); start += CompanyRowSize {
		end := min(start+CompanyRowSize, len(companies))
		rows = append(rows, companies[start:end])
	}
	return rows
}
