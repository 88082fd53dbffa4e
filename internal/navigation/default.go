package navigation

const (
	HomePath    = "/"
	ContactPath = "/contact"
)

// DefaultTree is the site's navigation.
var DefaultTree = MustTree(
	Entry{Name: "Home", Path: HomePath},
	Entry{Name: "About Us", Path: "/about"},
	Entry{
		Name: "Services",
		Path: "/services",
		Children: []Link{
			{Name: "Enterprise Solutions", Path: "/services#enterprise"},
			{Name: "Fintech", Path: "/services#finance"},
			{Name: "Retail & E-Commerce", Path: "/services#retail"},
			{Name: "Manufacturing & IoT", Path: "/services#manufacturing"},
			{Name: "Cloud Computing", Path: "/services#cloud"},
			{Name: "Cybersecurity", Path: "/services#cybersecurity"},
		},
	},
	Entry{Name: "Mission", Path: "/mission"},
)
