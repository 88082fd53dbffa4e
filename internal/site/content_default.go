package site

func DefaultContent() *Content {
	return &Content{
		Tagline: "Next-gen IT consulting, enterprise software and digital transformation services across the globe.",
		Hero: Hero{
			Badge:       "Innovating Future Technology...",
			Title:       "Building Scalable",
			Highlight:   "Digital Solutions",
			Subtitle:    "for Global Enterprises",
			Description: "Infra Tech Solution empowers businesses with next-gen IT consulting, enterprise software, and digital transformation services across the globe.",
			Primary:     Link{Label: "Get Started", Path: "/contact"},
			Secondary:   Link{Label: "Explore Services", Path: "/services"},
		},
		Expertise: Expertise{
			Title:    "Our Expertise",
			Subtitle: "Comprehensive IT solutions tailored for diverse industries.",
			Cards: []ServiceCard{
				{Icon: "bar-chart", Title: "Enterprise Solutions", Description: "Scalable ERP, CRM, and SCM systems to streamline your business operations.", Path: "/services#enterprise"},
				{Icon: "shield", Title: "BFSI & Fintech", Description: "Secure banking solutions, payment gateways, and fraud detection systems.", Path: "/services#finance"},
				{Icon: "globe", Title: "Retail & E-Commerce", Description: "Next-gen e-commerce platforms, POS integration, and loyalty systems.", Path: "/services#retail"},
				{Icon: "zap", Title: "Manufacturing & IoT", Description: "Smart manufacturing with MES, PLM, and connected IoT ecosystems.", Path: "/services#manufacturing"},
				{Icon: "users", Title: "EdTech", Description: "LMS, virtual classrooms, and analytics for educational institutions.", Path: "/services"},
				{Icon: "globe", Title: "Travel & Hospitality", Description: "Booking engines, PMS, and customer experience platforms.", Path: "/services"},
			},
		},
		WhyUs: WhyUs{
			Title:       "Why Global Enterprises Trust Infra Tech",
			Description: "We combine deep industry expertise with cutting-edge technology to deliver tangible business outcomes. Our client-centric approach ensures your success is our priority.",
			Reasons: []string{
				"Global Presence (India, UK, Australia)",
				"24/7 Support & Maintenance",
				"Agile Development Methodology",
				"Certificated Expert Developers",
				"Scalable & Secure Architecture",
			},
			Stats: []Stat{
				{Value: 5, Suffix: "+", Label: "Global Clients"},
				{Value: 10, Suffix: "+", Label: "Employees"},
			},
			Action: Link{Label: "More About Us", Path: "/about"},
		},
		CallToAction: CallToAction{
			Title:       "Ready to Transform Your Business?",
			Description: "Partner with Infra Tech Solution for innovative digital strategies that drive growth and efficiency.",
			Action:      Link{Label: "Start Your Journey", Path: "/contact"},
		},
		Services: []ServiceSection{
			{Anchor: "enterprise", Title: "Enterprise Solutions", Description: "ERP, CRM and SCM platforms designed, integrated and operated for organizations that need to scale."},
			{Anchor: "finance", Title: "Fintech", Description: "Core banking integrations, payment gateways and fraud detection built to regulatory standards."},
			{Anchor: "retail", Title: "Retail & E-Commerce", Description: "Storefronts, POS integration and loyalty programs that keep customers coming back."},
			{Anchor: "manufacturing", Title: "Manufacturing & IoT", Description: "MES, PLM and connected device ecosystems for the smart factory."},
			{Anchor: "cloud", Title: "Cloud Computing", Description: "Migration, cost optimization and managed operations on the major cloud providers."},
			{Anchor: "cybersecurity", Title: "Cybersecurity", Description: "Audits, hardening and continuous monitoring to keep your systems and data safe."},
		},
		About: Page{
			Title: "About Us",
			Intro: "Infra Tech Solution is an IT consulting company helping enterprises design, build and run their digital platforms.",
			Body: []string{
				"Our teams in India, the UK and Australia work around the clock with clients across industries.",
				"We favor pragmatic architectures, agile delivery and long-term partnerships.",
			},
		},
		Mission: Page{
			Title: "Our Mission",
			Intro: "Make enterprise-grade technology accessible to every business, whatever its size.",
			Body: []string{
				"We believe technology should serve business outcomes, not the other way around.",
			},
		},
		Contact: Page{
			Title: "Book A Call",
			Intro: "Tell us about your project and we will get back to you within one business day.",
			Body: []string{
				"Email: contact@infratech.example",
				"Phone: +44 20 0000 0000",
			},
		},
	}
}
