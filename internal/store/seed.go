package store

import "github.com/terrabrand/agency-website-with-cms-vps/internal/domain"

// 内置初始数据：全新环境（镜像为空）的起点，持久化数据一旦存在即覆盖

func seedAdmin() domain.User {
	return domain.User{
		ID:       domain.SeedAdminID,
		Name:     "RIC Admin",
		Email:    "admin@rictanzania.co.tz",
		Role:     domain.RoleAdmin,
		Password: "admin123",
	}
}

func defaultServices() []domain.Service {
	return []domain.Service{
		{ID: "1", Title: "Logo Design", Price: "200,000 TZS", Icon: "Palette", Tag: "Design",
			Description: "Professional brand identity and logo creation that makes you memorable."},
		{ID: "2", Title: "Social Media Management", Price: "300,000 TZS/mo", Icon: "Share2", Tag: "Marketing",
			Description: "Complete social media strategy, content creation, and community management."},
		{ID: "3", Title: "Website Creation", Price: "800,000 TZS", Icon: "Globe", Tag: "Development",
			Description: "Custom responsive website design and development for your business."},
		{ID: "4", Title: "Digital Ads", Price: "250,000 TZS", Icon: "Zap", Tag: "Marketing",
			Description: "Reach your target audience with data-driven advertising campaigns."},
		{ID: "5", Title: "Radio Jingles", Price: "150,000 TZS", Icon: "Radio", Tag: "Media",
			Description: "Professional audio branding for radio that captures your business essence."},
	}
}

func defaultSettings() domain.SystemSettings {
	return domain.SystemSettings{
		CompanyName:          "RIC Tanzania",
		CompanyEmail:         "info@rictanzania.co.tz",
		CompanyPhone:         "+255 XXX XXX XXX",
		CompanyAddress:       "Dar es Salaam, Tanzania",
		CompanyLogoURL:       "",
		FlutterwavePublicKey: "FLWPUBK_TEST-0887984b83e1ce7a3325b9945ead2ec9-X",
		PaypalClientID:       "test",
		Theme:                domain.ThemeDefault,
		DarkMode:             false,
		CompanyFacebook:      "https://facebook.com",
		CompanyInstagram:     "https://instagram.com",
		CompanyLinkedin:      "https://linkedin.com",
	}
}

func defaultHomepageContent() domain.HomepageContent {
	return domain.HomepageContent{
		HeroTitle:     "Building digital products, brands, and experience.",
		HeroSubtitle:  "We help Tanzanian businesses thrive in the digital age with innovative solutions tailored to your needs.",
		ServicesTitle: "Collaborate with brands and agencies to create impactful results.",
		CtaTitle:      "Tell me about your next project",
	}
}

func defaultServicesContent() domain.ServicesContent {
	return domain.ServicesContent{
		HeroTitle:                  "Services that work like a Partner",
		HeroDescription:            "Great businesses deserve solutions that do it all, from creating brands and digital presence to helping you market and grow.",
		CustomSolutionsTitle:       "Tailored to Your Needs",
		CustomSolutionsDescription: "Complex projects that require custom pricing and consultation",
	}
}

func defaultClientsContent() domain.ClientsContent {
	return domain.ClientsContent{
		HeroTitle: "Sarah Ndege is Operations Manager at Safari Adventures TZ",
		HeroImage: "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		HeroTags:  "Tourism, Digital Strategy, WhatsApp Automation",

		Stat1Title: "Apple Editor's Choice", Stat1Subtitle: "Featured mobile app design",
		Stat2Title: "Idea of the Day", Stat2Subtitle: "Innovative web solutions",
		Stat3Title: "Top Digital Agency", Stat3Subtitle: "Tanzania 2024",
		Stat4Title: "98% Success Rate", Stat4Subtitle: "Client satisfaction",

		Project1Title:       "Designing a digital experience for Safari Adventures Tanzania",
		Project1Description: "We worked with Safari Adventures to create a comprehensive mobile app that transformed how they connect with customers. The solution includes real-time booking, WhatsApp integration, and AI-powered customer support that handles inquiries in multiple languages.",
		Project1Image:       "https://images.unsplash.com/photo-1512941937669-90a1b58e7e9c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Project1Link:        "/clients",

		MidStat1Value: "200+", MidStat1Label: "Happy Clients",
		MidStat2Value: "500+", MidStat2Label: "Projects Delivered",
		MidStat3Value: "10+", MidStat3Label: "Industries Served",
		MidStat4Value: "95%", MidStat4Label: "Client Satisfaction",

		Project2Title:       "Workplackers App",
		Project2Description: "A mobile-first platform that revolutionizes how Tanzanian workers find employment opportunities. The app connects job seekers with employers, offering real-time notifications, in-app messaging, and integrated mobile money payments for application fees.",
		Project2Bullets:     "Community-based collaboration that makes finding work easier for over 250,000 members seeking a profound cultural experience\nAI-powered job matching that analyzes skills and experience\nSeamless mobile-first design optimized for low-bandwidth networks",
		Project2Image:       "https://images.unsplash.com/photo-1551650975-87deedd944c3?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Project2Link:        "/clients",
	}
}

func defaultAboutContent() domain.AboutContent {
	return domain.AboutContent{
		HeroTitleLine1:    "Hi, We're RIC",
		HeroTitleLine2:    "Tanzania.",
		HeroTitleLine3:    "A Digital",
		HeroTitleLine4:    "Agency",
		HeroTitleLine5:    "Based in",
		HeroTitleLocation: "Dar es Salaam",
		HeroImage:         "https://images.unsplash.com/photo-1522071820081-009f0129c71c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",

		MarqueeTags: "Design, Branding, Development, Strategy, Product Design, Motion Graphics, AI Solutions",

		IntroLabel:       "RIC Tanzania",
		IntroTitle:       "Leading digital agency and creative director.",
		IntroDescription: "We empower Tanzanian businesses with world-class digital solutions. From brand identity to cutting-edge AI automation, we combine international best practices with deep local market knowledge.",

		IntroStat1Label: "Location", IntroStat1Value: "Dar es Salaam",
		IntroStat2Label: "Experience", IntroStat2Value: "5+ Years",
		IntroStat3Label: "Since", IntroStat3Value: "2019",

		BigStat1Value: "5+", BigStat1Label: "Years of Experience",
		BigStat2Value: "150+", BigStat2Label: "Projects Completed",
		BigStat3Value: "80+", BigStat3Label: "Happy Clients",

		ServicesTitle:    "Services",
		ServicesSubtitle: "Expertise & Capabilities",

		Service1Title: "Design & Creative", Service1Desc: "Crafting visually stunning designs that connect with your audience.",
		Service2Title: "Development", Service2Desc: "Building digital experiences with the latest technology and best practices.",
		Service3Title: "Strategy", Service3Desc: "Data-driven strategies to grow your brand and reach your goals.",
		Service4Title: "AI Solutions", Service4Desc: "Leveraging AI to automate and optimize your business processes.",

		RecognitionTitle:    "Recognition",
		RecognitionSubtitle: "Achievements & Milestones",

		Award1Title: "Top Digital Agency Tanzania", Award1Category: "Business", Award1Year: "2024",
		Award2Title: "Best Social Media Campaign", Award2Category: "Marketing", Award2Year: "2023",
		Award3Title: "Excellence in Web Development", Award3Category: "Design", Award3Year: "2023",
		Award4Title: "Innovation in AI Solutions", Award4Category: "Technology", Award4Year: "2024",

		CtaTitle: "Tell me about your next project",
	}
}

func defaultTestimonials() []domain.Testimonial {
	return []domain.Testimonial{
		{ID: "1", Quote: "RIC Tanzania transformed our digital presence completely. The website they built has increased our customer inquiries by 300%.", Name: "John Mwambu", Role: "CEO", Company: "Tanzania Tech Hub", Tag: "Technology"},
		{ID: "2", Quote: "Their social media management has helped us reach customers across East Africa. Professional and results-driven team.", Name: "Grace Kimaro", Role: "Marketing Director", Company: "Kilimanjaro Coffee Co.", Tag: "Agriculture"},
		{ID: "3", Quote: "The logo and branding package exceeded our expectations. They truly understood our vision and brought it to life.", Name: "Ahmed Hassan", Role: "Managing Director", Company: "Dar Construction Ltd", Tag: "Construction"},
		{ID: "4", Quote: "Our WhatsApp automation has revolutionized customer service. We can now handle 10x more inquiries efficiently.", Name: "Sarah Ndege", Role: "Operations Manager", Company: "Safari Adventures TZ", Tag: "Tourism"},
		{ID: "5", Quote: "The digital ads campaign brought us customers from all over the world. ROI was exceptional!", Name: "Fatma Ali", Role: "Owner", Company: "Zanzibar Spice Market", Tag: "Retail"},
		{ID: "6", Quote: "Professional, timely, and excellent results. Their content strategy has positioned us as thought leaders.", Name: "Dr. Peter Moshi", Role: "Dean", Company: "Tanzania Business School", Tag: "Education"},
	}
}

func defaultPortfolio() []domain.PortfolioItem {
	return []domain.PortfolioItem{
		{ID: "1", Title: "N26 Banking App", Description: "Mobile app design that completely transformed how millions of users manage their finances.", Tags: []string{"Mobile App", "FinTech", "UX Design"}, Category: domain.CategoryTechnology, ImageURL: "https://images.unsplash.com/photo-1563986768609-322da13575f3?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80"},
		{ID: "2", Title: "WhatsApp Business API", Description: "Custom WhatsApp automation system handling 10,000+ daily customer interactions.", Tags: []string{"API Integration", "Automation", "CRM"}, Category: domain.CategoryTechnology, ImageURL: "https://images.unsplash.com/photo-1611162617474-5b21e879e113?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80"},
		{ID: "3", Title: "E-Commerce Platform", Description: "Scalable e-commerce system with mobile money integration for African markets.", Tags: []string{"Web Development", "E-Commerce", "Payment"}, Category: domain.CategoryTechnology, ImageURL: "https://images.unsplash.com/photo-1460925895917-afdab827c52f?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80"},
		{ID: "4", Title: "Safari Adventures Brand", Description: "Logo design, brand guidelines, and marketing materials that capture the essence of African adventure.", Tags: []string{"Branding", "Logo Design", "Identity"}, Category: domain.CategoryDesign, ImageURL: "https://images.unsplash.com/photo-1600607686527-6fb886090705?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80"},
		{ID: "5", Title: "Kilimanjaro Coffee", Description: "Modern packaging that honors traditional Tanzanian coffee heritage while appealing to global markets.", Tags: []string{"Packaging", "Print Design", "Branding"}, Category: domain.CategoryDesign, ImageURL: "https://images.unsplash.com/photo-1595435934249-5df7ed86e1c0?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80"},
		{ID: "6", Title: "Dar Construction Web", Description: "Clean, professional web design highlighting construction projects with stunning photography.", Tags: []string{"Web Design", "UI/UX", "Corporate"}, Category: domain.CategoryDesign, ImageURL: "https://images.unsplash.com/photo-1503387762-592deb58ef4e?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80"},
		{ID: "7", Title: "Zanzibar Tourism", Description: "Facebook, Instagram, and Google Ads campaign that increased tourism bookings by 180%.", Tags: []string{"Digital Ads", "Social Media", "Campaign"}, Category: domain.CategoryMedia, ImageURL: "https://images.unsplash.com/photo-1534764879204-748956cc18d9?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80"},
		{ID: "8", Title: "Radio Jingles Bank", Description: "Creative radio commercials in Swahili and English broadcast across major stations.", Tags: []string{"Radio", "Audio Production", "Branding"}, Category: domain.CategoryMedia, ImageURL: "https://images.unsplash.com/photo-1598488035139-bdbb2231ce04?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80"},
		{ID: "9", Title: "Social Media Tech Hub", Description: "Strategic content creation and community management across all social platforms.", Tags: []string{"Social Media", "Content", "Growth"}, Category: domain.CategoryMedia, ImageURL: "https://images.unsplash.com/photo-1611162616475-46b635cb6868?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80"},
	}
}
