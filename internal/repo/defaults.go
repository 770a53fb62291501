package repo

import "github.com/jpdesignstudio07/jpstudio/internal/model"

// Compiled-in datasets served (and, except for client logos, persisted)
// on first read. Constructors return fresh values so callers can't
// mutate the defaults through a shared slice.

func defaultProjects() []model.Project {
	return []model.Project{
		{
			ID:          "1",
			Title:       "Lumina Brand Identity",
			Category:    "Branding",
			Image:       "https://images.pexels.com/photos/3585047/pexels-photo-3585047.jpeg?auto=compress&cs=tinysrgb&w=800",
			Description: "Complete visual identity system including stationery, business cards, and digital assets for a modern architectural firm.",
			Date:        "2023-11-15",
			Client:      "Lumina Arch",
		},
		{
			ID:          "2",
			Title:       "Aura Skin Packaging",
			Category:    "Packaging",
			Image:       "https://images.pexels.com/photos/6612885/pexels-photo-6612885.jpeg?auto=compress&cs=tinysrgb&w=800",
			Description: "Minimalist sustainable packaging design for a luxury organic skincare line, featuring embossed textures and earth tones.",
			Date:        "2023-10-02",
			Client:      "Aura Skin",
		},
		{
			ID:          "3",
			Title:       "Neon Waves Poster",
			Category:    "Print Design",
			Image:       "https://images.pexels.com/photos/3050943/pexels-photo-3050943.jpeg?auto=compress&cs=tinysrgb&w=800",
			Description: "Typography-focused poster series for an electronic music festival, utilizing bold colors and experimental layouts.",
			Date:        "2023-12-10",
			Client:      "Nightwave Fest",
		},
		{
			ID:          "4",
			Title:       "Fintech Mobile App",
			Category:    "Web & UI",
			Image:       "https://images.pexels.com/photos/196644/pexels-photo-196644.jpeg?auto=compress&cs=tinysrgb&w=800",
			Description: "User interface design for a modern mobile banking application with focus on dark mode and data visualization.",
			Date:        "2024-01-05",
			Client:      "Novus Bank",
		},
		{
			ID:          "5",
			Title:       "Botanical Logo Mark",
			Category:    "Logo",
			Image:       "https://images.pexels.com/photos/7268571/pexels-photo-7268571.jpeg?auto=compress&cs=tinysrgb&w=800",
			Description: "Elegant serif logo mark and embossed business card design for a high-end boutique florist.",
			Date:        "2023-09-18",
			Client:      "Flora & Fern",
		},
		{
			ID:          "6",
			Title:       "Editorial Fashion Story",
			Category:    "Social Media",
			Image:       "https://images.pexels.com/photos/5076516/pexels-photo-5076516.jpeg?auto=compress&cs=tinysrgb&w=800",
			Description: "Instagram story and post series for the Spring collection launch, focusing on editorial typography.",
			Date:        "2023-08-30",
			Client:      "Vogue Mode",
		},
		{
			ID:          "7",
			Title:       "Artisan Coffee Bags",
			Category:    "Packaging",
			Image:       "https://images.pexels.com/photos/3913284/pexels-photo-3913284.jpeg?auto=compress&cs=tinysrgb&w=800",
			Description: "Illustrated coffee packaging series for single-origin roasts, using vibrant patterns and matte finishes.",
			Date:        "2023-11-22",
			Client:      "Roast Co.",
		},
		{
			ID:          "8",
			Title:       "Minimal Portfolio Book",
			Category:    "Print Design",
			Image:       "https://images.pexels.com/photos/6001385/pexels-photo-6001385.jpeg?auto=compress&cs=tinysrgb&w=800",
			Description: "Clean layout design for a photography portfolio book, emphasizing negative space and typography.",
			Date:        "2023-07-14",
			Client:      "Studio Lens",
		},
		{
			ID:          "9",
			Title:       "Urban Streetwear Brand",
			Category:    "Branding",
			Image:       "https://images.pexels.com/photos/3771081/pexels-photo-3771081.jpeg?auto=compress&cs=tinysrgb&w=800",
			Description: "Bold, gritty brand identity for an urban streetwear clothing line.",
			Date:        "2023-06-20",
			Client:      "Concrete Culture",
		},
	}
}

func defaultCategories() []model.Category {
	return []model.Category{
		{ID: "cat_1", Name: "Branding"},
		{ID: "cat_2", Name: "Logo"},
		{ID: "cat_3", Name: "Packaging"},
		{ID: "cat_4", Name: "Web & UI"},
		{ID: "cat_5", Name: "Social Media"},
		{ID: "cat_6", Name: "Print Design"},
	}
}

func defaultServices() []model.Service {
	return []model.Service{
		{
			ID:          "1",
			Title:       "Logo & Brand Identity",
			Description: "Clean, memorable logos and full branding systems.",
			Icon:        "Palette",
		},
		{
			ID:          "2",
			Title:       "Social Media Creatives",
			Description: "High-quality posts, ads, and banners for online growth.",
			Icon:        "Image",
		},
		{
			ID:          "3",
			Title:       "Flyers, Posters & Brochures",
			Description: "Engaging marketing materials that deliver clear messages.",
			Icon:        "Layout",
		},
		{
			ID:          "4",
			Title:       "Packaging Design",
			Description: "Attractive and modern packaging that improves shelf appeal.",
			Icon:        "Box",
		},
		{
			ID:          "5",
			Title:       "Thumbnails & YouTube Graphics",
			Description: "Eye-catching visuals that boost clicks and engagement.",
			Icon:        "Youtube",
		},
		{
			ID:          "6",
			Title:       "Website & UI Graphics",
			Description: "Modern web visuals, layouts, and user interface design.",
			Icon:        "Monitor",
		},
	}
}

func defaultClients() []model.ClientLogo {
	return []model.ClientLogo{
		{ID: "1", Name: "TechCorp", Logo: ""},
		{ID: "2", Name: "CreativeCo", Logo: ""},
		{ID: "3", Name: "BizGrowth", Logo: ""},
	}
}

func defaultSettings() model.SiteSettings {
	return model.SiteSettings{
		HeroImage:         "https://images.pexels.com/photos/1779487/pexels-photo-1779487.jpeg?auto=compress&cs=tinysrgb&w=1200",
		HeaderLogo:        "",
		FooterLogo:        "",
		HeroTitleLine1:    "Creative Graphic Design That",
		HeroHighlightWord: "Elevates",
		HeroTitleLine2:    "Your Brand",
		HeroDescription:   "Craft modern, strategic, and visually powerful designs for businesses worldwide. From logo design to social media marketing, let's turn your ideas into a visual reality.",
	}
}
