// Package catalog holds the fixed list of projects rendered on the timeline.
package catalog

import "latestworks.dev/internal/models"

var projects = []models.Project{
	{
		Title:        "Speak Feed Project",
		Subtitle:     "Interactive Feedback & Speaker Platform",
		Description:  "A modern platform aimed at helping public speakers receive live feedback, manage referrals, and connect with audiences. Inspired by the SPEAKFEED trademark and platform concept — a web application focused on empowering speakers with tools to rate, book, and improve their speaking skills and presence.",
		Tags:         []string{"Ongoing", "Next.js", "TypeScript"},
		Image:        "/speakfeed.webp",
		LiveDemo:     "https://speakfeed.com/en",
		GitHubRepo:   models.PlaceholderLink,
		ProjectColor: "#eb631b",
	},
	{
		Title:       "ShaadiPros Platform",
		Subtitle:    "Real-Time Blog Engine with Next.js 16 & Gemini AI",
		Description: "A full-stack, AI-native platform providing a dynamic real-time blog engine, content suggestions, and seamless publishing workflows. Integrated with Convex serverless backend, Google Gemini AI for content generation, and a solid CI/CD setup enabling fast deployments and code reliability.",
		Tags: []string{
			"Next.js 16", "React 19", "Convex", "Google Gemini", "ImageKit", "Clerk",
			"Tailwind CSS 4", "Shadcn UI", "TypeScript", "Zod", "Docker",
		},
		Image:        "/Shaadipros.webp",
		LiveDemo:     "https://shaadipros.com/",
		GitHubRepo:   models.PlaceholderLink,
		ProjectColor: "#df9c19",
	},
	{
		Title:       "VIAI",
		Subtitle:    "AI-Powered Athletic & Performance Tech",
		Description: "A tech demo showcasing advanced wearable AI performance tracking and coaching tools. Built to integrate smart hardware with real-time AI analytics for athletes — offering performance insights, training indicators, and data visualization to help users optimize physical activity and reach goals.",
		Tags: []string{
			"Next.js", "MySQL", "Auth.js", "Bcrypt", "Zod", "HMAC", "ESLint",
			"Prettier", "Husky", "Lint-Staged",
		},
		Image:        "/Viai.webp",
		LiveDemo:     "https://viainow.com/",
		GitHubRepo:   models.PlaceholderLink,
		ProjectColor: "#7c3aed",
	},
	{
		Title:       "Fliz",
		Subtitle:    "Heavy Equipment & Rental Marketplace",
		Description: "A high-performance rental platform connecting businesses and individuals with heavy equipment providers. Focused on seamless discovery, secure payments, and logistics tracking, the site delivers a streamlined experience for selecting and booking machinery online.",
		Tags: []string{
			"React", "JavaScript", "Redux Toolkit", "Tailwind CSS", "Material UI",
			"TanStack Query", "Axios", "React Router", "React Toastify", "React Slick",
		},
		Image:        "/fliz.webp",
		LiveDemo:     "https://fliz.com.sa/en/renter/companies",
		GitHubRepo:   models.PlaceholderLink,
		ProjectColor: "#fec08c",
	},
	{
		Title:        "Modern Portfolio",
		Subtitle:     "Ranjan — Frontend Developer",
		Description:  "A personalized portfolio showcasing skills, projects, and design sensibilities with interactive animations, customizable theme settings (light/dark + colors), and smooth navigation to present a distinctive online identity.",
		Tags:         []string{"React", "Tailwind CSS", "Framer Motion", "Context API", "Email JS", "AI"},
		Image:        "/My-Portfolio.webp",
		LiveDemo:     "https://ranjangupta.vercel.app/",
		GitHubRepo:   "https://github.com/Ranjan404/my-portfolio",
		ProjectColor: "#EA580C",
	},
	{
		Title:       "Abdomax",
		Subtitle:    "Medical & Health Equipment Services",
		Description: "Frontend of a modern healthcare support portal designed to simplify scheduling, monitoring, and usage tracking for medical machines. Built for responsive performance and engaging discovery experiences with optimized loading speeds.",
		Tags: []string{
			"React", "JavaScript", "Redux Toolkit", "Tailwind CSS", "Material UI",
			"TanStack Query", "Axios", "React Router", "React Toastify", "React Slick",
		},
		Image:        "/Abdomax.webp",
		LiveDemo:     "https://www.abdomax.ch/fr",
		GitHubRepo:   models.PlaceholderLink,
		ProjectColor: "#95db32",
	},
	{
		Title:        "Tick'It",
		Subtitle:     "Facility Task & Workflow Management",
		Description:  "A responsive task tracking and management platform designed to coordinate tasks across teams with real-time updates, automated alerts, role-based views, and polished UI transitions — aimed at improving productivity and accountability without a backend.",
		Tags:         []string{"React", "JavaScript", "Tailwind CSS", "Context API", "React Toastify"},
		Image:        "/tickit.webp",
		LiveDemo:     "https://tickit.co/",
		GitHubRepo:   models.PlaceholderLink,
		ProjectColor: "#000000",
	},
}

// Projects returns a copy of the project list in display order.
// The tag slices are copied too, so callers may modify the result freely.
func Projects() []models.Project {
	out := make([]models.Project, len(projects))
	for i, p := range projects {
		p.Tags = append([]string(nil), p.Tags...)
		out[i] = p
	}
	return out
}

// Len returns the number of projects in the catalog
func Len() int {
	return len(projects)
}
