// Command seed wipes and repopulates the internships collection with sample
// listings for local development.
package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/elevare/platform-api/internal/core/domain"
	mongodb "github.com/elevare/platform-api/internal/infrastructure/db/mongo"
	"github.com/elevare/platform-api/internal/pkg/config"
	"github.com/elevare/platform-api/pkg/logger"
)

func sampleInternships() []domain.Internship {
	return []domain.Internship{
		{
			Title:       "Frontend Developer Intern",
			Company:     "TechCorp Inc.",
			Location:    "Remote",
			Icon:        "🚀",
			Description: "Join our frontend team to build amazing user interfaces using React, TypeScript, and modern web technologies.",
			Tags:        []string{"React", "TypeScript", "CSS"},
			Category:    domain.CategoryTech,
			Duration:    "3-6 months",
			Stipend:     "₹15,000/month",
			Type:        domain.WorkRemote,
			Requirements: []string{
				"Strong knowledge of React and JavaScript",
				"Experience with TypeScript",
				"Understanding of responsive design",
			},
			Responsibilities: []string{
				"Build reusable UI components",
				"Collaborate with design team",
				"Write clean, maintainable code",
			},
		},
		{
			Title:       "Marketing Analytics Intern",
			Company:     "DataDriven Solutions",
			Location:    "Mumbai, India",
			Icon:        "📊",
			Description: "Help analyze marketing campaigns and create data-driven insights to optimize marketing strategies.",
			Tags:        []string{"Analytics", "SQL", "Marketing"},
			Category:    domain.CategoryMarketing,
			Duration:    "3 months",
			Stipend:     "₹10,000/month",
			Type:        domain.WorkHybrid,
			Requirements: []string{
				"Basic knowledge of SQL and Excel",
				"Interest in data analysis",
				"Good communication skills",
			},
			Responsibilities: []string{
				"Analyze marketing campaign data",
				"Create reports and dashboards",
				"Present insights to stakeholders",
			},
		},
		{
			Title:       "UI/UX Design Intern",
			Company:     "Creative Studio",
			Location:    "Bangalore, India",
			Icon:        "🎨",
			Description: "Create beautiful and intuitive user experiences for web and mobile applications.",
			Tags:        []string{"Figma", "Adobe Creative", "Prototyping"},
			Category:    domain.CategoryDesign,
			Duration:    "4 months",
			Stipend:     "₹12,000/month",
			Type:        domain.WorkOnSite,
			Requirements: []string{
				"Proficiency in Figma or Adobe XD",
				"Portfolio of design work",
				"Understanding of UX principles",
			},
			Responsibilities: []string{
				"Design wireframes and mockups",
				"Create interactive prototypes",
				"Conduct user research",
			},
		},
		{
			Title:       "Business Analyst Intern",
			Company:     "Insight Partners",
			Location:    "Remote",
			Icon:        "📈",
			Description: "Work with stakeholders to document requirements and improve operational processes.",
			Tags:        []string{"Excel", "Communication", "Problem Solving"},
			Category:    domain.CategoryBusiness,
			Duration:    "3 months",
			Stipend:     "₹8,000/month",
			Type:        domain.WorkRemote,
			Requirements: []string{
				"Strong analytical skills",
				"Proficiency in MS Office",
				"Excellent communication skills",
			},
			Responsibilities: []string{
				"Document business requirements",
				"Create process flow diagrams",
				"Support stakeholder meetings",
			},
		},
		{
			Title:       "Backend Developer Intern",
			Company:     "CloudTech Systems",
			Location:    "Hyderabad, India",
			Icon:        "⚙️",
			Description: "Build scalable APIs and microservices using Node.js, Python, and cloud technologies.",
			Tags:        []string{"Node.js", "Python", "AWS"},
			Category:    domain.CategoryTech,
			Duration:    "6 months",
			Stipend:     "₹18,000/month",
			Type:        domain.WorkHybrid,
			Requirements: []string{
				"Knowledge of Node.js or Python",
				"Understanding of REST APIs",
				"Basic knowledge of databases",
			},
			Responsibilities: []string{
				"Develop RESTful APIs",
				"Write unit tests",
				"Deploy to cloud platforms",
			},
		},
		{
			Title:       "Social Media Marketing Intern",
			Company:     "BrandBoost Agency",
			Location:    "Delhi, India",
			Icon:        "📱",
			Description: "Manage social media campaigns and create engaging content for various platforms.",
			Tags:        []string{"Content Creation", "Social Media", "Canva"},
			Category:    domain.CategoryMarketing,
			Duration:    "3 months",
			Stipend:     "₹7,000/month",
			Type:        domain.WorkRemote,
			Requirements: []string{
				"Active on social media platforms",
				"Creative content creation skills",
				"Basic design skills (Canva)",
			},
			Responsibilities: []string{
				"Create social media posts",
				"Schedule and publish content",
				"Engage with audience",
			},
		},
	}
}

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if _, err := db.Collection("internships").DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatal().Err(err).Msg("failed to clear internships collection")
	}
	log.Info().Msg("cleared existing internships")

	repo := mongodb.NewInternshipRepository(db)
	now := time.Now().UTC()

	listings := sampleInternships()
	for i := range listings {
		listings[i].IsActive = true
		listings[i].PostedDate = now

		created, err := repo.Create(ctx, &listings[i])
		if err != nil {
			log.Fatal().Err(err).Str("title", listings[i].Title).Msg("failed to seed internship")
		}
		log.Info().
			Str("id", created.ID).
			Str("title", created.Title).
			Str("company", created.Company).
			Msg("seeded internship")
	}

	log.Info().Int("count", len(listings)).Msg("seeding complete")
}
