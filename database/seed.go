package database

import (
	"fmt"
	"log"
	"os"

	"github.com/genfuture/careers-api/model"
	"github.com/genfuture/careers-api/utils/auth"
	"gorm.io/gorm"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAll runs all seed functions
func (s *Seeder) SeedAll() error {
	log.Println("🌱 Starting database seeding...")

	// Run seeds in order (respecting foreign key constraints)
	if err := s.SeedAdminUser(); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := s.SeedDemoUsers(); err != nil {
		return fmt.Errorf("failed to seed demo users: %w", err)
	}

	if err := s.SeedUniversities(); err != nil {
		return fmt.Errorf("failed to seed universities: %w", err)
	}

	if err := s.SeedCourses(); err != nil {
		return fmt.Errorf("failed to seed courses: %w", err)
	}

	if err := s.SeedCareerPaths(); err != nil {
		return fmt.Errorf("failed to seed career paths: %w", err)
	}

	log.Println("✅ Database seeding completed successfully!")
	return nil
}

// SeedAdminUser creates the default admin user
func (s *Seeder) SeedAdminUser() error {
	var count int64
	if err := s.db.Model(&model.User{}).Where("role = ?", "admin").Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Admin user already exists, skipping...")
		return nil
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminEmail == "" || adminPassword == "" {
		log.Println("⚠️  ADMIN_EMAIL and ADMIN_PASSWORD environment variables not set, skipping admin user creation")
		return nil
	}

	passwordHash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &model.User{
		Email:        adminEmail,
		PasswordHash: passwordHash,
		FirstName:    "System",
		LastName:     "Administrator",
		Role:         "admin",
		IsActive:     true,
		TokenVersion: 0,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Created admin user: %s\n", admin.Email)
	return nil
}

// SeedDemoUsers creates sample regular users for local development
func (s *Seeder) SeedDemoUsers() error {
	var count int64
	if err := s.db.Model(&model.User{}).Where("role = ?", "user").Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Demo users already exist, skipping...")
		return nil
	}

	demos := []struct {
		Email     string
		FirstName string
		LastName  string
	}{
		{"demo@genfuture.com", "Demo", "User"},
		{"john.doe@example.com", "John", "Doe"},
	}

	passwordHash, err := auth.HashPassword("password123")
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	for _, d := range demos {
		user := model.User{
			Email:        d.Email,
			PasswordHash: passwordHash,
			FirstName:    d.FirstName,
			LastName:     d.LastName,
			Role:         "user",
			IsActive:     true,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return err
		}
	}

	log.Printf("✅ Created %d demo users\n", len(demos))
	return nil
}

func f64(v float64) *float64 { return &v }
func intp(v int) *int        { return &v }

// SeedUniversities creates the sample international catalog
func (s *Seeder) SeedUniversities() error {
	var count int64
	if err := s.db.Model(&model.University{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Universities already exist, skipping...")
		return nil
	}

	universities := []model.University{
		// United States
		{Name: "Harvard University", Latitude: f64(42.3744), Longitude: f64(-71.1169), Country: "United States", City: "Cambridge", Type: "Private", Ranking: intp(1), Website: "https://harvard.edu"},
		{Name: "Stanford University", Latitude: f64(37.4275), Longitude: f64(-122.1697), Country: "United States", City: "Stanford", Type: "Private", Ranking: intp(2), Website: "https://stanford.edu"},
		{Name: "MIT", Latitude: f64(42.3601), Longitude: f64(-71.0942), Country: "United States", City: "Cambridge", Type: "Private", Ranking: intp(3), Website: "https://mit.edu"},
		{Name: "University of California Berkeley", Latitude: f64(37.8719), Longitude: f64(-122.2585), Country: "United States", City: "Berkeley", Type: "Public", Ranking: intp(4), Website: "https://berkeley.edu"},

		// United Kingdom
		{Name: "University of Oxford", Latitude: f64(51.7548), Longitude: f64(-1.2544), Country: "United Kingdom", City: "Oxford", Type: "Public", Ranking: intp(5), Website: "https://ox.ac.uk"},
		{Name: "University of Cambridge", Latitude: f64(52.2053), Longitude: f64(0.1218), Country: "United Kingdom", City: "Cambridge", Type: "Public", Ranking: intp(6), Website: "https://cam.ac.uk"},
		{Name: "Imperial College London", Latitude: f64(51.4988), Longitude: f64(-0.1749), Country: "United Kingdom", City: "London", Type: "Public", Ranking: intp(7), Website: "https://imperial.ac.uk"},
		{Name: "University College London", Latitude: f64(51.5246), Longitude: f64(-0.1340), Country: "United Kingdom", City: "London", Type: "Public", Ranking: intp(8), Website: "https://ucl.ac.uk"},

		// Canada
		{Name: "University of Toronto", Latitude: f64(43.6629), Longitude: f64(-79.3957), Country: "Canada", City: "Toronto", Type: "Public", Ranking: intp(25), Website: "https://utoronto.ca"},
		{Name: "McGill University", Latitude: f64(45.5048), Longitude: f64(-73.5772), Country: "Canada", City: "Montreal", Type: "Public", Ranking: intp(30), Website: "https://mcgill.ca"},
		{Name: "University of British Columbia", Latitude: f64(49.2606), Longitude: f64(-123.2460), Country: "Canada", City: "Vancouver", Type: "Public", Ranking: intp(35), Website: "https://ubc.ca"},

		// Australia
		{Name: "Australian National University", Latitude: f64(-35.2777), Longitude: f64(149.1185), Country: "Australia", City: "Canberra", Type: "Public", Ranking: intp(20), Website: "https://anu.edu.au"},
		{Name: "University of Melbourne", Latitude: f64(-37.7964), Longitude: f64(144.9612), Country: "Australia", City: "Melbourne", Type: "Public", Ranking: intp(33), Website: "https://unimelb.edu.au"},
		{Name: "University of Sydney", Latitude: f64(-33.8886), Longitude: f64(151.1873), Country: "Australia", City: "Sydney", Type: "Public", Ranking: intp(40), Website: "https://sydney.edu.au"},

		// Germany
		{Name: "Technical University of Munich", Latitude: f64(48.1489), Longitude: f64(11.5671), Country: "Germany", City: "Munich", Type: "Public", Ranking: intp(50), Website: "https://tum.de"},
		{Name: "University of Heidelberg", Latitude: f64(49.4093), Longitude: f64(8.7129), Country: "Germany", City: "Heidelberg", Type: "Public", Ranking: intp(65), Website: "https://uni-heidelberg.de"},

		// France
		{Name: "Sorbonne University", Latitude: f64(48.8566), Longitude: f64(2.3522), Country: "France", City: "Paris", Type: "Public", Ranking: intp(75), Website: "https://sorbonne-universite.fr"},
		{Name: "École Polytechnique", Latitude: f64(48.7135), Longitude: f64(2.2070), Country: "France", City: "Palaiseau", Type: "Public", Ranking: intp(85), Website: "https://polytechnique.edu"},

		// Japan
		{Name: "University of Tokyo", Latitude: f64(35.7128), Longitude: f64(139.7617), Country: "Japan", City: "Tokyo", Type: "Public", Ranking: intp(23), Website: "https://u-tokyo.ac.jp"},
		{Name: "Kyoto University", Latitude: f64(35.0263), Longitude: f64(135.7817), Country: "Japan", City: "Kyoto", Type: "Public", Ranking: intp(36), Website: "https://kyoto-u.ac.jp"},

		// Singapore
		{Name: "National University of Singapore", Latitude: f64(1.2966), Longitude: f64(103.7764), Country: "Singapore", City: "Singapore", Type: "Public", Ranking: intp(11), Website: "https://nus.edu.sg"},
		{Name: "Nanyang Technological University", Latitude: f64(1.3483), Longitude: f64(103.6831), Country: "Singapore", City: "Singapore", Type: "Public", Ranking: intp(12), Website: "https://ntu.edu.sg"},

		// Ghana
		{Name: "University of Ghana", Latitude: f64(5.6506), Longitude: f64(-0.1871), Country: "Ghana", City: "Accra", Type: "Public", Ranking: intp(500), Website: "https://ug.edu.gh"},
		{Name: "Kwame Nkrumah University of Science and Technology", Latitude: f64(6.6745), Longitude: f64(-1.5716), Country: "Ghana", City: "Kumasi", Type: "Public", Ranking: intp(600), Website: "https://knust.edu.gh"},
		{Name: "Accra Technical University", Latitude: f64(5.5560), Longitude: f64(-0.2057), Country: "Ghana", City: "Accra", Type: "Public", Ranking: intp(800), Website: "https://atu.edu.gh"},

		// Nigeria
		{Name: "University of Ibadan", Latitude: f64(7.3775), Longitude: f64(3.9470), Country: "Nigeria", City: "Ibadan", Type: "Public", Ranking: intp(450), Website: "https://ui.edu.ng"},
		{Name: "University of Lagos", Latitude: f64(6.5244), Longitude: f64(3.3792), Country: "Nigeria", City: "Lagos", Type: "Public", Ranking: intp(480), Website: "https://unilag.edu.ng"},

		// Kenya
		{Name: "University of Nairobi", Latitude: f64(-1.2921), Longitude: f64(36.8219), Country: "Kenya", City: "Nairobi", Type: "Public", Ranking: intp(520), Website: "https://uonbi.ac.ke"},

		// South Africa
		{Name: "University of Cape Town", Latitude: f64(-33.9249), Longitude: f64(18.4241), Country: "South Africa", City: "Cape Town", Type: "Public", Ranking: intp(200), Website: "https://uct.ac.za"},
		{Name: "University of the Witwatersrand", Latitude: f64(-26.1929), Longitude: f64(28.0305), Country: "South Africa", City: "Johannesburg", Type: "Public", Ranking: intp(250), Website: "https://wits.ac.za"},
	}

	if err := s.db.Create(&universities).Error; err != nil {
		return err
	}

	log.Printf("✅ Created %d universities\n", len(universities))
	return nil
}

// courseCatalog is the seed course list shared by every university.
// Higher-ranked institutions get the whole list, the rest a subset.
var courseCatalog = []model.Course{
	// Computer Science and Technology
	{Name: "Computer Science", Description: "Study of computational systems, algorithms, and computer technology", Duration: "4 years", DegreeType: "Bachelor's"},
	{Name: "Software Engineering", Description: "Design and development of software systems and applications", Duration: "4 years", DegreeType: "Bachelor's"},
	{Name: "Data Science", Description: "Analysis and interpretation of complex data to inform decision-making", Duration: "4 years", DegreeType: "Bachelor's"},
	{Name: "Artificial Intelligence", Description: "Development of intelligent systems and machine learning algorithms", Duration: "4 years", DegreeType: "Bachelor's"},
	{Name: "Cybersecurity", Description: "Protection of digital systems and networks from cyber threats", Duration: "4 years", DegreeType: "Bachelor's"},

	// Engineering
	{Name: "Electrical Engineering", Description: "Design and development of electrical systems and electronics", Duration: "4 years", DegreeType: "Bachelor's"},
	{Name: "Mechanical Engineering", Description: "Design and manufacturing of mechanical systems and machines", Duration: "4 years", DegreeType: "Bachelor's"},
	{Name: "Civil Engineering", Description: "Design and construction of infrastructure and buildings", Duration: "4 years", DegreeType: "Bachelor's"},
	{Name: "Chemical Engineering", Description: "Application of chemistry and physics to industrial processes", Duration: "4 years", DegreeType: "Bachelor's"},
	{Name: "Biomedical Engineering", Description: "Application of engineering principles to healthcare and medicine", Duration: "4 years", DegreeType: "Bachelor's"},

	// Business and Economics
	{Name: "Business Administration", Description: "Management and operation of business organizations", Duration: "4 years", DegreeType: "Bachelor's"},
	{Name: "Economics", Description: "Study of production, distribution, and consumption of goods and services", Duration: "4 years", DegreeType: "Bachelor's"},
	{Name: "Finance", Description: "Management of money, investments, and financial planning", Duration: "4 years", DegreeType: "Bachelor's"},

	// Medical and Health Sciences
	{Name: "Medicine", Description: "Diagnosis, treatment, and prevention of human diseases", Duration: "6 years", DegreeType: "Medical Degree"},
	{Name: "Nursing", Description: "Healthcare provision and patient care", Duration: "4 years", DegreeType: "Bachelor's"},
}

// SeedCourses attaches the course catalog to every university
func (s *Seeder) SeedCourses() error {
	var count int64
	if err := s.db.Model(&model.Course{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Courses already exist, skipping...")
		return nil
	}

	var universities []model.University
	if err := s.db.Find(&universities).Error; err != nil {
		return err
	}

	created := 0
	for _, university := range universities {
		numCourses := 10
		if university.Ranking != nil && *university.Ranking <= 100 {
			numCourses = len(courseCatalog)
		}

		for _, c := range courseCatalog[:numCourses] {
			course := model.Course{
				UniversityID: university.ID,
				Name:         c.Name,
				Description:  c.Description,
				Duration:     c.Duration,
				DegreeType:   c.DegreeType,
			}
			if err := s.db.Create(&course).Error; err != nil {
				return err
			}
			created++
		}
	}

	log.Printf("✅ Created %d courses\n", created)
	return nil
}

// careerPathCatalog maps course names to their curated career outcomes
var careerPathCatalog = map[string][]model.CareerPath{
	"Computer Science": {
		{Name: "Software Developer", Description: "Design and develop software applications", AvgSalary: "$70,000 - $150,000", GrowthRate: "22% growth expected"},
		{Name: "Data Scientist", Description: "Analyze complex data to derive business insights", AvgSalary: "$80,000 - $180,000", GrowthRate: "25% growth expected"},
		{Name: "Machine Learning Engineer", Description: "Develop AI and ML systems", AvgSalary: "$90,000 - $200,000", GrowthRate: "35% growth expected"},
		{Name: "DevOps Engineer", Description: "Manage development and operations processes", AvgSalary: "$75,000 - $160,000", GrowthRate: "20% growth expected"},
	},
	"Business Administration": {
		{Name: "Management Consultant", Description: "Advise organizations on business strategy", AvgSalary: "$80,000 - $200,000", GrowthRate: "15% growth expected"},
		{Name: "Project Manager", Description: "Lead and coordinate business projects", AvgSalary: "$65,000 - $140,000", GrowthRate: "12% growth expected"},
		{Name: "Business Analyst", Description: "Analyze business processes and requirements", AvgSalary: "$60,000 - $120,000", GrowthRate: "18% growth expected"},
		{Name: "Operations Manager", Description: "Oversee daily business operations", AvgSalary: "$70,000 - $130,000", GrowthRate: "10% growth expected"},
	},
	"Medicine": {
		{Name: "General Practitioner", Description: "Provide primary healthcare services", AvgSalary: "$150,000 - $300,000", GrowthRate: "8% growth expected"},
		{Name: "Specialist Doctor", Description: "Provide specialized medical care", AvgSalary: "$200,000 - $500,000", GrowthRate: "10% growth expected"},
		{Name: "Surgeon", Description: "Perform surgical procedures", AvgSalary: "$250,000 - $600,000", GrowthRate: "7% growth expected"},
		{Name: "Medical Researcher", Description: "Conduct medical and clinical research", AvgSalary: "$100,000 - $200,000", GrowthRate: "12% growth expected"},
	},
	"Electrical Engineering": {
		{Name: "Electrical Engineer", Description: "Design electrical systems and equipment", AvgSalary: "$70,000 - $140,000", GrowthRate: "8% growth expected"},
		{Name: "Power Systems Engineer", Description: "Design and maintain power generation systems", AvgSalary: "$75,000 - $150,000", GrowthRate: "10% growth expected"},
		{Name: "Electronics Engineer", Description: "Design electronic devices and systems", AvgSalary: "$70,000 - $135,000", GrowthRate: "12% growth expected"},
		{Name: "Control Systems Engineer", Description: "Design automated control systems", AvgSalary: "$80,000 - $160,000", GrowthRate: "15% growth expected"},
	},
	"Finance": {
		{Name: "Financial Analyst", Description: "Analyze financial data and investment opportunities", AvgSalary: "$60,000 - $120,000", GrowthRate: "15% growth expected"},
		{Name: "Investment Banker", Description: "Facilitate financial transactions and investments", AvgSalary: "$100,000 - $300,000", GrowthRate: "12% growth expected"},
		{Name: "Financial Advisor", Description: "Provide financial planning and investment advice", AvgSalary: "$55,000 - $150,000", GrowthRate: "18% growth expected"},
		{Name: "Risk Manager", Description: "Assess and mitigate financial risks", AvgSalary: "$80,000 - $180,000", GrowthRate: "20% growth expected"},
	},
}

// SeedCareerPaths attaches curated career paths to matching courses
func (s *Seeder) SeedCareerPaths() error {
	var count int64
	if err := s.db.Model(&model.CareerPath{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Career paths already exist, skipping...")
		return nil
	}

	var courses []model.Course
	if err := s.db.Find(&courses).Error; err != nil {
		return err
	}

	created := 0
	for _, course := range courses {
		paths, ok := careerPathCatalog[course.Name]
		if !ok {
			continue
		}
		for _, p := range paths {
			careerPath := model.CareerPath{
				CourseID:    course.ID,
				Name:        p.Name,
				Description: p.Description,
				AvgSalary:   p.AvgSalary,
				GrowthRate:  p.GrowthRate,
			}
			if err := s.db.Create(&careerPath).Error; err != nil {
				return err
			}
			created++
		}
	}

	log.Printf("✅ Created %d career paths\n", created)
	return nil
}

// RunSeeds runs all database seeds
func RunSeeds(db *gorm.DB) error {
	seeder := NewSeeder(db)
	return seeder.SeedAll()
}
