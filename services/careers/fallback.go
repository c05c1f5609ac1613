package careers

import "strings"

// ExternalCareer is a career item sourced outside the local catalog,
// either from the O*NET search or from the curated fallback table.
type ExternalCareer struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	AvgSalary   string `json:"avg_salary"`
	GrowthRate  string `json:"growth_rate"`
}

// fallbackCareers is the curated table served when no external API
// credentials are configured or the external search comes back empty.
// Keys are normalized course names.
var fallbackCareers = map[string][]ExternalCareer{
	"computer science": {
		{Name: "Software Engineer", Description: "Build and maintain software systems across web, mobile, and cloud.", AvgSalary: "$120k - $180k/year", GrowthRate: "22% growth expected"},
		{Name: "Data Engineer", Description: "Design data pipelines and infrastructure for analytics and ML.", AvgSalary: "$110k - $170k/year", GrowthRate: "21% growth expected"},
		{Name: "Cloud Solutions Architect", Description: "Design cloud-native solutions and lead platform migrations.", AvgSalary: "$130k - $200k/year", GrowthRate: "20% growth expected"},
	},
	"business administration": {
		{Name: "Product Manager", Description: "Drive product strategy and execution across cross-functional teams.", AvgSalary: "$100k - $180k/year", GrowthRate: "14% growth expected"},
		{Name: "Business Operations Analyst", Description: "Optimize processes and operational performance using data.", AvgSalary: "$75k - $130k/year", GrowthRate: "12% growth expected"},
	},
	"medicine": {
		{Name: "Physician (General)", Description: "Primary care diagnosis and treatment.", AvgSalary: "$180k - $300k/year", GrowthRate: "7% growth expected"},
		{Name: "Medical Informatics Specialist", Description: "Integrate clinical workflows with health IT and data systems.", AvgSalary: "$120k - $160k/year", GrowthRate: "15% growth expected"},
	},
	"electrical engineering": {
		{Name: "Power Systems Engineer", Description: "Plan and maintain transmission and distribution infrastructure.", AvgSalary: "$95k - $150k/year", GrowthRate: "10% growth expected"},
		{Name: "Embedded Systems Engineer", Description: "Design firmware and embedded software for devices.", AvgSalary: "$90k - $140k/year", GrowthRate: "12% growth expected"},
	},
	"finance": {
		{Name: "Quantitative Analyst", Description: "Model risk and valuation using statistical techniques.", AvgSalary: "$110k - $220k/year", GrowthRate: "13% growth expected"},
		{Name: "Corporate Finance Associate", Description: "Support M&A, capital raising, and financial planning.", AvgSalary: "$95k - $180k/year", GrowthRate: "12% growth expected"},
	},
}

// FallbackCareers returns the curated entries for a course name, or nil
// when the normalized name is not a fallback key.
func FallbackCareers(courseName string) []ExternalCareer {
	return fallbackCareers[normalizeName(courseName)]
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
