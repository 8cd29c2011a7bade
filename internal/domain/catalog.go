package domain

import "strings"

type InterestCategory struct {
	Name      string   `json:"name"`
	Interests []string `json:"interests"`
}

const OtherInterestCategory = "Other"

var InterestCategories = []InterestCategory{
	{Name: "Technology", Interests: []string{"Programming", "AI/ML", "Cybersecurity", "Gaming", "Gadgets"}},
	{Name: "Creative", Interests: []string{"Photography", "Design", "Writing", "Music", "Art"}},
	{Name: "Sports & Fitness", Interests: []string{"Running", "Gym", "Swimming", "Cycling", "Yoga"}},
	{Name: "Travel & Culture", Interests: []string{"Travel", "Languages", "Cooking", "History", "Museums"}},
	{Name: "Entertainment", Interests: []string{"Movies", "Reading", "Podcasts", "Theater", "Concerts"}},
	{Name: "Outdoor", Interests: []string{"Hiking", "Camping", "Gardening", "Nature", "Adventure"}},
}

// InterestCategoryFor looks the name up in the category table, case-insensitively.
func InterestCategoryFor(name string) string {
	for _, category := range InterestCategories {
		for _, interest := range category.Interests {
			if strings.EqualFold(interest, strings.TrimSpace(name)) {
				return category.Name
			}
		}
	}
	return OtherInterestCategory
}

var CommonSkills = []string{
	"JavaScript", "Python", "React", "Node.js", "SQL", "Git",
	"Project Management", "Communication", "Problem Solving",
	"Leadership", "Teamwork", "Critical Thinking",
}

// MaxSkillSuggestions caps how many common skills one suggestion adds.
const MaxSkillSuggestions = 6

var CommonLanguages = []string{
	"English", "French", "Spanish", "German", "Italian", "Portuguese",
	"Arabic", "Chinese", "Japanese", "Korean", "Russian", "Dutch",
}

var CourseProviders = []string{
	"Coursera", "edX", "Udemy", "LinkedIn Learning", "Pluralsight",
	"FreeCodeCamp", "Khan Academy", "MIT OpenCourseWare", "Google",
	"Microsoft", "Amazon", "IBM", "Other",
}

var SummarySuggestions = []string{
	"Experienced professional with a proven track record of delivering exceptional results in dynamic environments.",
	"Results-driven individual with strong analytical skills and a passion for innovation and continuous improvement.",
	"Dedicated team player with excellent communication skills and the ability to work effectively under pressure.",
}

// ExperienceTemplates are formatted with the company and job title, in that order.
var ExperienceTemplates = []string{
	"Led cross-functional teams to deliver high-impact projects at %[1]s, resulting in improved operational efficiency.",
	"Developed and implemented strategic initiatives as %[2]s, contributing to company growth and success.",
	"Collaborated with stakeholders to optimize processes and drive innovation in %[2]s role.",
}
