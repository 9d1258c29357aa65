package llm

import "github.com/camilogonzalez/resumeia/internal/types"

// MockCVContent returns deterministic sample content for a profile. It is
// the fallback when no API key is configured or when model output cannot be
// used. Inline **bold** markers survive rendering and analysis.
func MockCVContent(profile *types.Profile) *types.CVContent {
	return &types.CVContent{
		HeaderInfo: types.HeaderInfo{
			FullName:         profile.CompleteName,
			ProfessionalRole: orDefault(profile.JobTitle, "Senior Software Engineer & AI Developer"),
			LocationText:     profile.CityLocation,
			PhoneNumber:      profile.ContactPhone,
			EmailAddress:     profile.ContactEmail,
			LinkedinURL:      profile.LinkedinProfile,
		},
		ProfessionalOverview: "Highly experienced software engineer with **8+ years** of expertise in full-stack development and **AI/ML integration**. Proven track record of delivering **scalable solutions** and leading **cross-functional teams** to achieve **30% efficiency improvements**. Passionate about leveraging cutting-edge technologies to solve complex business challenges.",
		WorkExperienceList: []types.WorkExperienceEntry{
			{
				CompanyName:     "Tech Innovations Corp",
				DateRange:       "2020 - Present",
				RoleTitle:       "Senior Software Engineer",
				RoleDescription: "Leading development of AI-powered applications and mentoring junior developers",
				Achievements: []string{
					"Architected and deployed microservices infrastructure reducing deployment time by **40%**",
					"Implemented ML models improving recommendation accuracy by **25%**",
					"Led team of 6 developers delivering features **15% ahead of schedule**",
				},
				RelevantTechnologies: []string{"Python", "TypeScript", "React", "AWS", "TensorFlow"},
			},
			{
				CompanyName:     "Digital Solutions Ltd",
				DateRange:       "2018 - 2020",
				RoleTitle:       "Full Stack Developer",
				RoleDescription: "Developed enterprise web applications and RESTful APIs",
				Achievements: []string{
					"Built customer portal serving **50,000+ users** with **99.9% uptime**",
					"Optimized database queries reducing response time by **30%**",
					"Implemented CI/CD pipeline decreasing bugs in production by **20%**",
				},
				RelevantTechnologies: []string{"Node.js", "React", "PostgreSQL", "Docker"},
			},
		},
		EducationList: []types.EducationEntry{
			{
				InstitutionName: "Technical University",
				DateRange:       "2014 - 2018",
				DegreeObtained:  "B.S. in Computer Science",
			},
		},
		SkillCategories: []types.SkillCategory{
			{
				CategoryName: "Programming & Development",
				SkillsList:   []string{"JavaScript/TypeScript", "Python", "Java", "C++", "Go"},
			},
			{
				CategoryName: "AI & Machine Learning",
				SkillsList:   []string{"TensorFlow", "PyTorch", "Scikit-learn", "OpenAI API", "LangChain"},
			},
			{
				CategoryName: "Documentation & Quality Assurance",
				SkillsList:   []string{"Jest", "Pytest", "Selenium", "Git", "Agile/Scrum"},
			},
			{
				CategoryName: "Team Collaboration & Stakeholder Engagement",
				SkillsList:   []string{"Technical Leadership", "Code Review", "Mentoring", "Project Management"},
			},
		},
	}
}
