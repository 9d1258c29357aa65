package ats

import (
	"github.com/camilogonzalez/resumeia/internal/types"
)

// completeCV returns a fully populated CV that earns top marks from every
// sub-scorer when no job context is given.
func completeCV() *types.CVContent {
	return &types.CVContent{
		HeaderInfo: types.HeaderInfo{
			FullName:         "Camilo Gonzalez",
			ProfessionalRole: "Senior Software Engineer",
			LocationText:     "Bucaramanga, Colombia",
			PhoneNumber:      "+57 300 203 3680",
			EmailAddress:     "camilo@example.com",
			LinkedinURL:      "https://linkedin.com/in/camilo",
		},
		ProfessionalOverview: "Senior engineer with **8+ years** building distributed systems.",
		WorkExperienceList: []types.WorkExperienceEntry{
			{
				CompanyName:     "Tech Innovations Corp",
				DateRange:       "2020 - Present",
				RoleTitle:       "Senior Software Engineer",
				RoleDescription: "Leading development of AI-powered applications and mentoring juniors",
				Achievements: []string{
					"Architected microservices infrastructure reducing deployment time by 40%",
					"Led team of 6 developers delivering features ahead of schedule",
				},
				RelevantTechnologies: []string{"Go", "PostgreSQL", "Docker", "Kubernetes", "AWS"},
			},
		},
		EducationList: []types.EducationEntry{
			{
				InstitutionName: "Universidad Autonoma de Bucaramanga",
				DateRange:       "2014 - 2018",
				DegreeObtained:  "B.S. in Computer Science",
			},
		},
		SkillCategories: []types.SkillCategory{
			{CategoryName: "Languages", SkillsList: []string{"Go", "Python", "TypeScript", "SQL"}},
			{CategoryName: "Infrastructure", SkillsList: []string{"Docker", "Kubernetes", "AWS", "Terraform"}},
			{CategoryName: "Practices", SkillsList: []string{"Agile", "Code Review", "Mentoring"}},
		},
	}
}

// emptyCV returns a CV with contact info and a summary but no sections.
func emptyCV() *types.CVContent {
	return &types.CVContent{
		HeaderInfo: types.HeaderInfo{
			FullName:     "Camilo Gonzalez",
			PhoneNumber:  "+57 300 203 3680",
			EmailAddress: "camilo@example.com",
		},
		ProfessionalOverview: "Generalist engineer.",
	}
}
