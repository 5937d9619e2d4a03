package taxonomy

// DefaultVersion identifies the built-in keyword table. Bump it whenever the
// table below changes so stored versions stay comparable.
const DefaultVersion = "builtin-2024.1"

// Default category names.
const (
	CategoryTechnical  = "technical"
	CategorySoftSkills = "soft_skills"
	CategoryBusiness   = "business"
)

func defaultSpec() Spec {
	return Spec{
		Version: DefaultVersion,
		Categories: []CategorySpec{
			{
				Name: CategoryTechnical,
				Keywords: []string{
					"python", "javascript", "java", "react", "node.js", "sql", "aws",
					"docker", "kubernetes", "git", "api", "database", "machine learning",
					"data analysis", "agile", "scrum", "ci/cd", "devops",
				},
			},
			{
				Name: CategorySoftSkills,
				Keywords: []string{
					"leadership", "communication", "teamwork", "problem solving",
					"project management", "analytical", "creative", "adaptable",
					"collaborative", "detail-oriented", "time management",
				},
			},
			{
				Name: CategoryBusiness,
				Keywords: []string{
					"strategy", "planning", "budgeting", "forecasting", "analysis",
					"reporting", "stakeholder management", "process improvement",
					"customer service", "sales", "marketing", "operations",
				},
			},
		},
	}
}

// Default returns a freshly built copy of the built-in taxonomy.
func Default() *Taxonomy {
	t, err := New(defaultSpec())
	if err != nil {
		panic("taxonomy: built-in table invalid: " + err.Error())
	}
	return t
}
