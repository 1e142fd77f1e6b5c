package evaluation

import "jobmatch/internal/catalog"

// DefaultCutoffs returns the standard report cutoffs.
func DefaultCutoffs() []int {
	return []int{3, 5, 10}
}

// FixtureCatalog is the hand-built 15-posting catalog used to validate
// ranking quality offline.
func FixtureCatalog() []catalog.Posting {
	rows := []struct{ title, company, skills string }{
		{"Data Scientist", "TechCorp", "Python, SQL, Machine Learning, Statistics, Data Visualization"},
		{"Machine Learning Engineer", "AI Solutions", "Python, TensorFlow, PyTorch, Deep Learning, MLOps"},
		{"Frontend Developer", "WebDesign", "JavaScript, React, CSS, HTML, TypeScript"},
		{"Full Stack Developer", "StartupXYZ", "JavaScript, Node.js, React, MongoDB, Express"},
		{"Digital Marketing Manager", "MarketingPro", "Marketing Strategy, Social Media, SEO, Content Marketing, Analytics"},
		{"Content Writer", "ContentHub", "Content Writing, SEO, Research, Editing, WordPress"},
		{"Social Media Manager", "SocialBuzz", "Social Media, Content Creation, Analytics, Community Management"},
		{"Backend Developer", "CloudSystems", "Python, Django, PostgreSQL, REST API, Docker"},
		{"DevOps Engineer", "InfraCo", "AWS, Kubernetes, CI/CD, Docker, Terraform"},
		{"UI/UX Designer", "DesignStudio", "Figma, Adobe XD, Prototyping, User Research, Wireframing"},
		{"Product Manager", "ProductInc", "Product Strategy, Agile, Stakeholder Management, Market Research"},
		{"Business Analyst", "ConsultCorp", "SQL, Excel, Business Intelligence, Data Analysis, Tableau"},
		{"Data Analyst", "DataInsights", "SQL, Python, Excel, Data Visualization, Statistics"},
		{"Marketing Coordinator", "BrandAgency", "Content Marketing, Social Media, Email Marketing, Analytics"},
		{"SEO Specialist", "SearchMasters", "SEO, Google Analytics, Keyword Research, Content Optimization"},
	}

	out := make([]catalog.Posting, 0, len(rows))
	for _, r := range rows {
		if p, ok := catalog.NewPosting(r.title, r.company, r.skills); ok {
			out = append(out, p)
		}
	}
	return out
}

// FixtureProfiles are the labeled ground-truth cases for FixtureCatalog.
// Relevant indices refer to fixture catalog rows.
func FixtureProfiles() []Profile {
	return []Profile{
		{
			Name:     "Data Science Profile",
			Skills:   []string{"Python", "SQL", "Machine Learning", "Statistics"},
			Relevant: []int{0, 1, 12},
		},
		{
			Name:     "Web Development Profile",
			Skills:   []string{"JavaScript", "React", "CSS", "HTML"},
			Relevant: []int{2, 3},
		},
		{
			Name:     "Marketing Profile",
			Skills:   []string{"Social Media", "Content Writing", "SEO"},
			Relevant: []int{4, 5, 6, 13, 14},
		},
		{
			Name:     "Backend Profile",
			Skills:   []string{"Python", "Django", "PostgreSQL", "REST API"},
			Relevant: []int{7, 3},
		},
		{
			Name:     "Design Profile",
			Skills:   []string{"Figma", "Adobe XD", "UI Design", "Prototyping"},
			Relevant: []int{9},
		},
	}
}
