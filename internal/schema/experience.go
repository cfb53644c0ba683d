package schema

import "fmt"

// ExperienceTech mirrors TechGroup without the framework category; work
// experience entries only record os/lang/infra.
type ExperienceTech struct {
	OS    []string
	Lang  []string
	Infra []string
}

// ExperienceProject is one project inside a company's history.
type ExperienceProject struct {
	ID                 string
	Title              string
	Member             string
	Slug               string
	Summary            string
	Result             string
	Role               []string
	Tech               ExperienceTech
	Effort             []string
	IssueSolving       []string
	DetailMarkdownPath string // lazily-loaded detail document, may be empty
}

// ExperienceCompany groups an ordered list of projects under one employer.
type ExperienceCompany struct {
	AbstractMDFilePath string
	ID                 string
	Name               string
	Slug               string
	Period             string
	Projects           []ExperienceProject
}

// ExperiencesRoot is the validated experiences index in either shape.
type ExperiencesRoot struct {
	Kind      RootKind
	Companies []ExperienceCompany
	Refs      []FileRef
}

func parseExperienceTech(value any, ctx Context, path string) (ExperienceTech, error) {
	if value == nil {
		return ExperienceTech{OS: []string{}, Lang: []string{}, Infra: []string{}}, nil
	}
	m, ok := record(value)
	if !ok {
		return ExperienceTech{}, errf(ctx, path, "must be an object")
	}

	var tech ExperienceTech
	var err error
	if tech.OS, err = optionalStringArray(m["os"], ctx, path+".os"); err != nil {
		return ExperienceTech{}, err
	}
	if tech.Lang, err = optionalStringArray(m["lang"], ctx, path+".lang"); err != nil {
		return ExperienceTech{}, err
	}
	if tech.Infra, err = optionalStringArray(m["infra"], ctx, path+".infra"); err != nil {
		return ExperienceTech{}, err
	}
	return tech, nil
}

func parseExperienceProject(value any, ctx Context, path string) (ExperienceProject, error) {
	m, ok := record(value)
	if !ok {
		return ExperienceProject{}, errf(ctx, path, "must be an object")
	}

	var project ExperienceProject
	var err error
	if project.ID, err = requiredString(m["id"], ctx, path+".id"); err != nil {
		return ExperienceProject{}, err
	}
	if project.Title, err = requiredString(m["title"], ctx, path+".title"); err != nil {
		return ExperienceProject{}, err
	}
	if project.Member, err = optionalString(m["member"], ctx, path+".member"); err != nil {
		return ExperienceProject{}, err
	}
	if project.Slug, err = optionalString(m["slug"], ctx, path+".slug"); err != nil {
		return ExperienceProject{}, err
	}
	if project.Summary, err = optionalString(m["summary"], ctx, path+".summary"); err != nil {
		return ExperienceProject{}, err
	}
	if project.Result, err = optionalString(m["result"], ctx, path+".result"); err != nil {
		return ExperienceProject{}, err
	}
	if project.Role, err = optionalStringArray(m["role"], ctx, path+".role"); err != nil {
		return ExperienceProject{}, err
	}
	if project.Tech, err = parseExperienceTech(m["tech"], ctx, path+".tech"); err != nil {
		return ExperienceProject{}, err
	}
	if project.Effort, err = optionalStringArray(m["effort"], ctx, path+".effort"); err != nil {
		return ExperienceProject{}, err
	}
	if project.IssueSolving, err = optionalStringArray(m["issue_solving"], ctx, path+".issue_solving"); err != nil {
		return ExperienceProject{}, err
	}
	if project.DetailMarkdownPath, err = optionalString(m["detail_markdown_path"], ctx, path+".detail_markdown_path"); err != nil {
		return ExperienceProject{}, err
	}
	return project, nil
}

// ParseExperienceCompany validates a single company record, either inline
// in the index or loaded from its own referenced file.
func ParseExperienceCompany(value any, ctx Context) (ExperienceCompany, error) {
	m, ok := record(value)
	if !ok {
		return ExperienceCompany{}, errf(ctx, "", "company must be an object")
	}

	var company ExperienceCompany
	var err error
	if company.AbstractMDFilePath, err = optionalString(m["abstract_mdFilePath"], ctx, "abstract_mdFilePath"); err != nil {
		return ExperienceCompany{}, err
	}
	if company.ID, err = requiredString(m["id"], ctx, "id"); err != nil {
		return ExperienceCompany{}, err
	}
	if company.Name, err = requiredString(m["name"], ctx, "name"); err != nil {
		return ExperienceCompany{}, err
	}
	if company.Slug, err = requiredString(m["slug"], ctx, "slug"); err != nil {
		return ExperienceCompany{}, err
	}
	if company.Period, err = optionalString(m["period"], ctx, "period"); err != nil {
		return ExperienceCompany{}, err
	}

	projectsRaw, ok := m["projects"].([]any)
	if !ok {
		return ExperienceCompany{}, errf(ctx, "projects", "is required and must be an array")
	}
	company.Projects = make([]ExperienceProject, 0, len(projectsRaw))
	for i, item := range projectsRaw {
		project, err := parseExperienceProject(item, ctx, fmt.Sprintf("projects[%d]", i))
		if err != nil {
			return ExperienceCompany{}, err
		}
		company.Projects = append(company.Projects, project)
	}
	return company, nil
}

// ParseExperiencesRoot validates the experiences index with the same
// inline/refs branching as the projects index.
func ParseExperiencesRoot(value any, ctx Context) (ExperiencesRoot, error) {
	root, ok := record(value)
	if !ok {
		return ExperiencesRoot{}, errf(ctx, "", "root must be an object")
	}

	var items []any
	switch companiesRaw := root["companies"].(type) {
	case nil:
		return ExperiencesRoot{Kind: KindInline, Companies: []ExperienceCompany{}}, nil
	case []any:
		items = companiesRaw
	default:
		return ExperiencesRoot{}, errf(ctx, "companies", "must be an array")
	}

	kind, err := splitIndexShapes(items, ctx, "companies")
	if err != nil {
		return ExperiencesRoot{}, err
	}

	if kind == KindRefs {
		refs, err := parseRefs(items, ctx, "companies")
		if err != nil {
			return ExperiencesRoot{}, err
		}
		return ExperiencesRoot{Kind: KindRefs, Refs: refs}, nil
	}

	companies := make([]ExperienceCompany, 0, len(items))
	for i, item := range items {
		company, err := ParseExperienceCompany(item, Context{Source: fmt.Sprintf("%s companies[%d]", ctx.Source, i)})
		if err != nil {
			return ExperiencesRoot{}, err
		}
		companies = append(companies, company)
	}
	return ExperiencesRoot{Kind: KindInline, Companies: companies}, nil
}
