package schema

import (
	"fmt"

	"github.com/hikarutsuji/rirekisho/internal/textutil"
)

// TechGroup is a tag bundle keyed by category. A project may carry several
// groups; display flattens and deduplicates them.
type TechGroup struct {
	OS        []string
	Lang      []string
	Framework []string
	Infra     []string
}

// ProjectEntry is one personal project.
type ProjectEntry struct {
	ID               string
	Name             string
	ReposURL         string
	Abstract         string
	Tech             []TechGroup
	TechStack        []string
	Status           string
	Effort           []string
	MainFunction     []string
	ThumbnailImgPath string
}

// ProjectsRoot is the validated projects index in either of its two shapes.
type ProjectsRoot struct {
	Kind     RootKind
	Projects []ProjectEntry // populated when Kind == KindInline
	Refs     []FileRef      // populated when Kind == KindRefs
}

// FlattenTech merges the groups' os/lang/framework/infra lists into one
// deduplicated tag list, preserving first-seen order across groups.
func FlattenTech(groups []TechGroup) []string {
	lists := make([][]string, 0, len(groups)*4)
	for _, g := range groups {
		lists = append(lists, g.OS, g.Lang, g.Framework, g.Infra)
	}
	return textutil.DedupeTags(lists...)
}

func parseTechGroup(value any, ctx Context, path string) (TechGroup, error) {
	if value == nil {
		return TechGroup{OS: []string{}, Lang: []string{}, Framework: []string{}, Infra: []string{}}, nil
	}
	m, ok := record(value)
	if !ok {
		return TechGroup{}, errf(ctx, path, "must be an object")
	}

	var group TechGroup
	var err error
	if group.OS, err = optionalStringArray(m["os"], ctx, path+".os"); err != nil {
		return TechGroup{}, err
	}
	if group.Lang, err = optionalStringArray(m["lang"], ctx, path+".lang"); err != nil {
		return TechGroup{}, err
	}
	if group.Framework, err = optionalStringArray(m["framework"], ctx, path+".framework"); err != nil {
		return TechGroup{}, err
	}
	if group.Infra, err = optionalStringArray(m["infra"], ctx, path+".infra"); err != nil {
		return TechGroup{}, err
	}
	return group, nil
}

// ParseProjectEntry validates a single project record, either inline in the
// index or loaded from its own referenced file.
func ParseProjectEntry(value any, ctx Context) (ProjectEntry, error) {
	m, ok := record(value)
	if !ok {
		return ProjectEntry{}, errf(ctx, "", "project must be an object")
	}

	var project ProjectEntry
	var err error
	if project.ID, err = requiredString(m["id"], ctx, "id"); err != nil {
		return ProjectEntry{}, err
	}
	if project.Name, err = requiredString(m["name"], ctx, "name"); err != nil {
		return ProjectEntry{}, err
	}
	if project.ReposURL, err = optionalString(m["repos_url"], ctx, "repos_url"); err != nil {
		return ProjectEntry{}, err
	}
	if project.Abstract, err = optionalString(m["abstract"], ctx, "abstract"); err != nil {
		return ProjectEntry{}, err
	}

	switch techRaw := m["tech"].(type) {
	case nil:
		project.Tech = []TechGroup{}
	case []any:
		project.Tech = make([]TechGroup, 0, len(techRaw))
		for i, item := range techRaw {
			group, err := parseTechGroup(item, ctx, fmt.Sprintf("tech[%d]", i))
			if err != nil {
				return ProjectEntry{}, err
			}
			project.Tech = append(project.Tech, group)
		}
	default:
		return ProjectEntry{}, errf(ctx, "tech", "must be an array of tech groups")
	}

	if project.TechStack, err = optionalStringArray(m["tech_stack"], ctx, "tech_stack"); err != nil {
		return ProjectEntry{}, err
	}
	if project.Status, err = optionalString(m["status"], ctx, "status"); err != nil {
		return ProjectEntry{}, err
	}
	if project.Effort, err = optionalStringArray(m["effort"], ctx, "effort"); err != nil {
		return ProjectEntry{}, err
	}
	if project.MainFunction, err = optionalStringArray(m["main_function"], ctx, "main_function"); err != nil {
		return ProjectEntry{}, err
	}
	if project.ThumbnailImgPath, err = optionalString(m["thumbnail_img_path"], ctx, "thumbnail_img_path"); err != nil {
		return ProjectEntry{}, err
	}
	return project, nil
}

// ParseProjectsRoot validates the projects index. The projects key may be
// absent (empty collection), an inline list of full records, or a list of
// {file} refs; mixing the two shapes is rejected.
func ParseProjectsRoot(value any, ctx Context) (ProjectsRoot, error) {
	root, ok := record(value)
	if !ok {
		return ProjectsRoot{}, errf(ctx, "", "root must be an object")
	}

	var items []any
	switch projectsRaw := root["projects"].(type) {
	case nil:
		return ProjectsRoot{Kind: KindInline, Projects: []ProjectEntry{}}, nil
	case []any:
		items = projectsRaw
	default:
		return ProjectsRoot{}, errf(ctx, "projects", "must be an array")
	}

	kind, err := splitIndexShapes(items, ctx, "projects")
	if err != nil {
		return ProjectsRoot{}, err
	}

	if kind == KindRefs {
		refs, err := parseRefs(items, ctx, "projects")
		if err != nil {
			return ProjectsRoot{}, err
		}
		return ProjectsRoot{Kind: KindRefs, Refs: refs}, nil
	}

	projects := make([]ProjectEntry, 0, len(items))
	for i, item := range items {
		project, err := ParseProjectEntry(item, Context{Source: fmt.Sprintf("%s projects[%d]", ctx.Source, i)})
		if err != nil {
			return ProjectsRoot{}, err
		}
		projects = append(projects, project)
	}
	return ProjectsRoot{Kind: KindInline, Projects: projects}, nil
}
