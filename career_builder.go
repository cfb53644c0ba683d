package rirekisho

import (
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/hikarutsuji/rirekisho/internal/schema"
	"github.com/hikarutsuji/rirekisho/internal/slots"
	"github.com/hikarutsuji/rirekisho/internal/textutil"
)

// Caps and fallbacks of the career summary section.
const (
	maxSummaryAreas    = 6
	maxLearningTags    = 8
	careerProfileNote  = "※住所/電話番号/証明写真は履歴書に反映"
	careerOccupation   = "職種: ソフトウェアエンジニア"
	personalProjectTag = "個人開発 / OSS"
)

var defaultSummaryAreas = []string{"バックエンド", "インフラ", "運用改善"}

// BuildCareerHTML populates the 職務経歴書 template and returns the
// standalone HTML document. The form is accepted for interface symmetry
// with BuildResumeHTML; all of its fields belong to the résumé.
func BuildCareerHTML(template string, data ResumeData, form FormState) (string, error) {
	return buildCareerHTML(template, data, form, time.Now())
}

func buildCareerHTML(template string, data ResumeData, _ FormState, now time.Time) (string, error) {
	doc, err := slots.Parse(template)
	if err != nil {
		return "", loadErr(ErrUnknown, "career template", err)
	}
	doc.SetTitle("職務経歴書.html")

	fillCareerHeader(doc, data, now)
	fillCareerSummary(doc, data)
	fillCareerExperience(doc, data)
	fillCareerProjects(doc, data)
	fillCareerPR(doc, data)

	return doc.Render()
}

func fillCareerHeader(doc *slots.Document, data ResumeData, now time.Time) {
	if profile := doc.Find(slots.Class("profile")); profile != nil {
		portfolio := data.PortfolioURL
		if portfolio == "" {
			portfolio = "-"
		}
		rows := [][2]string{
			{"氏名", data.Profile().Name},
			{"Email", data.Intro.Intro.Email},
			{"GitHub", data.GitHubURL},
			{"Portfolio", portfolio},
		}

		nodes := make([]*html.Node, 0, len(rows)+1)
		for _, row := range rows {
			nodes = append(nodes, profileRow(row[0], row[1]))
		}
		note := slots.Element("div", attr("class", "row small"))
		slots.SetText(note, careerProfileNote)
		nodes = append(nodes, note)

		slots.ReplaceChildren(profile, nodes...)
	}

	if title := doc.Find(slots.Class("title")); title != nil {
		if sub := slots.FindIn(title, slots.Class("sub")); sub != nil {
			if stamp := slots.FindIn(sub, slots.Tag("time")); stamp != nil {
				iso := now.Format("2006-01-02")
				slots.SetAttr(stamp, "datetime", iso)
				slots.SetText(stamp, iso)
			}
		}
	}
}

// profileRow renders one "label: value" header line, linking values that
// look like URLs.
func profileRow(label, value string) *html.Node {
	row := slots.Element("div", attr("class", "row"))
	strong := slots.Element("strong")
	slots.SetText(strong, label+":")
	slots.Append(row, strong, slots.TextNode(" "))

	switch {
	case strings.HasPrefix(value, "http"):
		link := slots.Element("a",
			attr("href", value),
			attr("target", "_blank"),
			attr("rel", "noreferrer"),
		)
		slots.SetText(link, value)
		slots.Append(row, link)
	case value != "":
		slots.Append(row, slots.TextNode(value))
	default:
		slots.Append(row, slots.TextNode("-"))
	}
	return row
}

func fillCareerSummary(doc *slots.Document, data ResumeData) {
	section := doc.Find(slots.ID("summary"))
	if section == nil {
		return
	}

	if card := slots.FindIn(section, slots.Class("card")); card != nil {
		if p := slots.FindIn(card, slots.Tag("p")); p != nil {
			slots.SetText(p, summaryParagraph(data))
		}
	}

	if grid := slots.FindIn(section, slots.Class("grid")); grid != nil {
		if list := slots.FindIn(grid, slots.Class("list")); list != nil {
			areas := data.Intro.Intro.CoreStrengths
			if len(areas) == 0 {
				areas = data.Intro.Intro.CuriousFields
			}
			if len(areas) == 0 {
				areas = defaultSummaryAreas
			}
			slots.ReplaceChildren(list, listItems(capped(areas, maxSummaryAreas))...)
		}
	}

	skills := data.Intro.Intro.Skills
	groups := slots.FindAllIn(section, slots.Class("skill-group"))
	setGroupTags(groups, 0, skills.WorkExperience)
	setGroupTags(groups, 1, skills.PersonalProjects)

	learnings := skills.LearningInProgress
	if len(learnings) == 0 {
		learnings = capped(projectTechTags(data.Projects), maxLearningTags)
	}
	setGroupTags(groups, 2, learnings)
}

// summaryParagraph prefers the first paragraph of the company abstract
// and falls back to the flattened self-PR text.
func summaryParagraph(data ResumeData) string {
	if paragraphs := textutil.SplitParagraphs(data.Abstract); len(paragraphs) > 0 {
		return paragraphs[0]
	}
	return textutil.MarkdownToText(data.SelfPR)
}

// projectTechTags gathers every tech tag across personal projects,
// deduplicated in first-seen order.
func projectTechTags(projects []ProjectEntry) []string {
	lists := make([][]string, 0, len(projects))
	for _, project := range projects {
		lists = append(lists, schema.FlattenTech(project.Tech))
	}
	return textutil.DedupeTags(lists...)
}

func fillCareerExperience(doc *slots.Document, data ResumeData) {
	section := doc.Find(slots.ID("experience"))
	if section == nil {
		return
	}
	for _, stale := range slots.FindAllIn(section, slots.Class("company-group")) {
		slots.Remove(stale)
	}
	for _, company := range data.Experiences {
		slots.Append(section, companyGroup(company))
	}
}

func companyGroup(company ExperienceCompany) *html.Node {
	group := slots.Element("article", attr("class", "company-group"))

	head := slots.Element("div", attr("class", "company-head"))
	left := slots.Element("div", attr("class", "left"))
	name := slots.Element("div", attr("class", "company"))
	slots.SetText(name, orDash(company.Name))
	meta := slots.Element("div", attr("class", "meta"))
	slots.SetText(meta, careerOccupation)
	slots.Append(left, name, meta)

	right := slots.Element("div", attr("class", "right"))
	period := slots.Element("div")
	slots.SetText(period, orDash(company.Period))
	slots.Append(right, period)

	slots.Append(head, left, right)
	slots.Append(group, head)

	wrap := slots.Element("div", attr("class", "company-projects"))
	for _, project := range company.Projects {
		slots.Append(wrap, experienceProjectItem(project))
	}
	slots.Append(group, wrap)

	return group
}

func experienceProjectItem(project ExperienceProject) *html.Node {
	item := slots.Element("article", attr("class", "project-item"))

	title := slots.Element("h3", attr("class", "project-title"))
	slots.SetText(title, orDash(project.Title))
	slots.Append(item, title)

	result := strings.TrimSpace(project.Result)
	if result == "" {
		result = strings.TrimSpace(project.Summary)
	}

	kv := slots.Element("div", attr("class", "kv"))
	appendKeyValueRows(kv, [][2]string{
		{"役割", orDash(strings.Join(project.Role, " / "))},
		{"成果（定量/定性）", orDash(result)},
	})
	appendTechRow(kv, techGroupsNode(project.Tech.OS, project.Tech.Lang, project.Tech.Infra))
	slots.Append(item, kv)

	appendListSection(item, "工夫", project.Effort)
	appendListSection(item, "課題解決", project.IssueSolving)

	return item
}

// techGroupsNode renders the OS/Lang/Infra tag rows of one project.
func techGroupsNode(os, lang, infra []string) *html.Node {
	groups := slots.Element("div", attr("class", "tech-groups"))
	entries := []struct {
		label string
		tags  []string
	}{
		{"OS", os},
		{"Lang", lang},
		{"Infra", infra},
	}
	for _, entry := range entries {
		row := slots.Element("div", attr("class", "tech-row"))
		label := slots.Element("div", attr("class", "tech-label"))
		slots.SetText(label, entry.label)
		tags := slots.Element("div", attr("class", "tags"))
		fillTagList(tags, entry.tags)
		slots.Append(row, label, tags)
		slots.Append(groups, row)
	}
	return groups
}

func fillCareerProjects(doc *slots.Document, data ResumeData) {
	section := doc.Find(slots.ID("projects"))
	if section == nil {
		return
	}
	for _, stale := range slots.FindAllIn(section, slots.Class("job")) {
		slots.Remove(stale)
	}
	for _, project := range data.Projects {
		slots.Append(section, personalProjectArticle(project))
	}
}

func personalProjectArticle(project ProjectEntry) *html.Node {
	article := slots.Element("article", attr("class", "job"))

	head := slots.Element("div", attr("class", "job-head"))
	left := slots.Element("div", attr("class", "left"))
	name := slots.Element("div", attr("class", "company"))
	slots.SetText(name, orDash(project.Name))
	meta := slots.Element("div", attr("class", "meta"))
	slots.SetText(meta, personalProjectTag)
	slots.Append(left, name, meta)

	right := slots.Element("div", attr("class", "right"))
	repo := slots.Element("div")
	slots.Append(repo, slots.TextNode("GitHub: "))
	if project.ReposURL != "" {
		link := slots.Element("a",
			attr("href", project.ReposURL),
			attr("target", "_blank"),
			attr("rel", "noreferrer"),
		)
		slots.SetText(link, project.ReposURL)
		slots.Append(repo, link)
	} else {
		slots.Append(repo, slots.TextNode("-"))
	}
	slots.Append(right, repo)

	slots.Append(head, left, right)
	slots.Append(article, head)

	kv := slots.Element("div", attr("class", "kv"))
	appendKeyValueRows(kv, [][2]string{
		{"概要", orDash(strings.TrimSpace(project.Abstract))},
		{"工夫", orDash(strings.Join(project.Effort, " / "))},
	})
	tags := slots.Element("div", attr("class", "tags"))
	fillTagList(tags, schema.FlattenTech(project.Tech))
	value := slots.Element("div", attr("class", "v"))
	slots.Append(value, tags)
	appendKeyNode(kv, "技術", value)
	slots.Append(article, kv)

	appendListSection(article, "主要機能", project.MainFunction)

	return article
}

func fillCareerPR(doc *slots.Document, data ResumeData) {
	section := doc.Find(slots.ID("pr"))
	if section == nil {
		return
	}
	card := slots.FindIn(section, slots.Class("card"))
	if card == nil {
		return
	}

	blocks := textutil.SplitParagraphs(data.SelfPR)
	nodes := make([]*html.Node, 0, len(blocks))
	for _, block := range blocks {
		if textutil.IsBulletBlock(block) {
			list := slots.Element("ul", attr("class", "list"))
			for _, line := range textutil.NonEmptyLines(block) {
				li := slots.Element("li")
				slots.SetText(li, textutil.StripBullet(line))
				slots.Append(list, li)
			}
			nodes = append(nodes, list)
			continue
		}
		p := slots.Element("p", attr("style", "white-space:pre-wrap"))
		slots.SetText(p, block)
		nodes = append(nodes, p)
	}
	slots.ReplaceChildren(card, nodes...)
}

// fillTagList replaces the target's children with tag spans, a single
// "-" span when there are none.
func fillTagList(target *html.Node, tags []string) {
	if len(tags) == 0 {
		span := slots.Element("span", attr("class", "tag"))
		slots.SetText(span, "-")
		slots.ReplaceChildren(target, span)
		return
	}
	spans := make([]*html.Node, 0, len(tags))
	for _, tag := range tags {
		span := slots.Element("span", attr("class", "tag"))
		slots.SetText(span, tag)
		spans = append(spans, span)
	}
	slots.ReplaceChildren(target, spans...)
}

func setGroupTags(groups []*html.Node, index int, tags []string) {
	if index >= len(groups) {
		return
	}
	if target := slots.FindIn(groups[index], slots.Class("tags")); target != nil {
		fillTagList(target, tags)
	}
}

func appendKeyValueRows(kv *html.Node, pairs [][2]string) {
	for _, pair := range pairs {
		value := slots.Element("div", attr("class", "v"))
		slots.SetText(value, pair[1])
		appendKeyNode(kv, pair[0], value)
	}
}

func appendKeyNode(kv *html.Node, key string, value *html.Node) {
	keyDiv := slots.Element("div", attr("class", "k"))
	slots.SetText(keyDiv, key)
	slots.Append(kv, keyDiv, value)
}

func appendTechRow(kv *html.Node, groups *html.Node) {
	value := slots.Element("div", attr("class", "v"))
	slots.Append(value, groups)
	appendKeyNode(kv, "技術", value)
}

// appendListSection adds a titled bullet list, omitted entirely when the
// list is empty.
func appendListSection(target *html.Node, title string, items []string) {
	if len(items) == 0 {
		return
	}
	heading := slots.Element("h3")
	slots.SetText(heading, title)
	slots.Append(target, heading)

	list := slots.Element("ul", attr("class", "list"))
	for _, item := range items {
		li := slots.Element("li")
		slots.SetText(li, item)
		slots.Append(list, li)
	}
	slots.Append(target, list)
}

func listItems(values []string) []*html.Node {
	nodes := make([]*html.Node, 0, len(values))
	for _, value := range values {
		li := slots.Element("li")
		slots.SetText(li, value)
		nodes = append(nodes, li)
	}
	return nodes
}

func capped(values []string, max int) []string {
	if len(values) <= max {
		return values
	}
	return values[:max]
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
