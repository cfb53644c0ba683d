package rirekisho

import (
	"strings"
	"testing"

	"github.com/hikarutsuji/rirekisho/internal/assets"
	"github.com/hikarutsuji/rirekisho/internal/schema"
)

func careerData() ResumeData {
	data := resumeData()
	data.GitHubURL = "https://github.com/taro"
	data.PortfolioURL = "https://example.com"
	data.SelfPR = "## 強み\n\n- 継続力\n- 好奇心\n\n粘り強く取り組みます。\n"
	data.Abstract = "受託開発企業でバックエンドを担当。\n\n二段落目。\n"
	data.Intro.Intro.Skills = schema.Skills{
		WorkExperience:     []string{"Go", "PostgreSQL"},
		PersonalProjects:   []string{"TypeScript"},
		LearningInProgress: []string{"Rust"},
	}
	data.Experiences = []ExperienceCompany{{
		ID:     "e1",
		Name:   "株式会社Example",
		Slug:   "example",
		Period: "2023/04 - 現在",
		Projects: []ExperienceProject{{
			ID:     "ep1",
			Title:  "基幹システム刷新",
			Role:   []string{"設計", "実装"},
			Result: "応答時間を40%短縮",
			Tech: ExperienceTech{
				OS:    []string{"Linux"},
				Lang:  []string{"Go"},
				Infra: []string{"AWS"},
			},
			Effort:       []string{"段階的移行を設計"},
			IssueSolving: []string{"レガシーAPIの互換層を実装"},
		}},
	}}
	data.Projects = []ProjectEntry{{
		ID:       "p1",
		Name:     "ツールA",
		ReposURL: "https://github.com/taro/tool-a",
		Abstract: "CLIツール",
		Tech: []TechGroup{{
			OS:   []string{"Linux"},
			Lang: []string{"Go"},
		}},
		MainFunction: []string{"一括変換"},
	}}
	return data
}

func buildCareer(t *testing.T, data ResumeData) string {
	t.Helper()
	out, err := buildCareerHTML(assets.CareerTemplate(), data, FormState{}, buildNow)
	if err != nil {
		t.Fatalf("buildCareerHTML: %v", err)
	}
	return out
}

func TestBuildCareer_Header(t *testing.T) {
	t.Parallel()

	out := buildCareer(t, careerData())

	for _, want := range []string{
		"<title>職務経歴書.html</title>",
		"氏名:",
		"山田 太郎",
		`href="https://github.com/taro"`,
		`href="https://example.com"`,
		"※住所/電話番号/証明写真は履歴書に反映",
		`datetime="2024-06-15"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestBuildCareer_HeaderFallbacksToDash(t *testing.T) {
	t.Parallel()

	data := careerData()
	data.PortfolioURL = ""
	out := buildCareer(t, data)

	if !strings.Contains(out, "Portfolio:") {
		t.Fatal("portfolio row missing")
	}
	row := out[strings.Index(out, "Portfolio:"):]
	row = row[:strings.Index(row, "</div>")]
	if !strings.Contains(row, "-") {
		t.Errorf("empty portfolio should render as dash, got %q", row)
	}
}

func TestBuildCareer_SummaryParagraphPrefersAbstract(t *testing.T) {
	t.Parallel()

	out := buildCareer(t, careerData())
	if !strings.Contains(out, "受託開発企業でバックエンドを担当。") {
		t.Error("summary paragraph should use the first abstract paragraph")
	}
	if strings.Contains(out, "<p>二段落目。</p>") {
		t.Error("only the first abstract paragraph belongs in the summary")
	}

	data := careerData()
	data.Abstract = ""
	out = buildCareer(t, data)
	if !strings.Contains(out, "粘り強く取り組みます。") {
		t.Error("empty abstract should fall back to the self-PR text")
	}
}

func TestBuildCareer_SkillGroupsAndLearningFallback(t *testing.T) {
	t.Parallel()

	out := buildCareer(t, careerData())
	for _, want := range []string{
		`<span class="tag">Go</span>`,
		`<span class="tag">PostgreSQL</span>`,
		`<span class="tag">Rust</span>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	// No learning bucket: tags fall back to project tech.
	data := careerData()
	data.Intro.Intro.Skills.LearningInProgress = nil
	out = buildCareer(t, data)
	if !strings.Contains(out, `<span class="tag">Linux</span>`) {
		t.Error("learning group should fall back to project tech tags")
	}
}

func TestBuildCareer_ExperienceSection(t *testing.T) {
	t.Parallel()

	out := buildCareer(t, careerData())

	for _, want := range []string{
		"株式会社Example",
		"2023/04 - 現在",
		"職種: ソフトウェアエンジニア",
		"基幹システム刷新",
		"設計 / 実装",
		"応答時間を40%短縮",
		"成果（定量/定性）",
		"工夫",
		"課題解決",
		"レガシーAPIの互換層を実装",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestBuildCareer_ResultFallsBackToSummary(t *testing.T) {
	t.Parallel()

	data := careerData()
	data.Experiences[0].Projects[0].Result = ""
	data.Experiences[0].Projects[0].Summary = "概要のみ"
	out := buildCareer(t, data)
	if !strings.Contains(out, "概要のみ") {
		t.Error("empty result should fall back to summary")
	}

	data.Experiences[0].Projects[0].Summary = ""
	out = buildCareer(t, data)
	item := out[strings.Index(out, "基幹システム刷新"):]
	item = item[:strings.Index(item, "課題解決")]
	if !strings.Contains(item, `<div class="v">-</div>`) {
		t.Error("empty result and summary should render as dash")
	}
}

func TestBuildCareer_ProjectsSection(t *testing.T) {
	t.Parallel()

	out := buildCareer(t, careerData())

	for _, want := range []string{
		"ツールA",
		"個人開発 / OSS",
		`href="https://github.com/taro/tool-a"`,
		"CLIツール",
		"主要機能",
		"一括変換",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestBuildCareer_PRBulletBlocks(t *testing.T) {
	t.Parallel()

	out := buildCareer(t, careerData())

	pr := out[strings.Index(out, `id="pr"`):]
	if !strings.Contains(pr, "<li>継続力</li>") {
		t.Error("bullet block should render as list items without the glyph")
	}
	if !strings.Contains(pr, "<p") || !strings.Contains(pr, "粘り強く取り組みます。") {
		t.Error("prose block should render as a paragraph")
	}
	if strings.Contains(pr, "##") {
		t.Error("markdown heading markers must be stripped")
	}
}

func TestBuildCareer_Idempotent(t *testing.T) {
	t.Parallel()

	data := careerData()
	first := buildCareer(t, data)
	second, err := buildCareerHTML(first, data, FormState{}, buildNow)
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if first != second {
		t.Error("rebuilding from generated output changed the document")
	}
}
