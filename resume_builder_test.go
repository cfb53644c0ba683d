package rirekisho

import (
	"strings"
	"testing"
	"time"

	"github.com/hikarutsuji/rirekisho/internal/assets"
	"github.com/hikarutsuji/rirekisho/internal/schema"
)

var buildNow = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

func resumeData() ResumeData {
	return ResumeData{
		Intro: IntroConfig{
			Intro: schema.Intro{
				BaseInfo: []schema.BaseInfo{{
					Name:      "山田 太郎",
					Pronounce: "やまだ たろう",
					Birth:     "2000-06-15",
					Gender:    "男",
				}},
				Email: "taro@example.com",
			},
		},
		History: []TimelineEntry{
			{Time: "2019/04", Title: "〇〇大学 入学", Tags: []string{"education"}},
			{Time: "2023/03", Title: "〇〇大学 卒業", Tags: []string{"education"}},
			{Time: "2023/04", Title: "株式会社Example 入社", Tags: []string{"work"}},
			{Time: "2024/01", Title: "現在に至る", Tags: []string{"now"}},
			{Time: "2022/08", Title: "個人開発を開始", Tags: []string{"hobby"}},
		},
		Certifications: []Certification{
			{Name: "応用情報技術者", DateOfQualification: "2023-10"},
			{Name: "基本情報技術者", OrgName: "IPA", DateOfQualification: "2022-04"},
		},
	}
}

func buildResume(t *testing.T, data ResumeData, form FormState) string {
	t.Helper()
	out, err := buildResumeHTML(assets.ResumeTemplate(), data, form, buildNow)
	if err != nil {
		t.Fatalf("buildResumeHTML: %v", err)
	}
	return out
}

func TestBuildResume_BasicInfo(t *testing.T) {
	t.Parallel()

	out := buildResume(t, resumeData(), FormState{
		PostalCode: "123-4567",
		Address:    "東京都千代田区1-1",
		Phone:      "090-0000-0000",
	})

	for _, want := range []string{
		"やまだ たろう",
		"山田 太郎",
		"2000年6月15日（満 24 歳）",
		"2024年6月15日現在",
		"〒123-4567",
		"東京都千代田区1-1",
		"090-0000-0000",
		"taro@example.com",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestBuildResume_WorkRowsEndWithIjo(t *testing.T) {
	t.Parallel()

	out := buildResume(t, resumeData(), FormState{})

	work := out[strings.Index(out, `aria-label="職歴"`):]
	work = work[:strings.Index(work, "</table>")]

	for _, want := range []string{"2023年4月", "株式会社Example 入社", "現在に至る"} {
		if !strings.Contains(work, want) {
			t.Errorf("work table missing %q", want)
		}
	}
	if strings.Contains(work, "個人開発を開始") {
		t.Error("work table contains an untagged entry")
	}
	if !strings.Contains(work, `<td class="right">以上</td>`) {
		t.Error("work table missing the closing 以上 row")
	}
	if last := strings.LastIndex(work, "<tr>"); !strings.Contains(work[last:], "以上") {
		t.Error("以上 is not the last row of the work table")
	}

	education := out[strings.Index(out, `aria-label="学歴"`):]
	education = education[:strings.Index(education, "</table>")]
	if strings.Contains(education, "以上") {
		t.Error("education table must not carry a closing row")
	}
}

func TestBuildResume_CertificationsSortedByRawDate(t *testing.T) {
	t.Parallel()

	out := buildResume(t, resumeData(), FormState{})

	certs := out[strings.Index(out, `aria-label="免許・資格"`):]
	certs = certs[:strings.Index(certs, "</table>")]

	basic := strings.Index(certs, "基本情報技術者（IPA）")
	applied := strings.Index(certs, "応用情報技術者")
	if basic < 0 || applied < 0 {
		t.Fatalf("certification rows missing: basic=%d applied=%d", basic, applied)
	}
	if basic > applied {
		t.Error("certifications not sorted by acquisition date")
	}
	if !strings.Contains(certs, "2022年4月") {
		t.Error("certification date not formatted as 年月")
	}
}

func TestBuildResume_SelfPRRedirectsToCareerDoc(t *testing.T) {
	t.Parallel()

	out := buildResume(t, resumeData(), FormState{Motivation: "一行目\n二行目"})

	if !strings.Contains(out, "職務経歴書参照") {
		t.Error("self-PR cell must redirect to the career document")
	}
	if !strings.Contains(out, "一行目\n二行目") {
		t.Error("motivation line breaks not preserved")
	}
	if !strings.Contains(out, "white-space:pre-wrap") {
		t.Error("free-text cells must preserve line breaks when printed")
	}
}

func TestBuildResume_Photo(t *testing.T) {
	t.Parallel()

	withPhoto := buildResume(t, resumeData(), FormState{PhotoDataURL: "data:image/png;base64,AAAA"})
	if !strings.Contains(withPhoto, `src="data:image/png;base64,AAAA"`) {
		t.Error("photo data URL not embedded")
	}
	if !strings.Contains(withPhoto, `alt="証明写真"`) {
		t.Error("photo missing alt text")
	}

	withoutPhoto := buildResume(t, resumeData(), FormState{})
	if strings.Contains(withoutPhoto, "<img") {
		t.Error("empty photo must leave the frame untouched")
	}
}

func TestBuildResume_Idempotent(t *testing.T) {
	t.Parallel()

	form := FormState{Address: "東京都", Motivation: "志望動機です。"}
	first := buildResume(t, resumeData(), form)
	second, err := buildResumeHTML(first, resumeData(), form, buildNow)
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if first != second {
		t.Error("rebuilding from generated output changed the document")
	}
}

func TestBuildResume_StartsWithDoctype(t *testing.T) {
	t.Parallel()

	out := buildResume(t, resumeData(), FormState{})
	if !strings.HasPrefix(out, "<!doctype html>\n<html") {
		t.Errorf("output prefix = %q", out[:40])
	}
	if !strings.Contains(out, "<title>履歴書.html</title>") {
		t.Error("document title not set")
	}
}
