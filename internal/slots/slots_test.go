package slots

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

const testTemplate = `<!doctype html>
<html>
<head><title>template</title></head>
<body>
<table aria-label="学歴">
<tr><th>年月</th><th>学歴</th></tr>
<tr><td>old</td><td>stale row</td></tr>
</table>
<section id="experience"><h2>職務経歴</h2></section>
<div class="profile card">profile here</div>
<span class="date"></span>
</body>
</html>`

func mustParse(t *testing.T, template string) *Document {
	t.Helper()
	doc, err := Parse(template)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return doc
}

func TestFind(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, testTemplate)

	if n := doc.Find(LabelledTable("学歴")); n == nil {
		t.Error("Find(LabelledTable) = nil, want table")
	}
	if n := doc.Find(LabelledTable("職歴")); n != nil {
		t.Error("Find(missing table) != nil, want nil")
	}
	if n := doc.Find(ID("experience")); n == nil || n.Data != "section" {
		t.Errorf("Find(ID) = %v, want section", n)
	}
	if n := doc.Find(Class("profile")); n == nil {
		t.Error("Find(Class) = nil, want div with multi-valued class attr")
	}
	if n := doc.Find(Class("card")); n == nil {
		t.Error("Find(Class card) = nil, want same div")
	}
}

func TestRowReplacement(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, testTemplate)
	table := doc.Find(LabelledTable("学歴"))

	rows := FindAllIn(table, Tag("tr"))
	if len(rows) != 2 {
		t.Fatalf("initial rows = %d, want 2", len(rows))
	}
	for _, row := range rows[1:] {
		Remove(row)
	}

	tr := Element("tr")
	td := Element("td")
	SetText(td, "2019年4月")
	Append(tr, td)
	// rows append to the row container the parser created, as the
	// retained header row's parent
	Append(rows[0].Parent, tr)

	out, err := doc.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(out, "stale row") {
		t.Error("Render() still contains removed row")
	}
	if !strings.Contains(out, "2019年4月") {
		t.Error("Render() missing appended row")
	}
	if !strings.HasPrefix(out, "<!doctype html>\n<html") {
		t.Errorf("Render() prefix = %q", out[:30])
	}
}

func TestSetTextEscapesMarkup(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, testTemplate)
	SetText(doc.Find(Class("date")), `<script>alert("x")</script>`)

	out, err := doc.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(out, "<script>alert") {
		t.Error("Render() contains unescaped markup from SetText")
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Error("Render() missing escaped text content")
	}
}

func TestAttrHelpers(t *testing.T) {
	t.Parallel()

	n := Element("img", html.Attribute{Key: "alt", Val: "照片"})
	if got := Attr(n, "alt"); got != "照片" {
		t.Errorf("Attr(alt) = %q", got)
	}
	SetAttr(n, "alt", "証明写真")
	SetAttr(n, "src", "data:image/png;base64,xxxx")
	if got := Attr(n, "alt"); got != "証明写真" {
		t.Errorf("Attr(alt) after SetAttr = %q", got)
	}

	AddStyle(n, "width:100%")
	AddStyle(n, "height:100%")
	AddStyle(n, "height:100%")
	if got := Attr(n, "style"); got != "width:100%;height:100%" {
		t.Errorf("style = %q, want appended declarations without repeats", got)
	}
}

func TestSetTitle(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, testTemplate)
	doc.SetTitle("履歴書.html")
	out, err := doc.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "<title>履歴書.html</title>") {
		t.Error("Render() missing replaced title")
	}
}

func TestTextContent(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, testTemplate)
	if got := Text(doc.Find(Class("profile"))); got != "profile here" {
		t.Errorf("Text() = %q", got)
	}
}
