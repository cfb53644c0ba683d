package rirekisho

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/hikarutsuji/rirekisho/internal/slots"
	"github.com/hikarutsuji/rirekisho/internal/textutil"
)

// Table aria-labels the résumé template must carry.
const (
	tableBasicInfo      = "基本情報"
	tableAddressContact = "住所・連絡先"
	tableEducation      = "学歴"
	tableWork           = "職歴"
	tableCertifications = "免許・資格"
	tableMotivation     = "志望動機"
	tableSelfPR         = "自己PR"
	tablePreference     = "本人希望記入欄"
)

// careerRedirect is the fixed content of the résumé's self-PR cell: the
// free-form text lives in the career history document instead.
const careerRedirect = "職務経歴書参照"

// BuildResumeHTML populates the 履歴書 template with loaded content and
// form input and returns the standalone HTML document. Building is pure:
// the same template, data, form and day always produce the same output.
func BuildResumeHTML(template string, data ResumeData, form FormState) (string, error) {
	return buildResumeHTML(template, data, form, time.Now())
}

func buildResumeHTML(template string, data ResumeData, form FormState, now time.Time) (string, error) {
	doc, err := slots.Parse(template)
	if err != nil {
		return "", loadErr(ErrUnknown, "resume template", err)
	}
	doc.SetTitle("履歴書.html")

	profile := data.Profile()
	infoRows := tableRows(doc, tableBasicInfo)
	setRowCell(infoRows, 0, profile.Pronounce)
	setRowCell(infoRows, 1, profile.Name)
	setRowCell(infoRows, 2, birthLabel(profile.Birth, now))
	if len(infoRows) > 2 {
		setCell(slots.FindIn(infoRows[2], slots.Class("gender-cell")), profile.Gender)
	}

	setCell(doc.Find(slots.Class("date")), textutil.FormatTodayJa(now))

	fillPhoto(doc, form.PhotoDataURL)

	zip := "〒"
	if form.PostalCode != "" {
		zip = "〒" + form.PostalCode
	}
	setCell(doc.Find(slots.Class("addr-zip")), zip)
	setCell(doc.Find(slots.Class("addr-main")), form.Address)

	contactRows := tableRows(doc, tableAddressContact)
	setRowCell(contactRows, 1, form.Phone)
	setRowCell(contactRows, 2, data.Intro.Intro.Email)

	replaceTableRows(doc, tableEducation, timelineRows(data.History, "education"), false)
	replaceTableRows(doc, tableWork, timelineRows(data.History, "work", "now"), true)
	replaceTableRows(doc, tableCertifications, certificationRows(data.Certifications), false)

	setBlockCell(doc, tableMotivation, form.Motivation)
	setBlockCell(doc, tableSelfPR, careerRedirect)
	setBlockCell(doc, tablePreference, form.Preference)

	return doc.Render()
}

// dateRow is one (year-month, content) pair of a chronology table.
type dateRow struct {
	yearMonth string
	content   string
}

// timelineRows selects timeline entries carrying any of the given tags,
// dropping entries whose title is blank.
func timelineRows(timeline []TimelineEntry, tags ...string) []dateRow {
	rows := make([]dateRow, 0, len(timeline))
	for _, entry := range timeline {
		matched := false
		for _, tag := range tags {
			if entry.HasTag(tag) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		content := strings.TrimSpace(entry.Title)
		if content == "" {
			continue
		}
		rows = append(rows, dateRow{
			yearMonth: textutil.FormatYearMonth(entry.Time),
			content:   content,
		})
	}
	return rows
}

// certificationRows sorts certifications by their acquisition date and
// renders each as "name result_label（org_name）". The sort compares the
// raw date strings, so mixed formats order byte-wise rather than
// chronologically. The input slice is left untouched.
func certificationRows(certifications []Certification) []dateRow {
	sorted := make([]Certification, len(certifications))
	copy(sorted, certifications)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DateOfQualification < sorted[j].DateOfQualification
	})

	rows := make([]dateRow, 0, len(sorted))
	for _, cert := range sorted {
		content := certificationContent(cert)
		if content == "" {
			continue
		}
		rows = append(rows, dateRow{
			yearMonth: textutil.FormatYearMonth(cert.DateOfQualification),
			content:   content,
		})
	}
	return rows
}

func certificationContent(cert Certification) string {
	parts := make([]string, 0, 2)
	if name := strings.TrimSpace(cert.Name); name != "" {
		parts = append(parts, name)
	}
	if label := strings.TrimSpace(cert.ResultLabel); label != "" {
		parts = append(parts, label)
	}
	body := strings.Join(parts, " ")
	if body == "" {
		return ""
	}
	if org := strings.TrimSpace(cert.OrgName); org != "" {
		return body + "（" + org + "）"
	}
	return body
}

// replaceTableRows keeps the table's header row and swaps every data row
// for the given rows, so rebuilding an already-built document yields the
// same table. withEndRow appends the 以上 closing row.
func replaceTableRows(doc *slots.Document, label string, rows []dateRow, withEndRow bool) {
	table := doc.Find(slots.LabelledTable(label))
	if table == nil {
		return
	}
	allRows := slots.FindAllIn(table, slots.Tag("tr"))
	if len(allRows) == 0 {
		return
	}
	header := allRows[0]
	for _, row := range allRows[1:] {
		slots.Remove(row)
	}

	body := header.Parent
	for _, row := range rows {
		tr := slots.Element("tr")
		tdDate := slots.Element("td", attr("class", "h-1 center"))
		slots.SetText(tdDate, row.yearMonth)
		tdContent := slots.Element("td")
		slots.SetText(tdContent, row.content)
		slots.Append(tr, tdDate, tdContent)
		slots.Append(body, tr)
	}

	if withEndRow {
		tr := slots.Element("tr")
		tdDate := slots.Element("td", attr("class", "h-1 center"))
		slots.SetText(tdDate, "")
		tdEnd := slots.Element("td", attr("class", "right"))
		slots.SetText(tdEnd, "以上")
		slots.Append(tr, tdDate, tdEnd)
		slots.Append(body, tr)
	}
}

func fillPhoto(doc *slots.Document, dataURL string) {
	photo := doc.Find(slots.Class("photo"))
	if photo == nil || dataURL == "" {
		return
	}
	img := slots.Element("img",
		attr("src", dataURL),
		attr("alt", "証明写真"),
		attr("style", "width:100%;height:100%;object-fit:cover"),
	)
	slots.ReplaceChildren(photo, img)
}

func birthLabel(birth string, now time.Time) string {
	return textutil.FormatDateJa(birth) + "（満 " + textutil.CalcAge(birth, now) + " 歳）"
}

// setBlockCell fills a single-cell free-text table, preserving the
// entered line breaks when printed.
func setBlockCell(doc *slots.Document, label, value string) {
	table := doc.Find(slots.LabelledTable(label))
	if table == nil {
		return
	}
	cell := slots.FindIn(table, slots.Tag("td"))
	if cell == nil {
		return
	}
	slots.SetText(cell, value)
	slots.AddStyle(cell, "white-space:pre-wrap")
}

func tableRows(doc *slots.Document, label string) []*html.Node {
	table := doc.Find(slots.LabelledTable(label))
	if table == nil {
		return nil
	}
	return slots.FindAllIn(table, slots.Tag("tr"))
}

func setRowCell(rows []*html.Node, index int, value string) {
	if index >= len(rows) {
		return
	}
	setCell(slots.FindIn(rows[index], slots.Tag("td")), value)
}

// setCell writes text into a slot, tolerating its absence.
func setCell(n *html.Node, value string) {
	if n == nil {
		return
	}
	slots.SetText(n, value)
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}
