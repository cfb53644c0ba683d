package rirekisho

import (
	"github.com/hikarutsuji/rirekisho/internal/schema"
)

// Re-exported content record types. The validation logic lives in
// internal/schema; these aliases keep the public surface in one package.
type (
	BaseInfo          = schema.BaseInfo
	Skills            = schema.Skills
	Intro             = schema.Intro
	IntroConfig       = schema.IntroConfig
	TimelineEntry     = schema.TimelineEntry
	Certification     = schema.Certification
	TechGroup         = schema.TechGroup
	ProjectEntry      = schema.ProjectEntry
	ExperienceTech    = schema.ExperienceTech
	ExperienceProject = schema.ExperienceProject
	ExperienceCompany = schema.ExperienceCompany
	HeaderConfig      = schema.HeaderConfig
	SchemaError       = schema.Error
)

// ResumeData aggregates every validated content source needed to build
// both documents.
type ResumeData struct {
	Intro          IntroConfig
	History        []TimelineEntry
	Certifications []Certification
	Projects       []ProjectEntry
	Experiences    []ExperienceCompany
	Header         HeaderConfig

	// SelfPR is the raw Markdown body of the self-PR document.
	SelfPR string

	// Abstract is the Markdown company abstract of the first experience
	// entry that declares one, or empty when none does.
	Abstract string

	// GitHubURL is resolved from the header link table.
	GitHubURL string

	// PortfolioURL is the site origin the documents should point back
	// to. Empty when no origin was configured.
	PortfolioURL string
}

// Profile returns the primary base_info record, or a zero BaseInfo when
// intro.base_info is empty.
func (d ResumeData) Profile() BaseInfo {
	if len(d.Intro.Intro.BaseInfo) == 0 {
		return BaseInfo{}
	}
	return d.Intro.Intro.BaseInfo[0]
}

// Templates holds the two fetched HTML template documents.
type Templates struct {
	Resume string
	Career string
}

// LoadResult is what a successful LoadResumeData returns.
type LoadResult struct {
	Data      ResumeData
	Templates Templates
}

// FormState carries the user-entered fields that are not part of the
// site content: they are typed in at generation time and only ever
// rendered locally.
type FormState struct {
	// PostalCode is printed with a 〒 prefix.
	PostalCode string

	// Address is the current address printed on the résumé.
	Address string

	// Phone fills the contact table.
	Phone string

	// Motivation fills the 志望動機 block.
	Motivation string

	// Preference fills the 本人希望記入欄 block.
	Preference string

	// PhotoDataURL, when non-empty, is a data: URL validated by
	// EncodePhoto and placed into the photo frame.
	PhotoDataURL string
}

// Documents holds the rendered output of a generation run.
type Documents struct {
	// Resume is the complete 履歴書 HTML document.
	Resume string

	// Career is the complete 職務経歴書 HTML document.
	Career string
}
