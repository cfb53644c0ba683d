package schema

import "fmt"

// BaseInfo is one profile record from intro.base_info. Only base_info[0]
// is meaningful to consumers; extra records are validated but unused.
type BaseInfo struct {
	ProfileImgPath string
	Name           string
	Pronounce      string
	Birth          string // ISO YYYY-MM-DD when sourced from a date scalar
	From           string
	Gender         string
}

// Skills holds the three skill buckets. Absent buckets normalize to empty
// lists, never nil maps of meaning.
type Skills struct {
	WorkExperience     []string
	PersonalProjects   []string
	LearningInProgress []string
}

// Intro is the validated profile domain.
type Intro struct {
	BaseInfo      []BaseInfo
	Email         string
	Motto         string
	Hobby         []string
	Skills        Skills
	CoreStrengths []string
	CuriousFields []string
	SelfPRPath    string
}

// IntroConfig is the root of intro.yml.
type IntroConfig struct {
	Intro      Intro
	LastUpdate string
}

func parseBaseInfo(value any, ctx Context, path string) (BaseInfo, error) {
	m, ok := record(value)
	if !ok {
		return BaseInfo{}, errf(ctx, path, "must be an object")
	}

	var info BaseInfo
	var err error
	if info.ProfileImgPath, err = optionalString(m["profile_img_path"], ctx, path+".profile_img_path"); err != nil {
		return BaseInfo{}, err
	}
	if info.Name, err = optionalString(m["name"], ctx, path+".name"); err != nil {
		return BaseInfo{}, err
	}
	if info.Pronounce, err = optionalString(m["pronounce"], ctx, path+".pronounce"); err != nil {
		return BaseInfo{}, err
	}
	if info.Birth, err = optionalDateString(m["birth"], ctx, path+".birth"); err != nil {
		return BaseInfo{}, err
	}
	if info.From, err = optionalString(m["from"], ctx, path+".from"); err != nil {
		return BaseInfo{}, err
	}
	if info.Gender, err = optionalString(m["gender"], ctx, path+".gender"); err != nil {
		return BaseInfo{}, err
	}
	return info, nil
}

func parseSkills(value any, ctx Context, path string) (Skills, error) {
	if value == nil {
		return Skills{
			WorkExperience:     []string{},
			PersonalProjects:   []string{},
			LearningInProgress: []string{},
		}, nil
	}
	m, ok := record(value)
	if !ok {
		return Skills{}, errf(ctx, path, "must be an object")
	}

	var skills Skills
	var err error
	if skills.WorkExperience, err = optionalStringArray(m["work_experience"], ctx, path+".work_experience"); err != nil {
		return Skills{}, err
	}
	if skills.PersonalProjects, err = optionalStringArray(m["personal_projects"], ctx, path+".personal_projects"); err != nil {
		return Skills{}, err
	}
	if skills.LearningInProgress, err = optionalStringArray(m["learning_in_progress"], ctx, path+".learning_in_progress"); err != nil {
		return Skills{}, err
	}
	return skills, nil
}

// ParseIntro validates the root of intro.yml.
func ParseIntro(value any, ctx Context) (IntroConfig, error) {
	root, ok := record(value)
	if !ok {
		return IntroConfig{}, errf(ctx, "", "root must be an object")
	}
	introRaw, ok := record(root["intro"])
	if !ok {
		return IntroConfig{}, errf(ctx, "intro", "is required and must be an object")
	}

	var intro Intro
	var err error

	switch baseInfoRaw := introRaw["base_info"].(type) {
	case nil:
		intro.BaseInfo = []BaseInfo{}
	case []any:
		intro.BaseInfo = make([]BaseInfo, 0, len(baseInfoRaw))
		for i, item := range baseInfoRaw {
			info, err := parseBaseInfo(item, ctx, fmt.Sprintf("intro.base_info[%d]", i))
			if err != nil {
				return IntroConfig{}, err
			}
			intro.BaseInfo = append(intro.BaseInfo, info)
		}
	default:
		return IntroConfig{}, errf(ctx, "intro.base_info", "must be an array")
	}

	if intro.Email, err = optionalString(introRaw["email"], ctx, "intro.email"); err != nil {
		return IntroConfig{}, err
	}
	if intro.Motto, err = optionalString(introRaw["motto"], ctx, "intro.motto"); err != nil {
		return IntroConfig{}, err
	}
	if intro.Hobby, err = optionalStringArray(introRaw["hobby"], ctx, "intro.hobby"); err != nil {
		return IntroConfig{}, err
	}
	if intro.Skills, err = parseSkills(introRaw["skills"], ctx, "intro.skills"); err != nil {
		return IntroConfig{}, err
	}
	if intro.CoreStrengths, err = optionalStringArray(introRaw["core_strengths"], ctx, "intro.core_strengths"); err != nil {
		return IntroConfig{}, err
	}
	if intro.CuriousFields, err = optionalStringArray(introRaw["curious_fields"], ctx, "intro.curious_fields"); err != nil {
		return IntroConfig{}, err
	}
	if intro.SelfPRPath, err = optionalString(introRaw["self-PR_mdFile_path"], ctx, "intro.self-PR_mdFile_path"); err != nil {
		return IntroConfig{}, err
	}

	lastUpdate, err := optionalDateString(root["last_update"], ctx, "last_update")
	if err != nil {
		return IntroConfig{}, err
	}

	return IntroConfig{Intro: intro, LastUpdate: lastUpdate}, nil
}
