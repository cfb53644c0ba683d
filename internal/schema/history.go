package schema

import "fmt"

// Dot variants form a closed set; anything else is a validation error, not
// a silent default.
const (
	DotVariantFilled   = "filled"
	DotVariantOutlined = "outlined"
)

// TimelineEntry is one item of the career timeline. Ordering is insertion
// order from the source file and is never re-sorted here.
type TimelineEntry struct {
	ID              string
	Time            string // year-month or free text
	Title           string
	Tags            []string
	OrganizationURL string
	Details         []string
	DotColor        string
	DotVariant      string // "", "filled" or "outlined"
}

// HasTag reports whether the entry carries the given tag.
func (e TimelineEntry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func parseTimelineEntry(value any, ctx Context, path string) (TimelineEntry, error) {
	m, ok := record(value)
	if !ok {
		return TimelineEntry{}, errf(ctx, path, "must be an object")
	}

	switch v := m["dotVariant"]; v {
	case nil, DotVariantFilled, DotVariantOutlined:
	default:
		return TimelineEntry{}, errf(ctx, path+".dotVariant", `must be %q or %q, got %v`, DotVariantFilled, DotVariantOutlined, v)
	}

	var entry TimelineEntry
	var err error
	if entry.ID, err = optionalString(m["id"], ctx, path+".id"); err != nil {
		return TimelineEntry{}, err
	}
	if entry.Time, err = optionalScalarString(m["time"], ctx, path+".time"); err != nil {
		return TimelineEntry{}, err
	}
	if entry.Title, err = optionalString(m["title"], ctx, path+".title"); err != nil {
		return TimelineEntry{}, err
	}
	if entry.Tags, err = optionalStringArray(m["tags"], ctx, path+".tags"); err != nil {
		return TimelineEntry{}, err
	}
	if entry.OrganizationURL, err = optionalString(m["organizationUrl"], ctx, path+".organizationUrl"); err != nil {
		return TimelineEntry{}, err
	}
	if entry.Details, err = optionalStringArray(m["details"], ctx, path+".details"); err != nil {
		return TimelineEntry{}, err
	}
	if entry.DotColor, err = optionalString(m["dotColor"], ctx, path+".dotColor"); err != nil {
		return TimelineEntry{}, err
	}
	entry.DotVariant, _ = m["dotVariant"].(string)
	return entry, nil
}

// ParseHistory validates the root of history.yml. A missing timeline key is
// an empty collection, not an error.
func ParseHistory(value any, ctx Context) ([]TimelineEntry, error) {
	root, ok := record(value)
	if !ok {
		return nil, errf(ctx, "", "root must be an object")
	}

	switch timelineRaw := root["timeline"].(type) {
	case nil:
		return []TimelineEntry{}, nil
	case []any:
		entries := make([]TimelineEntry, 0, len(timelineRaw))
		for i, item := range timelineRaw {
			entry, err := parseTimelineEntry(item, ctx, fmt.Sprintf("timeline[%d]", i))
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
		}
		return entries, nil
	default:
		return nil, errf(ctx, "timeline", "must be an array")
	}
}
