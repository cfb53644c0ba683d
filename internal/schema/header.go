package schema

import "fmt"

// LinkItem is one destination inside a header link block.
type LinkItem struct {
	Link string
}

// LinkBlock maps a link key (e.g. "github") to its ordered destinations.
type LinkBlock map[string][]LinkItem

// HeaderConfig is the validated header/links configuration.
type HeaderConfig struct {
	Links []LinkBlock
}

// LinkByKey scans the ordered link blocks for the first block carrying the
// key and returns its first URL. Absence yields "", never an error; a
// missing header link is genuinely optional data.
func (h HeaderConfig) LinkByKey(key string) string {
	for _, block := range h.Links {
		items, ok := block[key]
		if !ok || len(items) == 0 {
			continue
		}
		return items[0].Link
	}
	return ""
}

func parseLinkBlock(value any, ctx Context, path string) (LinkBlock, error) {
	m, ok := record(value)
	if !ok {
		return nil, errf(ctx, path, "must be an object")
	}
	if len(m) == 0 {
		return nil, errf(ctx, path, "must contain at least one key")
	}

	block := make(LinkBlock, len(m))
	for key, rawItems := range m {
		items, ok := rawItems.([]any)
		if !ok {
			return nil, errf(ctx, fmt.Sprintf("%s.%s", path, key), "must be an array")
		}
		parsed := make([]LinkItem, 0, len(items))
		for i, rawItem := range items {
			itemPath := fmt.Sprintf("%s.%s[%d]", path, key, i)
			im, ok := record(rawItem)
			if !ok {
				return nil, errf(ctx, itemPath, "must be an object")
			}
			link, err := optionalString(im["link"], ctx, itemPath+".link")
			if err != nil {
				return nil, err
			}
			parsed = append(parsed, LinkItem{Link: link})
		}
		block[key] = parsed
	}
	return block, nil
}

// ParseHeader validates the root of header.yml. A missing links key is an
// empty collection.
func ParseHeader(value any, ctx Context) (HeaderConfig, error) {
	root, ok := record(value)
	if !ok {
		return HeaderConfig{}, errf(ctx, "", "root must be an object")
	}

	switch linksRaw := root["links"].(type) {
	case nil:
		return HeaderConfig{Links: []LinkBlock{}}, nil
	case []any:
		blocks := make([]LinkBlock, 0, len(linksRaw))
		for i, item := range linksRaw {
			block, err := parseLinkBlock(item, ctx, fmt.Sprintf("links[%d]", i))
			if err != nil {
				return HeaderConfig{}, err
			}
			blocks = append(blocks, block)
		}
		return HeaderConfig{Links: blocks}, nil
	default:
		return HeaderConfig{}, errf(ctx, "links", "must be an array")
	}
}
