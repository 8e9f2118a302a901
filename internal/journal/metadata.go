package journal

import "strings"

// Metadata is the small directive block an entry may carry at the top of its
// body.
type Metadata struct {
	Tags  []string
	Draft bool
}

// truthy enumerates the accepted draft flag values. Anything else, including
// absence, means false.
func truthy(value string) bool {
	switch value {
	case "true", "yes", "1", "y", "on":
		return true
	}
	return false
}

// ExtractMetadata splits a leading metadata block off the raw entry body.
// Scanning walks lines from the top: "tags:" sets the tag list (comma split,
// trimmed, empties dropped), "draft:" sets the draft flag. The block ends at
// the first blank line (body starts on the next line) or at the first line
// matching neither directive (body starts at that line). When every line is a
// directive the body is empty. The returned body is trimmed, which makes
// extraction idempotent: a stripped body carries no directive lines.
func ExtractMetadata(body string) (Metadata, string) {
	lines := strings.Split(body, "\n")

	meta := Metadata{}
	bodyStart := len(lines)

	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			bodyStart = i + 1
			break
		}

		lower := strings.ToLower(stripped)
		switch {
		case strings.HasPrefix(lower, "tags:"):
			meta.Tags = splitTags(stripped[len("tags:"):])
		case strings.HasPrefix(lower, "draft:"):
			meta.Draft = truthy(strings.ToLower(strings.TrimSpace(stripped[len("draft:"):])))
		default:
			bodyStart = i
		}
		if bodyStart == i {
			break
		}
	}

	if bodyStart > len(lines) {
		bodyStart = len(lines)
	}
	return meta, strings.TrimSpace(strings.Join(lines[bodyStart:], "\n"))
}

func splitTags(raw string) []string {
	var tags []string
	for _, piece := range strings.Split(raw, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		tags = append(tags, piece)
	}
	return tags
}
