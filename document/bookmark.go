package document

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes characters and removes combining marks, so that
// accented title text still yields an ASCII-safe anchor ("Résumé" -> "Resume").
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// BookmarkName derives the anchor name a writer emits for a bookmarked
// title. The name combines the bookmark ID with a slug of the title text,
// restricted to characters every target format accepts in an anchor.
// Titles without a bookmark ID (attached with no registry) have no anchor;
// the empty string is returned.
func BookmarkName(bookmarkID int, text string) string {
	if bookmarkID == 0 {
		return ""
	}
	slug := slugify(text)
	if slug == "" {
		return fmt.Sprintf("_Toc%d", bookmarkID)
	}
	return fmt.Sprintf("_Toc%d_%s", bookmarkID, slug)
}

func slugify(text string) string {
	base, _, err := transform.String(stripMarks, text)
	if err != nil {
		base = text
	}

	var sb strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(base) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastUnderscore = false
		case r == ' ' || r == '-' || r == '_' || r == '.':
			if !lastUnderscore && sb.Len() > 0 {
				sb.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimRight(sb.String(), "_")
}
