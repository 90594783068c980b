package genres

import (
	"strings"

	"github.com/mozillazg/go-unidecode"
)

// NormalizeName canonicalizes a genre display name for comparison: ASCII
// transliteration, lowercase, strip spaces/hyphens/ampersands, then collapse
// the "scifi" and "fiction" substrings to the shared "fi" root so
// "Sci-Fi" and "Science Fiction" converge. Empty input yields "".
func NormalizeName(name string) string {
	s := strings.ToLower(unidecode.Unidecode(name))
	s = strings.NewReplacer(" ", "", "-", "", "&", "").Replace(s)
	s = strings.ReplaceAll(s, "scifi", "fi")
	s = strings.ReplaceAll(s, "fiction", "fi")
	return s
}
