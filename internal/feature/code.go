package feature

import (
	"regexp"
	"strings"
)

// Patterns that mark a line as probable source code rather than prose.
// Compile failures here would be programmer error, so MustCompile.
var codeLinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`[;{}]\s*$`),
	regexp.MustCompile(`^\s*(func|def|class|var|const|let|import|from|return|public|private|static)\b`),
	regexp.MustCompile(`^\s*#include\b|^\s*#define\b`),
	regexp.MustCompile(`=>|==|!=|&&|\|\||::`),
	regexp.MustCompile(`</?[a-zA-Z][^>]*>`),
	regexp.MustCompile(`^\s*(SELECT|INSERT|UPDATE|DELETE|CREATE|ALTER)\b`),
	regexp.MustCompile(`\w+\(\s*\)`),
}

// CodeStats counts lines that match common code-syntax tokens and the
// share of all non-blank lines they represent.
func CodeStats(text string) (lines int, percent float64) {
	total := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		total++
		for _, re := range codeLinePatterns {
			if re.MatchString(line) {
				lines++
				break
			}
		}
	}
	if total == 0 {
		return 0, 0
	}
	return lines, float64(lines) / float64(total) * 100
}

// PossibleScreenshot flags a source that was large on disk but
// yielded almost no extractable text, which usually means the bytes
// were an image of text rather than text.
func PossibleScreenshot(byteSize int, text string) bool {
	return byteSize > 50*1024 && len(strings.TrimSpace(text)) < 40
}
