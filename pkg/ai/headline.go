package ai

import (
	"strings"
	"unicode/utf8"
)

const maxHeadlineRunes = 120

// Headline picks a display name out of free model text: the first non-blank
// line that is not a bare section label. "રોગનું નામ: X" yields X. The rest
// of the reply is never interpreted.
func Headline(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#*-•> "))
		line = strings.Trim(line, "*_ ")
		if line == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(line, labelDiseaseName); ok {
			rest = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(rest), ":："))
			rest = strings.Trim(rest, "*_ ")
			if rest == "" {
				continue
			}
			line = rest
		}
		if strings.HasSuffix(line, ":") || strings.HasSuffix(line, "：") {
			continue
		}
		return truncateRunes(line, maxHeadlineRunes)
	}
	return UnknownDisease
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:n]))
}

// fromModelText wraps a verbatim model reply.
func fromModelText(text, source string) *Diagnosis {
	name := Headline(text)
	return &Diagnosis{
		DiseaseName:   name,
		DiseaseNameGu: name,
		Report:        text,
		Source:        source,
	}
}
