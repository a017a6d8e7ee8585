package service

import (
	"regexp"
	"strings"
)

var (
	fenceStart = regexp.MustCompile("(?is)^\\s*```[a-z]*\\s*")
	fenceEnd   = regexp.MustCompile("(?is)\\s*```\\s*$")
)

// cleanLLMResponse quita fences ``` ... ``` y BOM, dejando el contenido usable.
func cleanLLMResponse(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	// BOM (por si acaso)
	s = strings.TrimPrefix(s, "\uFEFF")

	s = fenceStart.ReplaceAllString(s, "")
	s = fenceEnd.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// parseQuestionLines interpreta la respuesta como una pregunta por linea.
// Se quitan guiones y espacios de los bordes; las lineas vacias se descartan.
func parseQuestionLines(raw string) []string {
	cleaned := cleanLLMResponse(raw)
	if cleaned == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(cleaned, "\n") {
		q := strings.TrimSpace(strings.Trim(strings.TrimSpace(line), "- "))
		if q == "" {
			continue
		}
		out = append(out, q)
	}
	return out
}
