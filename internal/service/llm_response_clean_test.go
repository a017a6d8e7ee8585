package service

import (
	"reflect"
	"testing"
)

func TestCleanLLMResponse(t *testing.T) {
	cases := map[string]string{
		"":                              "",
		"   ":                           "",
		"\uFEFFhola":                    "hola",
		"```\n- a\n- b\n```":            "- a\n- b",
		"```markdown\n1. a\n```":        "1. a",
		"  plain text without fences  ": "plain text without fences",
	}
	for in, want := range cases {
		if got := cleanLLMResponse(in); got != want {
			t.Fatalf("cleanLLMResponse(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseQuestionLines(t *testing.T) {
	raw := "- How do goroutines differ from threads?\n\n  - Explain context cancellation. \n---\nWhat is a channel?\r\n"
	want := []string{
		"How do goroutines differ from threads?",
		"Explain context cancellation.",
		"What is a channel?",
	}
	if got := parseQuestionLines(raw); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseQuestionLines_Empty(t *testing.T) {
	for _, raw := range []string{"", "\n\n", "- \n--\n"} {
		if got := parseQuestionLines(raw); len(got) != 0 {
			t.Fatalf("input %q: expected no questions, got %v", raw, got)
		}
	}
}
