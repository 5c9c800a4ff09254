package prompt

import "testing"

func TestSpecify(t *testing.T) {
	tests := []struct {
		name string
		goal string
		want string
	}{
		{
			name: "simple goal",
			goal: "build a login page",
			want: "Role: AI Architect. Goal: build a login page. Create a SPEC.md file.",
		},
		{
			name: "empty goal",
			goal: "",
			want: "Role: AI Architect. Goal: . Create a SPEC.md file.",
		},
		{
			name: "goal with braces",
			goal: "support {json} bodies",
			want: "Role: AI Architect. Goal: support {json} bodies. Create a SPEC.md file.",
		},
		{
			name: "goal with newlines",
			goal: "line one\nline two",
			want: "Role: AI Architect. Goal: line one\nline two. Create a SPEC.md file.",
		},
		{
			name: "goal resembling a placeholder",
			goal: "{{goal}}",
			want: "Role: AI Architect. Goal: {{goal}}. Create a SPEC.md file.",
		},
		{
			name: "unicode goal",
			goal: "Suche auf Deutsch — 検索",
			want: "Role: AI Architect. Goal: Suche auf Deutsch — 検索. Create a SPEC.md file.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Specify(tt.goal); got != tt.want {
				t.Errorf("Specify(%q) = %q, want %q", tt.goal, got, tt.want)
			}
		})
	}
}

func TestPlan(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "markdown spec content",
			content: "## Overview\nDo X",
			want:    "Read this spec: ## Overview\nDo X. Create a PLAN.md.",
		},
		{
			name:    "empty content",
			content: "",
			want:    "Read this spec: . Create a PLAN.md.",
		},
		{
			name:    "content with surrounding whitespace",
			content: "  padded  ",
			want:    "Read this spec:   padded  . Create a PLAN.md.",
		},
		{
			name:    "content resembling a placeholder",
			content: "{{spec_content}}",
			want:    "Read this spec: {{spec_content}}. Create a PLAN.md.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Plan(tt.content); got != tt.want {
				t.Errorf("Plan(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

// TestVerbatimSubstitution verifies that for any input the output equals the
// fixed template text with the input spliced in unaltered: no escaping, no
// rescanning, no character touched.
func TestVerbatimSubstitution(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"{ } {{ }} {{{",
		"tabs\tand\r\nline endings",
		`backslash \n is two characters`,
		"$goal %s {0} `code`",
	}

	for _, in := range inputs {
		if got, want := Specify(in), "Role: AI Architect. Goal: "+in+". Create a SPEC.md file."; got != want {
			t.Errorf("Specify(%q) = %q, want %q", in, got, want)
		}
		if got, want := Plan(in), "Read this spec: "+in+". Create a PLAN.md."; got != want {
			t.Errorf("Plan(%q) = %q, want %q", in, got, want)
		}
	}
}

// TestGeneratorsIdempotent verifies repeated calls with the same input yield
// identical output; the generators keep no state between calls.
func TestGeneratorsIdempotent(t *testing.T) {
	inputs := []string{"", "build a login page", "## Overview\nDo X"}

	for _, in := range inputs {
		if first, second := Specify(in), Specify(in); first != second {
			t.Errorf("Specify(%q) not stable: %q then %q", in, first, second)
		}
		if first, second := Plan(in), Plan(in); first != second {
			t.Errorf("Plan(%q) not stable: %q then %q", in, first, second)
		}
	}
}
