// Package prompt defines the Spec-Kit prompt generators and the registry
// that exposes them by name.
//
// Each generator is a pure function from one input string to one output
// string. Generators never touch the filesystem: the SPEC.md and PLAN.md
// named in the generated text are authored by the agent that consumes the
// prompt, not by this process.
package prompt

import "strings"

// Prompt templates with a single {{placeholder}} each. Substitution is one
// strings.ReplaceAll pass; replaced text is never rescanned, so input that
// itself looks like a placeholder passes through untouched.
const (
	specifyTemplate = "Role: AI Architect. Goal: {{goal}}. Create a SPEC.md file."
	planTemplate    = "Read this spec: {{spec_content}}. Create a PLAN.md."
)

// Specify returns the instruction prompt that asks an agent to author a
// specification document for the given goal. The goal is substituted
// verbatim: no escaping, no trimming, no length limit. Empty is valid.
func Specify(goal string) string {
	return strings.ReplaceAll(specifyTemplate, "{{goal}}", goal)
}

// Plan returns the instruction prompt that asks an agent to derive a plan
// document from previously authored spec content. Substitution rules match
// Specify.
func Plan(specContent string) string {
	return strings.ReplaceAll(planTemplate, "{{spec_content}}", specContent)
}
