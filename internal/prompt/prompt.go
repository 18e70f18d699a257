// Package prompt assembles the single text blob sent to the inference
// server: instruction, then code, then question, in fixed order.
package prompt

import "fmt"

// SystemInstruction describes the assistant's role. It always opens the
// prompt.
const SystemInstruction = "You are an expert programming tutor and code reviewer. " +
	"You provide clear, detailed, and actionable answers. " +
	"Always reference specific line numbers or code snippets when relevant."

// Build concatenates the instruction, the file text inside a delimited
// fenced block, and the question. Constructed fresh per request, never
// cached.
func Build(filename, code, question string) string {
	return fmt.Sprintf(
		"%s\n\n--- FILE: %s ---\n```\n%s\n```\n\n--- TASK ---\n%s\n",
		SystemInstruction, filename, code, question,
	)
}
