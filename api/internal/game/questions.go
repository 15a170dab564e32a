package game

import (
	"strings"

	"scribble-quest/api/internal/util"
)

// FallbackQuestions is served whenever challenge generation fails. The list
// is fixed; clients rely on its exact contents and order.
func FallbackQuestions() []string {
	return []string{
		"Draw a cat!",
		"Draw a house!",
		"Draw a car!",
		"Draw a tree!",
		"Draw a flower!",
	}
}

// ParseQuestions normalizes a model reply into challenge lines: numbering and
// bullets stripped, must start with "draw" and be longer than 8 characters,
// "!" appended when missing.
func ParseQuestions(raw string) []string {
	var questions []string
	for _, line := range strings.Split(util.StripCodeFences(raw), "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "123456789.- ")

		if strings.HasPrefix(strings.ToLower(line), "draw") && len(line) > 8 {
			if !strings.HasSuffix(line, "!") {
				line += "!"
			}
			questions = append(questions, line)
		}
	}
	return questions
}
