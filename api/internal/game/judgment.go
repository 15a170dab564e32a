package game

import "strings"

// Defaults used for any line the model reply is missing. The parser degrades
// to these instead of erroring; the fixed-line format is best-effort.
const (
	defaultDescription   = "I can see your drawing!"
	defaultEncouragement = "Great effort on your drawing!"
)

// ParseJudgment scans the model reply for MATCH/DESCRIPTION/MESSAGE lines.
// It is total: any input, including garbage, yields a usable Judgment.
func ParseJudgment(raw string) Judgment {
	j := Judgment{
		Description:   defaultDescription,
		Encouragement: defaultEncouragement,
	}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "MATCH:"):
			rest := strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(line, "MATCH:")))
			j.IsMatch = strings.Contains(rest, "YES")
		case strings.HasPrefix(line, "DESCRIPTION:"):
			if v := strings.TrimSpace(strings.TrimPrefix(line, "DESCRIPTION:")); v != "" {
				j.Description = v
			}
		case strings.HasPrefix(line, "MESSAGE:"):
			if v := strings.TrimSpace(strings.TrimPrefix(line, "MESSAGE:")); v != "" {
				j.Encouragement = v
			}
		}
	}
	return j
}
