package game

import "strings"

// ExtractObject pulls the target noun out of a challenge string:
// "Draw a cat!" -> "cat". When extraction yields fewer than two characters
// the original challenge is returned, so the downstream prompt never embeds
// an empty object.
func ExtractObject(challenge string) string {
	text := strings.TrimSpace(strings.ToLower(challenge))

	var object string
	switch {
	case strings.Contains(text, "draw a "):
		_, after, _ := strings.Cut(text, "draw a ")
		object = strings.TrimSpace(strings.ReplaceAll(after, "!", ""))
	case strings.Contains(text, "draw an "):
		_, after, _ := strings.Cut(text, "draw an ")
		object = strings.TrimSpace(strings.ReplaceAll(after, "!", ""))
	case strings.HasPrefix(text, "draw "):
		// "Draw something!" is a filler challenge, not an object; dropping
		// the filler word lets the raw-challenge fallback kick in below.
		object = strings.ReplaceAll(text[5:], "!", "")
		object = strings.TrimSpace(strings.ReplaceAll(object, "something", ""))
	default:
		object = text
		object = strings.ReplaceAll(object, "draw", "")
		object = strings.ReplaceAll(object, "something", "")
		object = strings.ReplaceAll(object, "!", "")
		object = strings.TrimSpace(object)
	}

	if len(object) < 2 {
		return challenge
	}
	return object
}
