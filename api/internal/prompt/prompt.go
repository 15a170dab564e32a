// Package prompt holds the fixed prompt texts sent to the hosted models.
package prompt

import "fmt"

// Judge asks the vision model for the MATCH/DESCRIPTION/MESSAGE format that
// game.ParseJudgment understands.
func Judge(object string) string {
	return fmt.Sprintf(`You are helping judge a drawing game for kids. Look at this drawing carefully.

The child was asked to draw: %q

Please analyze:
1. What do you see in this drawing?
2. Does it reasonably match what they were asked to draw?
3. Remember this is a child's drawing - be encouraging but honest.

Respond in this exact format:
MATCH: YES or NO
DESCRIPTION: [what you see]
MESSAGE: [encouraging message for the child]

Be generous with simple drawings but honest about completely unrelated drawings.`, object)
}

// Reward turns the judged description into an image-generation prompt.
func Reward(object, description string) string {
	return fmt.Sprintf("A beautiful, professional digital artwork inspired by a child's drawing. "+
		"The child drew a %s and it looks like: %s. "+
		"Transform this into a magical, colorful masterpiece while keeping the child's creative vision. "+
		"Fantasy art style, vibrant colors, whimsical and joyful.", object, description)
}

// Questions asks the text model for a batch of drawing challenges.
const Questions = `Generate 5 simple object drawing challenges for kids. Focus only on concrete objects that can be drawn and recognized:

Examples:
- Draw a cat
- Draw a house
- Draw a car
- Draw a tree
- Draw a flower
- Draw a bird
- Draw a fish
- Draw a sun

Requirements:
- Start with "Draw a" or "Draw an"
- Use simple, concrete objects only (animals, vehicles, buildings, nature items)
- No abstract concepts or emotions
- Keep them very simple
- End with exclamation mark

Generate 5 object-based challenges:`
