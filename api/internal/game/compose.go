package game

// Terminal responses for the local failure paths. Points stay zero and no
// model is ever called for these.

func DecodeErrorResponse() Response {
	return Response{
		Title:   "Error!",
		Message: "Could not process your drawing. Try again!",
		Points:  0,
		Success: false,
	}
}

func NoDrawingResponse() Response {
	return Response{
		Title:   "No Drawing!",
		Message: "I don't see any drawing. Try drawing something!",
		Points:  0,
		Success: false,
	}
}

// SoftFallbackResponse masks a judgment-call failure. Deliberate product
// decision: infrastructure trouble must not punish the player.
func SoftFallbackResponse() Response {
	return Response{
		Title:   "Something Magical!",
		Message: "I can see you drew something creative! The AI is taking a break, but your art is still wonderful!",
		Points:  50,
		Success: true,
	}
}

// Compose maps a judgment plus reward outcome onto the user-facing result.
// Pure and deterministic: same inputs, same response.
func Compose(j Judgment, r Reward, object string) Response {
	if j.IsMatch {
		resp := Response{
			Title:   "Perfect!",
			Message: j.Description + " " + j.Encouragement,
			Points:  100,
			Success: true,
		}
		if r.Succeeded {
			resp.Message += " Check out your masterpiece!"
			resp.RewardImage = r.ImageURL
		}
		return resp
	}
	return Response{
		Title:   "Try Again!",
		Message: j.Description + " " + j.Encouragement + " You were asked to draw: " + object,
		Points:  25,
		Success: false,
	}
}
