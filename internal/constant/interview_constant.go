package constant

// Canned fallbacks used when every provider in the gateway chain fails.
// The interview degrades to a static follow-up, it never stalls.
const (
	FallbackQuestion = "Could you walk me through a recent technical challenge you solved, and the trade-offs you considered?"
	FallbackFeedback = "Thank you for your answer. Let's continue."
	FallbackProbe    = "Could you elaborate on that with a concrete example?"
)

// DefaultFallbackScore is attributed to a turn whose evaluation never
// came back. Neutral: neither escalates nor tanks the interview.
const DefaultFallbackScore = 50

// HallucinationDenylist holds stock filler phrases speech recognizers are
// known to emit on silence or noise input. Matching candidates are
// discarded during transcript fusion.
var HallucinationDenylist = []string{
	"thank you for watching",
	"thanks for watching",
	"please subscribe",
	"subtitles by",
	"I'm sorry, I didn't catch that",
}
