package store

// Stored keys. The names match the browser storage layout of the original
// web trainer so exported data can be imported as is.
const (
	KeyLearnedWrite  = "learntLetters"
	KeyLearnedRead   = "learntLettersRead"
	KeyLetterStats   = "letterStats"
	KeyReviewSession = "reviewSession"
)

// ProgressKey returns the key a level's completion percent is stored under.
func ProgressKey(group, mode string) string {
	return group + "_" + mode
}
