package entities

// Question is one unit of quiz content about the NFT patent marketplace
// codebase: a prompt, two answer options, and an explanation shown after
// the answer is judged.
type Question struct {
	Prompt       string   // question text
	Options      []string // exactly two answer choices, shown as 1 and 2
	CorrectIndex int      // index of the right option (0 or 1)
	Explanation  string   // shown verbatim after the verdict
}

// CorrectOption returns the text of the right answer.
func (q *Question) CorrectOption() string {
	return q.Options[q.CorrectIndex]
}

// AnswerResult is the outcome of judging a single answer.
type AnswerResult struct {
	IsCorrect     bool   // whether the chosen option was the right one
	CorrectOption string // text of the right option
	Explanation   string // explanation attached to the question
}
