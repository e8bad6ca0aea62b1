// messages.go contains the literal console strings of the quiz.

package console

const (
	msgBannerTitle  = "🧠 NFT Patent Marketplace Quiz"
	msgBannerIntro  = "Test your knowledge of where features and functionality are located!"
	msgBannerChoose = "Choose option 1 or 2 for each question."

	msgQuestionFmt = "Question: %s\n\n"
	msgOptionFmt   = "%d. %s\n"

	msgAnswerPrompt  = "Your answer (1 or 2): "
	msgEnterOneOrTwo = "Please enter 1 or 2"
	msgCancelled     = "Quiz cancelled."

	msgCorrect          = "✅ CORRECT!"
	msgIncorrect        = "❌ INCORRECT!"
	msgCorrectAnswerFmt = "The correct answer is: %s\n"
	msgExplanationFmt   = "\n💡 Explanation: %s\n"
	msgComplete         = "Quiz complete! Run again for a different question."
)

const bannerRuleWidth = 50
