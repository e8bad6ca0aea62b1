package service

import (
	"context"
	"fmt"

	"github.com/aliskhannn/nft-marketplace-quiz/internal/domain/entities"
)

type QuestionRepository interface {
	GetRandom(_ context.Context) (*entities.Question, error)
	GetAll(_ context.Context) ([]*entities.Question, error)
}

// QuizService selects the question for a session and judges the answer.
type QuizService struct {
	repository QuestionRepository
}

func NewQuizService(repository QuestionRepository) *QuizService {
	return &QuizService{repository: repository}
}

// SelectQuestion picks one question uniformly at random from the bank.
func (s *QuizService) SelectQuestion(ctx context.Context) (*entities.Question, error) {
	q, err := s.repository.GetRandom(ctx)
	if err != nil {
		return nil, fmt.Errorf("select question: %w", err)
	}
	return q, nil
}

// Evaluate compares the chosen option index against the question's correct
// index and returns the verdict together with the explanation.
func (s *QuizService) Evaluate(q *entities.Question, choiceIndex int) (*entities.AnswerResult, error) {
	if choiceIndex < 0 || choiceIndex >= len(q.Options) {
		return nil, fmt.Errorf("invalid choice index: %d", choiceIndex)
	}

	return &entities.AnswerResult{
		IsCorrect:     choiceIndex == q.CorrectIndex,
		CorrectOption: q.CorrectOption(),
		Explanation:   q.Explanation,
	}, nil
}
