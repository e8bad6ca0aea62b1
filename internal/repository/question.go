package repository

import (
	"context"
	"errors"
	"math/rand"

	"github.com/aliskhannn/nft-marketplace-quiz/internal/domain/entities"
)

var ErrEmptyBank = errors.New("question bank is empty")

// QuestionRepository provides access to the quiz questions.
// This implementation uses an in-memory dataset defined in bank.go.
type QuestionRepository struct {
	questions []*entities.Question
}

// NewQuestionRepository creates a new QuestionRepository over the built-in
// question bank.
func NewQuestionRepository() *QuestionRepository {
	return &QuestionRepository{
		questions: questionBank,
	}
}

// GetRandom retrieves one question chosen uniformly at random.
func (r *QuestionRepository) GetRandom(_ context.Context) (*entities.Question, error) {
	if len(r.questions) == 0 {
		return nil, ErrEmptyBank
	}

	idx := rand.Intn(len(r.questions))
	return r.questions[idx], nil
}

// GetAll retrieves the whole question bank.
func (r *QuestionRepository) GetAll(_ context.Context) ([]*entities.Question, error) {
	return r.questions, nil
}

// Count returns the number of questions in the bank.
func (r *QuestionRepository) Count() int {
	return len(r.questions)
}
