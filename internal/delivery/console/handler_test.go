package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/nft-marketplace-quiz/internal/domain/entities"
	"github.com/aliskhannn/nft-marketplace-quiz/internal/service"
)

type singleQuestionRepo struct {
	q *entities.Question
}

func (r singleQuestionRepo) GetRandom(_ context.Context) (*entities.Question, error) {
	return r.q, nil
}

func (r singleQuestionRepo) GetAll(_ context.Context) ([]*entities.Question, error) {
	return []*entities.Question{r.q}, nil
}

// blockingReader models a terminal with no input typed yet.
type blockingReader struct {
	unblock chan struct{}
}

func (r blockingReader) Read([]byte) (int, error) {
	<-r.unblock
	return 0, nil
}

func testQuestion(t *testing.T) *entities.Question {
	t.Helper()

	return &entities.Question{
		Prompt:       "P",
		Options:      []string{"A", "B"},
		CorrectIndex: 1,
		Explanation:  "E",
	}
}

func newTestHandler(t *testing.T, input string) (*Handler, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	svc := service.NewQuizService(singleQuestionRepo{q: testQuestion(t)})
	h := NewHandler(zap.NewNop(), svc, strings.NewReader(input), out)
	return h, out
}

func TestHandler_CollectAnswer_FirstTryValid(t *testing.T) {
	h, out := newTestHandler(t, "1\n")

	choice, err := h.collectAnswer(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, choice)
	require.NotContains(t, out.String(), msgEnterOneOrTwo)
}

func TestHandler_CollectAnswer_RepromptsUntilValid(t *testing.T) {
	h, out := newTestHandler(t, "\n3\nx\n2\n")

	choice, err := h.collectAnswer(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, choice)
	require.Equal(t, 3, strings.Count(out.String(), msgEnterOneOrTwo))
	require.Equal(t, 4, strings.Count(out.String(), msgAnswerPrompt))
}

func TestHandler_CollectAnswer_TrimsWhitespace(t *testing.T) {
	h, _ := newTestHandler(t, "  2  \n")

	choice, err := h.collectAnswer(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, choice)
}

func TestHandler_CollectAnswer_ValidLineWithoutNewline(t *testing.T) {
	h, _ := newTestHandler(t, "1")

	choice, err := h.collectAnswer(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, choice)
}

func TestHandler_Run_CorrectAnswer(t *testing.T) {
	h, out := newTestHandler(t, "2\n")

	err := h.Run(context.Background())
	require.NoError(t, err)

	got := out.String()
	require.Contains(t, got, msgBannerTitle)
	require.Contains(t, got, "Question: P")
	require.Contains(t, got, "1. A")
	require.Contains(t, got, "2. B")
	require.Contains(t, got, msgCorrect)
	require.NotContains(t, got, msgIncorrect)
	require.Contains(t, got, "💡 Explanation: E")
	require.Contains(t, got, msgComplete)
}

func TestHandler_Run_IncorrectAnswer(t *testing.T) {
	h, out := newTestHandler(t, "1\n")

	err := h.Run(context.Background())
	require.NoError(t, err)

	got := out.String()
	require.Contains(t, got, msgIncorrect)
	require.Contains(t, got, "The correct answer is: B")
	require.Contains(t, got, "💡 Explanation: E")
	require.Contains(t, got, msgComplete)
}

func TestHandler_Run_CancelledBySignal(t *testing.T) {
	out := &bytes.Buffer{}
	svc := service.NewQuizService(singleQuestionRepo{q: testQuestion(t)})

	unblock := make(chan struct{})
	t.Cleanup(func() { close(unblock) })

	h := NewHandler(zap.NewNop(), svc, blockingReader{unblock: unblock}, out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.Run(ctx)
	require.ErrorIs(t, err, ErrCancelled)

	got := out.String()
	require.Contains(t, got, msgCancelled)
	require.NotContains(t, got, msgCorrect)
	require.NotContains(t, got, msgIncorrect)
}

func TestHandler_Run_CancelledByEOF(t *testing.T) {
	h, out := newTestHandler(t, "")

	err := h.Run(context.Background())
	require.ErrorIs(t, err, ErrCancelled)

	got := out.String()
	require.Contains(t, got, msgCancelled)
	require.NotContains(t, got, msgCorrect)
	require.NotContains(t, got, msgIncorrect)
}

func TestHandler_Run_EOFAfterInvalidInput(t *testing.T) {
	h, out := newTestHandler(t, "nope\n")

	err := h.Run(context.Background())
	require.ErrorIs(t, err, ErrCancelled)
	require.Contains(t, out.String(), msgCancelled)
}
