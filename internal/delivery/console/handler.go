package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/nft-marketplace-quiz/internal/domain/entities"
)

// ErrCancelled reports that the user ended the session with an interrupt
// or by closing the input stream. Callers treat it as a normal exit.
var ErrCancelled = errors.New("session cancelled")

type QuizService interface {
	SelectQuestion(ctx context.Context) (*entities.Question, error)
	Evaluate(q *entities.Question, choiceIndex int) (*entities.AnswerResult, error)
}

// Handler runs one quiz session over the console.
type Handler struct {
	logger *zap.Logger
	quiz   QuizService
	in     *bufio.Reader
	out    io.Writer
}

func NewHandler(logger *zap.Logger, quiz QuizService, in io.Reader, out io.Writer) *Handler {
	return &Handler{
		logger: logger,
		quiz:   quiz,
		in:     bufio.NewReader(in),
		out:    out,
	}
}

// Run drives one session in order: select, present, collect, evaluate.
// It returns ErrCancelled when the user quits during the answer prompt.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Debug("quiz session started")

	q, err := h.quiz.SelectQuestion(ctx)
	if err != nil {
		return err
	}

	h.printBanner()
	h.presentQuestion(q)

	choice, err := h.collectAnswer(ctx)
	if err != nil {
		if errors.Is(err, ErrCancelled) {
			fmt.Fprintln(h.out)
			fmt.Fprintln(h.out, msgCancelled)
			h.logger.Debug("quiz session cancelled")
		}
		return err
	}

	fmt.Fprintln(h.out)

	result, err := h.quiz.Evaluate(q, choice)
	if err != nil {
		return fmt.Errorf("evaluate answer: %w", err)
	}

	h.printResult(result)
	h.logger.Debug("quiz session completed", zap.Bool("correct", result.IsCorrect))

	return nil
}

func (h *Handler) printBanner() {
	fmt.Fprintln(h.out, msgBannerTitle)
	fmt.Fprintln(h.out, strings.Repeat("=", bannerRuleWidth))
	fmt.Fprintln(h.out, msgBannerIntro)
	fmt.Fprintf(h.out, "%s\n\n", msgBannerChoose)
}

func (h *Handler) presentQuestion(q *entities.Question) {
	fmt.Fprintf(h.out, msgQuestionFmt, q.Prompt)
	for i, opt := range q.Options {
		fmt.Fprintf(h.out, msgOptionFmt, i+1, opt)
	}
	fmt.Fprintln(h.out)
}

type readResult struct {
	line string
	err  error
}

// collectAnswer re-prompts until the trimmed input is exactly "1" or "2"
// and returns the zero-based option index. The read runs in a goroutine so
// a signal can interrupt the blocking console read.
func (h *Handler) collectAnswer(ctx context.Context) (int, error) {
	lines := make(chan readResult)
	go func() {
		for {
			line, err := h.in.ReadString('\n')
			lines <- readResult{line: line, err: err}
			if err != nil {
				return
			}
		}
	}()

	for {
		fmt.Fprint(h.out, msgAnswerPrompt)

		select {
		case <-ctx.Done():
			return 0, ErrCancelled
		case r := <-lines:
			switch strings.TrimSpace(r.line) {
			case "1":
				return 0, nil
			case "2":
				return 1, nil
			}
			if r.err != nil {
				// Input stream ended with no valid answer.
				return 0, ErrCancelled
			}
			fmt.Fprintln(h.out, msgEnterOneOrTwo)
		}
	}
}

func (h *Handler) printResult(result *entities.AnswerResult) {
	if result.IsCorrect {
		fmt.Fprintln(h.out, msgCorrect)
	} else {
		fmt.Fprintln(h.out, msgIncorrect)
		fmt.Fprintf(h.out, msgCorrectAnswerFmt, result.CorrectOption)
	}

	fmt.Fprintf(h.out, msgExplanationFmt, result.Explanation)
	fmt.Fprintf(h.out, "\n%s\n", msgComplete)
}
