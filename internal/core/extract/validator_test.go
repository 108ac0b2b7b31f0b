package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubCompletion 固定回覆或固定錯誤的補全服務
type stubCompletion struct {
	reply string
	err   error
	calls int
}

func (s *stubCompletion) Complete(ctx context.Context, prompt string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func TestIsValidTooShort(t *testing.T) {
	v := NewValidator(nil)
	assert.False(t, v.IsValid(context.Background(), ""))
	assert.False(t, v.IsValid(context.Background(), "stir well"))
	assert.False(t, v.IsValid(context.Background(), "   mix and serve   "))
}

func TestIsValidHeuristicAccepts(t *testing.T) {
	v := NewValidator(nil)
	text := "First, heat the oil in a pan. Then add the onions and stir until golden. Finally, season and serve."
	assert.True(t, v.IsValid(context.Background(), text))
}

func TestIsValidHeuristicRejectsNoCookingVerb(t *testing.T) {
	v := NewValidator(nil)
	text := "First of all thank you everyone for watching this video, next episode coming soon, finally a new camera!"
	assert.False(t, v.IsValid(context.Background(), text))
}

func TestIsValidHeuristicRejectsNoStepIndicator(t *testing.T) {
	v := NewValidator(nil)
	text := "You could stir the mixture and heat the oil whenever it feels right for your own kitchen."
	assert.False(t, v.IsValid(context.Background(), text))
}

func TestIsValidModelSaysValid(t *testing.T) {
	ai := &stubCompletion{reply: "VALID"}
	v := NewValidator(ai)
	assert.True(t, v.IsValid(context.Background(), "Heat oil, add garlic, stir for two minutes, then serve."))
	assert.Equal(t, 1, ai.calls)
}

func TestIsValidModelSaysInvalid(t *testing.T) {
	ai := &stubCompletion{reply: "INVALID"}
	v := NewValidator(ai)
	// INVALID 包含 VALID 子字串，這裡驗證解析不會誤判
	assert.False(t, v.IsValid(context.Background(), "Heat oil, add garlic, stir for two minutes, then serve."))
}

func TestIsValidModelVerboseReply(t *testing.T) {
	ai := &stubCompletion{reply: "The text is VALID cooking instructions."}
	v := NewValidator(ai)
	assert.True(t, v.IsValid(context.Background(), "Heat oil, add garlic, stir for two minutes, then serve."))
}

func TestIsValidModelErrorFallsBackToHeuristic(t *testing.T) {
	ai := &stubCompletion{err: errors.New("upstream timeout")}
	v := NewValidator(ai)

	// 啟發式會接受的文字：AI 掛掉不影響結果
	good := "First, heat the oil in a pan. Then add the onions and stir until golden. Finally, season and serve."
	assert.True(t, v.IsValid(context.Background(), good))

	// 啟發式會拒絕的文字
	bad := "This is a fairly long piece of text that talks about the weather and nothing else at all today."
	assert.False(t, v.IsValid(context.Background(), bad))
}

func TestIsValidStepsEmpty(t *testing.T) {
	v := NewValidator(nil)
	assert.False(t, v.IsValidSteps(context.Background(), nil))
	assert.False(t, v.IsValidSteps(context.Background(), []string{}))
}

func TestIsValidStepsJoined(t *testing.T) {
	v := NewValidator(nil)
	steps := []string{
		"First, heat the oil in a pan.",
		"Then add the onions and stir until golden.",
	}
	assert.True(t, v.IsValidSteps(context.Background(), steps))
}
