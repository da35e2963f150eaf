// Package prompts supplies the reflective questions journal entries answer.
package prompts

import (
	"context"
	"log"
	"math/rand"
	"strings"

	"journal/internal/llm"
)

// DefaultPrompts is the built-in prompt list.
var DefaultPrompts = []string{
	"Who was the most interesting person I interacted with today?",
	"What was the best part of my day?",
	"How did I see the hand of the Lord in my life today?",
	"What was the strongest emotion I felt today?",
	"If I had one thing I could do over today, what would it be?",
	"What made me smile today?",
	"What am I grateful for right now?",
	"What challenge did I face today, and how did I handle it?",
}

// Source yields the next prompt to answer.
type Source interface {
	Next(ctx context.Context) (string, error)
}

// Generator picks prompts uniformly from a fixed list. The random source is
// owned by the caller so tests can seed it.
type Generator struct {
	rnd     *rand.Rand
	prompts []string
}

func NewGenerator(rnd *rand.Rand, prompts ...string) *Generator {
	if len(prompts) == 0 {
		prompts = DefaultPrompts
	}
	cp := make([]string, len(prompts))
	copy(cp, prompts)
	return &Generator{rnd: rnd, prompts: cp}
}

func (g *Generator) Random() string {
	return g.prompts[g.rnd.Intn(len(g.prompts))]
}

func (g *Generator) Next(context.Context) (string, error) {
	return g.Random(), nil
}

func (g *Generator) Prompts() []string {
	out := make([]string, len(g.prompts))
	copy(out, g.prompts)
	return out
}

const llmInstruction = "You write prompts for a personal daily journal. " +
	"Reply with exactly one short reflective question about the writer's day, " +
	"without numbering, quotes or any other text."

// LLMSource asks a language model for a fresh prompt and falls back to the
// fixed list whenever the model fails or answers with nothing.
type LLMSource struct {
	client   llm.Client
	fallback *Generator
}

func NewLLMSource(client llm.Client, fallback *Generator) *LLMSource {
	return &LLMSource{client: client, fallback: fallback}
}

func (s *LLMSource) Next(ctx context.Context) (string, error) {
	// a few examples keep the model close to the expected register
	examples := s.fallback.Prompts()
	if len(examples) > 3 {
		examples = examples[:3]
	}
	input := "Examples:\n" + strings.Join(examples, "\n") + "\n\nWrite a new one."
	reply, err := llm.Complete(ctx, s.client, llmInstruction, input)
	if err != nil {
		log.Printf("⚠️ prompt generation failed, using built-in prompt: %v", err)
		return s.fallback.Next(ctx)
	}
	p := clean(reply)
	if p == "" {
		log.Printf("⚠️ prompt generation returned no usable text, using built-in prompt")
		return s.fallback.Next(ctx)
	}
	return p, nil
}

func clean(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	return strings.TrimSpace(strings.Trim(s, `"'«»`))
}
