package prompts

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"journal/internal/config"
	"journal/internal/llm"
)

type fakeLLM struct {
	resp llm.Response
	err  error
	got  []llm.Message
}

func (f *fakeLLM) Generate(ctx context.Context, msgs []llm.Message) (llm.Response, error) {
	f.got = msgs
	return f.resp, f.err
}

func TestGenerator_DeterministicWithSeed(t *testing.T) {
	a := NewGenerator(rand.New(rand.NewSource(7)))
	b := NewGenerator(rand.New(rand.NewSource(7)))
	for i := 0; i < 20; i++ {
		if x, y := a.Random(), b.Random(); x != y {
			t.Fatalf("same seed diverged at %d: %q vs %q", i, x, y)
		}
	}
}

func TestGenerator_OnlyReturnsListedPrompts(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(1)), "a", "b")
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		p, err := g.Next(context.Background())
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if p != "a" && p != "b" {
			t.Fatalf("unexpected prompt %q", p)
		}
		seen[p] = true
	}
	if len(seen) != 2 {
		t.Fatalf("expected both prompts to appear, got %v", seen)
	}
}

func TestGenerator_DefaultsAndCopy(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(1)))
	ps := g.Prompts()
	if len(ps) != len(DefaultPrompts) {
		t.Fatalf("expected default prompts, got %d", len(ps))
	}
	ps[0] = "mutated"
	if g.Prompts()[0] == "mutated" {
		t.Fatalf("prompts mutated via returned slice")
	}
}

func TestLLMSource_UsesModelReply(t *testing.T) {
	f := &fakeLLM{resp: llm.Response{Content: "  \"What did you learn today?\"\nextra"}}
	s := NewLLMSource(f, NewGenerator(rand.New(rand.NewSource(1)), "fallback"))
	p, err := s.Next(context.Background())
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if p != "What did you learn today?" {
		t.Fatalf("unexpected prompt %q", p)
	}
	if len(f.got) != 2 || f.got[0].Role != "system" {
		t.Fatalf("unexpected messages: %+v", f.got)
	}
}

func TestLLMSource_FallsBack(t *testing.T) {
	fb := NewGenerator(rand.New(rand.NewSource(1)), "fallback")
	for _, f := range []*fakeLLM{
		{err: errors.New("boom")},
		{resp: llm.Response{Content: "   "}},
	} {
		p, err := NewLLMSource(f, fb).Next(context.Background())
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if p != "fallback" {
			t.Fatalf("expected fallback prompt, got %q", p)
		}
	}
}

func TestFromConfig(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	if _, ok := FromConfig(&config.Config{PromptSource: config.PromptSourceStatic}, rnd).(*Generator); !ok {
		t.Fatalf("static source should be a Generator")
	}
	// no API key: falls back
	if _, ok := FromConfig(&config.Config{PromptSource: config.PromptSourceOpenAI}, rnd).(*Generator); !ok {
		t.Fatalf("misconfigured openai should fall back to Generator")
	}
	if _, ok := FromConfig(&config.Config{PromptSource: "bogus"}, rnd).(*Generator); !ok {
		t.Fatalf("unknown source should fall back to Generator")
	}
	src := FromConfig(&config.Config{PromptSource: config.PromptSourceOpenAI, OpenAIAPIKey: "k", OpenAIModel: "m"}, rnd)
	if _, ok := src.(*LLMSource); !ok {
		t.Fatalf("expected LLMSource, got %T", src)
	}
}
