package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

type OpenAIClient struct {
	client *openai.Client
	model  string
}

// attributionTransport stamps OpenRouter's app attribution headers on every
// request.
type attributionTransport struct {
	next     http.RoundTripper
	referrer string
	title    string
}

func (t attributionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	if t.referrer != "" {
		out.Header.Set("HTTP-Referer", t.referrer)
	}
	if t.title != "" {
		out.Header.Set("X-Title", t.title)
	}
	return t.next.RoundTrip(out)
}

func NewOpenAI(apiKey, baseURL, model, referrer, title string) *OpenAIClient {
	cc := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cc.BaseURL = baseURL
	}
	if referrer != "" || title != "" {
		cc.HTTPClient = &http.Client{Transport: attributionTransport{
			next:     http.DefaultTransport,
			referrer: referrer,
			title:    title,
		}}
	}
	return &OpenAIClient{client: openai.NewClientWithConfig(cc), model: model}
}

func (c *OpenAIClient) Generate(ctx context.Context, messages []Message) (Response, error) {
	req := openai.ChatCompletionRequest{Model: c.model}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return Response{}, fmt.Errorf("openai completion (%s): %w", c.model, err)
	}
	if len(resp.Choices) == 0 {
		return Response{}, ErrEmptyReply
	}
	return Response{
		Content:     resp.Choices[0].Message.Content,
		Model:       c.model,
		TotalTokens: resp.Usage.TotalTokens,
	}, nil
}
