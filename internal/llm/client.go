package llm

import (
	"context"
	"errors"
	"strings"
)

// Roles understood by every provider.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

var ErrEmptyReply = errors.New("llm returned an empty reply")

type Message struct {
	Role    string
	Content string
}

type Response struct {
	Content     string
	Model       string
	TotalTokens int
}

// Client is a chat model that answers a conversation with one reply.
type Client interface {
	Generate(ctx context.Context, messages []Message) (Response, error)
}

// Complete sends one instruction and one user turn and returns the trimmed
// reply text. A blank reply is reported as ErrEmptyReply.
func Complete(ctx context.Context, c Client, instruction, input string) (string, error) {
	resp, err := c.Generate(ctx, []Message{
		{Role: RoleSystem, Content: instruction},
		{Role: RoleUser, Content: input},
	})
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(resp.Content)
	if text == "" {
		return "", ErrEmptyReply
	}
	return text, nil
}
