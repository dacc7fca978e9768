package encourage

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIChat is the ChatCompleter backed by the OpenAI chat-completion API.
type OpenAIChat struct {
	client *openai.Client
	model  string
}

func NewOpenAIChat(apiKey, model string) *OpenAIChat {
	return &OpenAIChat{client: openai.NewClient(apiKey), model: model}
}

func (o *OpenAIChat) Complete(ctx context.Context, systemPrompt string) (string, error) {

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion")
	}

	return resp.Choices[0].Message.Content, nil
}
