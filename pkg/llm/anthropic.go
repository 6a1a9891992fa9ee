package llm

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicClient struct {
	client       *anthropic.Client
	model        anthropic.Model
	modelName    string
	systemPrompt string
}

func NewAnthropicClient(apiKey, foundationalPrompt string) *AnthropicClient {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	if foundationalPrompt == "" {
		foundationalPrompt = defaultFoundationalPrompt
	}
	return &AnthropicClient{
		client:       &client,
		model:        anthropic.Model("claude-haiku-4-5"),
		modelName:    "claude-4.5-haiku",
		systemPrompt: foundationalPrompt,
	}
}

func (c *AnthropicClient) GenerateScript(input ScriptInput) (*ScriptResult, error) {
	resp, err := c.client.Messages.New(context.Background(), anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 8192,
		System: []anthropic.TextBlockParam{
			{Text: c.systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildUserPrompt(input))),
		},
	})

	if err != nil {
		return nil, fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return nil, fmt.Errorf("no response from anthropic")
	}

	script := cleanScriptResponse(resp.Content[0].Text)
	if script == "" {
		return nil, fmt.Errorf("anthropic returned an empty script")
	}

	return &ScriptResult{
		Script:        script,
		ModelUsed:     c.modelName,
		PromptVersion: promptVersion,
	}, nil
}
