package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIClient struct {
	client       *openai.Client
	model        openai.ChatModel
	modelName    string
	systemPrompt string
}

func NewOpenAIClient(apiKey, foundationalPrompt string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	if foundationalPrompt == "" {
		foundationalPrompt = defaultFoundationalPrompt
	}
	return &OpenAIClient{
		client:       &client,
		model:        openai.ChatModelGPT4_1Mini,
		modelName:    "gpt-4.1-mini",
		systemPrompt: foundationalPrompt,
	}
}

func (c *OpenAIClient) GenerateScript(input ScriptInput) (*ScriptResult, error) {
	resp, err := c.client.Chat.Completions.New(context.Background(), openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(buildUserPrompt(input)),
		},
	})

	if err != nil {
		return nil, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from openai")
	}

	script := cleanScriptResponse(resp.Choices[0].Message.Content)
	if script == "" {
		return nil, fmt.Errorf("openai returned an empty script")
	}

	return &ScriptResult{
		Script:        script,
		ModelUsed:     c.modelName,
		PromptVersion: promptVersion,
	}, nil
}
