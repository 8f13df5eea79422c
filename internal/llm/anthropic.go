package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const maxScriptExcerpt = 1000

// AnthropicClient talks to the Claude Messages API.
type AnthropicClient struct {
	client anthropic.Client
}

func NewAnthropicClient(apiKey string) *AnthropicClient {
	return &AnthropicClient{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
	}
}

func (c *AnthropicClient) AnalyzeContent(ctx context.Context, input string, lang Language, settings ModelSettings) (BilingualAnalysis, error) {
	content := strings.TrimSpace(input)
	if isURL(content) {
		extracted, err := c.extractFromURL(ctx, content, settings)
		if err != nil {
			content = fmt.Sprintf("(System: Failed to extract. Analysis based on URL context only.) %s", content)
		} else {
			content = extracted
		}
	}
	raw, err := c.complete(ctx, fmt.Sprintf(analysisPrompt, content), settings, 8192)
	if err != nil {
		return BilingualAnalysis{}, fmt.Errorf("%w: %v", ErrAnalysis, err)
	}
	var analysis BilingualAnalysis
	if err := decodeJSON(raw, &analysis); err != nil {
		return BilingualAnalysis{}, fmt.Errorf("%w: %v", ErrAnalysis, err)
	}
	return analysis, nil
}

func (c *AnthropicClient) GenerateScript(ctx context.Context, params ScriptParams, lang Language, settings ModelSettings) (GeneratedContent, error) {
	instruction := langInstructionZH
	if lang == LangEN {
		instruction = langInstructionEN
	}
	prompt := fmt.Sprintf(generationPrompt,
		params.Topic, params.Audience, params.HookType, params.StructureType, params.EmotionType, instruction)
	raw, err := c.complete(ctx, prompt, settings, 4096)
	if err != nil {
		return GeneratedContent{}, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	var content GeneratedContent
	if err := decodeJSON(raw, &content); err != nil {
		return GeneratedContent{}, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return content, nil
}

func (c *AnthropicClient) GenerateMediaPrompts(ctx context.Context, script, platform string, settings ModelSettings) (MediaPrompts, error) {
	excerpt := truncateExcerpt(script, maxScriptExcerpt)
	raw, err := c.complete(ctx, fmt.Sprintf(mediaPromptPrompt, platform, excerpt), settings, 1024)
	if err != nil {
		return MediaPrompts{}, fmt.Errorf("%w: %v", ErrPrompt, err)
	}
	var prompts MediaPrompts
	if err := decodeJSON(raw, &prompts); err != nil {
		return MediaPrompts{}, fmt.Errorf("%w: %v", ErrPrompt, err)
	}
	return prompts, nil
}

func (c *AnthropicClient) extractFromURL(ctx context.Context, rawURL string, settings ModelSettings) (string, error) {
	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(settings.ModelName),
		MaxTokens: 4096,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(fmt.Sprintf(extractionPrompt, rawURL))),
		},
	})
	if err != nil {
		return "", err
	}
	if len(msg.Content) == 0 {
		return "", fmt.Errorf("empty extraction response")
	}
	return msg.Content[0].Text, nil
}

func (c *AnthropicClient) complete(ctx context.Context, prompt string, settings ModelSettings, maxTokens int64) (string, error) {
	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(settings.ModelName),
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(settings.Temperature),
		TopK:        anthropic.Int(int64(settings.TopK)),
		TopP:        anthropic.Float(settings.TopP),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", err
	}
	if len(msg.Content) == 0 {
		return "", fmt.Errorf("empty model response")
	}
	return msg.Content[0].Text, nil
}

// truncateExcerpt caps the script at maxLen bytes without splitting a
// multi-byte rune at the cut point.
func truncateExcerpt(script string, maxLen int) string {
	if len(script) <= maxLen {
		return script
	}
	for maxLen > 0 && !utf8.RuneStart(script[maxLen]) {
		maxLen--
	}
	return script[:maxLen]
}

func decodeJSON(raw string, out interface{}) error {
	jsonStr, err := extractJSON(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(jsonStr), out)
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}

// isURL decides whether the analysis input is a link rather than pasted
// content.
func isURL(text string) bool {
	trimmed := strings.TrimSpace(text)
	if strings.ContainsAny(trimmed, " \n\t") {
		return false
	}
	if parsed, err := url.Parse(trimmed); err == nil && parsed.Scheme != "" && parsed.Host != "" {
		return true
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") || strings.HasPrefix(trimmed, "www.") {
		return true
	}
	return strings.Contains(trimmed, ".com") || strings.Contains(trimmed, ".cn")
}
