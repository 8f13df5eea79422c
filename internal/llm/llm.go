// Package llm wraps the model collaborator behind a small interface so the
// HTTP layer and the media workflow never talk to the SDK directly.
package llm

import (
	"context"
	"errors"
)

type Language string

const (
	LangZH Language = "zh"
	LangEN Language = "en"
)

func ParseLanguage(raw string) Language {
	if raw == string(LangEN) {
		return LangEN
	}
	return LangZH
}

var (
	ErrAnalysis   = errors.New("content analysis failed")
	ErrGeneration = errors.New("content generation failed")
	ErrPrompt     = errors.New("media prompt generation failed")
)

// ModelSettings are the sampling knobs exposed through the settings API.
type ModelSettings struct {
	ModelName   string  `json:"modelName"`
	Temperature float64 `json:"temperature"`
	TopK        int     `json:"topK"`
	TopP        float64 `json:"topP"`
}

func DefaultSettings(modelName string) ModelSettings {
	return ModelSettings{
		ModelName:   modelName,
		Temperature: 1,
		TopK:        64,
		TopP:        0.95,
	}
}

type LogicAnalysis struct {
	Judgment string `json:"judgment"`
	Reason   string `json:"reason"`
	Evidence string `json:"evidence"`
	Effect   string `json:"effect"`
}

type KeyInformation struct {
	CoreViewpoint string   `json:"coreViewpoint"`
	PainPoints    []string `json:"painPoints"`
	TriggerWords  []string `json:"triggerWords"`
	CTA           string   `json:"cta"`
}

type EngineScore struct {
	Type  string `json:"type"`
	Score int    `json:"score"`
}

type StructuralStep struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Purpose     string `json:"purpose"`
}

type StructureEngine struct {
	Type         string           `json:"type"`
	Completeness int              `json:"completeness"`
	Steps        []StructuralStep `json:"steps"`
}

type EmotionEngine struct {
	Primary string `json:"primary"`
	Curve   string `json:"curve"`
}

type RewardEngine struct {
	Type         string `json:"type"`
	ClarityScore int    `json:"clarityScore"`
	Description  string `json:"description"`
}

type PlatformEngine struct {
	FitScore         int      `json:"fitScore"`
	InteractionHooks []string `json:"interactionHooks"`
}

// Analysis is one language rendition of a deconstruction.
type Analysis struct {
	Title             string          `json:"title"`
	ViralType         string          `json:"viralType"`
	CoreFunction      string          `json:"coreFunction"`
	SuitableScenarios string          `json:"suitableScenarios"`
	HookLogic         LogicAnalysis   `json:"hookLogic"`
	EmotionLogic      LogicAnalysis   `json:"emotionLogic"`
	KeyInfo           KeyInformation  `json:"keyInfo"`
	HookEngine        EngineScore     `json:"hookEngine"`
	StructureEngine   StructureEngine `json:"structureEngine"`
	EmotionEngine     EmotionEngine   `json:"emotionEngine"`
	RewardEngine      RewardEngine    `json:"rewardEngine"`
	PlatformEngine    PlatformEngine  `json:"platformEngine"`
	Tags              []string        `json:"tags"`
}

type BilingualAnalysis struct {
	ZH Analysis `json:"zh"`
	EN Analysis `json:"en"`
}

func (b BilingualAnalysis) For(lang Language) Analysis {
	if lang == LangEN {
		return b.EN
	}
	return b.ZH
}

type GeneratedContent struct {
	Script      string `json:"script"`
	Explanation string `json:"explanation"`
}

// ScriptParams carry the engine configuration into generation. Audience is
// the flattened persona summary.
type ScriptParams struct {
	Topic         string
	Audience      string
	HookType      string
	StructureType string
	EmotionType   string
}

type MediaPrompts struct {
	PosterPrompt string `json:"posterPrompt"`
	VideoPrompt  string `json:"videoPrompt"`
	VisualStyle  string `json:"visualStyle"`
}

// FallbackMediaPrompts is substituted when the collaborator cannot produce
// prompts, so a derivation never fails outright.
func FallbackMediaPrompts() MediaPrompts {
	return MediaPrompts{
		PosterPrompt: "High quality viral cover image, 4k, trending on artstation",
		VideoPrompt:  "Cinematic shot of the subject, high quality, 4k",
		VisualStyle:  "Modern, Clean",
	}
}

type Client interface {
	AnalyzeContent(ctx context.Context, input string, lang Language, settings ModelSettings) (BilingualAnalysis, error)
	GenerateScript(ctx context.Context, params ScriptParams, lang Language, settings ModelSettings) (GeneratedContent, error)
	GenerateMediaPrompts(ctx context.Context, script, platform string, settings ModelSettings) (MediaPrompts, error)
}
