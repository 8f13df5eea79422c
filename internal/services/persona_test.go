package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceRuleTable(t *testing.T) {
	hook, structure, ok := PreferenceRule(PrefStory)
	require.True(t, ok)
	assert.Equal(t, HookIdentityResonance, hook)
	assert.Equal(t, StructureStoryConflictTwist, structure)

	hook, structure, ok = PreferenceRule(PrefEmotion)
	require.True(t, ok)
	assert.Equal(t, HookStrongOpinion, hook)
	assert.Equal(t, StructureContrastSlapSolution, structure)

	_, _, ok = PreferenceRule(ContentPreference("Unknown"))
	assert.False(t, ok)
}

func TestDeriveParamsFollowsPersona(t *testing.T) {
	profile := DefaultPersona()
	profile.ContentPreference = PrefLogic
	profile.EmotionalState = StateConfused

	params := DeriveParams(profile, GeneratorParams{
		HookType:      HookRiskWarning,
		StructureType: StructureProblemAmplifySolve,
		EmotionType:   EmotionHope,
	})
	assert.Equal(t, StructurePhenomenonReverse, params.StructureType)
	assert.Equal(t, EmotionCuriosity, params.EmotionType)
	// The hook selection is never overwritten by derivation.
	assert.Equal(t, HookRiskWarning, params.HookType)
}

func TestDeriveParamsIsDeterministic(t *testing.T) {
	profile := DefaultPersona()
	profile.ContentPreference = PrefStory
	current := GeneratorParams{HookType: HookPainPoint}
	first := DeriveParams(profile, current)
	second := DeriveParams(profile, current)
	assert.Equal(t, first, second)
	assert.Equal(t, StructureStoryConflictTwist, first.StructureType)
}

func TestTogglePainPointCapsAtTwo(t *testing.T) {
	profile := DefaultPersona()
	profile.PainPoints = nil

	profile = profile.TogglePainPoint(PainNoResults)
	profile = profile.TogglePainPoint(PainNoTime)
	require.Len(t, profile.PainPoints, 2)

	// Third distinct pain point is silently ignored.
	profile = profile.TogglePainPoint(PainAnxiety)
	assert.Equal(t, []PainPoint{PainNoResults, PainNoTime}, profile.PainPoints)

	// Toggling an existing one removes it and frees a slot.
	profile = profile.TogglePainPoint(PainNoResults)
	require.Len(t, profile.PainPoints, 1)
	profile = profile.TogglePainPoint(PainAnxiety)
	assert.Equal(t, []PainPoint{PainNoTime, PainAnxiety}, profile.PainPoints)
}

func TestPersonaValidateRejectsUnknownValues(t *testing.T) {
	profile := DefaultPersona()
	require.NoError(t, profile.Validate())

	bad := profile
	bad.Platform = Platform("MySpace")
	require.Error(t, bad.Validate())

	bad = profile
	bad.PainPoints = []PainPoint{PainNoTime, PainNoMethod, PainAnxiety}
	require.Error(t, bad.Validate())

	bad = profile
	bad.ContentPreference = ContentPreference("Vibes")
	require.Error(t, bad.Validate())
}

func TestAudienceSummaryFlattensProfile(t *testing.T) {
	profile := DefaultPersona()
	profile.PainPoints = []PainPoint{PainNoResults, PainNoTime}
	summary := AudienceSummary(profile)
	assert.Contains(t, summary, "Platform: Xiaohongshu")
	assert.Contains(t, summary, "Pain Points: No Results, No Time")
	assert.Contains(t, summary, "Content Preference: Direct")
}

func TestEmotionForCoversAllStates(t *testing.T) {
	for _, opt := range EmotionalStateOptions {
		emotion, ok := EmotionFor(EmotionalState(opt.ID))
		require.True(t, ok, "state %s has no emotion mapping", opt.ID)
		assert.NotEmpty(t, emotion)
	}
}
