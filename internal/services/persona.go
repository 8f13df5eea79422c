package services

import (
	"fmt"
	"strings"
)

type Platform string

const (
	PlatformXiaohongshu   Platform = "Xiaohongshu"
	PlatformTikTok        Platform = "TikTok"
	PlatformWeChatChannel Platform = "WeChat Channel"
	PlatformBilibili      Platform = "Bilibili"
	PlatformGeneric       Platform = "Generic"
)

type Stage string

const (
	StageNewbie     Stage = "Newbie"
	StageGrowing    Stage = "Growing"
	StageBottleneck Stage = "Bottleneck"
	StageAdvanced   Stage = "Advanced"
)

type Identity string

const (
	IdentityEmployee     Identity = "Employee"
	IdentityFreelancer   Identity = "Freelancer"
	IdentityStudent      Identity = "Student"
	IdentityParent       Identity = "Parent"
	IdentityCreator      Identity = "Creator"
	IdentityEntrepreneur Identity = "Entrepreneur"
	IdentityGeneral      Identity = "General"
)

type PainPoint string

const (
	PainNoResults    PainPoint = "No Results"
	PainNoMethod     PainPoint = "No Method"
	PainNoResources  PainPoint = "No Resources"
	PainNoTime       PainPoint = "No Time"
	PainNoConfidence PainPoint = "No Confidence"
	PainAnxiety      PainPoint = "Anxiety"
)

type DesiredResult string

const (
	ResultQuickWin     DesiredResult = "Quick Win"
	ResultSteadyGrowth DesiredResult = "Steady Growth"
	ResultRecognition  DesiredResult = "Recognition"
	ResultMoney        DesiredResult = "Money"
	ResultLessStress   DesiredResult = "Less Stress"
)

type EmotionalState string

const (
	StateAnxious  EmotionalState = "Anxious"
	StateConfused EmotionalState = "Confused"
	StateAngry    EmotionalState = "Angry"
	StateHopeful  EmotionalState = "Hopeful"
	StateRational EmotionalState = "Rational"
)

type ContentPreference string

const (
	PrefDirect  ContentPreference = "Direct"
	PrefLogic   ContentPreference = "Logic"
	PrefStory   ContentPreference = "Story"
	PrefList    ContentPreference = "List"
	PrefEmotion ContentPreference = "Emotion"
)

type HookType string

const (
	HookPainPoint         HookType = "Pain Point"
	HookCounterIntuitive  HookType = "Counter-Intuitive"
	HookResultFirst       HookType = "Result First"
	HookIdentityResonance HookType = "Identity Resonance"
	HookRiskWarning       HookType = "Risk Warning"
	HookStrongOpinion     HookType = "Strong Opinion"
)

type StructureType string

const (
	StructureProblemAmplifySolve  StructureType = "Problem-Amplify-Solve"
	StructurePhenomenonReverse    StructureType = "Phenomenon-Reverse-Reason-Method"
	StructureStoryConflictTwist   StructureType = "Story-Conflict-Twist-Conclusion"
	StructureContrastSlapSolution StructureType = "Contrast-Slap-Solution"
)

type EmotionType string

const (
	EmotionAnxiety     EmotionType = "Anxiety"
	EmotionHope        EmotionType = "Hope"
	EmotionAnger       EmotionType = "Anger"
	EmotionCuriosity   EmotionType = "Curiosity"
	EmotionAchievement EmotionType = "Achievement"
)

// Option is a selectable value with its display labels. The ID doubles as
// the canonical wire value.
type Option struct {
	ID string `json:"id"`
	ZH string `json:"zh"`
	EN string `json:"en"`
}

var PlatformOptions = []Option{
	{ID: string(PlatformXiaohongshu), ZH: "小红书", EN: "RedNote"},
	{ID: string(PlatformTikTok), ZH: "抖音", EN: "TikTok"},
	{ID: string(PlatformWeChatChannel), ZH: "视频号", EN: "WeChat Video"},
	{ID: string(PlatformBilibili), ZH: "B站", EN: "Bilibili"},
	{ID: string(PlatformGeneric), ZH: "通用/不确定", EN: "Generic"},
}

var StageOptions = []Option{
	{ID: string(StageNewbie), ZH: "新手/小白", EN: "Newbie"},
	{ID: string(StageGrowing), ZH: "成长期", EN: "Growing"},
	{ID: string(StageBottleneck), ZH: "卡瓶颈期", EN: "Bottleneck"},
	{ID: string(StageAdvanced), ZH: "进阶期", EN: "Advanced"},
}

var IdentityOptions = []Option{
	{ID: string(IdentityEmployee), ZH: "打工人", EN: "Employee"},
	{ID: string(IdentityFreelancer), ZH: "自由职业", EN: "Freelancer"},
	{ID: string(IdentityStudent), ZH: "学生", EN: "Student"},
	{ID: string(IdentityParent), ZH: "宝妈/家庭主理", EN: "Parent"},
	{ID: string(IdentityCreator), ZH: "创作者", EN: "Creator"},
	{ID: string(IdentityEntrepreneur), ZH: "创业者", EN: "Entrepreneur"},
	{ID: string(IdentityGeneral), ZH: "泛人群", EN: "General"},
}

var PainPointOptions = []Option{
	{ID: string(PainNoResults), ZH: "没结果", EN: "No Results"},
	{ID: string(PainNoMethod), ZH: "没方法", EN: "No Method"},
	{ID: string(PainNoResources), ZH: "没资源", EN: "No Resources"},
	{ID: string(PainNoTime), ZH: "没时间", EN: "No Time"},
	{ID: string(PainNoConfidence), ZH: "没信心", EN: "No Confidence"},
	{ID: string(PainAnxiety), ZH: "容易焦虑", EN: "Anxiety"},
}

var DesiredResultOptions = []Option{
	{ID: string(ResultQuickWin), ZH: "快速见效", EN: "Quick Win"},
	{ID: string(ResultSteadyGrowth), ZH: "稳定提升", EN: "Steady Growth"},
	{ID: string(ResultRecognition), ZH: "被认可/点赞", EN: "Recognition"},
	{ID: string(ResultMoney), ZH: "赚钱/变现", EN: "Make Money"},
	{ID: string(ResultLessStress), ZH: "减少焦虑", EN: "Less Stress"},
}

var EmotionalStateOptions = []Option{
	{ID: string(StateAnxious), ZH: "焦虑型", EN: "Anxious"},
	{ID: string(StateConfused), ZH: "迷茫型", EN: "Confused"},
	{ID: string(StateAngry), ZH: "愤怒型", EN: "Angry"},
	{ID: string(StateHopeful), ZH: "期待型", EN: "Hopeful"},
	{ID: string(StateRational), ZH: "冷静理性型", EN: "Rational"},
}

var ContentPreferenceOptions = []Option{
	{ID: string(PrefDirect), ZH: "直接给结论", EN: "Direct Conclusion"},
	{ID: string(PrefLogic), ZH: "讲清逻辑", EN: "Logic Breakdown"},
	{ID: string(PrefStory), ZH: "故事/案例", EN: "Story/Case"},
	{ID: string(PrefList), ZH: "清单/方法论", EN: "Checklist/Method"},
	{ID: string(PrefEmotion), ZH: "情绪共鸣", EN: "Emotional"},
}

var HookOptions = []Option{
	{ID: string(HookPainPoint), ZH: "痛点直击型", EN: "Pain Point"},
	{ID: string(HookCounterIntuitive), ZH: "反常识型", EN: "Counter-Intuitive"},
	{ID: string(HookResultFirst), ZH: "结果前置型", EN: "Result First"},
	{ID: string(HookIdentityResonance), ZH: "身份共鸣型", EN: "Identity Resonance"},
	{ID: string(HookRiskWarning), ZH: "风险预警型", EN: "Risk Warning"},
	{ID: string(HookStrongOpinion), ZH: "强情绪观点型", EN: "Strong Opinion"},
}

var StructureOptions = []Option{
	{ID: string(StructureProblemAmplifySolve), ZH: "问题 → 放大 → 解决", EN: "Problem-Amplify-Solve"},
	{ID: string(StructurePhenomenonReverse), ZH: "现象 → 反转 → 原因 → 方法", EN: "Phenomenon-Reverse-Reason-Method"},
	{ID: string(StructureStoryConflictTwist), ZH: "故事 → 冲突 → 转折 → 结论", EN: "Story-Conflict-Twist-Conclusion"},
	{ID: string(StructureContrastSlapSolution), ZH: "对比 → 打脸 → 正解", EN: "Contrast-Slap-Solution"},
}

var EmotionOptions = []Option{
	{ID: string(EmotionAnxiety), ZH: "焦虑", EN: "Anxiety"},
	{ID: string(EmotionHope), ZH: "希望", EN: "Hope"},
	{ID: string(EmotionAnger), ZH: "愤怒", EN: "Anger"},
	{ID: string(EmotionCuriosity), ZH: "好奇", EN: "Curiosity"},
	{ID: string(EmotionAchievement), ZH: "成就感", EN: "Achievement"},
}

func optionKnown(options []Option, id string) bool {
	for _, opt := range options {
		if opt.ID == id {
			return true
		}
	}
	return false
}

// MaxPainPoints caps how many pain points a persona can carry at once.
const MaxPainPoints = 2

// PersonaProfile is the full audience description driving generation.
type PersonaProfile struct {
	Platform          Platform          `json:"platform"`
	Stage             Stage             `json:"stage"`
	Identity          Identity          `json:"identity"`
	PainPoints        []PainPoint       `json:"painPoints"`
	DesiredResult     DesiredResult     `json:"desiredResult"`
	EmotionalState    EmotionalState    `json:"emotionalState"`
	ContentPreference ContentPreference `json:"contentPreference"`
}

// DefaultPersona mirrors the initial selection presented to a new session.
func DefaultPersona() PersonaProfile {
	return PersonaProfile{
		Platform:          PlatformXiaohongshu,
		Stage:             StageNewbie,
		Identity:          IdentityEmployee,
		PainPoints:        []PainPoint{PainNoResults},
		DesiredResult:     ResultQuickWin,
		EmotionalState:    StateAnxious,
		ContentPreference: PrefDirect,
	}
}

func (p PersonaProfile) Validate() error {
	if !optionKnown(PlatformOptions, string(p.Platform)) {
		return ErrBadRequest(fmt.Sprintf("unknown platform %q", p.Platform))
	}
	if !optionKnown(StageOptions, string(p.Stage)) {
		return ErrBadRequest(fmt.Sprintf("unknown stage %q", p.Stage))
	}
	if !optionKnown(IdentityOptions, string(p.Identity)) {
		return ErrBadRequest(fmt.Sprintf("unknown identity %q", p.Identity))
	}
	if len(p.PainPoints) > MaxPainPoints {
		return ErrBadRequest("at most 2 pain points allowed")
	}
	for _, pain := range p.PainPoints {
		if !optionKnown(PainPointOptions, string(pain)) {
			return ErrBadRequest(fmt.Sprintf("unknown pain point %q", pain))
		}
	}
	if !optionKnown(DesiredResultOptions, string(p.DesiredResult)) {
		return ErrBadRequest(fmt.Sprintf("unknown desired result %q", p.DesiredResult))
	}
	if !optionKnown(EmotionalStateOptions, string(p.EmotionalState)) {
		return ErrBadRequest(fmt.Sprintf("unknown emotional state %q", p.EmotionalState))
	}
	if !optionKnown(ContentPreferenceOptions, string(p.ContentPreference)) {
		return ErrBadRequest(fmt.Sprintf("unknown content preference %q", p.ContentPreference))
	}
	return nil
}

// TogglePainPoint adds or removes a pain point. Adding beyond the cap is a
// silent no-op.
func (p PersonaProfile) TogglePainPoint(pain PainPoint) PersonaProfile {
	for i, existing := range p.PainPoints {
		if existing == pain {
			p.PainPoints = append(append([]PainPoint{}, p.PainPoints[:i]...), p.PainPoints[i+1:]...)
			return p
		}
	}
	if len(p.PainPoints) >= MaxPainPoints {
		return p
	}
	p.PainPoints = append(append([]PainPoint{}, p.PainPoints...), pain)
	return p
}

type preferenceRule struct {
	Hook      HookType
	Structure StructureType
}

var preferenceRules = map[ContentPreference]preferenceRule{
	PrefDirect:  {Hook: HookResultFirst, Structure: StructureProblemAmplifySolve},
	PrefLogic:   {Hook: HookCounterIntuitive, Structure: StructurePhenomenonReverse},
	PrefStory:   {Hook: HookIdentityResonance, Structure: StructureStoryConflictTwist},
	PrefList:    {Hook: HookPainPoint, Structure: StructureProblemAmplifySolve},
	PrefEmotion: {Hook: HookStrongOpinion, Structure: StructureContrastSlapSolution},
}

var emotionalStateRules = map[EmotionalState]EmotionType{
	StateAnxious:  EmotionAnxiety,
	StateConfused: EmotionCuriosity,
	StateAngry:    EmotionAnger,
	StateHopeful:  EmotionHope,
	StateRational: EmotionAchievement,
}

// PreferenceRule exposes the fixed preference mapping table.
func PreferenceRule(pref ContentPreference) (HookType, StructureType, bool) {
	rule, ok := preferenceRules[pref]
	return rule.Hook, rule.Structure, ok
}

// EmotionFor maps the persona's current emotional state to the primary
// emotion used for generation.
func EmotionFor(state EmotionalState) (EmotionType, bool) {
	emotion, ok := emotionalStateRules[state]
	return emotion, ok
}

// GeneratorParams are the engine knobs fed into script generation.
type GeneratorParams struct {
	HookType      HookType      `json:"hookType"`
	StructureType StructureType `json:"structureType"`
	EmotionType   EmotionType   `json:"emotionType"`
}

// DeriveParams applies the persona mapping rules on top of the current
// selection. The structure template and primary emotion follow the persona;
// the hook is only an informational suggestion and is never overwritten
// here, the caller keeps whatever was picked.
func DeriveParams(profile PersonaProfile, current GeneratorParams) GeneratorParams {
	if _, structure, ok := PreferenceRule(profile.ContentPreference); ok {
		current.StructureType = structure
	}
	if emotion, ok := EmotionFor(profile.EmotionalState); ok {
		current.EmotionType = emotion
	}
	return current
}

// AudienceSummary flattens the profile into the audience description string
// embedded into generation prompts.
func AudienceSummary(p PersonaProfile) string {
	pains := make([]string, 0, len(p.PainPoints))
	for _, pain := range p.PainPoints {
		pains = append(pains, string(pain))
	}
	return fmt.Sprintf(
		"Platform: %s, Identity: %s, Stage: %s, Pain Points: %s, Desired Result: %s, Emotional State: %s, Content Preference: %s",
		p.Platform, p.Identity, p.Stage, strings.Join(pains, ", "), p.DesiredResult, p.EmotionalState, p.ContentPreference,
	)
}
