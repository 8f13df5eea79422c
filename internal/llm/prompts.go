package llm

const analysisPrompt = `You are the "ViralAlchemy Engine". Deconstruct the **Author's Intent** and **Logic** of the provided content.

Output the analysis in TWO languages:
1. 'zh' (Simplified Chinese)
2. 'en' (English)

Perform analysis in 4 Modules for EACH language:
Module 1: Quick Conclusion (title, viralType, coreFunction, suitableScenarios)
Module 2: Logic & Reasoning (hookLogic and emotionLogic, each with judgment, reason, evidence, effect)
Module 3: Key Info (keyInfo with coreViewpoint, painPoints, triggerWords, cta)
Module 4: Standardized Engines (hookEngine {type, score}, structureEngine {type, completeness, steps[{name, description, purpose}]}, emotionEngine {primary, curve}, rewardEngine {type, clarityScore, description}, platformEngine {fitScore, interactionHooks}) plus tags

Ensure the translation between ZH and EN is high-quality and culturally adapted.

Output ONLY a valid JSON object of the shape {"zh": {...}, "en": {...}} where each language object carries every module field. No markdown, no explanations.

Content to Analyze: "%s"`

const extractionPrompt = `User provided URL: %s
Task: Extract the transcript or article text. If it is a video, describe the visual flow and audio track.
Important: Extract the content in its ORIGINAL language. Do not translate yet.`

const generationPrompt = `Generate viral content based on the "ViralAlchemy Formula":
Formula = Hook (%[3]s) x Structure (%[4]s) x Emotion (%[5]s).

Parameters:
- Topic: %[1]s
- Target Audience: %[2]s
- Hook Strategy: %[3]s
- Structure Template: %[4]s
- Primary Emotion to Drive: %[5]s

Target Language: %[6]s

You are a viral content generator. You strictly follow the requested structure and hook type.
Output ONLY a valid JSON object: {"script": "<the full script>", "explanation": "<why this works>"}. No markdown, no explanations outside the JSON.`

const mediaPromptPrompt = `Task: Create high-quality AI generation prompts based on the viral script provided.
Platform context: %s
Script: "%s..."

1. posterPrompt: A detailed English prompt for Midjourney/Stable Diffusion to create a viral cover image/poster. Include lighting, composition, style keywords.
2. videoPrompt: A detailed prompt for AI Video Generators (Sora/Runway/Luma) to generate the opening hook scene.
3. visualStyle: 3-5 keywords describing the visual vibe (e.g. "Cyberpunk, High Contrast").

Output ONLY a valid JSON object: {"posterPrompt": "...", "videoPrompt": "...", "visualStyle": "..."}. No markdown.`

const langInstructionZH = "Write the script purely in Simplified Chinese."
const langInstructionEN = "Write the script in English."
