package llm

// Per-stage generation temperatures. Creative stages run warm, scoring
// stages run cold.
const (
	TempJobGeneration  = 0.7
	TempResumeScoring  = 0.3
	TempMotivation     = 0.5
	TempChatTurn       = 0.7
	TempChatAssessment = 0.5
	TempSalesEval      = 0.3
	TempInterviewGuide = 0.5
)

// MotivationCategories are the fixed labels the motivation classifier picks
// from.
var MotivationCategories = []string{
	"Деньги",
	"Карьерный рост",
	"Интерес к задачам",
	"Стабильность",
	"Признание",
}

const JobGenerationPrompt = `You are an expert HR copywriter for sales-role recruitment. Create a complete job posting from the brief below.

### BRIEF
Job title: %s
Company: %s
Company description: %s
Sales segment: %s
Salary range: %s
Sales target: %s
Work format: %s
Additional requirements: %s

### INSTRUCTIONS
1. Write the posting in Russian.
2. Keep salary_display faithful to the brief's salary range.
3. Generate 3-5 screening questions; mark a question deal_breaker only when a wrong answer must disqualify the candidate.
4. Output valid JSON only. Do not wrap the output in markdown code blocks.

### OUTPUT SCHEMA
{
    "job_title_final": "polished job title",
    "job_description": "2-3 paragraph posting text",
    "requirements": ["required skill or experience"],
    "nice_to_have": ["optional but welcome"],
    "benefits": ["what the company offers"],
    "screening_questions": [{"question": "...", "type": "yes_no|choice|number", "deal_breaker": false}],
    "salary_display": "human-readable salary string",
    "tags": ["short", "tags"]
}`

const ResumeScoringPrompt = `You are a strict HR analyst screening resumes for a sales role. Score the resume against the job description.

### JOB DESCRIPTION
%s

### RESUME
%s

### INSTRUCTIONS
1. score is 0-100: relevance of experience, sales track record, stability of employment history.
2. red_flags lists concrete risks (frequent job changes, unexplained gaps, no sales experience). Empty list if none.
3. summary is 2-3 sentences in Russian.
4. Output valid JSON only.

### OUTPUT SCHEMA
{"score": 0, "summary": "...", "red_flags": ["..."]}`

const MotivationPrompt = `You are an HR psychologist analyzing a sales candidate's motivation survey.

### SURVEY ANSWERS
What motivates you in sales work: %s
Why are you leaving your current job: %s
How do you feel about KPI-based pay: %s

### INSTRUCTIONS
1. Classify primary_motivation and secondary_motivation, each as exactly one of: %s.
2. analysis_summary is 2-3 sentences in Russian about what drives this candidate.
3. Output valid JSON only.

### OUTPUT SCHEMA
{"primary_motivation": "...", "secondary_motivation": "...", "analysis_summary": "..."}`

const ChatSystemPrompt = `Ты — дружелюбный AI-интервьюер, проводящий поведенческое интервью с кандидатом на позицию менеджера по продажам. Задавай по одному короткому открытому вопросу о прошлом опыте: работа с отказами, достижение целей, конфликтные ситуации, командная работа. Не оценивай ответы вслух и не задавай два вопроса подряд.`

const ChatTurnPrompt = `Диалог с кандидатом:

%s

Задай следующий вопрос интервью. Ответь только текстом вопроса.`

const ChatAssessmentPrompt = `You are an HR analyst. The behavioral interview below is finished. Assess the candidate.

### TRANSCRIPT
%s

### INSTRUCTIONS
1. Score each dimension 0-100: communication, resilience, goal_orientation, self_reflection.
2. final_summary is 3-4 sentences in Russian.
3. Output valid JSON only.

### OUTPUT SCHEMA
{"scores": {"communication": 0, "resilience": 0, "goal_orientation": 0, "self_reflection": 0}, "final_summary": "...", "is_complete": true}`

const SalesEvalPrompt = `You are a head of sales grading a candidate's answers to situational sales cases.

### CASES AND ANSWERS
%s

### INSTRUCTIONS
1. Score each case 0-100 by scenario id in "scores".
2. overall_sales_score is the holistic 0-100 judgement, not necessarily the average.
3. strengths and concerns are short concrete observations in Russian. Empty lists are fine.
4. Output valid JSON only.

### OUTPUT SCHEMA
{"scores": {"s1": 0}, "overall_sales_score": 0, "strengths": ["..."], "concerns": ["..."], "summary": "..."}`

const InterviewGuidePrompt = `You are preparing a hiring manager for the final interview with a sales candidate who passed every automated stage.

### CANDIDATE DOSSIER
%s

### INSTRUCTIONS
1. executive_summary: 3-4 sentences in Russian on who this candidate is.
2. strengths_to_probe: confirmed strengths worth validating live.
3. concerns_to_verify: every red flag and weak score that needs to be checked in person.
4. recommended_questions: 5-7 targeted interview questions.
5. salary_guidance: one sentence on negotiation room given the candidate's expectations.
6. Output valid JSON only.

### OUTPUT SCHEMA
{"executive_summary": "...", "strengths_to_probe": ["..."], "concerns_to_verify": ["..."], "recommended_questions": ["..."], "salary_guidance": "..."}`
