package insightinfra

import "fmt"

// Excerpt caps bound request size and cost. Hard cuts by rune, no
// word-boundary trimming.
const (
	JobExcerptLimit    = 1200
	ResumeExcerptLimit = 1500
)

func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

const openAISystemPrompt = "You are an expert HR recruiter. Provide specific, professional candidate analysis."

func openAIUserPrompt(jobDescription, resumeText string) string {
	return fmt.Sprintf(`You are an expert HR recruiter analyzing candidate fit.

Job Description: %s

Candidate Resume: %s

Generate a concise 3-sentence analysis explaining:
1. Why this candidate is an excellent fit for this specific role
2. Their strongest matching qualifications
3. The unique value they would bring to the position

Format as professional recruiter insights, not a generic summary.`,
		truncateRunes(jobDescription, JobExcerptLimit),
		truncateRunes(resumeText, ResumeExcerptLimit))
}

func anthropicPrompt(jobDescription, resumeText string) string {
	return fmt.Sprintf(`As a senior talent acquisition specialist, analyze this candidate's fit:

Position Requirements: %s

Candidate Profile: %s

Provide 3 specific insights:
- Primary strength alignment with role requirements
- Standout qualifications that differentiate this candidate
- Potential impact they could make in this position

Keep analysis professional and specific to this role-candidate match.`,
		truncateRunes(jobDescription, JobExcerptLimit),
		truncateRunes(resumeText, ResumeExcerptLimit))
}

func googlePrompt(jobDescription, resumeText string) string {
	return fmt.Sprintf(`Analyze this candidate's fit as an expert recruiter:

Job: %s

Candidate: %s

Write 3 sentences explaining: 1) Best qualification match 2) Unique strengths 3) Value they'd bring. Be specific and professional.`,
		truncateRunes(jobDescription, JobExcerptLimit),
		truncateRunes(resumeText, ResumeExcerptLimit))
}

const groqSystemPrompt = "You are an expert recruiter. Be specific and professional."

func groqPrompt(jobDescription, resumeText string) string {
	return fmt.Sprintf(`Job Requirements: %s

Candidate Background: %s

Why is this candidate ideal for this job? Give 3 specific reasons focusing on skills match, experience relevance, and potential contribution.`,
		truncateRunes(jobDescription, JobExcerptLimit),
		truncateRunes(resumeText, ResumeExcerptLimit))
}

func ollamaPrompt(jobDescription, resumeText string) string {
	return fmt.Sprintf(`Job: %s

Resume: %s

Why is this candidate ideal for this job? Give 3 specific reasons focusing on skills match, experience relevance, and potential contribution.`,
		truncateRunes(jobDescription, JobExcerptLimit),
		truncateRunes(resumeText, ResumeExcerptLimit))
}
