package interview

import (
	"fmt"
	"strings"
)

const judgeSystemPrompt = `You are a senior engineer conducting a mock technical interview. ` +
	`After each candidate answer you decide exactly one action: ask a follow-up that probes a gap in the answer, ` +
	`give a small hint when the candidate is stuck, advance to the next question when the answer is adequate, ` +
	`or end the interview early when continuing has no value. ` +
	`Keep the interviewer message short and conversational. Never reveal the full solution.`

// buildJudgeMessage assembles the full turn context for the judgment call.
func buildJudgeMessage(input JudgeInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Persona: %s\n", input.Persona)
	fmt.Fprintf(&b, "Language: %s (respond in this language)\n", input.Language)
	fmt.Fprintf(&b, "Question type: %s\n\n", input.Section)

	fmt.Fprintf(&b, "Question as asked:\n%s\n\n", input.QuestionText)

	if input.SolutionText != "" {
		fmt.Fprintf(&b, "Reference solution (for your judgment only, never reveal):\n%s\n\n", input.SolutionText)
	}

	fmt.Fprintf(&b, "Candidate answer:\n%s\n", input.Transcript)
	if input.Code != "" {
		fmt.Fprintf(&b, "\nCandidate code:\n%s\n", input.Code)
	}

	if len(input.PreviousFollowups) > 0 {
		fmt.Fprintf(&b, "\nFollow-ups already asked on this question (%d):\n", input.FollowupCount)
		for _, f := range input.PreviousFollowups {
			fmt.Fprintf(&b, "- %s\n", f)
		}
		b.WriteString("Do not repeat these. Prefer advancing after two follow-ups.\n")
	}

	return b.String()
}

const refineSystemPrompt = `You are an expert technical interviewer. ` +
	`You rewrite bare interview questions into engaging, scenario-framed prompts ` +
	`while preserving the core technical question exactly.`

// buildRefineMessage builds the rewrite prompt. Non-default languages get
// a translation instruction on top of the scenario framing.
func buildRefineMessage(text, qtype, language string) string {
	var b strings.Builder

	if !isDefaultLanguage(language) {
		fmt.Fprintf(&b, "Translate the question below into professional, natural %s, then refine it.\n", language)
	}
	b.WriteString("Rewrite the question to set a concrete engineering scene ")
	b.WriteString("(a system being built, data being processed) so it reads like a peer discussion, ")
	b.WriteString("not a quiz item. Preserve every technical requirement. ")
	b.WriteString("Output only the final question text.\n\n")

	fmt.Fprintf(&b, "Question type: %s\n", qtype)
	fmt.Fprintf(&b, "Original question: %q\n", text)

	return b.String()
}

func isDefaultLanguage(language string) bool {
	return language == "" || strings.EqualFold(language, "english")
}
