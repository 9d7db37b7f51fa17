package oracle

import (
	"fmt"
	"strings"
	"time"

	"basegraph.app/helpdesk/internal/model"
)

const selectExpertSystemPrompt = `You are an intelligent conversation assignment assistant. Select the most suitable expert from the available expert list for the user's question.

Analysis criteria:
1. Whether the expert's field of expertise (bio) is relevant to the conversation topic
2. Whether the expert's knowledge base links cover related topics
3. Select the best matching expert

Call the select_expert tool exactly once.
- If a suitable expert is found, pass that expert's ID.
- If no suitable expert is found, pass "NONE".`

const rephraseSystemPromptHeader = `You are a helpful assistant responding to user questions on behalf of an expert.
You have access to the expert's FAQ which contains information about common questions.

FAQ:
`

const rephraseSystemPromptRules = `

IMPORTANT INSTRUCTIONS:
1. If the user's question matches or is similar to a question in the FAQ, use that information to answer.
2. REPHRASE the FAQ answer into a natural, direct response to the user.
3. Address the user directly (use "you" not "them").
4. DO NOT copy the FAQ answer verbatim. FAQ answers may contain notes or instructions, so turn them into a proper reply.
5. If the question cannot be answered from the FAQ, answer with exactly "NO_ANSWER".

Keep responses concise and friendly. Call the answer_question tool exactly once.`

const summarizeSystemPrompt = `You are a conversation summarizer. Write a brief summary of a help desk conversation.
The summary must be no more than 2-3 sentences and capture the main topic and any resolution.
Keep it professional and informative. Call the write_summary tool exactly once.`

func buildSelectExpertPrompt(dc DecisionContext, candidates []Candidate) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Conversation Title: %s\n", dc.Title)
	fmt.Fprintf(&b, "Conversation Status: %s\n", dc.Status)
	fmt.Fprintf(&b, "Created At: %s\n", dc.CreatedAt.UTC().Format(time.RFC3339))

	if len(dc.Messages) > 0 {
		b.WriteString("\nConversation Messages:\n")
		for _, m := range dc.Messages {
			fmt.Fprintf(&b, "- [%s]: %s\n", m.Role, m.Content)
		}
	}

	b.WriteString("\nAvailable Experts:\n\n")
	for _, c := range candidates {
		bio := "None"
		if c.Bio != nil && strings.TrimSpace(*c.Bio) != "" {
			bio = *c.Bio
		}
		fmt.Fprintf(&b, "Expert ID: %d\n", c.ID)
		fmt.Fprintf(&b, "Username: %s\n", c.Username)
		fmt.Fprintf(&b, "Bio: %s\n", bio)
		fmt.Fprintf(&b, "Knowledge Base Links: %s\n\n", formatLinks(c.KnowledgeBaseLinks))
	}

	b.WriteString("Analyze the conversation and the experts above and select the most suitable expert.")
	return b.String()
}

func formatLinks(links []string) string {
	if len(links) == 0 {
		return "None"
	}
	return strings.Join(links, ", ")
}

func buildRephraseSystemPrompt(faq []model.FAQEntry) string {
	var b strings.Builder
	b.WriteString(rephraseSystemPromptHeader)
	for i, entry := range faq {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "Q%d: %s\nA%d: %s", i+1, entry.Question, i+1, entry.Answer)
	}
	b.WriteString(rephraseSystemPromptRules)
	return b.String()
}

func buildRephraseUserPrompt(question string) string {
	return fmt.Sprintf("User question: %q\n\nBased on the FAQ above, can you answer this question? "+
		"If yes, give a natural, helpful reply to the user (not a copy of the FAQ text). If no, answer \"NO_ANSWER\".", question)
}

// TranscriptLabel maps a sender role to the label used in summary transcripts.
func TranscriptLabel(role model.SenderRole) string {
	if role == model.SenderRoleInitiator {
		return "User"
	}
	return "Expert"
}

func buildSummarizePrompt(transcript []TranscriptLine) string {
	var b strings.Builder
	b.WriteString("Please summarize this conversation:\n\n")
	for _, line := range transcript {
		fmt.Fprintf(&b, "%s: %s\n", TranscriptLabel(line.Role), line.Content)
	}
	b.WriteString("\nProvide a brief 2-3 sentence summary.")
	return b.String()
}
