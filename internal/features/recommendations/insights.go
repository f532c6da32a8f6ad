package recommendations

import (
	"context"
	"fmt"
	"strings"

	"github.com/hamzarauf/linkora/internal/features/auth"
	"github.com/hamzarauf/linkora/internal/pkg/llm"
)

// insightTopMatches bounds how many matches the prompt describes
const insightTopMatches = 5

// Summarizer turns a ranked result list into a short narrative via the LLM.
// It is best-effort by contract: callers treat any error as "no insights".
type Summarizer struct {
	client llm.Client
}

// NewSummarizer creates a summarizer over an LLM client
func NewSummarizer(client llm.Client) *Summarizer {
	return &Summarizer{client: client}
}

// Summarize asks the model for a brief overview of why the top matches fit
// the requester. The caller owns the context deadline.
func (s *Summarizer) Summarize(ctx context.Context, requester *auth.User, results []MatchResult) (string, error) {
	if len(results) == 0 {
		return "", nil
	}
	return s.client.Generate(ctx, buildInsightPrompt(requester, results))
}

func buildInsightPrompt(requester *auth.User, results []MatchResult) string {
	var b strings.Builder

	b.WriteString("You are a professional networking assistant. ")
	b.WriteString("Write a short, encouraging summary (2-3 sentences, plain text) of why the following people are good networking matches for the user. ")
	b.WriteString("Do not invent facts beyond the data given.\n\n")

	b.WriteString("User profile:\n")
	if requester.Industry != "" {
		fmt.Fprintf(&b, "- Industry: %s\n", requester.Industry)
	}
	if requester.Location != "" {
		fmt.Fprintf(&b, "- Location: %s\n", requester.Location)
	}
	if len(requester.Goals) > 0 {
		fmt.Fprintf(&b, "- Goals: %s\n", strings.Join(requester.Goals, ", "))
	}
	if len(requester.Interests) > 0 {
		fmt.Fprintf(&b, "- Interests: %s\n", strings.Join(requester.Interests, ", "))
	}

	b.WriteString("\nTop matches:\n")
	top := results
	if len(top) > insightTopMatches {
		top = top[:insightTopMatches]
	}
	for i, match := range top {
		fmt.Fprintf(&b, "%d. %s (match type: %s, score: %.2f)", i+1, match.User.Name, match.MatchType, match.Score)
		if len(match.Reasons) > 0 {
			fmt.Fprintf(&b, ": %s", strings.Join(match.Reasons, "; "))
		}
		b.WriteString("\n")
	}

	return b.String()
}
