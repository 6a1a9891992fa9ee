package llm

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// defaultFoundationalPrompt is the built-in show requirements document. A
// producer-edited file takes precedence when one is configured.
const defaultFoundationalPrompt = `You are the head writer for "Market Voices", a daily stock-market news show with two hosts.

Format rules, all mandatory:
1. Every spoken line starts with the host's name and a colon, e.g. "Suzanne: ...".
2. Open with a short intro from the lead host, then a line "[WINNERS]", the winner segments, a line "[LOSERS]", the loser segments, and close with an outro.
3. One stock per segment. Mention the ticker in parentheses, e.g. "Nvidia (NVDA)".
4. Split speaking time evenly between the hosts; neither host covers more than three stock segments in a row.
5. Never reuse an exact phrase longer than three words. Vary financial terminology instead of leaning on the same expression.
6. Keep all facts, numbers and percentages exactly as given in the data. Invent nothing.
7. Professional newscast tone: calm, factual, no hype words.

Output only the script text. No markdown code fences, no commentary.`

// LoadFoundationalPrompt reads the editable requirements document that forms
// the system prompt. A missing file degrades to the built-in default with a
// logged warning so a misplaced document never stops the show.
func LoadFoundationalPrompt(path string) string {
	if path == "" {
		return defaultFoundationalPrompt
	}
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("foundational prompt unreadable, using built-in default", "path", path, "error", err)
		return defaultFoundationalPrompt
	}
	return string(data)
}

// buildUserPrompt formats one day's market data for the model.
func buildUserPrompt(input ScriptInput) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Show date: %s (%s)\n", input.AirDate.Format("2006-01-02"), input.AirDate.Weekday())
	fmt.Fprintf(&sb, "Lead host: %s\n", input.LeadHost)
	fmt.Fprintf(&sb, "Co-host: %s\n", input.CoHost)
	fmt.Fprintf(&sb, "Target runtime: %d minutes\n\n", input.TargetMinutes)

	sb.WriteString("Today's winners:\n")
	writeMovers(&sb, input.Winners)
	sb.WriteString("\nToday's losers:\n")
	writeMovers(&sb, input.Losers)

	return sb.String()
}

func writeMovers(sb *strings.Builder, movers []MoverBrief) {
	if len(movers) == 0 {
		sb.WriteString("  (none)\n")
		return
	}
	for _, m := range movers {
		name := m.Company
		if name == "" {
			name = m.Symbol
		}
		fmt.Fprintf(sb, "- %s (%s): %+.2f%% to $%.2f\n", name, m.Symbol, m.ChangePct, m.Price)
		for _, h := range m.Headlines {
			fmt.Fprintf(sb, "    news: %s\n", h)
		}
	}
}

// cleanScriptResponse strips markdown code fences some models wrap around
// plain-text output.
func cleanScriptResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```text")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
