package utils

import "strings"

// Insight text carries a lightweight markup: "**" bold markers and "•"
// bullet markers. ParseInsightDocument turns it into typed blocks so the
// rendering side never interprets raw markup.

type BlockKind string

const (
	BlockHeading   BlockKind = "heading"
	BlockBullet    BlockKind = "bullet"
	BlockParagraph BlockKind = "paragraph"
)

// InsightSpan is a run of text within a block, bold or not.
type InsightSpan struct {
	Text string `json:"text"`
	Bold bool   `json:"bold,omitempty"`
}

// InsightBlock is one rendered unit. Text is the plain content with markers
// stripped; Spans preserve inline emphasis for bullets and paragraphs.
type InsightBlock struct {
	Kind  BlockKind     `json:"kind"`
	Text  string        `json:"text"`
	Spans []InsightSpan `json:"spans,omitempty"`
}

// ParseInsightDocument splits insight markup into ordered blocks. Blank lines
// separate blocks and are dropped.
func ParseInsightDocument(text string) []InsightBlock {
	var blocks []InsightBlock
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") && strings.Count(line, "**") == 2:
			blocks = append(blocks, InsightBlock{
				Kind: BlockHeading,
				Text: strings.TrimSuffix(strings.TrimPrefix(line, "**"), "**"),
			})
		case strings.HasPrefix(line, "•"):
			body := strings.TrimSpace(strings.TrimPrefix(line, "•"))
			spans := splitBoldSpans(body)
			blocks = append(blocks, InsightBlock{Kind: BlockBullet, Text: joinSpans(spans), Spans: spans})
		default:
			spans := splitBoldSpans(line)
			blocks = append(blocks, InsightBlock{Kind: BlockParagraph, Text: joinSpans(spans), Spans: spans})
		}
	}
	return blocks
}

// splitBoldSpans separates "a **b** c" into plain and bold runs. An unclosed
// marker is kept as literal text.
func splitBoldSpans(s string) []InsightSpan {
	var spans []InsightSpan
	for len(s) > 0 {
		open := strings.Index(s, "**")
		if open == -1 {
			spans = append(spans, InsightSpan{Text: s})
			break
		}
		close := strings.Index(s[open+2:], "**")
		if close == -1 {
			spans = append(spans, InsightSpan{Text: s})
			break
		}
		if open > 0 {
			spans = append(spans, InsightSpan{Text: s[:open]})
		}
		spans = append(spans, InsightSpan{Text: s[open+2 : open+2+close], Bold: true})
		s = s[open+2+close+2:]
	}
	return spans
}

func joinSpans(spans []InsightSpan) string {
	var b strings.Builder
	for _, sp := range spans {
		b.WriteString(sp.Text)
	}
	return b.String()
}
