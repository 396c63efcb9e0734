package synth

import "strings"

const (
	// EstimatedMinutes is a fixed label, not derived from the script
	// length. ~130 words/minute is the assumed speaking rate.
	EstimatedMinutes = 10

	wrapWidth   = 100
	targetWords = 1200
)

// Script builds the podcast script: an opening line, the fixed topic
// sections wrapped to 100 columns, then whole elaboration paragraphs
// repeated until they carry at least 1200 words (~10 minutes of speech).
func Script(prompt string) string {
	parts := make([]string, 0, len(scriptSections)+1)
	parts = append(parts, opening(prompt))

	for _, section := range scriptSections {
		parts = append(parts, wrap(section, wrapWidth))
	}

	elaborationWords := len(strings.Fields(elaboration))
	for words := 0; words < targetWords; words += elaborationWords {
		parts = append(parts, elaboration)
	}

	return strings.Join(parts, "\n\n")
}

func opening(prompt string) string {
	if strings.EqualFold(prompt, SamplePrompt) {
		return sampleOpening
	}
	return openingPrefix + prompt + openingSuffix
}

// wrap re-flows text to the given column width. Blank-line paragraph
// breaks are kept; within a paragraph words are never split.
func wrap(text string, width int) string {
	paragraphs := strings.Split(text, "\n\n")
	wrapped := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		wrapped = append(wrapped, wrapParagraph(p, width))
	}
	return strings.Join(wrapped, "\n\n")
}

func wrapParagraph(paragraph string, width int) string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		switch {
		case i == 0:
			b.WriteString(word)
			lineLen = len(word)
		case lineLen+1+len(word) > width:
			b.WriteByte('\n')
			b.WriteString(word)
			lineLen = len(word)
		default:
			b.WriteByte(' ')
			b.WriteString(word)
			lineLen += 1 + len(word)
		}
	}
	return b.String()
}
