package synth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScriptOpening тестирует выбор вступительной строки
func TestScriptOpening(t *testing.T) {
	tests := []struct {
		name       string
		prompt     string
		wantPrefix string
	}{
		{
			name:       "sample prompt gets the fixed opening",
			prompt:     SamplePrompt,
			wantPrefix: sampleOpening,
		},
		{
			name:       "uppercase sample prompt gets the fixed opening",
			prompt:     strings.ToUpper(SamplePrompt),
			wantPrefix: sampleOpening,
		},
		{
			name:       "other prompts get the templated opening",
			prompt:     "urban farming robots",
			wantPrefix: "Welcome to AI Power. Today's episode explores: urban farming robots. ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := Script(tt.prompt)
			assert.True(t, strings.HasPrefix(script, tt.wantPrefix))
		})
	}
}

// TestScriptSections проверяет, что все тематические секции присутствуют
func TestScriptSections(t *testing.T) {
	script := Script("any prompt")

	for _, section := range scriptSections {
		// секции короче 100 колонок, перенос их не меняет
		assert.Contains(t, script, section)
	}
}

// TestScriptElaborationWordCount проверяет набивку до ~10 минут речи
func TestScriptElaborationWordCount(t *testing.T) {
	script := Script("deep sea mining")

	repeats := strings.Count(script, elaboration)
	wordsPerBlock := len(strings.Fields(elaboration))

	require.Positive(t, repeats)
	assert.GreaterOrEqual(t, repeats*wordsPerBlock, targetWords)
	// только целые абзацы, перебор не больше одного блока
	assert.Less(t, (repeats-1)*wordsPerBlock, targetWords)
}

// TestScriptDeterministic проверяет, что скрипт является чистой функцией промпта
func TestScriptDeterministic(t *testing.T) {
	assert.Equal(t, Script("lunar greenhouses"), Script("lunar greenhouses"))
}

// TestEstimatedMinutes фиксирует константную длительность
func TestEstimatedMinutes(t *testing.T) {
	assert.Equal(t, 10, EstimatedMinutes)
}

// TestWrap тестирует перенос строк по словам
func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		check func(*testing.T, string)
	}{
		{
			name:  "short paragraph is unchanged",
			text:  "a few words",
			width: 100,
			check: func(t *testing.T, got string) {
				assert.Equal(t, "a few words", got)
			},
		},
		{
			name:  "long paragraph wraps within width",
			text:  strings.Repeat("word ", 60),
			width: 100,
			check: func(t *testing.T, got string) {
				for _, line := range strings.Split(got, "\n") {
					assert.LessOrEqual(t, len(line), 100)
				}
				assert.Len(t, strings.Fields(got), 60)
			},
		},
		{
			name:  "paragraph breaks are preserved",
			text:  "first paragraph\n\nsecond paragraph",
			width: 100,
			check: func(t *testing.T, got string) {
				assert.Equal(t, "first paragraph\n\nsecond paragraph", got)
			},
		},
		{
			name:  "word longer than width stays on its own line",
			text:  strings.Repeat("x", 150) + " tail",
			width: 100,
			check: func(t *testing.T, got string) {
				lines := strings.Split(got, "\n")
				require.Len(t, lines, 2)
				assert.Equal(t, strings.Repeat("x", 150), lines[0])
				assert.Equal(t, "tail", lines[1])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, wrap(tt.text, tt.width))
		})
	}
}
