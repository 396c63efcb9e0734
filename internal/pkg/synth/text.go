// Pure content synthesizers: prose, SVG visual and podcast script.
// Everything here is a deterministic function of the prompt string.
package synth

import "strings"

// Text returns the essay for the prompt. The showcase prompt gets the
// curated essay; anything else gets the templated vision with the prompt
// interpolated into the opening line.
func Text(prompt string) string {
	if strings.EqualFold(prompt, SamplePrompt) {
		return sampleText
	}
	return visionPrefix + prompt + visionBody
}
