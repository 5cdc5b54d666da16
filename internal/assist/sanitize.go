package assist

import "strings"

// preamblePatterns are lead-in lines models put before the answer. Each is
// matched as a case-insensitive prefix of a leading line.
var preamblePatterns = []string{
	"here is",
	"here's",
	"here are",
	"sure,",
	"sure!",
	"okay,",
	"certainly",
	"absolutely",
	"of course",
	"i'll ",
	"i've ",
	"rephrased text:",
	"rephrased:",
	"rewritten text:",
}

// signoffPatterns are trailing offers of further help.
var signoffPatterns = []string{
	"let me know",
	"feel free to",
	"hope this helps",
	"is there anything",
	"would you like",
	"i can also",
	"if you need",
	"if you'd like",
}

// maxPreambleLines bounds how much leading text Sanitize may drop.
const maxPreambleLines = 3

// Sanitize strips conversational preamble, sign-offs and wrapping quotes
// from model output so it can be stored in a document field as is.
func Sanitize(content string) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return content
	}
	content = stripPreamble(content)
	content = stripSignoff(content)
	return unquote(strings.TrimSpace(content))
}

func stripPreamble(content string) string {
	lines := strings.SplitN(content, "\n", maxPreambleLines+2)
	n := 0
	for n < len(lines) && n < maxPreambleLines {
		line := strings.TrimSpace(lines[n])
		if line != "" && !matchesAnyPrefix(line, preamblePatterns) {
			break
		}
		n++
	}
	// Never strip the whole answer.
	if n == 0 || n == len(lines) {
		return content
	}
	return strings.Join(lines[n:], "\n")
}

func stripSignoff(content string) string {
	lines := strings.Split(content, "\n")
	end := len(lines)
	for end > 1 {
		line := strings.TrimSpace(lines[end-1])
		if line != "" && !matchesAnyPrefix(line, signoffPatterns) {
			break
		}
		end--
	}
	return strings.Join(lines[:end], "\n")
}

var quotePairs = [][2]string{{`"`, `"`}, {"“", "”"}, {"'", "'"}}

// unquote removes one pair of matching quotes around the whole text.
func unquote(s string) string {
	for _, q := range quotePairs {
		if len(s) <= len(q[0])+len(q[1]) || !strings.HasPrefix(s, q[0]) || !strings.HasSuffix(s, q[1]) {
			continue
		}
		inner := s[len(q[0]) : len(s)-len(q[1])]
		if !strings.Contains(inner, q[0]) {
			return strings.TrimSpace(inner)
		}
	}
	return s
}

func matchesAnyPrefix(line string, patterns []string) bool {
	lower := strings.ToLower(line)
	for _, p := range patterns {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}
