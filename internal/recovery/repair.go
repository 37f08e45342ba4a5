package recovery

import "strings"

// typographic quote forms the generator occasionally emits in place of
// straight quotes.
var quoteReplacer = strings.NewReplacer(
	"“", `"`, // left double
	"”", `"`, // right double
	"„", `"`, // low double
	"‟", `"`, // reversed double
	"‘", "'", // left single
	"’", "'", // right single
	"′", "'", // prime
	"«", `"`, // guillemets
	"»", `"`,
)

// repairText produces a best-effort valid JSON text from near-JSON input:
// code fence stripped, typographic quotes normalized, control characters
// escaped or blanked, trailing commas removed, and unterminated strings and
// brackets force-closed.
func repairText(s string) string {
	s = stripCodeFence(s)
	s = quoteReplacer.Replace(s)
	s = escapeControlChars(s)
	s = removeTrailingCommas(s)
	return forceClose(strings.TrimSpace(s))
}

// escapeControlChars escapes raw newlines, carriage returns, and tabs inside
// string literals and blanks any other control character. Outside strings,
// JSON whitespace is kept and other control characters are blanked.
func escapeControlChars(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	state := stateNormal
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch state {
		case stateInEscape:
			sb.WriteByte(c)
			state = stateInString
		case stateInString:
			switch {
			case c == '\\':
				sb.WriteByte(c)
				state = stateInEscape
			case c == '"':
				sb.WriteByte(c)
				state = stateNormal
			case c == '\n':
				sb.WriteString(`\n`)
			case c == '\r':
				sb.WriteString(`\r`)
			case c == '\t':
				sb.WriteString(`\t`)
			case c < 0x20:
				// disallowed and unrepresentable without \u escapes; drop
			default:
				sb.WriteByte(c)
			}
		default:
			switch {
			case c == '"':
				sb.WriteByte(c)
				state = stateInString
			case c == '\n' || c == '\r' || c == '\t':
				sb.WriteByte(c)
			case c < 0x20:
				sb.WriteByte(' ')
			default:
				sb.WriteByte(c)
			}
		}
	}
	return sb.String()
}

// removeTrailingCommas drops commas that directly precede a closing bracket,
// ignoring commas inside string literals.
func removeTrailingCommas(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	state := stateNormal
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch state {
		case stateInEscape:
			state = stateInString
		case stateInString:
			if c == '\\' {
				state = stateInEscape
			} else if c == '"' {
				state = stateNormal
			}
		default:
			if c == '"' {
				state = stateInString
			} else if c == ',' && nextCloserFollows(s, i+1) {
				continue
			}
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// nextCloserFollows reports whether the next non-whitespace byte at or after
// pos is a closing bracket (or the end of input, for truncated tails).
func nextCloserFollows(s string, pos int) bool {
	for i := pos; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r':
			continue
		case '}', ']':
			return true
		default:
			return false
		}
	}
	return true
}

// stripCodeFence removes a surrounding markdown code fence, tolerating a
// language identifier on the opening line.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		firstLine := strings.TrimSpace(s[:idx])
		if len(firstLine) < 20 && !strings.ContainsAny(firstLine, " {[") {
			s = s[idx+1:]
		}
	}
	if idx := strings.LastIndex(s, "```"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
