package recovery

import "strings"

// scanState tracks the tokenizer position relative to JSON string literals.
// Both the balanced-substring extraction and the force-close repair share this
// state machine so they agree on what counts as "inside a string".
type scanState int

const (
	stateNormal scanState = iota
	stateInString
	stateInEscape
)

// balancedSlice returns the longest balanced-bracket JSON object or array
// substring starting at the first '{' or '[' in s. The bracket stack is
// quote-aware: brackets inside string literals are ignored. Returns false if
// no opener is found or the stack never empties.
func balancedSlice(s string) (string, bool) {
	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return "", false
	}

	var stack []byte
	state := stateNormal
	for i := start; i < len(s); i++ {
		c := s[i]
		switch state {
		case stateInEscape:
			state = stateInString
		case stateInString:
			switch c {
			case '\\':
				state = stateInEscape
			case '"':
				state = stateNormal
			}
		default:
			switch c {
			case '"':
				state = stateInString
			case '{', '[':
				stack = append(stack, matchingCloser(c))
			case '}', ']':
				if len(stack) == 0 || stack[len(stack)-1] != c {
					return "", false
				}
				stack = stack[:len(stack)-1]
				if len(stack) == 0 {
					return s[start : i+1], true
				}
			}
		}
	}
	return "", false
}

// forceClose appends whatever closers the input is missing: a terminating
// quote if scanning ends inside a string literal, then the unbalanced
// brackets in reverse nesting order.
func forceClose(s string) string {
	var stack []byte
	state := stateNormal
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch state {
		case stateInEscape:
			state = stateInString
		case stateInString:
			switch c {
			case '\\':
				state = stateInEscape
			case '"':
				state = stateNormal
			}
		default:
			switch c {
			case '"':
				state = stateInString
			case '{', '[':
				stack = append(stack, matchingCloser(c))
			case '}', ']':
				if len(stack) > 0 && stack[len(stack)-1] == c {
					stack = stack[:len(stack)-1]
				}
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(s)
	if state != stateNormal {
		sb.WriteByte('"')
	}
	for i := len(stack) - 1; i >= 0; i-- {
		sb.WriteByte(stack[i])
	}
	return sb.String()
}

func matchingCloser(opener byte) byte {
	if opener == '{' {
		return '}'
	}
	return ']'
}
