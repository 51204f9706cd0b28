package ansi

// Control bytes and sequence introducers.
const (
	ESC = 0x1b
	CSI = '[' // Control Sequence Introducer, follows ESC
)

// Parameter sanity limits. Art files found in the wild contain garbage;
// values beyond these are clamped or rejected rather than trusted.
const (
	maxParams     = 32
	maxParamValue = 65535
	maxSeqLen     = 128
)

// ParseEscape parses one escape sequence at the head of data and returns
// its tokens plus the number of bytes consumed. consumed == 0 means data
// does not start with a complete, well-formed sequence; the caller
// decides whether to wait for more bytes or skip.
//
// Only CSI sequences produce tokens. A sequence with no parameters
// yields a single token with Data 0 (parameter defaults belong to the
// consumer). Private-mode markers ('?', '<', '=', '>') after the CSI are
// consumed but carry no token of their own.
func ParseEscape(data []byte) ([]Token, int) {
	if len(data) < 2 || data[0] != ESC {
		return nil, 0
	}
	if data[1] != CSI {
		return nil, parseNonCSI(data)
	}

	i := 2
	limit := len(data)
	if limit > maxSeqLen {
		limit = maxSeqLen
	}

	// Optional private-mode marker
	if i < limit && (data[i] == '?' || data[i] == '<' || data[i] == '=' || data[i] == '>') {
		i++
	}

	var params [maxParams]int
	nparams := 0
	val := 0
	haveDigit := false

	for i < limit {
		b := data[i]
		switch {
		case b >= '0' && b <= '9':
			val = val*10 + int(b-'0')
			if val > maxParamValue {
				val = maxParamValue
			}
			haveDigit = true
			i++
		case b == ';' || b == ':':
			if nparams < maxParams {
				params[nparams] = val
				nparams++
			}
			val = 0
			haveDigit = false
			i++
		case b >= 0x40 && b <= 0x7e:
			// Final byte: flush the pending parameter
			if haveDigit || nparams > 0 {
				if nparams < maxParams {
					params[nparams] = val
					nparams++
				}
			}
			i++
			if nparams == 0 {
				return []Token{{Kind: b, Data: 0}}, i
			}
			toks := make([]Token, nparams)
			for p := 0; p < nparams; p++ {
				toks[p] = Token{Kind: b, Data: params[p]}
			}
			return toks, i
		case b >= 0x20 && b <= 0x2f:
			// Intermediate byte, rare in practice; skip
			i++
		default:
			// Byte that cannot appear in a CSI sequence: malformed
			return nil, 0
		}
	}

	if len(data) > maxSeqLen {
		// Terminator never arrived within the limit: malformed
		return nil, 0
	}
	return nil, 0 // Incomplete
}

// parseNonCSI consumes escape sequences that produce no tokens (OSC
// strings, charset designations, single-byte escapes). Returns bytes
// consumed, 0 if incomplete or unrecognized.
func parseNonCSI(data []byte) int {
	switch data[1] {
	case ']': // OSC: terminated by BEL or ESC \
		for i := 2; i < len(data) && i < maxSeqLen; i++ {
			if data[i] == 0x07 {
				return i + 1
			}
			if data[i] == ESC && i+1 < len(data) && data[i+1] == '\\' {
				return i + 2
			}
		}
		return 0
	case '(', ')': // Charset designation: one more byte
		if len(data) >= 3 {
			return 3
		}
		return 0
	case ESC:
		// ESC ESC: the second ESC may introduce a real sequence, so
		// consume only the first and let scanning restart on the next.
		return 1
	default:
		// Two-byte escape (ESC c, ESC 7, ESC 8, ...)
		return 2
	}
}

// Tokenizer scans a byte stream left to right and yields the tokens of
// every well-formed CSI sequence it contains, lazily and in order.
// Literal text and token-free escapes are skipped. A Tokenizer is
// single-use; create a new one to rescan.
type Tokenizer struct {
	data    []byte
	pos     int
	pending []Token
	next    int
}

// NewTokenizer creates a tokenizer over data. The slice is not copied
// and must not be mutated while the tokenizer is in use.
func NewTokenizer(data []byte) *Tokenizer {
	return &Tokenizer{data: data}
}

// Next returns the next token, or ok == false when the stream is
// exhausted.
func (t *Tokenizer) Next() (Token, bool) {
	for {
		if t.next < len(t.pending) {
			tok := t.pending[t.next]
			t.next++
			return tok, true
		}

		// Find the next escape introducer
		for t.pos < len(t.data) && t.data[t.pos] != ESC {
			t.pos++
		}
		if t.pos >= len(t.data) {
			return Token{}, false
		}

		toks, consumed := ParseEscape(t.data[t.pos:])
		if consumed == 0 {
			// Malformed or truncated: skip the ESC and keep scanning
			t.pos++
			continue
		}
		t.pos += consumed
		if len(toks) > 0 {
			t.pending = toks
			t.next = 0
		}
	}
}
