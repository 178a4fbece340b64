package simplelang

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

var eof = rune(0)

// Scanner represents a lexical scanner for SimpleLang.
type Scanner struct {
	reader      *bufio.Reader
	position    Position
	eof         bool
	bufferIndex int
	bufferSize  int
	buffer      [1024]struct {
		ch       rune
		position Position
	}

	// Errors holds the lexical diagnostics accumulated so far. A scan is
	// never aborted by an error; the offending input is skipped or
	// truncated and scanning continues.
	Errors []Diagnostic
}

// NewScanner returns a new instance of Scanner.
func NewScanner(reader io.Reader) *Scanner {
	return &Scanner{
		reader:   bufio.NewReader(reader),
		position: Position{Line: 1, Column: 1},
	}
}

// Tokenize scans an entire source text and returns the ordered token
// sequence plus any lexical diagnostics. The sequence always ends with a
// single EOF token. Comments are retained as COMMENT tokens for downstream
// filtering.
func Tokenize(source string) ([]Token, []Diagnostic) {
	scanner := NewScanner(strings.NewReader(source))

	tokens := []Token{}
	for {
		token := scanner.Scan()
		tokens = append(tokens, token)
		if token.TokenType == EOF {
			break
		}
	}

	return tokens, scanner.Errors
}

func (s *Scanner) errorf(pos Position, format string, args ...interface{}) {
	s.Errors = append(s.Errors, Diagnostic{
		Kind:    LexicalError,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	})
}

// read reads the next rune from the buffered reader.
// Returns rune(0) if an error occurs (or io.EOF is returned).
func (s *Scanner) read() (rune, Position) {
	// If we have unread characters then read them off the buffer first.
	if s.bufferSize > 0 {
		s.bufferSize--
		return s.curr()
	}

	// Read next rune from underlying reader.
	// Any error (including io.EOF) should return as EOF.
	ch, _, err := s.reader.ReadRune()
	if err != nil {
		ch = eof
	} else if ch == '\r' {
		if ch, _, err := s.reader.ReadRune(); err != nil {
			// nop
		} else if ch != '\n' {
			_ = s.reader.UnreadRune()
		}
		ch = '\n'
	}

	// Save character and position to the buffer.
	s.bufferIndex = (s.bufferIndex + 1) % len(s.buffer)
	buffer := &s.buffer[s.bufferIndex]
	buffer.ch, buffer.position = ch, s.position

	// Update position.
	// Only count EOF once.
	if ch == '\n' {
		s.position.Line++
		s.position.Column = 1
	} else if !s.eof {
		s.position.Column++
	}

	// Mark the reader as EOF.
	// This is used so we don't double count EOF characters.
	if ch == eof {
		s.eof = true
	}

	return s.curr()
}

// curr returns the last read character and position.
func (s *Scanner) curr() (rune, Position) {
	bufferIndex := (s.bufferIndex - s.bufferSize + len(s.buffer)) % len(s.buffer)
	buffer := &s.buffer[bufferIndex]
	return buffer.ch, buffer.position
}

// Unscan pushes the previously read rune back onto the buffer.
func (s *Scanner) Unscan() {
	s.bufferSize++
}

// Scan returns the next token. Unrecognized characters are reported as
// lexical errors and skipped, so the caller always makes forward progress.
func (s *Scanner) Scan() Token {
	for {
		ch, pos := s.read()

		if isWhitespace(ch) {
			s.scanWhitespace()
			continue
		}

		// If we see a letter then consume as an ID or reserved word.
		if isLetter(ch) || ch == '_' {
			s.Unscan()
			return s.scanIdentifier()
		} else if isDigit(ch) {
			s.Unscan()
			return s.scanNumber()
		}

		switch ch {
		case eof:
			return Token{TokenType: EOF, Lexeme: "", Position: pos}

		case '"':
			return s.scanString(pos)

		case '/':
			ch2, _ := s.read()
			if ch2 == '/' {
				return s.scanComment(pos)
			}

			s.Unscan()
			return Token{TokenType: DIV, Lexeme: string(ch), Position: pos}

		case ':':
			ch2, _ := s.read()
			if ch2 == '=' {
				return Token{TokenType: ASSIGN, Lexeme: ":=", Position: pos}
			}

			s.Unscan()
			s.errorf(pos, "Unexpected character '%c'", ch)
			continue

		case '=':
			ch2, _ := s.read()
			if ch2 == '=' {
				return Token{TokenType: EQ, Lexeme: "==", Position: pos}
			}

			s.Unscan()
			s.errorf(pos, "Unexpected character '%c'", ch)
			continue

		case '!':
			ch2, _ := s.read()
			if ch2 == '=' {
				return Token{TokenType: NEQ, Lexeme: "!=", Position: pos}
			}

			s.Unscan()
			s.errorf(pos, "Unexpected character '%c'", ch)
			continue

		case '<':
			ch2, _ := s.read()
			if ch2 == '=' {
				return Token{TokenType: LTE, Lexeme: "<=", Position: pos}
			}

			s.Unscan()
			return Token{TokenType: LT, Lexeme: string(ch), Position: pos}

		case '>':
			ch2, _ := s.read()
			if ch2 == '=' {
				return Token{TokenType: GTE, Lexeme: ">=", Position: pos}
			}

			s.Unscan()
			return Token{TokenType: GT, Lexeme: string(ch), Position: pos}

		case '+':
			return Token{TokenType: PLUS, Lexeme: string(ch), Position: pos}

		case '-':
			return Token{TokenType: MINUS, Lexeme: string(ch), Position: pos}

		case '*':
			return Token{TokenType: MULT, Lexeme: string(ch), Position: pos}

		case '(':
			return Token{TokenType: LPAREN, Lexeme: string(ch), Position: pos}

		case ')':
			return Token{TokenType: RPAREN, Lexeme: string(ch), Position: pos}

		case ';':
			return Token{TokenType: SEMICOLON, Lexeme: string(ch), Position: pos}

		case ',':
			return Token{TokenType: COMMA, Lexeme: string(ch), Position: pos}
		}

		s.errorf(pos, "Unexpected character '%c'", ch)
	}
}

// scanWhitespace consumes the current rune and all contiguous whitespace.
func (s *Scanner) scanWhitespace() {
	for {
		if ch, _ := s.read(); ch == eof {
			break
		} else if !isWhitespace(ch) {
			s.Unscan()
			break
		}
	}
}

// scanIdentifier consumes the current rune and all contiguous identifier
// runes, then classifies the lexeme against the keyword table.
func (s *Scanner) scanIdentifier() Token {
	ch, pos := s.read()

	var buf bytes.Buffer
	buf.WriteRune(ch)

	for {
		if ch, _ = s.read(); ch == eof {
			break
		} else if !isLetter(ch) && !isDigit(ch) && ch != '_' {
			s.Unscan()
			break
		} else {
			_, _ = buf.WriteRune(ch)
		}
	}

	if tokenType, ok := keywords[buf.String()]; ok {
		return Token{TokenType: tokenType, Lexeme: buf.String(), Position: pos}
	}

	return Token{TokenType: ID, Lexeme: buf.String(), Position: pos}
}

// scanNumber consumes a contiguous series of digits with at most one
// decimal point. A second decimal point raises a lexical error and ends the
// literal; the stray point is left for the next scan.
func (s *Scanner) scanNumber() Token {
	var buf bytes.Buffer
	ch, pos := s.read()

	hasDot := false
	for {
		if ch == '.' {
			if hasDot {
				_, dotPos := s.curr()
				s.errorf(dotPos, "Multiple decimal points in number")
				s.Unscan()
				break
			}
			hasDot = true
		} else if !isDigit(ch) {
			s.Unscan()
			break
		}

		_, _ = buf.WriteRune(ch)
		ch, _ = s.read()
	}

	return Token{TokenType: NUM, Lexeme: buf.String(), Position: pos}
}

// scanString consumes a double-quoted string literal. The opening quote has
// already been read. A backslash copies the following character verbatim.
// An unterminated string produces an ERROR token plus a lexical error, but
// does not abort the scan.
func (s *Scanner) scanString(pos Position) Token {
	var buf bytes.Buffer
	for {
		ch, chPos := s.read()
		if ch == eof {
			s.errorf(chPos, "Unterminated string")
			return Token{TokenType: ILLEGAL, Lexeme: buf.String(), Position: pos}
		} else if ch == '"' {
			return Token{TokenType: STRLITERAL, Lexeme: buf.String(), Position: pos}
		} else if ch == '\\' {
			ch2, _ := s.read()
			if ch2 == eof {
				s.errorf(chPos, "Unterminated string")
				return Token{TokenType: ILLEGAL, Lexeme: buf.String(), Position: pos}
			}
			_, _ = buf.WriteRune(ch2)
		} else {
			_, _ = buf.WriteRune(ch)
		}
	}
}

// scanComment consumes a line comment up to (but not including) the end of
// the line. Both leading slashes have already been read.
func (s *Scanner) scanComment(pos Position) Token {
	var buf bytes.Buffer
	buf.WriteString("//")

	for {
		if ch, _ := s.read(); ch == eof {
			break
		} else if ch == '\n' {
			s.Unscan()
			break
		} else {
			_, _ = buf.WriteRune(ch)
		}
	}

	return Token{TokenType: COMMENT, Lexeme: buf.String(), Position: pos}
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n'
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
