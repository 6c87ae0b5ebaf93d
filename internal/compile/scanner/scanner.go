package scanner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"codeberg.org/rileyq/pico/internal/compile/token"
)

var (
	ErrUnterminatedString  = errors.New("unterminated string literal")
	ErrInvalidEscape       = errors.New("invalid escape sequence")
	ErrUnexpectedCharacter = errors.New("unexpected character")
)

type Scanner struct {
	rd *runeScanner
}

func New(rd io.Reader) *Scanner {
	return &Scanner{rd: newRuneScanner(bufio.NewReader(rd))}
}

// Scan returns the next token, or io.EOF once the input is exhausted.
func (s *Scanner) Scan() (token.Token, error) {
	err := s.skipSpace()
	if err != nil {
		return token.Token{}, err
	}

	s.rd.Begin()

	r, err := s.next()
	if err != nil {
		return token.Token{}, err
	}

	if r == '\n' {
		return s.token(token.Newline), nil
	} else if isIdentifierStart(r) {
		return s.identifier()
	} else if r == '"' {
		return s.string()
	} else if r == '/' {
		return s.comment()
	}

	for _, c := range token.Fixed.Children {
		if c.Rune == r && c.Type != token.Invalid {
			return s.token(c.Type), nil
		}
	}

	return token.Token{}, s.error(s.rd.start, fmt.Errorf("%w %q", ErrUnexpectedCharacter, r))
}

func (s *Scanner) comment() (token.Token, error) {
	start := s.rd.start
	r, err := s.next()
	if err != nil && !errors.Is(err, io.EOF) {
		return token.Token{}, err
	}
	if err != nil || r != '/' {
		return token.Token{}, s.error(start, fmt.Errorf("%w %q", ErrUnexpectedCharacter, '/'))
	}
	for {
		r, err = s.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return token.Token{}, err
		}
		if r == '\n' {
			s.rewind()
			break
		}
	}
	return s.token(token.Comment), nil
}

func (s *Scanner) string() (token.Token, error) {
	start := s.rd.start
	var b strings.Builder

	for {
		r, err := s.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return token.Token{}, s.error(start, ErrUnterminatedString)
			}
			return token.Token{}, err
		}
		switch r {
		case '"':
			tok := s.token(token.String)
			tok.Text = b.String()
			return tok, nil
		case '\n':
			return token.Token{}, s.error(start, ErrUnterminatedString)
		case '\\':
			escPos := s.rd.lastPos
			r, err = s.next()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return token.Token{}, s.error(start, ErrUnterminatedString)
				}
				return token.Token{}, err
			}
			switch r {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '0':
				b.WriteByte(0)
			case '\\', '"':
				b.WriteRune(r)
			default:
				return token.Token{}, s.error(escPos, fmt.Errorf("%w \\%c", ErrInvalidEscape, r))
			}
		default:
			b.WriteRune(r)
		}
	}
}

func (s *Scanner) identifier() (token.Token, error) {
	for {
		r, err := s.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return token.Token{}, err
		}
		if !isIdentifierContinue(r) {
			s.rewind()
			break
		}
	}

	tok := s.token(token.Identifier)
	tok.Type = token.Lookup(tok.Text)
	return tok, nil
}

func (s *Scanner) token(typ token.Type) token.Token {
	start, end, text := s.rd.End()
	return token.Token{
		Type: typ,
		Pos:  start,
		End:  end,
		Text: text,
	}
}

func (s *Scanner) skipSpace() error {
	for {
		r, err := s.next()
		if err != nil {
			return err
		}
		if r == '\n' || !unicode.IsSpace(r) {
			s.rewind()
			return nil
		}
	}
}

func (s *Scanner) next() (rune, error) {
	r, _, err := s.rd.ReadRune()
	if err != nil {
		return r, err
	}
	return r, nil
}

func (s *Scanner) rewind() {
	err := s.rd.UnreadRune()
	if err != nil {
		panic(err)
	}
}

func (s *Scanner) error(pos token.Position, err error) error {
	s.rd.End()
	return &ScanError{Pos: pos, Err: err}
}

// Lines scans all of rd and groups the tokens by source line. Comments,
// newlines and lines without tokens are dropped.
func Lines(rd io.Reader) ([][]token.Token, error) {
	scn := New(rd)

	var lines [][]token.Token
	var line []token.Token

	for {
		tok, err := scn.Scan()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		switch tok.Type {
		case token.Comment:
		case token.Newline:
			if len(line) > 0 {
				lines = append(lines, line)
				line = nil
			}
		default:
			line = append(line, tok)
		}
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}

	return lines, nil
}

type ScanError struct {
	Pos token.Position
	Err error
}

func (err *ScanError) Error() string {
	return fmt.Sprintf("Lexical error: (%s) %v", err.Pos, err.Err)
}

func (err *ScanError) Unwrap() error {
	return err.Err
}

func isIdentifierStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentifierContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

type runeScanner struct {
	rd        io.RuneScanner
	pos       token.Position
	lastPos   token.Position
	canUnread bool
	recording bool
	buf       []rune
	start     token.Position
}

func newRuneScanner(rd io.RuneScanner) *runeScanner {
	return &runeScanner{rd: rd, pos: token.Position{Line: 1, Column: 1}}
}

func (r *runeScanner) Begin() {
	r.recording = true
	r.buf = r.buf[:0]
	r.start = r.pos
}

func (r *runeScanner) End() (token.Position, token.Position, string) {
	r.recording = false
	return r.start, r.pos, string(r.buf)
}

func (r *runeScanner) ReadRune() (rune, int, error) {
	ru, sz, err := r.rd.ReadRune()
	if err != nil {
		r.canUnread = false
		return ru, sz, err
	}
	r.lastPos = r.pos
	r.canUnread = true
	if ru == '\n' {
		r.pos.Line++
		r.pos.Column = 1
	} else {
		r.pos.Column++
	}
	if r.recording {
		r.buf = append(r.buf, ru)
	}
	return ru, sz, err
}

func (r *runeScanner) UnreadRune() error {
	if !r.canUnread {
		return errors.New("invalid use of UnreadRune")
	}
	err := r.rd.UnreadRune()
	if err != nil {
		return err
	}
	r.pos = r.lastPos
	r.canUnread = false
	if r.recording {
		r.buf = r.buf[:len(r.buf)-1]
	}
	return err
}
