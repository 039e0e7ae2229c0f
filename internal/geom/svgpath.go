package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSVGPath parses an SVG path data string (the "d" attribute syntax)
// into a Path. Supported commands: M, L, H, V, C, Q, Z and their relative
// lowercase forms. Arcs and smooth shorthands are not supported and produce
// an error naming the offending command.
func ParseSVGPath(data string) (Path, error) {
	s := &pathScanner{input: data}
	var b pathBuilder

	var cur Point       // current point
	var subStart Point  // start of the current subpath
	started := false    // a MoveTo has been seen
	lastCmd := byte(0)  // previous command letter, for implicit repeats

	for {
		s.skipSeparators()
		if s.eof() {
			break
		}

		cmd := s.peek()
		if isCommandLetter(cmd) {
			s.next()
			lastCmd = cmd
		} else if lastCmd != 0 {
			// Coordinates following a command repeat it; after M/m the
			// implicit repeat is L/l per the SVG spec.
			switch lastCmd {
			case 'M':
				lastCmd = 'L'
			case 'm':
				lastCmd = 'l'
			}
			cmd = lastCmd
		} else {
			return Path{}, fmt.Errorf("svg path: expected command at %q", s.rest())
		}

		rel := cmd >= 'a' && cmd <= 'z'
		if !started && cmd != 'M' && cmd != 'm' {
			return Path{}, fmt.Errorf("svg path: path must start with a move command, got %q", string(cmd))
		}

		switch cmd {
		case 'M', 'm':
			pt, err := s.point()
			if err != nil {
				return Path{}, err
			}
			if rel && started {
				pt = cur.Add(pt)
			}
			b.moveTo(pt)
			cur, subStart = pt, pt
			started = true

		case 'L', 'l':
			pt, err := s.point()
			if err != nil {
				return Path{}, err
			}
			if rel {
				pt = cur.Add(pt)
			}
			b.lineTo(pt)
			cur = pt

		case 'H', 'h':
			x, err := s.number()
			if err != nil {
				return Path{}, err
			}
			if rel {
				x += cur.X
			}
			pt := Point{x, cur.Y}
			b.lineTo(pt)
			cur = pt

		case 'V', 'v':
			y, err := s.number()
			if err != nil {
				return Path{}, err
			}
			if rel {
				y += cur.Y
			}
			pt := Point{cur.X, y}
			b.lineTo(pt)
			cur = pt

		case 'Q', 'q':
			c, err := s.point()
			if err != nil {
				return Path{}, err
			}
			pt, err := s.point()
			if err != nil {
				return Path{}, err
			}
			if rel {
				c = cur.Add(c)
				pt = cur.Add(pt)
			}
			b.quadTo(c, pt)
			cur = pt

		case 'C', 'c':
			c1, err := s.point()
			if err != nil {
				return Path{}, err
			}
			c2, err := s.point()
			if err != nil {
				return Path{}, err
			}
			pt, err := s.point()
			if err != nil {
				return Path{}, err
			}
			if rel {
				c1 = cur.Add(c1)
				c2 = cur.Add(c2)
				pt = cur.Add(pt)
			}
			b.cubicTo(c1, c2, pt)
			cur = pt

		case 'Z', 'z':
			b.close()
			cur = subStart

		default:
			return Path{}, fmt.Errorf("svg path: unsupported command %q", string(cmd))
		}
	}

	if !started {
		return Path{}, fmt.Errorf("svg path: empty path")
	}
	return b.path(), nil
}

func isCommandLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// pathScanner tokenizes SVG path data: command letters, numbers, and the
// whitespace/comma separators between them.
type pathScanner struct {
	input string
	pos   int
}

func (s *pathScanner) eof() bool   { return s.pos >= len(s.input) }
func (s *pathScanner) peek() byte  { return s.input[s.pos] }
func (s *pathScanner) next() byte  { c := s.input[s.pos]; s.pos++; return c }
func (s *pathScanner) rest() string {
	r := s.input[s.pos:]
	if len(r) > 12 {
		r = r[:12]
	}
	return r
}

func (s *pathScanner) skipSeparators() {
	for !s.eof() {
		switch s.peek() {
		case ' ', '\t', '\n', '\r', ',':
			s.pos++
		default:
			return
		}
	}
}

// number scans one floating point literal, including sign and exponent.
func (s *pathScanner) number() (float64, error) {
	s.skipSeparators()
	start := s.pos
	if !s.eof() && (s.peek() == '+' || s.peek() == '-') {
		s.pos++
	}
	digits := false
	for !s.eof() && s.peek() >= '0' && s.peek() <= '9' {
		s.pos++
		digits = true
	}
	if !s.eof() && s.peek() == '.' {
		s.pos++
		for !s.eof() && s.peek() >= '0' && s.peek() <= '9' {
			s.pos++
			digits = true
		}
	}
	if digits && !s.eof() && (s.peek() == 'e' || s.peek() == 'E') {
		mark := s.pos
		s.pos++
		if !s.eof() && (s.peek() == '+' || s.peek() == '-') {
			s.pos++
		}
		expDigits := false
		for !s.eof() && s.peek() >= '0' && s.peek() <= '9' {
			s.pos++
			expDigits = true
		}
		if !expDigits {
			s.pos = mark
		}
	}
	if !digits {
		return 0, fmt.Errorf("svg path: expected number at %q", s.rest())
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s.input[start:s.pos]), 64)
	if err != nil {
		return 0, fmt.Errorf("svg path: invalid number %q: %w", s.input[start:s.pos], err)
	}
	return v, nil
}

func (s *pathScanner) point() (Point, error) {
	x, err := s.number()
	if err != nil {
		return Point{}, err
	}
	y, err := s.number()
	if err != nil {
		return Point{}, err
	}
	return Point{x, y}, nil
}
