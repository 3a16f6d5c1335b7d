package spotlight

import (
	"errors"
	"fmt"
	"strconv"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ErrPathSyntax is wrapped by every PathError.
var ErrPathSyntax = errors.New("path syntax error")

// PathError reports where a PathString stopped parsing.
type PathError struct {
	Offset int
	Msg    string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("path data at offset %d: %s", e.Offset, e.Msg)
}

func (e *PathError) Unwrap() error { return ErrPathSyntax }

// ParsePath converts SVG path data into a path.Data. Supported commands are
// M L H V Q T C S Z in absolute and relative form. On a syntax error the
// segments parsed so far are returned together with a *PathError, matching
// the SVG rule that a path is rendered up to its first error.
func ParsePath(d PathString) (*path.Data, error) {
	p := &pathParser{s: string(d), out: &path.Data{}}
	err := p.run()
	return p.out, err
}

type pathParser struct {
	s   string
	pos int
	out *path.Data

	cur, start vec.Vec2 // current point and sub-path start
	ctrl       vec.Vec2 // last control point, for S and T reflection
	lastCmd    byte
	open       bool // a MoveTo has been emitted
}

func (p *pathParser) run() error {
	var cmd byte
	for {
		p.skipSpace()
		if p.pos >= len(p.s) {
			return nil
		}
		c := p.s[p.pos]
		if isPathCommand(c) {
			cmd = c
			p.pos++
		} else if cmd == 0 || !startsNumber(c) {
			return p.fail(fmt.Sprintf("unexpected %q", c))
		} else if cmd == 'Z' || cmd == 'z' {
			return p.fail("coordinates after closepath")
		}
		// Repeated coordinates after M/m continue as L/l.
		if err := p.segment(cmd); err != nil {
			return err
		}
		switch cmd {
		case 'M':
			cmd = 'L'
		case 'm':
			cmd = 'l'
		}
	}
}

func (p *pathParser) segment(cmd byte) error {
	rel := cmd >= 'a'
	var base vec.Vec2
	if rel {
		base = p.cur
	}
	upper := cmd &^ 0x20

	switch upper {
	case 'M':
		pt, err := p.point(base)
		if err != nil {
			return err
		}
		p.out.MoveTo(pt)
		p.cur, p.start, p.ctrl = pt, pt, pt
		p.open = true

	case 'L':
		pt, err := p.point(base)
		if err != nil {
			return err
		}
		p.lineTo(pt)

	case 'H':
		x, err := p.number()
		if err != nil {
			return err
		}
		pt := vec.Vec2{X: x + base.X, Y: p.cur.Y}
		p.lineTo(pt)

	case 'V':
		y, err := p.number()
		if err != nil {
			return err
		}
		pt := vec.Vec2{X: p.cur.X, Y: y + base.Y}
		p.lineTo(pt)

	case 'Q', 'T':
		var c1 vec.Vec2
		if upper == 'Q' {
			var err error
			if c1, err = p.point(base); err != nil {
				return err
			}
		} else {
			c1 = p.reflect('Q')
		}
		pt, err := p.point(base)
		if err != nil {
			return err
		}
		p.ensureOpen()
		p.out.QuadTo(c1, pt)
		p.cur, p.ctrl = pt, c1

	case 'C', 'S':
		var c1 vec.Vec2
		if upper == 'C' {
			var err error
			if c1, err = p.point(base); err != nil {
				return err
			}
		} else {
			c1 = p.reflect('C')
		}
		c2, err := p.point(base)
		if err != nil {
			return err
		}
		pt, err := p.point(base)
		if err != nil {
			return err
		}
		p.ensureOpen()
		p.out.CubeTo(c1, c2, pt)
		p.cur, p.ctrl = pt, c2

	case 'Z':
		if p.open && p.lastCmd != 'Z' {
			p.out.Close()
		}
		p.cur, p.ctrl = p.start, p.start

	default:
		return p.fail(fmt.Sprintf("unsupported command %q", cmd))
	}
	p.lastCmd = upper
	return nil
}

func (p *pathParser) lineTo(pt vec.Vec2) {
	p.ensureOpen()
	p.out.LineTo(pt)
	p.cur, p.ctrl = pt, pt
}

// ensureOpen starts an implicit sub-path at the current point when a drawing
// command follows Z or appears first.
func (p *pathParser) ensureOpen() {
	if !p.open || p.lastCmd == 'Z' {
		p.out.MoveTo(p.cur)
		p.start = p.cur
		p.open = true
	}
}

// reflect returns the implicit first control point of a smooth segment.
func (p *pathParser) reflect(family byte) vec.Vec2 {
	smooth := byte('T')
	if family == 'C' {
		smooth = 'S'
	}
	if p.lastCmd != family && p.lastCmd != smooth {
		return p.cur
	}
	return vec.Vec2{X: 2*p.cur.X - p.ctrl.X, Y: 2*p.cur.Y - p.ctrl.Y}
}

func (p *pathParser) point(base vec.Vec2) (vec.Vec2, error) {
	x, err := p.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	y, err := p.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	return vec.Vec2{X: x + base.X, Y: y + base.Y}, nil
}

// number scans one SVG number, skipping leading whitespace and commas.
func (p *pathParser) number() (float64, error) {
	p.skipSpace()
	begin := p.pos
	i := p.pos
	if i < len(p.s) && (p.s[i] == '+' || p.s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(p.s) && isDigit(p.s[i]) {
		i++
		digits++
	}
	if i < len(p.s) && p.s[i] == '.' {
		i++
		for i < len(p.s) && isDigit(p.s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, p.fail("expected number")
	}
	if i < len(p.s) && (p.s[i] == 'e' || p.s[i] == 'E') {
		j := i + 1
		if j < len(p.s) && (p.s[j] == '+' || p.s[j] == '-') {
			j++
		}
		if j < len(p.s) && isDigit(p.s[j]) {
			for j < len(p.s) && isDigit(p.s[j]) {
				j++
			}
			i = j
		}
	}
	v, err := strconv.ParseFloat(p.s[begin:i], 64)
	if err != nil {
		return 0, p.fail(fmt.Sprintf("bad number %q", p.s[begin:i]))
	}
	p.pos = i
	return v, nil
}

func (p *pathParser) skipSpace() {
	for p.pos < len(p.s) {
		switch p.s[p.pos] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			p.pos++
		default:
			return
		}
	}
}

func (p *pathParser) fail(msg string) error {
	return &PathError{Offset: p.pos, Msg: msg}
}

func isPathCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'Q', 'q', 'T', 't',
		'C', 'c', 'S', 's', 'Z', 'z', 'A', 'a':
		return true
	}
	return false
}

func startsNumber(c byte) bool {
	return isDigit(c) || c == '-' || c == '+' || c == '.'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// countSubpaths returns the number of MoveTo commands in d.
func countSubpaths(d *path.Data) int {
	n := 0
	for _, c := range d.Cmds {
		if c == path.CmdMoveTo {
			n++
		}
	}
	return n
}

// pathSink receives a replayed path in absolute coordinates.
type pathSink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)
	CubeTo(c1x, c1y, c2x, c2y, x, y float64)
	Close()
}

// replayPath feeds every segment of d to sink in order.
func replayPath(d *path.Data, sink pathSink) {
	i := 0
	for _, c := range d.Cmds {
		switch c {
		case path.CmdMoveTo:
			p := d.Coords[i]
			sink.MoveTo(p.X, p.Y)
			i++
		case path.CmdLineTo:
			p := d.Coords[i]
			sink.LineTo(p.X, p.Y)
			i++
		case path.CmdQuadTo:
			c, p := d.Coords[i], d.Coords[i+1]
			sink.QuadTo(c.X, c.Y, p.X, p.Y)
			i += 2
		case path.CmdCubeTo:
			c1, c2, p := d.Coords[i], d.Coords[i+1], d.Coords[i+2]
			sink.CubeTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
			i += 3
		case path.CmdClose:
			sink.Close()
		}
	}
}
