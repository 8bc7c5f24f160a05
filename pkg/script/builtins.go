package script

import (
	"fmt"
	"math"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"
	"github.com/mttstwrt/measurementtools/pkg/selection"
	"github.com/mttstwrt/measurementtools/pkg/shape"
	"github.com/mttstwrt/measurementtools/pkg/voxel"
)

// kwPrefix marks keywords rewritten by preprocessSource.
const kwPrefix = "__kw_"

// preprocessSource rewrites script source into something zygomys reads:
//
//   - ; comments become // comments
//   - :keyword becomes the string "__kw_keyword" (:= is left alone)
//   - a hyphen between identifier characters becomes an underscore, so
//     tube-radius calls tube_radius; a hyphen before a digit or after a
//     space stays a minus sign
//
// String literals, double-quoted or backtick, pass through untouched.
func preprocessSource(source string) string {
	var out strings.Builder
	out.Grow(len(source) + len(source)/4)

	n := len(source)
	for i := 0; i < n; {
		c := source[i]
		switch {
		case c == '"':
			j := i + 1
			for j < n && source[j] != '"' {
				if source[j] == '\\' {
					j++
				}
				j++
			}
			j = min(j+1, n)
			out.WriteString(source[i:j])
			i = j

		case c == '`':
			j := i + 1
			for j < n && source[j] != '`' {
				j++
			}
			j = min(j+1, n)
			out.WriteString(source[i:j])
			i = j

		case c == ';':
			for i < n && source[i] == ';' {
				i++
			}
			j := i
			for j < n && source[j] != '\n' {
				j++
			}
			out.WriteString("//")
			out.WriteString(source[i:j])
			i = j

		case c == ':' && i+1 < n && source[i+1] == '=':
			out.WriteString(":=")
			i += 2

		case c == ':' && i+1 < n && isLetter(source[i+1]):
			j := i + 1
			for j < n && isKWChar(source[j]) {
				j++
			}
			fmt.Fprintf(&out, "%q", kwPrefix+source[i+1:j])
			i = j

		case c == '-' && i > 0 && i+1 < n && isIdentChar(source[i-1]) && isLetter(source[i+1]):
			out.WriteByte('_')
			i++

		default:
			out.WriteByte(c)
			i++
		}
	}
	return out.String()
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isKWChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}

// keyword reports the name of a keyword rewritten by preprocessSource.
func keyword(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok || !strings.HasPrefix(str.S, kwPrefix) {
		return "", false
	}
	return str.S[len(kwPrefix):], true
}

// toName accepts a keyword or a plain string.
func toName(s zygo.Sexp) (string, error) {
	if name, ok := keyword(s); ok {
		return name, nil
	}
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected keyword or string, got %s", s.SexpString(nil))
}

// toInt accepts integers and floats with no fractional part.
func toInt(s zygo.Sexp) (int, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return int(v.Val), nil
	case *zygo.SexpFloat:
		if v.Val == math.Trunc(v.Val) {
			return int(v.Val), nil
		}
		return 0, fmt.Errorf("expected whole number, got %g", v.Val)
	}
	return 0, fmt.Errorf("expected number, got %s", s.SexpString(nil))
}

func toBool(s zygo.Sexp) (bool, error) {
	switch v := s.(type) {
	case *zygo.SexpBool:
		return v.Val, nil
	case *zygo.SexpInt:
		return v.Val != 0, nil
	}
	return false, fmt.Errorf("expected true or false, got %s", s.SexpString(nil))
}

func arity(name string, args []zygo.Sexp, want int) error {
	if len(args) != want {
		return fmt.Errorf("%s: expected %d arguments, got %d", name, want, len(args))
	}
	return nil
}

func intResult(n int) zygo.Sexp {
	return &zygo.SexpInt{Val: int64(n)}
}

type builtin func(sel *selection.Selection, name string, args []zygo.Sexp) (zygo.Sexp, error)

// builtins maps the underscore form of each script function to its
// implementation. Scripts may spell any of them kebab-case.
var builtins = map[string]builtin{
	"shape":          builtinShape,
	"ellipsoid_mode": builtinEllipsoidMode,
	"tube_radius":    builtinTubeRadius,
	"anchor":         builtinAnchor,
	"remove_last":    builtinRemoveLast,
	"clear_anchors":  builtinClearAnchors,
	"layer":          builtinLayer,
	"layer_mode":     builtinLayerMode,
	"layer_up":       builtinLayerUp,
	"layer_down":     builtinLayerDown,
}

func registerBuiltins(env *zygo.Zlisp, sel *selection.Selection) {
	for name, fn := range builtins {
		env.AddFunction(name, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			return fn(sel, name, args)
		})
	}
}

// (shape :box|:cylinder|:ellipsoid|:tube)
func builtinShape(sel *selection.Selection, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if err := arity(name, args, 1); err != nil {
		return zygo.SexpNull, err
	}
	s, err := toName(args[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
	}
	m, err := shape.ParseMode(s)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
	}
	sel.SetMode(m)
	return zygo.SexpNull, nil
}

// (ellipsoid-mode :fit|:center)
func builtinEllipsoidMode(sel *selection.Selection, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if err := arity(name, args, 1); err != nil {
		return zygo.SexpNull, err
	}
	s, err := toName(args[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
	}
	m, err := shape.ParseEllipsoidMode(s)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
	}
	sel.SetEllipsoidMode(m)
	return zygo.SexpNull, nil
}

// (tube-radius r) returns the radius in effect after clamping.
func builtinTubeRadius(sel *selection.Selection, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if err := arity(name, args, 1); err != nil {
		return zygo.SexpNull, err
	}
	r, err := toInt(args[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
	}
	sel.SetTubeRadius(r)
	return intResult(sel.TubeRadius()), nil
}

// (anchor x y z) returns the anchor count.
func builtinAnchor(sel *selection.Selection, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if err := arity(name, args, 3); err != nil {
		return zygo.SexpNull, err
	}
	var xyz [3]int
	for i, a := range args {
		v, err := toInt(a)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
		}
		xyz[i] = v
	}
	sel.Add(voxel.C(xyz[0], xyz[1], xyz[2]))
	return intResult(sel.Len()), nil
}

func builtinRemoveLast(sel *selection.Selection, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if err := arity(name, args, 0); err != nil {
		return zygo.SexpNull, err
	}
	sel.RemoveLast()
	return intResult(sel.Len()), nil
}

func builtinClearAnchors(sel *selection.Selection, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if err := arity(name, args, 0); err != nil {
		return zygo.SexpNull, err
	}
	sel.Clear()
	return zygo.SexpNull, nil
}

// (layer y) turns layer mode on and moves the cursor to absolute height y.
// It clamps against the anchors placed so far.
func builtinLayer(sel *selection.Selection, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if err := arity(name, args, 1); err != nil {
		return zygo.SexpNull, err
	}
	y, err := toInt(args[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
	}
	if !sel.LayerMode() {
		sel.SetLayerMode(true)
	}
	sel.SetLayerY(y)
	return intResult(sel.CurrentLayerY()), nil
}

// (layer-mode bool)
func builtinLayerMode(sel *selection.Selection, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if err := arity(name, args, 1); err != nil {
		return zygo.SexpNull, err
	}
	on, err := toBool(args[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
	}
	sel.SetLayerMode(on)
	return zygo.SexpNull, nil
}

func builtinLayerUp(sel *selection.Selection, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if err := arity(name, args, 0); err != nil {
		return zygo.SexpNull, err
	}
	sel.LayerUp()
	return intResult(sel.CurrentLayerY()), nil
}

func builtinLayerDown(sel *selection.Selection, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if err := arity(name, args, 0); err != nil {
		return zygo.SexpNull, err
	}
	sel.LayerDown()
	return intResult(sel.CurrentLayerY()), nil
}
