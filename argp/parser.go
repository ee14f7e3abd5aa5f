package argp

import (
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/emitkit/emit"
	"github.com/emitkit/emit/maybe"
)

// Style selects how flag names are spelled on the command line.
type Style uint8

// values for Style
const (
	// StyleUnix spells long flags "--name" and short flags "-n".
	StyleUnix Style = iota

	// StyleDOS spells both long and short flags "/name".
	StyleDOS

	// StyleMasq spells long flags "//name" and short flags "/n".
	StyleMasq
)

// Parameter is one registered flag: a long name, an optional short
// name, an optional description and the owned value container.
type Parameter struct {
	Long  string
	Short string
	Desc  string
	Val   Value

	passed bool
}

// Parser scans command-line tokens against a set of registered
// parameters, converting matched values and printing diagnostics to a
// caller-supplied stream. Pass emit.Discard() to silence them.
type Parser struct {
	style  Style
	args   []string
	params []*Parameter
}

// NewParser returns an empty parser using StyleUnix.
func NewParser() *Parser {
	return &Parser{}
}

// Flag constrains the parameter types the parser can register.
type Flag interface {
	int64 | bool | float64 | string | []string
}

// Arg registers a parameter on p and returns a pointer to the
// destination Parse will fill. The default, when present, is stored
// immediately. Names are registered bare; the active style supplies
// the prefixes.
func Arg[T Flag](p *Parser, long, short, desc string, def maybe.Maybe[T]) *T {
	out := new(T)
	*out = def.ValueOr(*out)

	var val Value
	switch dst := any(out).(type) {
	case *int64:
		val = &Int64Value{dst: dst}
	case *bool:
		val = &BoolValue{dst: dst}
	case *float64:
		val = &Float64Value{dst: dst}
	case *string:
		val = &StringValue{dst: dst}
	case *[]string:
		val = &PackValue{dst: dst}
	}

	p.params = append(p.params, &Parameter{
		Long:  long,
		Short: short,
		Desc:  desc,
		Val:   val,
	})

	return out
}

// Style sets the flag spelling style.
func (p *Parser) Style(s Style) *Parser {
	p.style = s
	return p
}

// TakeArgs hands the parser the raw tokens to scan, without the
// program name.
func (p *Parser) TakeArgs(argv []string) *Parser {
	p.args = argv
	return p
}

// TakeOSArgs hands the parser the current process arguments.
func (p *Parser) TakeOSArgs() *Parser {
	return p.TakeArgs(os.Args[1:])
}

// prefixes returns the long and short flag prefixes for the active
// style.
func (p *Parser) prefixes() (string, string) {
	switch p.style {
	case StyleDOS:
		return "/", "/"
	case StyleMasq:
		return "//", "/"
	default:
		return "--", "-"
	}
}

// isFlag checks whether a token begins like a flag under the active
// style.
func (p *Parser) isFlag(tok string) bool {
	long, short := p.prefixes()
	return strings.HasPrefix(tok, long) || strings.HasPrefix(tok, short)
}

// lookup resolves a prefixed flag token to its parameter, or nil.
func (p *Parser) lookup(tok string) *Parameter {
	long, short := p.prefixes()

	if strings.HasPrefix(tok, long) {
		name := tok[len(long):]
		for _, param := range p.params {
			if param.Long == name {
				return param
			}
		}
	}

	if strings.HasPrefix(tok, short) {
		name := tok[len(short):]
		for _, param := range p.params {
			if param.Short != "" && param.Short == name {
				return param
			}
		}
	}

	return nil
}

// Parse scans the taken arguments. Flags may carry their value inline
// ("--name=value") or as the following token; a flag with neither is
// converted from the empty string, which boolean parameters read as
// true. The first failure stops the scan: a diagnostic is printed to
// out and the error returned.
func (p *Parser) Parse(out *emit.Stream) error {
	for i := 0; i < len(p.args); i++ {
		tok := p.args[i]

		if !p.isFlag(tok) {
			err := errors.Errorf("unexpected token %q", tok)
			p.chunkError(i, out, err.Error())
			return err
		}

		name, inline, hasInline := strings.Cut(tok, "=")

		param := p.lookup(name)
		if param == nil {
			err := errors.Errorf("unknown flag %q", name)
			p.chunkError(i, out, err.Error())
			return err
		}

		if param.passed {
			err := errors.Errorf("flag %q passed more than once", name)
			p.chunkError(i, out, err.Error())
			return err
		}
		param.passed = true

		value := ""
		switch {
		case hasInline:
			value = inline
		case i+1 < len(p.args) && !p.isFlag(p.args[i+1]):
			i++
			value = p.args[i]
		}

		if err := param.Val.Convert(value); err != nil {
			p.chunkError(i, out, err.Error())
			return err
		}
	}

	return nil
}

// Help writes a usage summary of every registered parameter to out.
func (p *Parser) Help(out *emit.Stream) {
	long, short := p.prefixes()

	for _, param := range p.params {
		out.Text("  ").Text(long).Text(param.Long)
		if param.Short != "" {
			out.Text(", ").Text(short).Text(param.Short)
		}
		if param.Desc != "" {
			out.Text("\n      ").Text(param.Desc)
		}
		out.Tok(emit.TokenEndl)
	}
}

// chunkError prints the scanned tokens with a caret under the one at
// index at, followed by the message.
func (p *Parser) chunkError(at int, out *emit.Stream, msg string) {
	pad := 0
	for i, a := range p.args {
		if i < at {
			pad += len(a) + 1
		}
		out.Text(a).Rune(' ')
	}

	out.Tok(emit.TokenEndl)
	out.Text(strings.Repeat(" ", pad)).Rune('^').Rune(' ').Text(msg).Tok(emit.TokenEndl)
}
