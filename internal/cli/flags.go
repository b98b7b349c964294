package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/bjaus/boxtable"
)

// Each value type implements pflag.Value and validates on Set, so bad
// options fail while flags are parsed.

type delimiterValue struct{ r rune }

func (v *delimiterValue) String() string { return string(v.r) }

func (v *delimiterValue) Set(s string) error {
	r, err := boxtable.ParseDelimiter(s)
	if err != nil {
		return err
	}
	v.r = r
	return nil
}

func (v *delimiterValue) Type() string {
	ds := boxtable.Delimiters()
	choices := make([]string, len(ds))
	for i, d := range ds {
		choices[i] = strconv.QuoteRune(d)
	}
	return "{" + strings.Join(choices, ",") + "}"
}

type intervalValue struct{ i boxtable.Interval }

func (v *intervalValue) String() string { return v.i.String() }

func (v *intervalValue) Set(s string) error {
	i, err := boxtable.ParseInterval(s)
	if err != nil {
		return err
	}
	v.i = i
	return nil
}

func (v *intervalValue) Type() string { return "int|x" }

type styleValue struct{ s boxtable.Style }

func (v *styleValue) String() string { return v.s.String() }

func (v *styleValue) Set(s string) error {
	st, err := boxtable.ParseStyle(s)
	if err != nil {
		return err
	}
	v.s = st
	return nil
}

func (v *styleValue) Type() string { return "{t,g}" }

type formatValue struct{ f boxtable.Format }

func (v *formatValue) String() string { return v.f.String() }

func (v *formatValue) Set(s string) error {
	f, err := boxtable.ParseFormat(s)
	if err != nil {
		return err
	}
	v.f = f
	return nil
}

func (v *formatValue) Type() string {
	fs := boxtable.Formats()
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.String()
	}
	return "{" + strings.Join(names, ",") + "}"
}

var logLevels = []logrus.Level{logrus.DebugLevel, logrus.InfoLevel, logrus.WarnLevel, logrus.ErrorLevel}

type levelValue struct{ l logrus.Level }

func (v *levelValue) String() string { return v.l.String() }

func (v *levelValue) Set(s string) error {
	for _, l := range logLevels {
		if strings.EqualFold(s, l.String()) || (l == logrus.WarnLevel && strings.EqualFold(s, "warn")) {
			v.l = l
			return nil
		}
	}
	return fmt.Errorf("invalid log level: %q", s)
}

func (v *levelValue) Type() string { return "{debug,info,warn,error}" }

func addFlags(fs *pflag.FlagSet, p *commandParams) {
	fs.VarP(&p.delimiter, "delimiter", "d", "cell delimiter in the input")
	fs.VarP(&p.borders, "borders", "b", `rows between thick separators (0 disables them, "x" renders without borders)`)
	fs.BoolVarP(&p.transpose, "transpose", "t", false, "swap rows and columns")
	fs.VarP(&p.style, "style", "s", `border style: "t" for ASCII, "g" for box drawing (detected from input with --reverse unless set)`)
	fs.BoolVarP(&p.reverse, "reverse", "r", false, "strip a rendered table back into delimited rows")
	fs.VarP(&p.output, "output", "o", "output format for --reverse")
	fs.Var(&p.logLevel, "log-level", "log level written to stderr")
}
