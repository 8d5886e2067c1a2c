package main

import (
	"strings"

	"github.com/spf13/pflag"
)

// separatePositionals moves every dash-prefixed token that is not a
// registered flag behind a "--" terminator, so labels such as -O2 reach
// the command as positional arguments. Argument order is preserved.
func separatePositionals(flags *pflag.FlagSet, args []string) []string {
	// Never nil: cobra falls back to os.Args for a nil argument list.
	flagArgs := []string{}
	var positionals []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positionals = append(positionals, args[i+1:]...)
			break
		}

		f := lookupFlag(flags, arg)
		if f == nil {
			positionals = append(positionals, arg)
			continue
		}
		flagArgs = append(flagArgs, arg)
		if takesValue(f, arg) && i+1 < len(args) {
			i++
			flagArgs = append(flagArgs, args[i])
		}
	}

	if len(positionals) == 0 {
		return flagArgs
	}
	return append(append(flagArgs, "--"), positionals...)
}

// lookupFlag returns the flag arg names, or nil when arg is not a flag.
func lookupFlag(flags *pflag.FlagSet, arg string) *pflag.Flag {
	switch {
	case strings.HasPrefix(arg, "--") && len(arg) > 2:
		name, _, _ := strings.Cut(arg[2:], "=")
		return flags.Lookup(name)
	case strings.HasPrefix(arg, "-") && len(arg) > 1:
		return flags.ShorthandLookup(arg[1:2])
	default:
		return nil
	}
}

// takesValue reports whether f consumes the following token.
func takesValue(f *pflag.Flag, arg string) bool {
	if f.NoOptDefVal != "" {
		return false
	}
	if strings.HasPrefix(arg, "--") {
		return !strings.Contains(arg, "=")
	}
	// Shorthand with an attached value, e.g. -ofile.
	return len(arg) == 2
}
