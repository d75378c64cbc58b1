package cli

import "strings"

// longFlags maps lower-cased long options to whether they take a value.
var longFlags = map[string]bool{
	"--verbose":             false,
	"--skip-solution-check": false,
	"--skip-disk-check":     false,
	"--json":                false,
	"--help":                false,
	"--version":             false,
	"--config":              true,
}

const shortFlags = "vsdh"

// subcommands are passed to cobra untouched.
var subcommands = map[string]bool{
	"mcp":        true,
	"version":    true,
	"help":       true,
	"completion": true,
}

// normalizeArgs rewrites the command line into the form cobra parses. Option
// names are matched case-insensitively and "/?" asks for help. Tokens that
// look like options but are not recognized are dropped and returned in
// unknown. Everything after "--" is kept verbatim as file paths.
//
// A leading subcommand name runs that subcommand unless isFile reports a
// file of that name. File paths are emitted after "--" so cobra never
// mistakes them for subcommands.
func normalizeArgs(args []string, isFile func(string) bool) (out, unknown []string) {
	if len(args) > 0 && subcommands[args[0]] && !isFile(args[0]) {
		return args, nil
	}

	out = make([]string, 0, len(args)+1)
	var paths []string
	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--":
			paths = append(paths, args[i+1:]...)
			i = len(args)

		case arg == "/?":
			out = append(out, "--help")

		case strings.HasPrefix(arg, "--"):
			name, value, hasValue := strings.Cut(arg, "=")
			name = strings.ToLower(name)
			takesValue, ok := longFlags[name]
			switch {
			case !ok:
				unknown = append(unknown, arg)
			case hasValue:
				out = append(out, name+"="+value)
			case takesValue && i+1 < len(args):
				out = append(out, name, args[i+1])
				i++
			default:
				out = append(out, name)
			}

		case len(arg) > 1 && arg[0] == '-':
			letters := strings.ToLower(arg[1:])
			if strings.Trim(letters, shortFlags) != "" {
				unknown = append(unknown, arg)
				continue
			}
			out = append(out, "-"+letters)

		default:
			paths = append(paths, arg)
		}
	}

	if len(paths) > 0 {
		out = append(append(out, "--"), paths...)
	}
	return out, unknown
}
