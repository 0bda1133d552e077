// Package flagx holds small helpers for sharing os.Args between several
// independent flag sets.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// ConfigEnvVar names the environment variable consulted when no -c/-config
// flag is given.
const ConfigEnvVar = "RECIPES_CONFIG"

// FilterArgs returns the subset of args made of allowed flags and their values.
//
// Both "-c conf.json" and "--config=conf.json" forms are recognised. A token
// following an allowed flag is treated as its value unless it starts with "-".
// The result is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, found := strings.Cut(arg, "="); found && strings.HasPrefix(arg, "-") {
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// ConfigPath returns the JSON config file path from -c/-config, falling back
// to the RECIPES_CONFIG environment variable. Empty means no file.
func ConfigPath() string {
	var path string

	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(args)

	if path == "" {
		path = os.Getenv(ConfigEnvVar)
	}
	return path
}
