package parse

import "github.com/google/shlex"

// Split breaks a raw command line into tokens following POSIX shell word
// rules, so quoting and escaping survive the way a shell would deliver
// them in argv.
func Split(line string) ([]string, error) {
	return shlex.Split(line)
}
