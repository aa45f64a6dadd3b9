package svgcheck

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// GitHubEnvVar names the file GitHub Actions reads step environment from.
const GitHubEnvVar = "GITHUB_ENV"

// DefaultErrorEnvVar is the variable later workflow steps read the report from.
const DefaultErrorEnvVar = "ERR_MSGS"

const envDelimiter = "SVGCHECK_EOF"

// SetEnvVar exports name=value to subsequent workflow steps through the file
// named by $GITHUB_ENV. It returns ErrNoGitHubEnv when not running in Actions.
func SetEnvVar(name, value string) error {
	path := os.Getenv(GitHubEnvVar)
	if path == "" {
		return ErrNoGitHubEnv
	}
	return AppendEnvVar(path, name, value)
}

// AppendEnvVar appends a multiline-safe assignment to an env file:
//
//	NAME<<DELIM
//	value
//	DELIM
func AppendEnvVar(path, name, value string) error {
	if name == "" || strings.ContainsAny(name, "=\n") {
		return errors.Newf("invalid environment variable name %q", name)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "open env file %s", path)
	}

	delim := delimiterFor(value)
	_, werr := fmt.Fprintf(f, "%s<<%s\n%s\n%s\n", name, delim, value, delim)
	cerr := f.Close()
	if werr != nil {
		return errors.Wrapf(werr, "write env file %s", path)
	}
	return errors.Wrapf(cerr, "close env file %s", path)
}

// delimiterFor picks a heredoc delimiter that does not occur in value.
func delimiterFor(value string) string {
	delim := envDelimiter
	for i := 1; strings.Contains(value, delim); i++ {
		delim = envDelimiter + "_" + strconv.Itoa(i)
	}
	return delim
}
