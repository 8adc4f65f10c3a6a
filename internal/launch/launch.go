package launch

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/propolis-phd/phd-launch/internal/messages"
)

// StartFailureCode is the launcher exit code when the runner process cannot
// be started at all (binary missing, privilege escalation refused). It is
// outside the runner's own 0-124 range so callers can tell the two apart.
const StartFailureCode = 125

// Spec is the ordered argument contract handed to the PHD runner. Flag names
// and ordering are fixed; only the values vary per invocation. The scratch
// directory is deliberately passed twice, once as the runner's temp root and
// once as its artifact root.
type Spec struct {
	Pfexec           string
	Runner           string
	ArtifactTomlPath string
	ScratchDir       string
	ServerCmd        string
}

// Args returns the full argument vector, privilege wrapper first when set.
func (s Spec) Args() []string {
	argv := make([]string, 0, 11)
	if s.Pfexec != "" {
		argv = append(argv, s.Pfexec)
	}
	argv = append(argv, s.Runner, "run",
		"--artifact-toml-path", s.ArtifactTomlPath,
		"--tmp-directory", s.ScratchDir,
		"--artifact-directory", s.ScratchDir,
		"--propolis-server-cmd", s.ServerCmd,
	)
	return argv
}

// String renders the command line for dry-run display.
func (s Spec) String() string {
	return strings.Join(s.Args(), " ")
}

// Invoke runs the spec's command with the launcher's own stdio, blocking
// until the child exits. The returned code is the child's exit code verbatim;
// a non-nil error means the process never started and code is
// StartFailureCode.
func Invoke(sys System, spec Spec) (int, error) {
	if sys == nil {
		return StartFailureCode, errors.New(messages.LaunchSystemNil)
	}
	if spec.Runner == "" {
		return StartFailureCode, errors.New(messages.LaunchRunnerRequired)
	}

	argv := spec.Args()
	err := sys.RunCommand(argv)
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// Killed by a signal; there is no child exit code to propagate.
			code = 1
		}
		return code, nil
	}
	return StartFailureCode, fmt.Errorf(messages.LaunchStartFailedFmt, argv[0], err)
}
