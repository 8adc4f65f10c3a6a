package launch

import (
	"os"
	"os/exec"
)

// System abstracts process invocation so tests never spawn a real runner.
type System interface {
	RunCommand(argv []string) error
}

// RealSystem implements System using os/exec.
type RealSystem struct{}

// RunCommand executes argv[0] with the remaining arguments, wiring the
// child's stdio directly to the launcher's own. Output is not captured or
// transformed; the runner owns its own reporting.
func (RealSystem) RunCommand(argv []string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
