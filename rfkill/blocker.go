package rfkill

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/yllada/rfkill-panel/common"
)

// Blocker changes the soft-block state of one rfkill device.
type Blocker interface {
	Set(ctx context.Context, index int, verb Verb) error
}

// Runner executes a command and returns its combined error output on failure.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// execRunner runs the command through os/exec, capturing stderr.
func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stderr.Bytes(), err
}

// CommandBlocker shells out to the rfkill tool.
type CommandBlocker struct {
	Binary string
	Run    Runner
}

// NewCommandBlocker returns a blocker that runs the rfkill binary found in PATH.
func NewCommandBlocker() *CommandBlocker {
	return &CommandBlocker{
		Binary: common.RfkillBinary,
		Run:    execRunner,
	}
}

// Args returns the argument list for an invocation.
func Args(index int, verb Verb) []string {
	return []string{verb.String(), strconv.Itoa(index)}
}

// Set runs `rfkill <verb> <index>`.
func (b *CommandBlocker) Set(ctx context.Context, index int, verb Verb) error {
	args := Args(index, verb)
	common.LogDebug("Running %s %s", b.Binary, strings.Join(args, " "))

	out, err := b.Run(ctx, b.Binary, args...)
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%w: %s %s: %v: %s", common.ErrCommandFailed, b.Binary, strings.Join(args, " "), err, msg)
		}
		return fmt.Errorf("%w: %s %s: %v", common.ErrCommandFailed, b.Binary, strings.Join(args, " "), err)
	}
	return nil
}

// DryRunBlocker only logs the command it would run.
type DryRunBlocker struct{}

// Set logs the invocation and reports success.
func (DryRunBlocker) Set(_ context.Context, index int, verb Verb) error {
	common.LogInfo("Dry run: %s %s", common.RfkillBinary, strings.Join(Args(index, verb), " "))
	return nil
}
