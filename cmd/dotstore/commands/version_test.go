package commands

import (
	"strings"
	"testing"

	"github.com/thoreinstein/dotstore/cmd"
)

func TestVersionCommand(t *testing.T) {
	c, buf := newTestCmd()
	versionCmd.Run(c, nil)

	out := buf.String()
	for _, want := range []string{cmd.Version, cmd.Commit, cmd.Date} {
		if !strings.Contains(out, want) {
			t.Errorf("version output missing %q:\n%s", want, out)
		}
	}
}
