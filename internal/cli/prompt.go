package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// promptConfirm asks a yes/no question. It is a variable so tests can replace it.
// Non-terminal input always answers no.
//
//nolint:gochecknoglobals // Test hook.
var promptConfirm = defaultPromptConfirm

func defaultPromptConfirm(in io.Reader, out io.Writer, question string) bool {
	f, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false
	}

	var confirmed bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Overwrite").
				Negative("Keep").
				Value(&confirmed),
		),
	).WithInput(in).WithOutput(out).Run()
	if err != nil {
		return false
	}
	return confirmed
}

// confirmOverwrite reports whether path may be written. An absent file or
// force always allows it; otherwise the user is asked.
func confirmOverwrite(in io.Reader, out io.Writer, path string, force bool) bool {
	if force {
		return true
	}
	if _, err := os.Stat(path); err != nil {
		return true
	}
	return promptConfirm(in, out, path+" already exists. Overwrite it?")
}
