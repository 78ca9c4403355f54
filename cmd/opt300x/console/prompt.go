package console

import (
	"strings"

	"github.com/chzyer/readline"
)

const (
	Yes = "y"
	No  = "n"
)

// YesOrNo asks a confirmation question on the terminal. Anything other
// than an explicit yes, including an empty answer, counts as no.
func YesOrNo(question string) (string, error) {
	rl, err := readline.New(question + " [y/N]:")
	if err != nil {
		return "", err
	}
	defer func() {
		_ = rl.Close()
	}()
	answer, err := rl.Readline()
	if err != nil {
		return "", err
	}
	if strings.ToLower(strings.TrimSpace(answer)) == Yes {
		return Yes, nil
	}
	return No, nil
}
