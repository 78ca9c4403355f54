package console

import (
	"fmt"
	"os"
)

const PictoSun = "☀️"
const PictoFlag = "🚩"
const PictoStop = "🚫"

func Errorf(msg string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "%s: %s\n", Red("ERROR"), fmt.Sprintf(msg, args...))
}

func Warnf(msg string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "%s: %s\n", Yellow("WARN"), fmt.Sprintf(msg, args...))
}

func Infof(msg string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stdout, "%s %s\n", White("..."), fmt.Sprintf(msg, args...))
}

// PInfof prefixes the message with a pictogram instead of the plain
// info marker.
func PInfof(picto, msg string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stdout, "%s %s\n", picto, fmt.Sprintf(msg, args...))
}

func Printf(msg string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stdout, msg, args...)
}
