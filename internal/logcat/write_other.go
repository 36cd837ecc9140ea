//go:build !(android && cgo)

package logcat

import (
	"fmt"
	"os"
)

var priorityLetters = map[Priority]byte{
	PriorityVerbose: 'V',
	PriorityDebug:   'D',
	PriorityInfo:    'I',
	PriorityWarn:    'W',
	PriorityError:   'E',
	PriorityFatal:   'F',
}

// Same layout as `adb logcat -v brief`.
func platformWrite(prio Priority, tag, msg string) {
	_, _ = fmt.Fprintf(os.Stderr, "%c/%s: %s\n", priorityLetters[prio], tag, msg)
}
