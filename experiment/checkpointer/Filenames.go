package checkpointer

import (
	"fmt"
	"time"
)

// FilenameEnumerator returns a naming function for NewNStep. The k-th
// call returns filename followed by start+k and then extension, so that
// FilenameEnumerator(0, "values", ".bin") yields values1.bin,
// values2.bin, and so on.
func FilenameEnumerator(start int, filename, extension string) func() string {
	i := start
	return func() string {
		i++
		return fmt.Sprintf("%v%v%v", filename, i, extension)
	}
}

// FileTimer returns a naming function for NewNStep which suffixes
// filename with the current Unix time in nanoseconds
func FileTimer(filename, extension string) func() string {
	return func() string {
		return fmt.Sprintf("%v-%v%v", filename, time.Now().UnixNano(),
			extension)
	}
}
