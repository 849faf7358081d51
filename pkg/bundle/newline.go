package bundle

import "runtime"

// Newline is the platform line separator used in bundle output.
var Newline = func() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}()
