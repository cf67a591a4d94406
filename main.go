// toolbox reformats hex strings into C-style byte arrays and binary digits.
package main

import (
	"github.com/LegacyCodeHQ/toolbox/cmd"
)

func main() {
	cmd.Execute()
}
