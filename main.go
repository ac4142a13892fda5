// humantime converts between durations and human-readable text such as
// "2h 15m" or "1.5days".
package main

import (
	"fmt"
	"os"

	"github.com/jparise/humantime/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
