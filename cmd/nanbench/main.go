// Command nanbench times the fast nanops functions against their reference
// implementations and prints a speed table per function.
//
//	nanbench detailed move_median
//	nanbench suite replace
//	nanbench list reduce
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

var exit = os.Exit

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		exit(1)
	}
}
