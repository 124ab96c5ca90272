package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if err != errFailed {
			printError(err)
		}
		os.Exit(1)
	}
}
