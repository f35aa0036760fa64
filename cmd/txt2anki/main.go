package main

import "os"

func main() {
	err := NewRootCmd().Execute()
	if err != nil {
		printError(os.Stderr, err)

		os.Exit(1)
	}
}
