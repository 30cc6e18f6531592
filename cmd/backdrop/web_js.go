//go:build js

package main

func init() {
	// browsers start the program without arguments
	rootCmd.RunE = runRun
}
