// Command accountctl performs operator tasks that have no HTTP surface: schema setup and role changes.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
