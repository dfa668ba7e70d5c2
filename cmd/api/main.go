// @title MediSafe Companion API
// @version 1.0
// @description Medication schedule, dose logs, pill box telemetry and the AI companion.
// @BasePath /
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
