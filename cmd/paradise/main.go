// Command paradise projects when savings and investment returns can cover a target
// monthly spending, and compares scenarios, sweeps and break-even savings.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
