// Command portalcheck reconciles the missing-merchant list against the portal
// mapping and the onboarded company directory.
package main

import (
	"os"

	"github.com/custodia-labs/portalcheck/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
