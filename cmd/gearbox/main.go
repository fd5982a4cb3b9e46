// Command gearbox is the CLI for the gearbox transmission library.
package main

import "github.com/mesh-robotics/gearbox/internal/cli"

func main() {
	cli.Execute()
}
