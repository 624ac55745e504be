// Command barctl is the terminal client for the bartender app services.
package main

import "github.com/yourusername/barctl/cmd/barctl/cmd"

func main() {
	cmd.Execute()
}
