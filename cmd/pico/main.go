package main

import "codeberg.org/rileyq/pico/cmd/pico/cmd"

func main() {
	cmd.Execute()
}
