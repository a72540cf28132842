package main

import "github.com/anchore/distroglyph/cmd"

func main() {
	cmd.Execute()
}
