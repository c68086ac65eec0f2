package main

import "characterdex/cmd/ctl/cmd"

func main() {
	cmd.Execute()
}
