package main

import "github.com/endorses/wildmatch/cmd"

func main() {
	cmd.Execute()
}
