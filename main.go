package main

import "voyago/cmd"

func main() {
	cmd.Execute()
}
