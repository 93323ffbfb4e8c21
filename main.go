package main

import "exprc/cmd"

func main() {
	cmd.Execute()
}
