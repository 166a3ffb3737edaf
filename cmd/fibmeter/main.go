package main

import "github.com/psantana5/fibmeter/cmd/fibmeter/cmd"

func main() {
	cmd.Execute()
}
