package main

import "moviesapi/cmd/cli/command"

func main() {
	command.Execute()
}
