package main

import "github.com/courtside/scoreboard/internal/cli"

func main() {
	cli.Execute()
}
