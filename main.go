package main

import "github.com/K0NGR3SS/riskmap/commands"

func main() {
	commands.Execute()
}
