package main

import "github.com/mcoot/courtbot/internal/cli"

func main() {
	cli.Execute()
}
