package main

import "termcal/internal/cli"

func main() {
	cli.Execute()
}
