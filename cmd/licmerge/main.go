package main

import "licmerge/internal/cli"

func main() {
	cli.Execute()
}
