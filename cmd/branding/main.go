package main

import "github.com/princespaghetti/branding/internal/cli"

func main() {
	cli.Execute()
}
