package main

import "github.com/haakusi/momentum/internal/cli"

func main() {
	cli.Execute()
}
