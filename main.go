package main

import "github.com/bradford-hamilton/chip8core/cmd"

func main() {
	cmd.Execute()
}
