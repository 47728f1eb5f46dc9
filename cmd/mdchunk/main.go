package main

import "github.com/dotcommander/mdchunk/cmd"

func main() {
	cmd.Execute()
}
