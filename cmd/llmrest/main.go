package main

import "github.com/kbukum/llmrest/cmd"

func main() {
	cmd.Execute()
}
