package main

import "github.com/lai323/vocabgarden/cmd"

func main() {
	cmd.Execute()
}
