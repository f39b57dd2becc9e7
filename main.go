package main

import "github.com/pshev/chat2md/cmd"

func main() {
	cmd.Execute()
}
