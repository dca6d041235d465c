package main

import "github.com/uamatch/uamatch/cmd"

func main() {
	cmd.Execute()
}
