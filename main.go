package main

import "clipboard/cmd"

func main() {
	cmd.Execute()
}
