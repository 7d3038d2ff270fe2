package main

import "nathanbeddoewebdev/taoquotes/cmd"

func main() {
	cmd.Execute()
}
