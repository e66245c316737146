package main

import "healthsnap/cmd"

func main() {
	cmd.Execute()
}
