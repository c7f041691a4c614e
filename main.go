package main

import "github.com/xvierd/zenith/cmd"

func main() {
	cmd.Execute()
}
