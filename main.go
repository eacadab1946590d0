package main

import "github.com/icweaver/ARISE/cmd"

func main() {
	cmd.Execute()
}
