package main

import "caresteward/showcase/cmd"

func main() {
	cmd.Execute()
}
