package main

import "github.com/imgprint/imgprint/cmd"

func main() {
	cmd.Execute()
}
