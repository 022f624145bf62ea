package main

import "github.com/alexiusacademia/gorcopt/cmd"

func main() {
	cmd.Execute()
}
