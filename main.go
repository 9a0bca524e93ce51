package main

import "github.com/alexiusacademia/gobbs/cmd"

func main() {
	cmd.Execute()
}
