package main

import "github.com/alexiusacademia/godrain/cmd"

func main() {
	cmd.Execute()
}
