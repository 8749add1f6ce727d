package main

import "github.com/ValentinKolb/tristore/cmd"

func main() {
	cmd.Execute()
}
