package main

import "github.com/appointease/appointease_backend/cmd"

func main() {
	cmd.Execute()
}
