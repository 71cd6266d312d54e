package main

import "github.com/hubdispo/hubdispo/internal/cmd"

func main() {
	cmd.Execute()
}
