package main

import "github.com/google-marketing-solutions/madpmax-sub000/cmd"

func main() {
	cmd.Execute()
}
