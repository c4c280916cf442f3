package main

import "github.com/go-arrower/userposts/cmd"

func main() {
	cmd.Execute()
}
