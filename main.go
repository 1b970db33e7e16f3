package main

import "wdsched/cmd"

func main() {
	cmd.Execute()
}
