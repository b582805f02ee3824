package main

import "github.com/qbudget/qbudget/cmd"

func main() {
	cmd.Execute()
}
