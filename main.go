package main

import "github.com/policyatlas/covergrade/cmd"

func main() {
	cmd.Execute()
}
