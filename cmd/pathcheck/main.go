package main

import "github.com/metaworm/log-error/cmd/pathcheck/cmd"

func main() {
	cmd.Execute()
}
