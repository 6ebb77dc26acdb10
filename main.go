package main

import "spana-admin/cmd"

func main() {
	cmd.Execute()
}
