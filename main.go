package main

import "admin-console/cmd"

func main() {
	cmd.Execute()
}
