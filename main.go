package main

import "golang-devtools/cmd"

func main() {
	cmd.Execute()
}
