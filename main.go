package main

import "datesuggest/cmd"

func main() {
	cmd.Execute()
}
