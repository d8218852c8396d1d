package main

import "newslens/cmd/handlers"

func main() {
	handlers.Execute()
}
