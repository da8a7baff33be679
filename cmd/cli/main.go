// Command cli is an operator tool for the bank account service. It talks to
// the same database as the server, running the application services directly.
package main

func main() {
	Execute()
}
