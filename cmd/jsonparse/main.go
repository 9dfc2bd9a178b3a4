// Package main is the entry point for the jsonparse CLI.
package main

func main() {
	Execute()
}
