// Package main is the entry point for the toastbox demo.
package main

func main() {
	Execute()
}
