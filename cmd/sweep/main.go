package main

// bit-pattern verification runner
func main() {
	bindVar()
	execute()
}
