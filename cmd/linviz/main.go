// Command linviz runs the linear function visualizer in a window, headless,
// in the terminal, or once to a PNG snapshot.
package main

func main() {
	Execute()
}
