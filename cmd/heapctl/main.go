// heapctl exercises and inspects the gcheap allocation substrate from the
// command line: geometry inspection, allocation churn runs, and store
// diagnostics.
package main

func main() {
	execute()
}
