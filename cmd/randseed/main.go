// Command randseed draws reproducible random values from the command line.
package main

import "log"

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	Execute()
}
