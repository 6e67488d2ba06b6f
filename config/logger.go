package config

import (
	"log"
	"os"
)

// Logger points the standard logger at stdout with file:line prefixes so
// container logs lead back to the call site.
func Logger() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetPrefix("[leaps] ")
}
