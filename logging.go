package irailmcp

import (
	"log"
	"os"
)

// InitLogging routes log output to stderr with timestamps. Stdout is
// reserved for the MCP stdio transport framing.
func InitLogging() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
