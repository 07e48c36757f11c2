package irailmcp

// Version is reported in the MCP handshake and the upstream User-Agent.
const Version = "0.1.0"
