// Package app wires the scoreboard process: storage, engine, MCP tools and
// the optional gRPC health endpoint.
package app
