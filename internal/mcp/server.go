// Package mcp expone la agenda de medicación como servidor MCP por stdio,
// para que un asistente externo pueda consultar y registrar tomas.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"medisafe-companion/internal/domain/doselogs"
	"medisafe-companion/internal/domain/medications"
	"medisafe-companion/internal/domain/scheduler"
)

type Server struct {
	mcpServer *mcp.Server
	meds      *medications.Service
	logs      *doselogs.Service
	runner    *scheduler.Runner
}

func NewServer(meds *medications.Service, logs *doselogs.Service, runner *scheduler.Runner, version string) *Server {
	if version == "" {
		version = "dev"
	}
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "medisafe",
			Version: version,
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		meds:      meds,
		logs:      logs,
		runner:    runner,
	}

	s.registerTools()
	s.registerResources()

	return s
}

// Serve bloquea atendiendo por stdin/stdout hasta que ctx termina.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
