package modules

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"house_classifier/pkg/probe"
)

type ProbeServer struct {
	Name          string
	Version       string
	ListenAddress string
}

func (p ProbeServer) Run(ctx context.Context, g *errgroup.Group, checks ...probe.Check) {
	probeServer := probe.NewServer(
		p.ListenAddress,
		probe.Options{
			Name:    p.Name,
			Version: p.Version,
		},
		checks...,
	)

	g.Go(func() error {
		if err := probeServer.Run(ctx); err != nil {
			return fmt.Errorf("probeServer.Run: %w", err)
		}

		return nil
	})
}
