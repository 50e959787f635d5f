package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/aptsrc/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/aptsrc/internal/adapters/facts"  //nolint:depguard // Wired in app layer
	"go.trai.ch/aptsrc/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/aptsrc/internal/adapters/keys"   //nolint:depguard // Wired in app layer
	"go.trai.ch/aptsrc/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/aptsrc/internal/adapters/s3"     //nolint:depguard // Wired in app layer
	"go.trai.ch/aptsrc/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			facts.NodeID,
			keys.NodeID,
			logger.NodeID,
			fs.WriterNodeID,
			s3.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.FactResolver](ctx)
	if err != nil {
		return nil, err
	}

	inspector, err := graft.Dep[ports.KeyInspector](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	dirWriter, err := graft.Dep[*fs.Writer](ctx)
	if err != nil {
		return nil, err
	}

	bucketWriter, err := graft.Dep[*s3.Writer](ctx)
	if err != nil {
		return nil, err
	}

	writers := []ports.EntryWriter{dirWriter}
	if bucketWriter != nil {
		writers = append(writers, bucketWriter)
	}
	return New(loader, resolver, inspector, log, writers...), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
