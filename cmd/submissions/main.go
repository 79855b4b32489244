package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/campusdesk/internal/audit"
	"github.com/dmitrijs2005/campusdesk/internal/buildinfo"
	"github.com/dmitrijs2005/campusdesk/internal/console"
	"github.com/dmitrijs2005/campusdesk/internal/logging"
	"github.com/dmitrijs2005/campusdesk/internal/submissions/blobs"
	"github.com/dmitrijs2005/campusdesk/internal/submissions/cli"
	"github.com/dmitrijs2005/campusdesk/internal/submissions/config"
	"github.com/dmitrijs2005/campusdesk/internal/submissions/repositories/index"
	"github.com/dmitrijs2005/campusdesk/internal/submissions/store"
)

func main() {

	if console.IsInteractive(os.Stdout) {
		buildinfo.PrintBuildData(os.Stdout)
	}

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.LogFormat, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer syncLogger(logger)

	b, err := newBlobStore(ctx, cfg)
	if err != nil {
		log.Fatalf("error initializing storage: %v", err)
		return
	}

	db, err := index.Open(ctx, cfg.IndexDSN)
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
		return
	}
	defer db.Close()

	rec, err := audit.NewFileRecorder(cfg.AuditLog, logger)
	if err != nil {
		log.Fatalf("error initializing audit log: %v", err)
		return
	}
	defer rec.Close()

	s := store.New(b, index.NewSQLiteRepository(db), rec, logger)

	cli.NewApp(s, rec, logger, os.Stdin, os.Stdout).Run(ctx)

}

func newBlobStore(ctx context.Context, cfg *config.Config) (blobs.Store, error) {
	if cfg.Backend != config.BackendS3 {
		return blobs.NewLocalStore(cfg.Dir)
	}

	client, err := blobs.NewS3Client(ctx, blobs.S3Options{
		Region:   cfg.S3Region,
		User:     cfg.S3User,
		Password: cfg.S3Password,
		Endpoint: cfg.S3Endpoint,
	})
	if err != nil {
		return nil, err
	}
	return blobs.NewS3Store(client, cfg.S3Bucket, cfg.S3Prefix), nil
}

func syncLogger(l logging.Logger) {
	if s, ok := l.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}
