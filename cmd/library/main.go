package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/campusdesk/internal/audit"
	"github.com/dmitrijs2005/campusdesk/internal/buildinfo"
	"github.com/dmitrijs2005/campusdesk/internal/console"
	"github.com/dmitrijs2005/campusdesk/internal/library/catalog"
	"github.com/dmitrijs2005/campusdesk/internal/library/cli"
	"github.com/dmitrijs2005/campusdesk/internal/library/config"
	"github.com/dmitrijs2005/campusdesk/internal/library/repositories/requests"
	"github.com/dmitrijs2005/campusdesk/internal/library/scheduler"
	"github.com/dmitrijs2005/campusdesk/internal/logging"
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

	rec, err := audit.NewFileRecorder(cfg.AuditLog, logger)
	if err != nil {
		log.Fatalf("error initializing audit log: %v", err)
		return
	}
	defer rec.Close()

	repo := requests.NewJSONFileRepository(cfg.StateFile)
	cat := catalog.New(cfg.Catalog...)
	sched := scheduler.New(cat, repo, rec, logger)

	if err := sched.Load(ctx); err != nil {
		fmt.Println("Error loading requests:", err)
	}
	logger.Info(ctx, "library ready", "state_file", repo.Path(), "pending", len(sched.Pending()), "titles", cat.Len())

	cli.NewApp(sched, rec, logger, os.Stdin, os.Stdout).Run(ctx)

}

func syncLogger(l logging.Logger) {
	if s, ok := l.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}
