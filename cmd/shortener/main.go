package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/eweracs/go-shortlink/internal/app/server"
	"github.com/eweracs/go-shortlink/internal/app/service"
	"github.com/eweracs/go-shortlink/internal/config"
	"github.com/eweracs/go-shortlink/internal/logger"
	"github.com/eweracs/go-shortlink/internal/middleware"
	"github.com/eweracs/go-shortlink/internal/repository"
	"github.com/eweracs/go-shortlink/internal/storage"
	"github.com/eweracs/go-shortlink/internal/worker"

	_ "net/http/pprof"
)

var buildVersion string
var buildDate string
var buildCommit string

func main() {
	options := config.Parse()

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	log, err := logger.New("info")
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = log.Sync()
	}()

	if options.PublicSiteBase == "" {
		log.Fatal("PUBLIC_SITE_BASE is required")
	}
	if options.Token == "" {
		log.Fatal("SHORTENER_TOKEN is required")
	}

	if options.EnablePprof {
		go func() {
			log.Info("Starting pprof server", zap.String("addr", "localhost:6060"))
			if err := http.ListenAndServe("localhost:6060", nil); err != nil {
				log.Error("pprof server error", zap.Error(err))
			}
		}()
	}

	var store service.Store

	switch {
	case options.DatabaseDSN != "":
		log.Info("using postgres store")

		db, err := repository.InitPostgres(options.DatabaseDSN)
		if err != nil {
			log.Fatal("postgres connection failed", zap.Error(err))
		}
		defer db.Close()

		store, err = repository.CreatePostgresRepository(db, log)
		if err != nil {
			log.Fatal("schema setup failed", zap.Error(err))
		}
		log.Info("Database connected and table ready.")

	case options.SQLitePath != "":
		log.Info("using embedded sqlite store", zap.String("path", options.SQLitePath))

		db, err := repository.InitSQLite(options.SQLitePath)
		if err != nil {
			log.Fatal("sqlite open failed", zap.Error(err))
		}
		defer db.Close()

		store, err = repository.CreateSQLiteRepository(db, log)
		if err != nil {
			log.Fatal("schema setup failed", zap.Error(err))
		}

	default:
		log.Info("using in-memory store, short links will not survive a restart")

		store, err = storage.CreateMemoryStorage()
		if err != nil {
			log.Fatal("memory store setup failed", zap.Error(err))
		}
	}

	svc := service.NewShortLink(store, log)

	if options.LinkTTL > 0 {
		expiry := worker.NewExpiryWorker(log, store, options.LinkTTL, time.Hour)
		go expiry.Run(context.Background())
	}

	cors := middleware.NewCORSPolicy(options.AllowedOrigins)
	r := server.Init(options.PublicSiteBase, log, svc, options.Token, cors)

	if options.EnableHTTPS {
		manager := &autocert.Manager{
			Cache:      autocert.DirCache("cache-dir"),
			Prompt:     autocert.AcceptTOS,
			HostPolicy: autocert.HostWhitelist(options.TLSHosts...),
		}
		srv := &http.Server{
			Addr:      ":443",
			Handler:   r,
			TLSConfig: manager.TLSConfig(),
		}
		log.Info("Server is running with TLS", zap.Strings("hosts", options.TLSHosts))
		if err := srv.ListenAndServeTLS("", ""); err != nil {
			log.Fatal("server stopped", zap.Error(err))
		}
		return
	}

	log.Info("Server is running", zap.String("addr", options.Addr))
	if err := http.ListenAndServe(options.Addr, r); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
