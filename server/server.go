package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	c "github.com/kerosiinikone/go-grpc-imagegen/config"
	pb "github.com/kerosiinikone/go-grpc-imagegen/grpc"
	"github.com/kerosiinikone/go-grpc-imagegen/provider"
	"github.com/kerosiinikone/go-grpc-imagegen/repository"
	"github.com/kerosiinikone/go-grpc-imagegen/storage"
	_ "github.com/lib/pq"
	"google.golang.org/grpc"
)

func startServerAndListen(cfg *c.Config, svc pb.ImageGenerationServiceServer) {
	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%d", cfg.Server.Addr, cfg.Server.Port))
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	s := grpc.NewServer(
		grpc.NumStreamWorkers(uint32(cfg.Server.Workers)),
		grpc.MaxConcurrentStreams(uint32(cfg.Server.Workers)),
	)
	pb.RegisterImageGenerationServiceServer(s, svc)

	// Stop on SIGINT/SIGTERM and let in-flight calls drain
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Printf("Received signal: %v, shutting down", sig)
		s.GracefulStop()
	}()

	log.Printf("gRPC Server started on port %d", cfg.Server.Port)
	if err := s.Serve(lis); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}

func main() {
	configPath := flag.String("config", c.DefaultPath, "Path to the YAML config")
	flag.Parse()

	cfg, err := c.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.ValidateServer(); err != nil {
		log.Fatalf("%v", err)
	}

	gen := provider.NewOpenAI(cfg.Provider.BaseURL, cfg.Provider.APIKey, cfg.Provider.Model, cfg.GenerationTimeout())
	store := storage.New(cfg.Images.Dir, cfg.Images.Thumbnails, cfg.Images.ThumbSize)

	// The journal is optional: no DSN, no database
	var repo repository.GenerationRepository
	if cfg.DB.DSN != "" {
		db, err := sql.Open("postgres", cfg.DB.DSN)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		pg := repository.NewPostgresGenerationRepository(db)
		if err := pg.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("Failed to prepare generations table: %v", err)
		}
		repo = pg
		log.Println("Generation journal enabled")
	}

	startServerAndListen(cfg, newAPIService(cfg, gen, store, repo))
}
