package main

import (
	"context"
	"encoding/base64"
	"log"
	"strings"

	"github.com/kerosiinikone/go-grpc-imagegen/config"
	pb "github.com/kerosiinikone/go-grpc-imagegen/grpc"
	"github.com/kerosiinikone/go-grpc-imagegen/provider"
	"github.com/kerosiinikone/go-grpc-imagegen/repository"
	"github.com/kerosiinikone/go-grpc-imagegen/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const defaultSize = "1024x1024"

// Sizes the provider accepts; anything else is rejected before the
// provider call is made
var validSizes = map[string]bool{
	"1024x1024": true,
	"1792x1024": true,
	"1024x1792": true,
}

// apiService is a gRPC placeholder that is augmented with the relay
// logic: authorize, validate, call the provider, persist best-effort
type apiService struct {
	cfg   *config.Config
	gen   provider.Generator
	store *storage.Store
	repo  repository.GenerationRepository

	pb.UnimplementedImageGenerationServiceServer
}

func newAPIService(cfg *config.Config, gen provider.Generator, store *storage.Store, repo repository.GenerationRepository) *apiService {
	return &apiService{
		cfg:   cfg,
		gen:   gen,
		store: store,
		repo:  repo,
	}
}

// gRPC magic function that is defined in the .proto files
func (svc *apiService) GenerateImage(ctx context.Context, req *pb.ImageRequest) (*pb.ImageResponse, error) {
	if req.GetApiKey() != svc.cfg.SecretKey {
		return nil, status.Error(codes.PermissionDenied, "Invalid API key")
	}

	if req.GetPrompt() == "" {
		return nil, status.Error(codes.InvalidArgument, "Prompt is required")
	}

	size := req.GetSize()
	if size == "" {
		size = defaultSize
	}
	if !validSizes[size] {
		return nil, status.Errorf(codes.InvalidArgument, "Unsupported size %q", size)
	}

	log.Printf("Call to GenerateImage (size %s)", size)

	// A hung provider must not pin a stream worker forever
	ctx, cancel := context.WithTimeout(ctx, svc.cfg.GenerationTimeout())
	defer cancel()

	b64, err := svc.gen.Generate(ctx, req.GetPrompt(), size)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &pb.ImageResponse{
		Image:    b64,
		Filename: svc.persist(ctx, req.GetPrompt(), size, b64),
	}, nil
}

// persist saves the decoded image and journals the outcome. Every
// failure here degrades to an empty filename, never an RPC error.
func (svc *apiService) persist(ctx context.Context, prompt, size, b64 string) string {
	// Some providers prepend a data URI ("data:image/png;base64,...")
	if strings.HasPrefix(b64, "data:") {
		if _, rest, found := strings.Cut(b64, ","); found {
			b64 = rest
		}
	}

	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		log.Printf("Could not decode provider payload: %v", err)
		return ""
	}

	filename, err := svc.store.Save(raw)
	if err != nil {
		log.Printf("Could not save image: %v", err)
		return ""
	}

	if svc.repo != nil {
		record := repository.Generation{
			Prompt:   prompt,
			Size:     size,
			Filename: filename,
		}
		if err := svc.repo.Record(ctx, record); err != nil {
			log.Printf("Could not record generation: %v", err)
		}
	}

	return filename
}
