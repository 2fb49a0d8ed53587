package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"path/filepath"

	c "github.com/kerosiinikone/go-grpc-imagegen/config"
	gen "github.com/kerosiinikone/go-grpc-imagegen/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

func runGenerateImage(client gen.ImageGenerationServiceClient, cfg *c.Config, prompt string, size string) {
	// Propagation with context.WithTimeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.GenerationTimeout())
	defer cancel()

	fmt.Println("New request to GenerateImage")
	resp, err := client.GenerateImage(ctx, &gen.ImageRequest{
		Prompt: prompt,
		Size:   size,
		ApiKey: cfg.SecretKey,
	})
	if err != nil {
		st := status.Convert(err)
		log.Fatalf("Error: %s - %s", st.Code(), st.Message())
	}

	fmt.Println("Image Generated Successfully!")
	preview := resp.GetImage()
	if len(preview) > 100 {
		preview = preview[:100]
	}
	fmt.Printf("Base64 Image Data: %s...\n", preview)
	if resp.GetFilename() != "" {
		fmt.Printf("Saved on server as: %s\n", filepath.Join(cfg.Images.Dir, resp.GetFilename()))
	}
}

func main() {
	var (
		configPath = flag.String("config", c.DefaultPath, "Path to the YAML config")
		prompt     = flag.String("prompt", "A futuristic city skyline at sunset", "Prompt to generate an image for")
		size       = flag.String("size", "", "Image size, e.g. 1024x1024")
	)
	flag.Parse()

	cfg, err := c.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var (
		opts = []grpc.DialOption{
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		}
	)
	conn, err := grpc.Dial(cfg.ClientTarget(), opts...)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer conn.Close()

	client := gen.NewImageGenerationServiceClient(conn)

	// Call GenerateImage (single attempt, no retries)
	runGenerateImage(client, cfg, *prompt, *size)
}
