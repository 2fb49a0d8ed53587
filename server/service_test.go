package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/kerosiinikone/go-grpc-imagegen/config"
	pb "github.com/kerosiinikone/go-grpc-imagegen/grpc"
	"github.com/kerosiinikone/go-grpc-imagegen/repository"
	"github.com/kerosiinikone/go-grpc-imagegen/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const testSecret = "test-secret"

type stubGenerator struct {
	b64      string
	err      error
	calls    int
	lastSize string
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string, size string) (string, error) {
	s.calls++
	s.lastSize = size
	if s.err != nil {
		return "", s.err
	}
	return s.b64, nil
}

type fakeRepo struct {
	records []repository.Generation
	err     error
}

func (f *fakeRepo) Record(ctx context.Context, g repository.Generation) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, g)
	return nil
}

func testConfig(dir string) *config.Config {
	cfg := &config.Config{SecretKey: testSecret}
	cfg.Provider.TimeoutSeconds = 5
	cfg.Images.Dir = dir
	return cfg
}

func pngBase64(t *testing.T) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func newTestService(t *testing.T, gen *stubGenerator, repo repository.GenerationRepository) (*apiService, string) {
	t.Helper()

	dir := t.TempDir()
	cfg := testConfig(dir)
	return newAPIService(cfg, gen, storage.New(dir, false, 0), repo), dir
}

func TestGenerateImageInvalidAPIKey(t *testing.T) {
	gen := &stubGenerator{b64: pngBase64(t)}
	svc, _ := newTestService(t, gen, nil)

	resp, err := svc.GenerateImage(context.Background(), &pb.ImageRequest{
		Prompt: "A futuristic city skyline at sunset",
		ApiKey: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
	// The provider must never be reached on an auth failure
	assert.Equal(t, 0, gen.calls)
}

func TestGenerateImageEmptyPrompt(t *testing.T) {
	gen := &stubGenerator{b64: pngBase64(t)}
	svc, _ := newTestService(t, gen, nil)

	_, err := svc.GenerateImage(context.Background(), &pb.ImageRequest{
		Prompt: "",
		ApiKey: testSecret,
	})

	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Equal(t, 0, gen.calls)
}

func TestGenerateImageDefaultsSize(t *testing.T) {
	gen := &stubGenerator{b64: pngBase64(t)}
	svc, _ := newTestService(t, gen, nil)

	_, err := svc.GenerateImage(context.Background(), &pb.ImageRequest{
		Prompt: "A futuristic city skyline at sunset",
		ApiKey: testSecret,
	})

	require.NoError(t, err)
	assert.Equal(t, "1024x1024", gen.lastSize)
}

func TestGenerateImageRejectsUnsupportedSize(t *testing.T) {
	gen := &stubGenerator{b64: pngBase64(t)}
	svc, _ := newTestService(t, gen, nil)

	_, err := svc.GenerateImage(context.Background(), &pb.ImageRequest{
		Prompt: "A futuristic city skyline at sunset",
		Size:   "640x480",
		ApiKey: testSecret,
	})

	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Equal(t, 0, gen.calls)
}

func TestGenerateImageAcceptsPortraitSize(t *testing.T) {
	gen := &stubGenerator{b64: pngBase64(t)}
	svc, _ := newTestService(t, gen, nil)

	_, err := svc.GenerateImage(context.Background(), &pb.ImageRequest{
		Prompt: "A futuristic city skyline at sunset",
		Size:   "1024x1792",
		ApiKey: testSecret,
	})

	require.NoError(t, err)
	assert.Equal(t, "1024x1792", gen.lastSize)
}

func TestGenerateImageProviderFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("billing hard limit has been reached")}
	svc, _ := newTestService(t, gen, nil)

	_, err := svc.GenerateImage(context.Background(), &pb.ImageRequest{
		Prompt: "A futuristic city skyline at sunset",
		ApiKey: testSecret,
	})

	require.Error(t, err)
	st := status.Convert(err)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Contains(t, st.Message(), "billing hard limit")
}

func TestGenerateImagePersistenceFailureDegrades(t *testing.T) {
	gen := &stubGenerator{b64: pngBase64(t)}

	// Block the images dir with a regular file so Save fails
	blocked := filepath.Join(t.TempDir(), "images")
	require.NoError(t, os.WriteFile(blocked, []byte("in the way"), 0o644))

	cfg := testConfig(blocked)
	svc := newAPIService(cfg, gen, storage.New(blocked, false, 0), nil)

	resp, err := svc.GenerateImage(context.Background(), &pb.ImageRequest{
		Prompt: "A futuristic city skyline at sunset",
		ApiKey: testSecret,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.GetImage())
	assert.Empty(t, resp.GetFilename())
}

func TestGenerateImageBadProviderPayloadDegrades(t *testing.T) {
	gen := &stubGenerator{b64: "%%% not base64 %%%"}
	svc, _ := newTestService(t, gen, nil)

	resp, err := svc.GenerateImage(context.Background(), &pb.ImageRequest{
		Prompt: "A futuristic city skyline at sunset",
		ApiKey: testSecret,
	})

	require.NoError(t, err)
	assert.Equal(t, gen.b64, resp.GetImage())
	assert.Empty(t, resp.GetFilename())
}

func TestGenerateImageStripsDataURIPrefix(t *testing.T) {
	stub := pngBase64(t)
	gen := &stubGenerator{b64: "data:image/png;base64," + stub}
	svc, dir := newTestService(t, gen, nil)

	resp, err := svc.GenerateImage(context.Background(), &pb.ImageRequest{
		Prompt: "A futuristic city skyline at sunset",
		ApiKey: testSecret,
	})

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d+_[0-9a-f]{8}\.png$`), resp.GetFilename())

	_, err = os.Stat(filepath.Join(dir, resp.GetFilename()))
	assert.NoError(t, err)
}

func TestGenerateImageEndToEnd(t *testing.T) {
	stub := pngBase64(t)
	gen := &stubGenerator{b64: stub}
	repo := &fakeRepo{}
	svc, dir := newTestService(t, gen, repo)

	resp, err := svc.GenerateImage(context.Background(), &pb.ImageRequest{
		Prompt: "A futuristic city skyline at sunset",
		Size:   "1024x1024",
		ApiKey: testSecret,
	})

	require.NoError(t, err)
	assert.Equal(t, stub, resp.GetImage())
	assert.Regexp(t, regexp.MustCompile(`^\d+_[0-9a-f]{8}\.png$`), resp.GetFilename())

	saved, err := os.ReadFile(filepath.Join(dir, resp.GetFilename()))
	require.NoError(t, err)
	raw, err := base64.StdEncoding.DecodeString(stub)
	require.NoError(t, err)
	assert.Equal(t, raw, saved)

	require.Len(t, repo.records, 1)
	assert.Equal(t, "A futuristic city skyline at sunset", repo.records[0].Prompt)
	assert.Equal(t, resp.GetFilename(), repo.records[0].Filename)
}

func TestGenerateImageJournalFailureDegrades(t *testing.T) {
	gen := &stubGenerator{b64: pngBase64(t)}
	repo := &fakeRepo{err: errors.New("connection refused")}
	svc, _ := newTestService(t, gen, repo)

	resp, err := svc.GenerateImage(context.Background(), &pb.ImageRequest{
		Prompt: "A futuristic city skyline at sunset",
		ApiKey: testSecret,
	})

	// A broken journal still leaves a fully successful response
	require.NoError(t, err)
	assert.NotEmpty(t, resp.GetFilename())
}
