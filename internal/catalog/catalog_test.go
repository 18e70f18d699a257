package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/sagarhutagi/ai-code-doctor/internal/llm"
	"github.com/sagarhutagi/ai-code-doctor/internal/llm/mocks"
)

func testLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestCatalog_List_DefaultFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := mocks.NewMockClient(ctrl)

	modified := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	mockClient.EXPECT().ListModels(gomock.Any()).Return([]llm.ModelInfo{
		{Name: "mistral:7b", SizeBytes: 4 << 30, ModifiedAt: modified},
		{Name: "llama3:8b", SizeBytes: 5 << 30, ModifiedAt: modified},
		{Name: "codellama:7b", SizeBytes: 3 << 30, ModifiedAt: modified},
		{Name: "phi3:mini", SizeBytes: 2 << 30, ModifiedAt: modified},
	}, nil)

	cat := New(mockClient, "codellama:7b", testLogger())

	got, err := cat.List(context.Background())
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}

	wantOrder := []string{"codellama:7b", "mistral:7b", "llama3:8b", "phi3:mini"}
	if len(got) != len(wantOrder) {
		t.Fatalf("Expected %d models, got %d", len(wantOrder), len(got))
	}
	for i, name := range wantOrder {
		if got[i].Name != name {
			t.Errorf("Position %d: got %q, want %q", i, got[i].Name, name)
		}
	}

	if got[0].SizeGB != 3.0 {
		t.Errorf("SizeGB = %v, want 3.0", got[0].SizeGB)
	}
	if got[0].Modified != "2026-03-14T09:00:00Z" {
		t.Errorf("Modified = %q, want RFC3339 timestamp", got[0].Modified)
	}
}

func TestCatalog_List_DefaultAbsentKeepsUpstreamOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := mocks.NewMockClient(ctrl)

	mockClient.EXPECT().ListModels(gomock.Any()).Return([]llm.ModelInfo{
		{Name: "zephyr:7b", SizeBytes: 1 << 30},
		{Name: "aya:8b", SizeBytes: 1 << 30},
	}, nil)

	cat := New(mockClient, "codellama:7b", testLogger())

	got, err := cat.List(context.Background())
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}

	// Not resorted: upstream order is preserved when the default is absent.
	if got[0].Name != "zephyr:7b" || got[1].Name != "aya:8b" {
		t.Errorf("Upstream order not preserved: %q, %q", got[0].Name, got[1].Name)
	}
}

func TestCatalog_List_EmptyUpstreamSynthesizesDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := mocks.NewMockClient(ctrl)

	mockClient.EXPECT().ListModels(gomock.Any()).Return([]llm.ModelInfo{}, nil)

	cat := New(mockClient, "codellama:7b", testLogger())

	got, err := cat.List(context.Background())
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Expected 1 synthetic entry, got %d", len(got))
	}
	if got[0].Name != "codellama:7b" {
		t.Errorf("Synthetic entry name = %q, want default model", got[0].Name)
	}
	if got[0].SizeGB != 0 || got[0].Modified != "" {
		t.Errorf("Synthetic entry should carry no size or timestamp: %+v", got[0])
	}
}

func TestCatalog_List_SizeRounding(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := mocks.NewMockClient(ctrl)

	// 4509715660 bytes is 4.1999... GiB and must round to one decimal.
	mockClient.EXPECT().ListModels(gomock.Any()).Return([]llm.ModelInfo{
		{Name: "m", SizeBytes: 4509715660},
	}, nil)

	cat := New(mockClient, "m", testLogger())

	got, err := cat.List(context.Background())
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if got[0].SizeGB != 4.2 {
		t.Errorf("SizeGB = %v, want 4.2", got[0].SizeGB)
	}
}

func TestCatalog_List_UpstreamErrorPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := mocks.NewMockClient(ctrl)

	upstreamErr := fmt.Errorf("%w: dial tcp: connection refused", llm.ErrUnavailable)
	mockClient.EXPECT().ListModels(gomock.Any()).Return(nil, upstreamErr)

	cat := New(mockClient, "codellama:7b", testLogger())

	_, err := cat.List(context.Background())
	if !errors.Is(err, llm.ErrUnavailable) {
		t.Fatalf("Expected ErrUnavailable to pass through, got %v", err)
	}
}
