package logger_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/aptsrc/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
	}{
		{
			name:         "standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
		},
		{
			name:         "zerr chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
		},
		{
			name:         "nil",
			err:          nil,
			wantMessages: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)
			assert.Len(t, entries, len(tt.wantMessages))
			for i, want := range tt.wantMessages {
				assert.Equal(t, want, entries[i].Message)
			}
		})
	}
}

func TestCollectErrorEntries_Metadata(t *testing.T) {
	err := zerr.With(zerr.With(zerr.New("base error"), "source", "my_source"), "format", "list")

	entries := logger.CollectErrorEntries(err)
	assert.Len(t, entries, 1)
	assert.Equal(t, map[string]any{"source": "my_source", "format": "list"}, entries[0].Metadata)
}

func TestCollectErrorEntries_MetadataOnlyLayer(t *testing.T) {
	sentinel := zerr.New("failed to read sources file")
	err := zerr.With(fmt.Errorf("%w: %w", sentinel, errors.New("permission denied")), "path", "sources.yaml")

	entries := logger.CollectErrorEntries(zerr.Wrap(err, "failed to load configuration"))
	require.Len(t, entries, 2)
	assert.Equal(t, "failed to load configuration", entries[0].Message)
	assert.Empty(t, entries[0].Metadata)
	assert.Equal(t, "failed to read sources file: permission denied", entries[1].Message)
	assert.Equal(t, map[string]any{"path": "sources.yaml"}, entries[1].Metadata)
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name:    "chain",
			entries: []logger.ErrorEntry{{Message: "first"}, {Message: "second"}, {Message: "third"}},
			want:    "Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			name: "metadata sorted",
			entries: []logger.ErrorEntry{{
				Message:  "error",
				Metadata: map[string]any{"source": "a", "fact": "os.distro.codename"},
			}},
			want: "Error: error\n       fact: os.distro.codename\n       source: a",
		},
		{
			name: "multiline cause with metadata",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "line1\nline2", Metadata: map[string]any{"path": "sources.yaml"}},
			},
			want: "Error: main\n\n  Caused by:\n    → line1\n      line2\n      path: sources.yaml",
		},
		{
			name:    "empty",
			entries: []logger.ErrorEntry{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}
