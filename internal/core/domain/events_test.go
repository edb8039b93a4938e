package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/jsproj/internal/core/domain"
)

func TestInputChangedEvent_ProjectRoot(t *testing.T) {
	tests := []struct {
		name   string
		event  domain.InputChangedEvent
		want   domain.Parent
		wantOK bool
	}{
		{name: "no file", event: domain.InputChangedEvent{}},
		{name: "no parents", event: domain.InputChangedEvent{File: &domain.InputFile{Location: "/a.js"}}},
		{
			name: "outermost parent",
			event: domain.InputChangedEvent{File: &domain.InputFile{
				Location: "/work/app/src/a.js",
				Parents: []domain.Parent{
					{Location: "/work/app/src", Name: "src"},
					{Location: "/work/app", Name: "app"},
				},
			}},
			want:   domain.Parent{Location: "/work/app", Name: "app"},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.event.ProjectRoot()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileChangedEvent_Empty(t *testing.T) {
	assert.True(t, domain.FileChangedEvent{Type: domain.ChangedEventType}.Empty())
	assert.False(t, domain.FileChangedEvent{Modified: []string{"/p/a"}}.Empty())
	assert.False(t, domain.FileChangedEvent{Moved: []domain.MovedEntry{{Source: "/p/a"}}}.Empty())
}

func TestDefaultSettings(t *testing.T) {
	s := domain.DefaultSettings()
	assert.Equal(t, domain.DefaultDebounce, s.Debounce)
	assert.Equal(t, domain.LogFormatPretty, s.LogFormat)
	assert.Contains(t, s.ProjectMarkers, domain.TernProjectName)
	assert.Empty(t, s.Path)
}
