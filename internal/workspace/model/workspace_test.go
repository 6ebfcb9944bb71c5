package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntegrationType(t *testing.T) {
	tests := []struct {
		input    string
		expected IntegrationType
		wantErr  bool
	}{
		{input: "GITHUB", expected: IntegrationTypeGitHub},
		{input: "trello", expected: IntegrationTypeTrello},
		{input: " GitHub ", expected: IntegrationTypeGitHub},
		{input: "jira", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseIntegrationType(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidIntegrationType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSettings_ValueScan(t *testing.T) {
	t.Run("nil settings store empty object", func(t *testing.T) {
		v, err := Settings(nil).Value()
		require.NoError(t, err)
		assert.Equal(t, "{}", v)
	})

	t.Run("scan bytes", func(t *testing.T) {
		var s Settings
		require.NoError(t, s.Scan([]byte(`{"board":"b-1"}`)))
		assert.Equal(t, "b-1", s["board"])
	})

	t.Run("scan nil", func(t *testing.T) {
		var s Settings
		require.NoError(t, s.Scan(nil))
		assert.NotNil(t, s)
		assert.Empty(t, s)
	})

	t.Run("scan invalid json", func(t *testing.T) {
		var s Settings
		assert.Error(t, s.Scan("not json"))
	})

	t.Run("scan unsupported type", func(t *testing.T) {
		var s Settings
		assert.Error(t, s.Scan(42))
	})
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "workspaces", Workspace{}.TableName())
	assert.Equal(t, "integrations", Integration{}.TableName())
	assert.Equal(t, "repos", Repo{}.TableName())
}
