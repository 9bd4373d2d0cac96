package adapters

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"licmerge/internal/types"
)

func TestNoticeWriterAdapterRendersRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "NOTICE.txt")

	require.NoError(t, NewNoticeWriterAdapter().WriteNotice(path, sampleEntries()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, "THIRD-PARTY SOFTWARE NOTICES"))
	assert.Contains(t, text, "zeta 1.0.0 (MIT)")
	assert.Contains(t, text, "alpha 2.0.0 (ISC)")
	assert.Contains(t, text, "Copyright <Zeta> & co")
	assert.Less(t, strings.Index(text, "zeta 1.0.0"), strings.Index(text, "alpha 2.0.0"))
}

func TestNoticeWriterAdapterCustomTemplate(t *testing.T) {
	adapter := NoticeWriterAdapter{Template: "{{#each records}}{{name}};{{/each}}"}

	out, err := adapter.Render(sampleEntries())
	require.NoError(t, err)
	assert.Equal(t, "zeta;alpha;", out)
}

func TestNoticeWriterAdapterBadTemplate(t *testing.T) {
	adapter := NoticeWriterAdapter{Template: "{{#each records}}"}

	_, err := adapter.Render(sampleEntries())
	require.Error(t, err)
}

func TestNoticeWriterAdapterKeepsHeadingsUnescaped(t *testing.T) {
	entries := []types.OutputEntry{
		{Key: "o'brien@1.0.0", Record: types.OutputRecord{Name: "o'brien", InputDataLicenseType: `"MIT" & ISC`, Version: "1.0.0", LicenseText: "text"}},
	}

	out, err := NewNoticeWriterAdapter().Render(entries)
	require.NoError(t, err)
	assert.Contains(t, out, `o'brien 1.0.0 ("MIT" & ISC)`)
	assert.NotContains(t, out, "&amp;")
	assert.NotContains(t, out, "&#39;")
}
