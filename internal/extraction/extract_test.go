package extraction

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFile_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Some Resume Text"), 0o644))

	assert.Equal(t, "", FromFile(path))
}

func TestFromFile_MissingFile(t *testing.T) {
	assert.Equal(t, "", FromFile(filepath.Join(t.TempDir(), "missing.pdf")))
}

func TestStripDocxMarkup_Paragraphs(t *testing.T) {
	content := `<w:p><w:r><w:t>Software Engineer</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>5 years of experience</w:t></w:r></w:p>`

	assert.Equal(t, "Software Engineer\n5 years of experience\n", stripDocxMarkup(content))
}

func TestStripDocxMarkup_Entities(t *testing.T) {
	content := `<w:p><w:r><w:t>C&amp;C++ developer</w:t></w:r></w:p>`

	assert.Equal(t, "C&C++ developer\n", stripDocxMarkup(content))
}
