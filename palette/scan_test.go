package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanColors(t *testing.T) {
	css := []byte(`
.ui-widget{color:#086CA2;background:#f4f4f4}
.ui-state-hover{color:#086ca2;border:1px solid #FFF}
#header{color:#B90091}
`)
	usages, err := ScanColors(css)
	require.NoError(t, err)
	require.Len(t, usages, 3)

	assert.Equal(t, "#086CA2", usages[0].Color.String())
	assert.Equal(t, 2, usages[0].Count)
	assert.Equal(t, "#F4F4F4", usages[1].Color.String())
	assert.Equal(t, "#B90091", usages[2].Color.String())

	assert.Equal(t, "#086CA2;#F4F4F4;#B90091", FindValues(usages))
}

func TestScanColors_Empty(t *testing.T) {
	usages, err := ScanColors(nil)
	require.NoError(t, err)
	assert.Empty(t, usages)
	assert.Equal(t, "", FindValues(usages))
}
