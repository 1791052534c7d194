package spla

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMatrixValues(t *testing.T) {
	assert.Equal(t, FormatMatrix(0), FormatMatrixCPULil)
	assert.Equal(t, FormatMatrix(4), FormatMatrixCPUCsc)
	assert.Equal(t, FormatMatrix(7), FormatMatrixAccCsc)
	assert.Equal(t, 8, FormatMatrixCount)
}

func TestFormatMatrixString(t *testing.T) {
	assert.Equal(t, "CPU_LIL", FormatMatrixCPULil.String())
	assert.Equal(t, "CPU_CSR", FormatMatrixCPUCsr.String())
	assert.Equal(t, "ACC_CSC", FormatMatrixAccCsc.String())
	assert.Equal(t, "unknown", FormatMatrix(99).String())
}

func TestFormatVectorValues(t *testing.T) {
	assert.Equal(t, FormatVector(0), FormatVectorCPUDok)
	assert.Equal(t, FormatVector(4), FormatVectorAccCoo)
	assert.Equal(t, 5, FormatVectorCount)
}

func TestFormatVectorString(t *testing.T) {
	assert.Equal(t, "CPU_DOK", FormatVectorCPUDok.String())
	assert.Equal(t, "ACC_DENSE", FormatVectorAccDense.String())
	assert.Equal(t, "unknown", FormatVector(-1).String())
}
