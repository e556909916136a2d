package firescript

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnosticListAddAndLineColumn(t *testing.T) {
	lines := NewLineIndex([]byte("abc\ndef"))
	dl := NewDiagnosticList(lines)

	assert.False(t, dl.HasErrors())

	dl.Add(DiagnosticType, 5, "mismatched type: expected %s got %s", "int32", "string")

	assert.True(t, dl.HasErrors())
	all := dl.All()
	assert.Len(t, all, 1)
	assert.Equal(t, DiagnosticType, all[0].Kind)
	assert.Equal(t, "mismatched type: expected int32 got string", all[0].Message)
	assert.Equal(t, 2, all[0].Line)
	assert.Equal(t, 2, all[0].Column)
}

func TestDiagnosticListHasMessageContaining(t *testing.T) {
	dl := NewDiagnosticList(NewLineIndex([]byte("")))
	dl.Add(DiagnosticIdentifier, 0, "undefined identifier %q", "foo")
	assert.True(t, dl.HasMessageContaining("undefined identifier"))
	assert.False(t, dl.HasMessageContaining("cyclic import"))
}

func TestModuleErrorUnwrapAndMessage(t *testing.T) {
	wrapped := errors.New("no such file")
	err := &ModuleError{Message: "module not found", Module: "a.b", Wrapped: wrapped}

	assert.Equal(t, "a.b: module not found", err.Error())
	assert.True(t, errors.Is(err, wrapped))

	bare := &ModuleError{Message: "cyclic import detected: a -> b -> a"}
	assert.Equal(t, "cyclic import detected: a -> b -> a", bare.Error())
}

func TestDiagnosticKindString(t *testing.T) {
	assert.Equal(t, "ownership", DiagnosticOwnership.String())
	assert.Equal(t, "type", DiagnosticType.String())
}
