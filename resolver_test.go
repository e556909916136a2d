package firescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namesOf(stmts []Node) []string {
	var names []string
	for _, s := range stmts {
		if n := exportedName(s); n != "" {
			names = append(names, n)
		}
	}
	return names
}

func TestResolverImportsHappyPath(t *testing.T) {
	loader := NewInMemorySourceLoader()
	loader.Add("a.fire", `
int32 add(int32 x, int32 y) { return x + y; }
string greet() { return "hello"; }
int32 TEN = 10;
`)

	entrySrc := `
import a.*
print(add(2, TEN));
print(greet());
`
	entryParser := NewParser(entrySrc)
	entryRoot := entryParser.Parse()

	resolver := NewResolver("", loader)
	merged, err := resolver.Resolve(entryParser, entryRoot)
	require.NoError(t, err)

	names := namesOf(merged.Statements)
	assert.Equal(t, []string{"add", "greet", "TEN"}, names)
	assert.Len(t, merged.Statements, 5) // add, greet, TEN, print(...), print(...)
}

func TestResolverCycleDetection(t *testing.T) {
	loader := NewInMemorySourceLoader()
	loader.Add("x.fire", "import y.*\n")
	loader.Add("y.fire", "import x.*\n")

	entryParser := NewParser("import x.*\n")
	entryRoot := entryParser.Parse()

	resolver := NewResolver("", loader)
	_, err := resolver.Resolve(entryParser, entryRoot)
	require.Error(t, err)

	modErr, ok := err.(*ModuleError)
	require.True(t, ok)
	assert.Contains(t, modErr.Message, "cyclic import detected")
}

func TestResolverEntryWinsOnNameClash(t *testing.T) {
	loader := NewInMemorySourceLoader()
	loader.Add("a.fire", "int32 shared = 1;\n")

	entrySrc := `
import a.*
int32 shared = 2;
`
	entryParser := NewParser(entrySrc)
	entryRoot := entryParser.Parse()

	resolver := NewResolver("", loader)
	merged, err := resolver.Resolve(entryParser, entryRoot)
	require.NoError(t, err)

	var found int
	for _, s := range merged.Statements {
		if decl, ok := s.(*VariableDeclarationNode); ok && decl.Name == "shared" {
			found++
			lit, ok := decl.Value.(*LiteralNode)
			require.True(t, ok)
			assert.Equal(t, "2", lit.Text)
		}
	}
	assert.Equal(t, 1, found, "entry declaration must replace, not duplicate, the imported one")
}

func TestResolverConflictingExportsAbort(t *testing.T) {
	loader := NewInMemorySourceLoader()
	loader.Add("a.fire", "int32 shared = 1;\n")
	loader.Add("b.fire", "int32 shared = 2;\n")

	entrySrc := `
import a.*
import b.*
`
	entryParser := NewParser(entrySrc)
	entryRoot := entryParser.Parse()

	resolver := NewResolver("", loader)
	_, err := resolver.Resolve(entryParser, entryRoot)
	require.Error(t, err)
	_, ok := err.(*ModuleError)
	assert.True(t, ok)
}
