package envelope

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSectionOrder(t *testing.T) {
	env := Build("def test(): pass", "module\n  function_definition")

	code := strings.Index(env, "<test_code>")
	ast := strings.Index(env, "<ast>")
	prod := strings.Index(env, "<production_code>")

	require.NotEqual(t, -1, code, "missing test_code section")
	require.NotEqual(t, -1, ast, "missing ast section")
	require.NotEqual(t, -1, prod, "missing production_code section")
	assert.Less(t, code, ast, "test_code must precede ast")
	assert.Less(t, ast, prod, "ast must precede production_code")
}

func TestBuildSourceVerbatim(t *testing.T) {
	source := "def test_weird():\n    assert \"<ast>\" != 'x'  # tricky\n"
	env := Build(source, "module")

	start := strings.Index(env, "<test_code>\n")
	end := strings.Index(env, "\n</test_code>")
	require.NotEqual(t, -1, start)
	require.NotEqual(t, -1, end)
	assert.Equal(t, source, env[start+len("<test_code>\n"):end],
		"source must appear verbatim inside test_code")
}

func TestBuildProductionPlaceholder(t *testing.T) {
	env := Build("x = 1", "module")
	assert.Contains(t, env, "<production_code>\n"+ProductionPlaceholder+"\n</production_code>")
}

func TestBuildClosesEverySection(t *testing.T) {
	env := Build("x = 1", "module")
	for _, tag := range []string{"test_code", "ast", "production_code"} {
		assert.Equal(t, 1, strings.Count(env, "<"+tag+">"), tag)
		assert.Equal(t, 1, strings.Count(env, "</"+tag+">"), tag)
	}
}
