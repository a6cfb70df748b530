package argh

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadValues(t *testing.T) {
	tmpDir := t.TempDir()

	write := func(t *testing.T, name, content string) string {
		t.Helper()
		path := filepath.Join(tmpDir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	newRegistry := func() (*Argh, *int, *bool, *string, *[]string) {
		a := New()
		var (
			i    int
			flag bool
			s    string
			ms   []string
		)
		AddOption(a, &i, 789, "--intvalue", "Integer value")
		a.AddFlag(&flag, "--flagvalue", "Flag value")
		AddOption(a, &s, "default", "--stringvalue", "String value")
		AddMultiOption(a, &ms, "one,two", "--multistringvalue", "String list")
		return a, &i, &flag, &s, &ms
	}

	t.Run("TOML", func(t *testing.T) {
		path := write(t, "opts.toml", `
intvalue = 123
flagvalue = true
stringvalue = "from toml"
multistringvalue = ["x", "y", "z"]
`)
		a, i, flag, s, ms := newRegistry()
		require.NoError(t, a.LoadValues(path))

		assert.Equal(t, 123, *i)
		assert.True(t, *flag)
		assert.Equal(t, "from toml", *s)
		assert.Equal(t, []string{"x", "y", "z"}, *ms)
		assert.True(t, a.IsParsed("--intvalue"))
	})

	t.Run("JSON", func(t *testing.T) {
		path := write(t, "opts.json", `{"intvalue": 321, "stringvalue": "from json"}`)
		a, i, _, s, _ := newRegistry()
		require.NoError(t, a.LoadValues(path))

		assert.Equal(t, 321, *i)
		assert.Equal(t, "from json", *s)
	})

	t.Run("YAML", func(t *testing.T) {
		path := write(t, "opts.yaml", "intvalue: 111\nmultistringvalue:\n  - a\n  - b\n")
		a, i, _, _, ms := newRegistry()
		require.NoError(t, a.LoadValues(path))

		assert.Equal(t, 111, *i)
		assert.Equal(t, []string{"a", "b"}, *ms)
	})

	t.Run("ContentDetection", func(t *testing.T) {
		// No useful extension; valid JSON content is detected by probing.
		path := write(t, "opts.conf", `{"intvalue": 55}`)
		a, i, _, _, _ := newRegistry()
		require.NoError(t, a.LoadValues(path))
		assert.Equal(t, 55, *i)
	})

	t.Run("UnknownKeysIgnored", func(t *testing.T) {
		path := write(t, "extra.toml", "intvalue = 1\nunregistered = true\n")
		a, i, _, _, _ := newRegistry()
		require.NoError(t, a.LoadValues(path))
		assert.Equal(t, 1, *i)
	})

	t.Run("MissingFile", func(t *testing.T) {
		a, i, _, _, _ := newRegistry()
		err := a.LoadValues(filepath.Join(tmpDir, "nope.toml"))
		assert.ErrorIs(t, err, ErrConfigNotFound)
		assert.Equal(t, 789, *i)
		assert.False(t, a.IsParsed("--intvalue"))
	})

	t.Run("MalformedFile", func(t *testing.T) {
		path := write(t, "bad.toml", "intvalue = ")
		a, _, _, _, _ := newRegistry()
		err := a.LoadValues(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse TOML")
	})

	t.Run("OverriddenByLaterParse", func(t *testing.T) {
		path := write(t, "layered.toml", "intvalue = 123\n")
		a, i, _, _, _ := newRegistry()
		require.NoError(t, a.LoadValues(path))
		require.Equal(t, 123, *i)

		a.Parse([]string{"--intvalue", "456"})
		assert.Equal(t, 456, *i)
		assert.True(t, a.IsParsed("--intvalue"))
	})
}

func TestValues(t *testing.T) {
	a := New()
	var (
		i    int
		flag bool
		ms   []string
	)
	AddOption(a, &i, 789, "--intvalue", "Integer value")
	a.AddFlag(&flag, "--flagvalue", "Flag value")
	AddMultiOption(a, &ms, "one,two", "--multistringvalue", "String list")

	a.Parse([]string{"--intvalue", "42", "--flagvalue"})

	values := a.Values()
	assert.Equal(t, 42, values["intvalue"])
	assert.Equal(t, true, values["flagvalue"])
	assert.Equal(t, []string{"one", "two"}, values["multistringvalue"])
}

func TestScan(t *testing.T) {
	type target struct {
		Port    int      `argh:"port"`
		Host    string   `argh:"host"`
		Verbose bool     `argh:"verbose"`
		Tags    []string `argh:"tags"`
	}

	a := New()
	var (
		port    int
		host    string
		verbose bool
		tags    []string
	)
	AddOption(a, &port, 8080, "--port", "Listen port")
	AddOption(a, &host, "localhost", "--host", "Bind host")
	a.AddFlag(&verbose, "--verbose", "Print more")
	AddMultiOption(a, &tags, "dev,test", "--tags", "Deployment tags")

	a.Parse([]string{"--port", "9090", "--verbose"})

	var got target
	require.NoError(t, a.Scan(&got))

	assert.Equal(t, 9090, got.Port)
	assert.Equal(t, "localhost", got.Host)
	assert.True(t, got.Verbose)
	assert.Equal(t, []string{"dev", "test"}, got.Tags)
}
